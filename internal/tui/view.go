package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weekboard/internal/week"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddEvent, StateEditEvent:
		return docStyle.Render(m.form.View())
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	sections := []string{m.viewHeader()}
	if m.warning != "" {
		sections = append(sections, warningStyle.Render(m.warning+"  (w to dismiss)"))
	}
	sections = append(sections, m.weekView.View(), m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHeader() string {
	days := week.Dates(m.reconciler.WeekOffset())
	title := headerStyle.Render(fmt.Sprintf("Weekboard %d", days[0].Year))
	sub := subheaderStyle.Render(fmt.Sprintf("%s – %s", days[0].ISO, days[6].ISO))
	if m.weekView.Moving() {
		sub += subheaderStyle.Render("· moving: drop with space, trash with t, esc to cancel")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, sub)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this event?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
