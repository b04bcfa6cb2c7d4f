package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/tui/components/weekview"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.weekView.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case weekview.PickUpMsg:
		m.session.OnDragStart(msg.Day, msg.ID)
		return m, nil

	case weekview.HoverMsg:
		m.session.OnDragHoverChange(msg.Target)
		return m, nil

	case weekview.CancelMsg:
		// A cancelled gesture is a drop onto nothing.
		if e, ok := m.session.Active(); ok {
			_ = m.session.OnDragEnd(e.Date, e.ID, board.NoTarget())
		}
		return m, nil

	case weekview.DropMsg:
		if err := m.session.OnDragEnd(msg.SourceDay, msg.EventID, msg.Target); err != nil {
			if errors.Is(err, board.ErrCapacityExceeded) {
				m.warning = fmt.Sprintf("⚠ That day is full (max %d events)", constants.MaxEventsPerDay)
			} else {
				m.warning = "⚠ " + err.Error()
			}
			m.weekView.ClearDrag()
			m.refreshWeek()
			return m, nil
		}
		m.save()
		m.refreshWeek()
		return m, nil

	case weekview.ShiftWeekMsg:
		m.reconciler.ShiftWeek(msg.Direction)
		m.save()
		m.refreshWeek()
		return m, nil

	case weekview.AddEventMsg:
		if !m.reconciler.Store().CanAccept(msg.Day) {
			m.warning = fmt.Sprintf("⚠ %s is full (max %d events)", msg.Day, constants.MaxEventsPerDay)
			return m, nil
		}
		m.eventForm = &EventFormModel{Day: msg.Day, Type: models.EventTypeSport}
		m.form = newEventForm(m.eventForm)
		m.state = StateAddEvent
		return m, m.form.Init()

	case weekview.EditEventMsg:
		edit := msg
		m.editing = &edit
		m.eventForm = &EventFormModel{
			Day:   msg.Day,
			Title: msg.Event.Title,
			Emoji: msg.Event.Emoji,
			Type:  msg.Event.Type,
			Theme: msg.Event.Theme,
			Time:  msg.Event.Time,
			Note:  msg.Event.Note,
		}
		m.form = newEventForm(m.eventForm)
		m.state = StateEditEvent
		return m, m.form.Init()

	case weekview.ToggleEventMsg:
		m.reconciler.Store().ToggleCompleted(msg.Day, msg.ID)
		m.save()
		m.refreshWeek()
		return m, nil

	case weekview.DeleteEventMsg:
		m.deleteDay = msg.Day
		m.deleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case StateBoard:
		return m.updateBoard(msg)
	case StateAddEvent, StateEditEvent:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Dismiss):
			if m.warning != "" {
				m.warning = ""
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.weekView, cmd = m.weekView.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddEvent {
			if _, err := m.reconciler.Store().CreateEvent(m.eventForm.Day, m.formEvent()); err != nil {
				m.warning = "⚠ " + err.Error()
			} else {
				m.save()
			}
		} else if m.editing != nil {
			e := m.formEvent()
			patch := models.EventPatch{
				Title: &e.Title,
				Emoji: &e.Emoji,
				Type:  &e.Type,
				Theme: &e.Theme,
				Time:  &e.Time,
				Note:  &e.Note,
			}
			m.reconciler.Store().PatchEvent(m.editing.Day, m.editing.Event.ID, patch)
			m.save()
		}
		m.refreshWeek()
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) closeForm() {
	m.state = StateBoard
	m.form = nil
	m.eventForm = nil
	m.editing = nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.reconciler.Store().RemoveEvent(m.deleteDay, m.deleteID)
		m.save()
		m.refreshWeek()
		fallthrough
	case "n", "N", "esc", "q":
		m.deleteDay = ""
		m.deleteID = ""
		m.state = StateBoard
	}
	return m, nil
}
