package weekview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/week"
)

// Messages emitted to the parent model. The component never mutates the
// board itself; every gesture surfaces as a message.

type AddEventMsg struct {
	Day string
}

type EditEventMsg struct {
	Day   string
	Event models.Event
}

type ToggleEventMsg struct {
	Day string
	ID  string
}

type DeleteEventMsg struct {
	Day string
	ID  string
}

type PickUpMsg struct {
	Day string
	ID  string
}

type HoverMsg struct {
	Target board.DropTarget
}

type DropMsg struct {
	SourceDay string
	EventID   string
	Target    board.DropTarget
}

type CancelMsg struct{}

type ShiftWeekMsg struct {
	Direction board.NavDirection
}

type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PickDrop key.Binding
	Cancel   key.Binding
	Trash    key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Toggle   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PickDrop: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "pick up/drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Trash: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hover trash"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next week"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add event"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit event"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete event"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle done"),
		),
	}
}

type source struct {
	day string
	id  string
}

// Model renders the seven day columns of the visible week and tracks the
// cursor plus the pick-up/drop gesture. Board state comes in through SetWeek;
// the component keeps a read-only copy.
type Model struct {
	days    []week.Day
	buckets map[string][]models.Event

	dayIdx    int
	eventIdx  int
	source    *source // set while an event is picked up
	overTrash bool

	keys   KeyMap
	width  int
	height int
}

func New(days []week.Day, buckets map[string][]models.Event, width, height int) Model {
	return Model{
		days:    days,
		buckets: buckets,
		keys:    DefaultKeyMap(),
		width:   width,
		height:  height,
	}
}

// SetWeek replaces the visible days and board contents, keeping the cursor
// in bounds.
func (m *Model) SetWeek(days []week.Day, buckets map[string][]models.Event) {
	m.days = days
	m.buckets = buckets
	m.clampCursor()
}

// ClearDrag drops any in-progress gesture, e.g. after the parent applied or
// rejected a drop.
func (m *Model) ClearDrag() {
	m.source = nil
	m.overTrash = false
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Moving() bool {
	return m.source != nil
}

// CursorDay returns the bucket key under the cursor.
func (m Model) CursorDay() string {
	if len(m.days) == 0 {
		return ""
	}
	return m.days[m.dayIdx].ISO
}

func (m Model) cursorEvent() (models.Event, bool) {
	bucket := m.buckets[m.CursorDay()]
	if m.eventIdx < 0 || m.eventIdx >= len(bucket) {
		return models.Event{}, false
	}
	return bucket[m.eventIdx], true
}

func (m *Model) clampCursor() {
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	if m.dayIdx > 6 {
		m.dayIdx = 6
	}
	n := len(m.buckets[m.CursorDay()])
	if m.eventIdx >= n {
		m.eventIdx = n - 1
	}
	if m.eventIdx < 0 {
		m.eventIdx = 0
	}
}

// currentTarget resolves the cursor position to the drop target a release
// would land on right now.
func (m Model) currentTarget() board.DropTarget {
	if m.overTrash {
		return board.TrashTarget()
	}
	if e, ok := m.cursorEvent(); ok {
		return board.EventTarget(m.CursorDay(), e.ID)
	}
	return board.DayTarget(m.CursorDay())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.dayIdx--
		m.overTrash = false
		m.clampCursor()
		if m.source != nil {
			return m, m.hoverCmd()
		}

	case key.Matches(keyMsg, m.keys.Right):
		m.dayIdx++
		m.overTrash = false
		m.clampCursor()
		if m.source != nil {
			return m, m.hoverCmd()
		}

	case key.Matches(keyMsg, m.keys.Up):
		m.eventIdx--
		m.overTrash = false
		m.clampCursor()
		if m.source != nil {
			return m, m.hoverCmd()
		}

	case key.Matches(keyMsg, m.keys.Down):
		m.eventIdx++
		m.overTrash = false
		m.clampCursor()
		if m.source != nil {
			return m, m.hoverCmd()
		}

	case key.Matches(keyMsg, m.keys.Trash):
		if m.source != nil {
			m.overTrash = !m.overTrash
			return m, m.hoverCmd()
		}

	case key.Matches(keyMsg, m.keys.PickDrop):
		if m.source == nil {
			if e, ok := m.cursorEvent(); ok {
				m.source = &source{day: m.CursorDay(), id: e.ID}
				day, id := m.source.day, e.ID
				return m, func() tea.Msg { return PickUpMsg{Day: day, ID: id} }
			}
			return m, nil
		}
		src := *m.source
		target := m.currentTarget()
		m.source = nil
		m.overTrash = false
		return m, func() tea.Msg {
			return DropMsg{SourceDay: src.day, EventID: src.id, Target: target}
		}

	case key.Matches(keyMsg, m.keys.Cancel):
		if m.source != nil {
			m.source = nil
			m.overTrash = false
			return m, func() tea.Msg { return CancelMsg{} }
		}

	case key.Matches(keyMsg, m.keys.PrevWeek):
		return m, m.weekNav(board.NavPrevious)

	case key.Matches(keyMsg, m.keys.NextWeek):
		return m, m.weekNav(board.NavNext)

	case key.Matches(keyMsg, m.keys.Add):
		if m.source == nil {
			day := m.CursorDay()
			return m, func() tea.Msg { return AddEventMsg{Day: day} }
		}

	case key.Matches(keyMsg, m.keys.Edit):
		if m.source == nil {
			if e, ok := m.cursorEvent(); ok {
				day := m.CursorDay()
				return m, func() tea.Msg { return EditEventMsg{Day: day, Event: e} }
			}
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.source == nil {
			if e, ok := m.cursorEvent(); ok {
				day, id := m.CursorDay(), e.ID
				return m, func() tea.Msg { return DeleteEventMsg{Day: day, ID: id} }
			}
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.source == nil {
			if e, ok := m.cursorEvent(); ok {
				day, id := m.CursorDay(), e.ID
				return m, func() tea.Msg { return ToggleEventMsg{Day: day, ID: id} }
			}
		}
	}

	return m, nil
}

// weekNav is a drop onto a navigation affordance while moving, and a plain
// week shift otherwise.
func (m *Model) weekNav(dir board.NavDirection) tea.Cmd {
	if m.source != nil {
		src := *m.source
		m.source = nil
		m.overTrash = false
		return func() tea.Msg {
			return DropMsg{SourceDay: src.day, EventID: src.id, Target: board.WeekNavTarget(dir)}
		}
	}
	return func() tea.Msg { return ShiftWeekMsg{Direction: dir} }
}

func (m Model) hoverCmd() tea.Cmd {
	target := m.currentTarget()
	return func() tea.Msg { return HoverMsg{Target: target} }
}

func (m Model) View() string {
	if len(m.days) != 7 {
		return ""
	}

	colWidth := m.width/7 - 2
	if colWidth < 14 {
		colWidth = 14
	}

	cols := make([]string, 7)
	for i, d := range m.days {
		cols[i] = m.viewDay(i, d, colWidth)
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	return lipgloss.JoinVertical(lipgloss.Left, grid, m.viewDropzones())
}

func (m Model) viewDay(idx int, d week.Day, colWidth int) string {
	bucket := m.buckets[d.ISO]

	header := fmt.Sprintf("%s %s", d.Name[:3], d.DateLabel)
	headerStyle := dayHeaderStyle
	if idx == m.dayIdx {
		headerStyle = dayHeaderActiveStyle
	}

	var cards []string
	cards = append(cards, headerStyle.Width(colWidth).Render(header))
	for j, e := range bucket {
		cards = append(cards, m.viewCard(e, colWidth, idx == m.dayIdx && j == m.eventIdx))
	}
	for j := len(bucket); j < constants.MaxEventsPerDay; j++ {
		style := emptySlotStyle
		if idx == m.dayIdx && j == m.eventIdx && len(bucket) == 0 && j == 0 {
			style = emptySlotActiveStyle
		}
		cards = append(cards, style.Width(colWidth).Render("·"))
	}

	col := lipgloss.JoinVertical(lipgloss.Left, cards...)
	border := dayColumnStyle
	if idx == m.dayIdx {
		border = dayColumnActiveStyle
	}
	return border.Render(col)
}

func (m Model) viewCard(e models.Event, colWidth int, selected bool) string {
	var b strings.Builder
	b.WriteString(e.Emoji)
	b.WriteString(" ")
	b.WriteString(e.Title)
	if e.Time != "" {
		b.WriteString("\n")
		b.WriteString(timeStyle.Render(e.Time))
	}
	if e.Note != "" {
		note := []rune(e.Note)
		if len(note) > constants.NoteMaxLenList {
			note = note[:constants.NoteMaxLenList]
		}
		b.WriteString("\n")
		b.WriteString(noteStyle.Render(string(note)))
	}

	style := cardStyle(e.Theme)
	if e.Completed {
		style = style.Strikethrough(true).Faint(true)
	}
	if selected {
		style = style.BorderForeground(cursorColor).Bold(true)
	}
	if selected && m.source != nil && m.source.id == e.ID {
		style = style.BorderStyle(lipgloss.DoubleBorder())
	}
	return style.Width(colWidth).Render(b.String())
}

func (m Model) viewDropzones() string {
	if m.source == nil {
		return ""
	}

	trash := trashStyle.Render("🗑 trash (t)")
	if m.overTrash {
		trash = trashActiveStyle.Render("🗑 trash (t)")
	}
	prev := navZoneStyle.Render("« prev week ([)")
	next := navZoneStyle.Render("next week (]) »")

	return lipgloss.JoinHorizontal(lipgloss.Top, prev, "  ", trash, "  ", next)
}
