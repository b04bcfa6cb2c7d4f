package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/storage"
	"github.com/julianstephens/weekboard/internal/tui/components/weekview"
	"github.com/julianstephens/weekboard/internal/week"
)

type SessionState int

const (
	StateBoard SessionState = iota
	StateAddEvent
	StateEditEvent
	StateConfirmDelete
)

// EventFormModel backs the huh add/edit form.
type EventFormModel struct {
	Day   string
	Title string
	Emoji string
	Type  models.EventType
	Theme models.Theme
	Time  string
	Note  string
}

type Model struct {
	store      storage.Provider
	reconciler *board.Reconciler
	session    *board.Session

	state    SessionState
	keys     KeyMap
	help     help.Model
	weekView weekview.Model

	form      *huh.Form
	eventForm *EventFormModel
	editing   *weekview.EditEventMsg // set while StateEditEvent

	deleteDay string
	deleteID  string

	// warning holds the dismissible message line, e.g. a rejected drop on a
	// full day.
	warning  string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, r *board.Reconciler) Model {
	days := week.Dates(r.WeekOffset())
	m := Model{
		store:      store,
		reconciler: r,
		session:    board.NewSession(r),
		state:      StateBoard,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		weekView:   weekview.New(days, r.Store().Snapshot(), 0, 0),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	wk := m.weekView
	keys := []key.Binding{m.keys.Help, m.keys.Quit}
	if wk.Moving() {
		keys = append(keys, weekview.DefaultKeyMap().PickDrop, weekview.DefaultKeyMap().Trash, weekview.DefaultKeyMap().Cancel)
	} else {
		keys = append(keys, weekview.DefaultKeyMap().PickDrop, weekview.DefaultKeyMap().Add, weekview.DefaultKeyMap().Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	wk := weekview.DefaultKeyMap()
	return [][]key.Binding{
		{m.keys.Help, m.keys.Quit, m.keys.Dismiss},
		{wk.Left, wk.Right, wk.Up, wk.Down},
		{wk.PickDrop, wk.Cancel, wk.Trash, wk.PrevWeek, wk.NextWeek},
		{wk.Add, wk.Edit, wk.Delete, wk.Toggle},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshWeek pushes the current board and visible week into the component.
func (m *Model) refreshWeek() {
	m.weekView.SetWeek(week.Dates(m.reconciler.WeekOffset()), m.reconciler.Store().Snapshot())
}

// save persists the whole board after a mutation. Persistence failures
// surface on the warning line rather than interrupting the session.
func (m *Model) save() {
	if err := m.store.SaveBoard(m.reconciler.Store().Snapshot()); err != nil {
		m.warning = "⚠ failed to save board: " + err.Error()
		return
	}
	settings, err := m.store.GetSettings()
	if err != nil {
		m.warning = "⚠ failed to save settings: " + err.Error()
		return
	}
	settings.WeekOffset = m.reconciler.WeekOffset()
	if err := m.store.SaveSettings(settings); err != nil {
		m.warning = "⚠ failed to save settings: " + err.Error()
	}
}
