package weekview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/week"
)

func testDays() []week.Day {
	isos := []string{
		"2025-11-03", "2025-11-04", "2025-11-05", "2025-11-06",
		"2025-11-07", "2025-11-08", "2025-11-09",
	}
	days := make([]week.Day, 7)
	for i, iso := range isos {
		days[i] = week.Day{Name: week.DayNames[i], DateLabel: iso[8:], Year: 2025, ISO: iso}
	}
	return days
}

func testBuckets() map[string][]models.Event {
	return map[string][]models.Event{
		"2025-11-03": {
			{ID: "a", Title: "Run", Emoji: "🏃", Date: "2025-11-03"},
			{ID: "b", Title: "Paint", Emoji: "🎨", Date: "2025-11-03"},
		},
		"2025-11-05": {
			{ID: "c", Title: "Dinner", Emoji: "🍝", Date: "2025-11-05"},
		},
	}
}

// press sends one key and resolves the emitted message, if any.
func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Msg) {
	t.Helper()
	m, cmd := m.Update(msg)
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestPickUpEmitsMessage(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, msg := press(t, m, keySpace)
	pick, ok := msg.(PickUpMsg)
	if !ok {
		t.Fatalf("expected PickUpMsg, got %T", msg)
	}
	if pick.Day != "2025-11-03" || pick.ID != "a" {
		t.Errorf("picked up %s/%s, want 2025-11-03/a", pick.Day, pick.ID)
	}
	if !m.Moving() {
		t.Error("expected component to be in move mode")
	}
}

func TestPickUpOnEmptyDayIsNoop(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, _ = press(t, m, keyRune('l')) // Tuesday, empty
	m, msg := press(t, m, keySpace)
	if msg != nil {
		t.Errorf("expected no message, got %T", msg)
	}
	if m.Moving() {
		t.Error("expected component to stay idle")
	}
}

func TestDropOnDayColumn(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, _ = press(t, m, keySpace)      // pick up "a"
	m, _ = press(t, m, keyRune('l')) // Tuesday
	m, msg := press(t, m, keySpace)

	drop, ok := msg.(DropMsg)
	if !ok {
		t.Fatalf("expected DropMsg, got %T", msg)
	}
	if drop.SourceDay != "2025-11-03" || drop.EventID != "a" {
		t.Errorf("drop source = %s/%s, want 2025-11-03/a", drop.SourceDay, drop.EventID)
	}
	want := board.DayTarget("2025-11-04")
	if drop.Target != want {
		t.Errorf("drop target = %+v, want %+v", drop.Target, want)
	}
	if m.Moving() {
		t.Error("expected move mode to end after drop")
	}
}

func TestDropOnEventCard(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, _ = press(t, m, keySpace)      // pick up "a"
	m, _ = press(t, m, keyRune('j')) // cursor onto "b"
	m, msg := press(t, m, keySpace)

	drop, ok := msg.(DropMsg)
	if !ok {
		t.Fatalf("expected DropMsg, got %T", msg)
	}
	want := board.EventTarget("2025-11-03", "b")
	if drop.Target != want {
		t.Errorf("drop target = %+v, want %+v", drop.Target, want)
	}
}

func TestTrashHoverAndDrop(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, _ = press(t, m, keySpace) // pick up "a"
	m, msg := press(t, m, keyRune('t'))
	hover, ok := msg.(HoverMsg)
	if !ok {
		t.Fatalf("expected HoverMsg, got %T", msg)
	}
	if hover.Target.Kind != board.TargetTrash {
		t.Errorf("hover target kind = %v, want trash", hover.Target.Kind)
	}

	m, msg = press(t, m, keySpace)
	drop, ok := msg.(DropMsg)
	if !ok {
		t.Fatalf("expected DropMsg, got %T", msg)
	}
	if drop.Target != board.TrashTarget() {
		t.Errorf("drop target = %+v, want trash", drop.Target)
	}
}

func TestTrashHoverIgnoredWhenIdle(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	_, msg := press(t, m, keyRune('t'))
	if msg != nil {
		t.Errorf("expected no message when idle, got %T", msg)
	}
}

func TestWeekNavDropWhileMoving(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, _ = press(t, m, keySpace) // pick up "a"
	m, msg := press(t, m, keyRune(']'))

	drop, ok := msg.(DropMsg)
	if !ok {
		t.Fatalf("expected DropMsg, got %T", msg)
	}
	if drop.Target != board.WeekNavTarget(board.NavNext) {
		t.Errorf("drop target = %+v, want week-nav next", drop.Target)
	}
	if m.Moving() {
		t.Error("expected move mode to end after nav drop")
	}
}

func TestWeekShiftWhileIdle(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	_, msg := press(t, m, keyRune('['))
	shift, ok := msg.(ShiftWeekMsg)
	if !ok {
		t.Fatalf("expected ShiftWeekMsg, got %T", msg)
	}
	if shift.Direction != board.NavPrevious {
		t.Errorf("direction = %v, want previous", shift.Direction)
	}
}

func TestCancelClearsMoveMode(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	m, _ = press(t, m, keySpace)
	m, msg := press(t, m, keyEsc)
	if _, ok := msg.(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", msg)
	}
	if m.Moving() {
		t.Error("expected move mode to end on cancel")
	}
}

func TestCursorClampsToBucket(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	// Down past the end of Monday's two events stays on the last one.
	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyRune('j'))
	m, _ = press(t, m, keyRune('j'))
	if e, ok := m.cursorEvent(); !ok || e.ID != "b" {
		t.Errorf("cursor event = %+v, want b", e)
	}

	// Moving to a shorter day clamps the event index.
	m, _ = press(t, m, keyRune('l'))
	m, _ = press(t, m, keyRune('l')) // Wednesday, one event
	if e, ok := m.cursorEvent(); !ok || e.ID != "c" {
		t.Errorf("cursor event = %+v, want c", e)
	}
}

func TestAddEditToggleMessages(t *testing.T) {
	m := New(testDays(), testBuckets(), 120, 40)

	_, msg := press(t, m, keyRune('a'))
	add, ok := msg.(AddEventMsg)
	if !ok || add.Day != "2025-11-03" {
		t.Errorf("expected AddEventMsg for Monday, got %T %+v", msg, msg)
	}

	_, msg = press(t, m, keyRune('e'))
	edit, ok := msg.(EditEventMsg)
	if !ok || edit.Event.ID != "a" {
		t.Errorf("expected EditEventMsg for a, got %T %+v", msg, msg)
	}

	_, msg = press(t, m, keyRune('x'))
	toggle, ok := msg.(ToggleEventMsg)
	if !ok || toggle.ID != "a" {
		t.Errorf("expected ToggleEventMsg for a, got %T %+v", msg, msg)
	}

	_, msg = press(t, m, keyRune('d'))
	del, ok := msg.(DeleteEventMsg)
	if !ok || del.ID != "a" {
		t.Errorf("expected DeleteEventMsg for a, got %T %+v", msg, msg)
	}
}
