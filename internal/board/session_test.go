package board

import (
	"errors"
	"testing"
)

func TestSession_DragStartSnapshotsEvent(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}})
	sess := NewSession(r)

	sess.OnDragStart(dayX, "a")

	if !sess.Dragging() {
		t.Fatal("expected session to be dragging")
	}
	active, ok := sess.Active()
	if !ok || active.ID != "a" {
		t.Errorf("active snapshot = %+v, want event a", active)
	}
}

func TestSession_DragStartMissingEventStaysIdle(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})
	sess := NewSession(r)

	sess.OnDragStart(dayX, "gone")

	if sess.Dragging() {
		t.Error("expected session to stay idle for a malformed descriptor")
	}
}

func TestSession_HoverChangeTracksTrash(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})
	sess := NewSession(r)
	sess.OnDragStart(dayX, "a")

	sess.OnDragHoverChange(TrashTarget())
	if !sess.OverTrash() {
		t.Error("expected over-trash flag to be set")
	}

	sess.OnDragHoverChange(DayTarget(dayY))
	if sess.OverTrash() {
		t.Error("expected over-trash flag to clear on other targets")
	}

	// Hover updates never touch the store.
	assertOrder(t, r.Store().Get(dayX), "a")
}

func TestSession_HoverChangeIgnoredWhenIdle(t *testing.T) {
	r := newBoard(t, nil)
	sess := NewSession(r)

	sess.OnDragHoverChange(TrashTarget())
	if sess.OverTrash() {
		t.Error("idle session should not track hover state")
	}
}

func TestSession_DragEndAppliesAndClears(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})
	sess := NewSession(r)
	sess.OnDragStart(dayX, "a")

	if err := sess.OnDragEnd(dayX, "a", DayTarget(dayY)); err != nil {
		t.Fatalf("OnDragEnd failed: %v", err)
	}

	if sess.Dragging() {
		t.Error("expected session to clear after drop")
	}
	assertOrder(t, r.Store().Get(dayY), "a")
}

func TestSession_DragEndClearsOnFailure(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}, dayY: {"p", "q", "s"}})
	sess := NewSession(r)
	sess.OnDragStart(dayX, "a")
	sess.OnDragHoverChange(DayTarget(dayY))

	err := sess.OnDragEnd(dayX, "a", DayTarget(dayY))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	// The preview must never persist after gesture end, even on rejection.
	if sess.Dragging() {
		t.Error("expected session to clear after a rejected drop")
	}
	if sess.OverTrash() {
		t.Error("expected hover flag to clear after gesture end")
	}
}

func TestSession_DragEndWithNoTargetClears(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})
	sess := NewSession(r)
	sess.OnDragStart(dayX, "a")

	if err := sess.OnDragEnd(dayX, "a", NoTarget()); err != nil {
		t.Fatalf("OnDragEnd failed: %v", err)
	}
	if sess.Dragging() {
		t.Error("expected session to clear on cancelled drop")
	}
	assertOrder(t, r.Store().Get(dayX), "a")
}
