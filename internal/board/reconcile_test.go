package board

import (
	"errors"
	"testing"

	"github.com/julianstephens/weekboard/internal/models"
)

const (
	dayX = "2025-11-03"
	dayY = "2025-11-05"
)

// fixedAnchor pins the reconciler's week anchors so week-nav drops resolve
// deterministically.
func fixedAnchor(r *Reconciler) {
	r.weekAnchor = func(offset int) string {
		switch offset {
		case -1:
			return "2025-10-27"
		case 0:
			return "2025-11-03"
		case 1:
			return "2025-11-10"
		case 2:
			return "2025-11-17"
		}
		return "2025-11-03"
	}
}

func newBoard(t *testing.T, days map[string][]string) *Reconciler {
	t.Helper()
	s := NewBucketStore()
	for day, ids := range days {
		for _, id := range ids {
			if err := s.Append(day, newEvent(id, "Run", day)); err != nil {
				t.Fatalf("seeding %s/%s: %v", day, id, err)
			}
		}
	}
	r := NewReconciler(s)
	fixedAnchor(r)
	return r
}

func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Event, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

// checkInvariants verifies the global board invariants: no bucket over
// capacity and no event id in more than one bucket.
func checkInvariants(t *testing.T, s *BucketStore) {
	t.Helper()
	seen := make(map[string]string)
	for _, day := range s.Days() {
		bucket := s.Get(day)
		if len(bucket) > 3 {
			t.Errorf("bucket %s over capacity: %d events", day, len(bucket))
		}
		for _, e := range bucket {
			if prev, ok := seen[e.ID]; ok {
				t.Errorf("event %s appears in both %s and %s", e.ID, prev, day)
			}
			seen[e.ID] = day
			if e.Date != day {
				t.Errorf("event %s in bucket %s carries date %s", e.ID, day, e.Date)
			}
		}
	}
}

func TestReconcile_NoTargetIsNoop(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}})

	if err := r.Reconcile(dayX, "a", NoTarget()); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "a", "b")
}

func TestReconcile_SelfDropIsNoop(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b", "c"}})

	if err := r.Reconcile(dayX, "a", EventTarget(dayX, "a")); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "a", "b", "c")
}

func TestReconcile_SameDayReorder_ListMoveSemantics(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b", "c"}})

	// Dropping A onto C's position is a list move, not a swap.
	if err := r.Reconcile(dayX, "a", EventTarget(dayX, "c")); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "b", "c", "a")
	checkInvariants(t, r.Store())
}

func TestReconcile_SameDayReorder_MoveBackward(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b", "c"}})

	if err := r.Reconcile(dayX, "c", EventTarget(dayX, "a")); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "c", "a", "b")
}

func TestReconcile_Reorder_MissingTargetIsNoop(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}})

	if err := r.Reconcile(dayX, "a", EventTarget(dayX, "gone")); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "a", "b")
}

func TestReconcile_CrossDayMove(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}})

	if err := r.Reconcile(dayX, "a", DayTarget(dayY)); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	assertOrder(t, r.Store().Get(dayX), "b")
	destBucket := r.Store().Get(dayY)
	assertOrder(t, destBucket, "a")
	if destBucket[0].Date != dayY {
		t.Errorf("moved event date = %s, want %s", destBucket[0].Date, dayY)
	}
	if destBucket[0].Title != "Run" || destBucket[0].Emoji != "🏃" {
		t.Errorf("moved event lost attributes: %+v", destBucket[0])
	}
	checkInvariants(t, r.Store())
}

func TestReconcile_DropOnEventInOtherDay_AppendsToThatDay(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}, dayY: {"p", "q"}})

	if err := r.Reconcile(dayX, "a", EventTarget(dayY, "p")); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	// Cross-day drops append at the end regardless of which card was hit.
	assertOrder(t, r.Store().Get(dayY), "p", "q", "a")
	if len(r.Store().Get(dayX)) != 0 {
		t.Errorf("source bucket not emptied: %v", ids(r.Store().Get(dayX)))
	}
	checkInvariants(t, r.Store())
}

func TestReconcile_CapacityRejection_LeavesStoreUnchanged(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}, dayY: {"p", "q", "s"}})

	err := r.Reconcile(dayX, "a", DayTarget(dayY))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	assertOrder(t, r.Store().Get(dayX), "a", "b")
	assertOrder(t, r.Store().Get(dayY), "p", "q", "s")
	checkInvariants(t, r.Store())
}

func TestReconcile_MoveToSameDayViaDayTargetIsNoop(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}})

	if err := r.Reconcile(dayX, "a", DayTarget(dayX)); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "a", "b")
}

func TestReconcile_MissingSourceEventIsNoop(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})

	if err := r.Reconcile(dayX, "gone", DayTarget(dayY)); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if len(r.Store().Get(dayY)) != 0 {
		t.Error("destination gained an event from a missing source")
	}
}

func TestReconcile_TrashDeletes(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"d", "e", "f"}})

	if err := r.Reconcile(dayX, "e", TrashTarget()); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "d", "f")

	// Trashing an id that is already gone is a no-op.
	if err := r.Reconcile(dayX, "e", TrashTarget()); err != nil {
		t.Fatalf("second trash drop errored: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "d", "f")
}

func TestReconcile_TrashIgnoresCapacity(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b", "c"}})

	if err := r.Reconcile(dayX, "b", TrashTarget()); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get(dayX), "a", "c")
}

func TestReconcile_WeekNavMovesToNextMonday(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a", "b"}})

	if err := r.Reconcile(dayX, "a", WeekNavTarget(NavNext)); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if r.WeekOffset() != 1 {
		t.Errorf("week offset = %d, want 1", r.WeekOffset())
	}
	nextMonday := "2025-11-10"
	destBucket := r.Store().Get(nextMonday)
	assertOrder(t, destBucket, "a")
	if destBucket[0].Date != nextMonday {
		t.Errorf("moved event date = %s, want %s", destBucket[0].Date, nextMonday)
	}
	assertOrder(t, r.Store().Get(dayX), "b")
	checkInvariants(t, r.Store())
}

func TestReconcile_WeekNavPrevious(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})

	if err := r.Reconcile(dayX, "a", WeekNavTarget(NavPrevious)); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if r.WeekOffset() != -1 {
		t.Errorf("week offset = %d, want -1", r.WeekOffset())
	}
	assertOrder(t, r.Store().Get("2025-10-27"), "a")
}

func TestReconcile_WeekNavCapacityRejection_KeepsOffset(t *testing.T) {
	r := newBoard(t, map[string][]string{
		dayX:         {"a"},
		"2025-11-10": {"p", "q", "s"},
	})

	err := r.Reconcile(dayX, "a", WeekNavTarget(NavNext))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	// A rejected nav-drop leaves both the board and the visible week alone.
	if r.WeekOffset() != 0 {
		t.Errorf("week offset = %d, want 0", r.WeekOffset())
	}
	assertOrder(t, r.Store().Get(dayX), "a")
	assertOrder(t, r.Store().Get("2025-11-10"), "p", "q", "s")
}

func TestReconcile_WeekNavMissingEvent_KeepsOffset(t *testing.T) {
	r := newBoard(t, map[string][]string{dayX: {"a"}})

	if err := r.Reconcile(dayX, "gone", WeekNavTarget(NavNext)); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if r.WeekOffset() != 0 {
		t.Errorf("week offset = %d, want 0", r.WeekOffset())
	}
}

func TestReconcile_WeekNavFromCurrentAnchorDay(t *testing.T) {
	// Dragging the Monday event onto "next week" moves it between Mondays.
	r := newBoard(t, map[string][]string{"2025-11-03": {"a"}})
	r.SetWeekOffset(0)

	if err := r.Reconcile("2025-11-03", "a", WeekNavTarget(NavNext)); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	assertOrder(t, r.Store().Get("2025-11-10"), "a")
	if len(r.Store().Get("2025-11-03")) != 0 {
		t.Error("source Monday still holds the event")
	}
}

func TestShiftWeek(t *testing.T) {
	r := newBoard(t, nil)
	r.ShiftWeek(NavNext)
	r.ShiftWeek(NavNext)
	r.ShiftWeek(NavPrevious)
	if r.WeekOffset() != 1 {
		t.Errorf("week offset = %d, want 1", r.WeekOffset())
	}
}
