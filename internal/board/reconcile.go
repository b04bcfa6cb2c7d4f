package board

import (
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/week"
)

// Reconciler interprets completed drag gestures against the bucket store.
// It also owns the visible week offset, since dropping onto a navigation
// affordance both moves the event and shifts the week.
type Reconciler struct {
	store      *BucketStore
	weekOffset int

	// weekAnchor resolves a week offset to that week's Monday date key.
	weekAnchor func(offset int) string
}

func NewReconciler(store *BucketStore) *Reconciler {
	return &Reconciler{
		store: store,
		weekAnchor: func(offset int) string {
			return week.DateKey(week.Monday(offset))
		},
	}
}

func (r *Reconciler) Store() *BucketStore {
	return r.store
}

func (r *Reconciler) WeekOffset() int {
	return r.weekOffset
}

func (r *Reconciler) SetWeekOffset(offset int) {
	r.weekOffset = offset
}

// ShiftWeek moves the visible week without touching the board (button
// navigation, as opposed to drag-onto-nav).
func (r *Reconciler) ShiftWeek(dir NavDirection) {
	r.weekOffset += int(dir)
}

// Reconcile applies a completed drag gesture. Failures leave the store
// unchanged; gestures on stale data (source event already gone, target
// event vanished) are silent no-ops.
func (r *Reconciler) Reconcile(sourceDay, eventID string, target DropTarget) error {
	switch target.Kind {
	case TargetNone:
		return nil

	case TargetTrash:
		r.store.RemoveEvent(sourceDay, eventID)
		return nil

	case TargetEvent:
		if target.Day == sourceDay {
			if target.EventID == eventID {
				return nil
			}
			r.reorder(sourceDay, eventID, target.EventID)
			return nil
		}
		_, err := r.move(sourceDay, eventID, target.Day)
		return err

	case TargetDay:
		_, err := r.move(sourceDay, eventID, target.Day)
		return err

	case TargetWeekNav:
		dest := r.weekAnchor(r.weekOffset + int(target.Direction))
		moved, err := r.move(sourceDay, eventID, dest)
		if err != nil {
			return err
		}
		// The offset only follows the event when the move actually landed.
		if moved {
			r.weekOffset += int(target.Direction)
		}
		return nil
	}
	return nil
}

// reorder moves the source event to the target event's position within the
// same bucket, preserving all other relative orderings.
func (r *Reconciler) reorder(dateKey, eventID, targetEventID string) {
	bucket := r.store.Get(dateKey)

	oldIndex := -1
	newIndex := -1
	for i, e := range bucket {
		if e.ID == eventID {
			oldIndex = i
		}
		if e.ID == targetEventID {
			newIndex = i
		}
	}
	if oldIndex == -1 || newIndex == -1 || oldIndex == newIndex {
		return
	}

	item := bucket[oldIndex]
	bucket = append(bucket[:oldIndex], bucket[oldIndex+1:]...)
	bucket = append(bucket[:newIndex], append([]models.Event{item}, bucket[newIndex:]...)...)

	r.store.ReplaceBucket(dateKey, bucket)
}

// move transfers an event into the destination bucket, appending it at the
// end with its date rewritten. Reports whether anything changed.
func (r *Reconciler) move(sourceDay, eventID, destDay string) (bool, error) {
	if destDay == "" || destDay == sourceDay {
		return false, nil
	}
	if !r.store.CanAccept(destDay) {
		return false, ErrCapacityExceeded
	}

	item, _, ok := r.store.Find(sourceDay, eventID)
	if !ok {
		return false, nil
	}

	newSource := make([]models.Event, 0, r.store.Len(sourceDay)-1)
	for _, e := range r.store.Get(sourceDay) {
		if e.ID != eventID {
			newSource = append(newSource, e)
		}
	}
	item.Date = destDay
	newDest := append(r.store.Get(destDay), item)

	// Both buckets change in one transition; with single-threaded gesture
	// handling no observer can see the event in neither or both.
	r.store.ReplaceBucket(sourceDay, newSource)
	r.store.ReplaceBucket(destDay, newDest)
	return true, nil
}
