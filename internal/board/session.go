package board

import "github.com/julianstephens/weekboard/internal/models"

// Session tracks the event currently being dragged. It exists for preview
// rendering only: a snapshot of the active event and whether the pointer is
// over the trash target. It never mutates the store itself; the drop is
// delegated to the reconciler.
type Session struct {
	reconciler *Reconciler
	active     *models.Event
	overTrash  bool
}

func NewSession(r *Reconciler) *Session {
	return &Session{reconciler: r}
}

func (s *Session) Dragging() bool {
	return s.active != nil
}

// Active returns the snapshot taken at drag start.
func (s *Session) Active() (models.Event, bool) {
	if s.active == nil {
		return models.Event{}, false
	}
	return *s.active, true
}

func (s *Session) OverTrash() bool {
	return s.overTrash
}

// OnDragStart records a snapshot of the event being picked up. A malformed
// descriptor (event not found) leaves the session idle.
func (s *Session) OnDragStart(sourceDay, eventID string) {
	item, _, ok := s.reconciler.Store().Find(sourceDay, eventID)
	if !ok {
		s.active = nil
		s.overTrash = false
		return
	}
	snapshot := item
	s.active = &snapshot
	s.overTrash = false
}

// OnDragHoverChange updates the over-trash flag while dragging. Purely for
// preview styling.
func (s *Session) OnDragHoverChange(target DropTarget) {
	if s.active == nil {
		return
	}
	s.overTrash = target.Kind == TargetTrash
}

// OnDragEnd applies the gesture and clears the session unconditionally, so
// the drag preview never outlives the gesture, including on failure paths.
func (s *Session) OnDragEnd(sourceDay, eventID string, target DropTarget) error {
	defer func() {
		s.active = nil
		s.overTrash = false
	}()
	return s.reconciler.Reconcile(sourceDay, eventID, target)
}
