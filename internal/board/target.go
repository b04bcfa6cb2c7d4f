package board

// TargetKind discriminates the closed set of things a dragged event can be
// released onto.
type TargetKind int

const (
	// TargetNone means the drop landed outside any droppable area.
	TargetNone TargetKind = iota
	// TargetTrash is the deletion dropzone.
	TargetTrash
	// TargetWeekNav is one of the previous/next week affordances.
	TargetWeekNav
	// TargetDay is a day column's empty area.
	TargetDay
	// TargetEvent is another event's card.
	TargetEvent
)

// NavDirection selects which week-navigation affordance was hit.
type NavDirection int

const (
	NavPrevious NavDirection = -1
	NavNext     NavDirection = 1
)

// DropTarget identifies what a dragged event was released onto. Only the
// fields relevant to Kind are set; use the constructors.
type DropTarget struct {
	Kind      TargetKind
	Day       string // TargetDay, TargetEvent
	EventID   string // TargetEvent
	Direction NavDirection // TargetWeekNav
}

func NoTarget() DropTarget {
	return DropTarget{Kind: TargetNone}
}

func TrashTarget() DropTarget {
	return DropTarget{Kind: TargetTrash}
}

func WeekNavTarget(dir NavDirection) DropTarget {
	return DropTarget{Kind: TargetWeekNav, Direction: dir}
}

func DayTarget(dateKey string) DropTarget {
	return DropTarget{Kind: TargetDay, Day: dateKey}
}

func EventTarget(dateKey, eventID string) DropTarget {
	return DropTarget{Kind: TargetEvent, Day: dateKey, EventID: eventID}
}
