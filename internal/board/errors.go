package board

import "errors"

var (
	// ErrCapacityExceeded is returned when a day bucket already holds the
	// maximum number of events. The triggering operation is fully reverted.
	ErrCapacityExceeded = errors.New("day already holds the maximum number of events")

	// ErrIncompleteEvent is returned when event creation is attempted
	// without the required fields.
	ErrIncompleteEvent = errors.New("event is missing required fields")

	// ErrNotFound reports a missing event where the caller asked for one
	// explicitly. Gestures on stale data are treated as silent no-ops
	// instead.
	ErrNotFound = errors.New("event not found")
)
