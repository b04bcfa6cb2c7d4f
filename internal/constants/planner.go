package constants

const (
	// MaxEventsPerDay is the hard capacity of a single day bucket.
	MaxEventsPerDay = 3

	// TitleMaxLen bounds event titles (in runes).
	TitleMaxLen = 16

	// Note length bounds: the list view shows a short annotation, the
	// detail view allows a longer one.
	NoteMaxLenList   = 15
	NoteMaxLenDetail = 30

	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	// DefaultEmoji is used when an event is saved without one.
	DefaultEmoji = "🏷️"
)
