package models

type EventType string

const (
	EventTypeSport      EventType = "sport"
	EventTypeArt        EventType = "art"
	EventTypeRestaurant EventType = "restaurant"
	EventTypeHome       EventType = "home"
)

type Theme string

const (
	ThemeEmerald Theme = "emerald"
	ThemeRose    Theme = "rose"
	ThemeAmber   Theme = "amber"
	ThemeBlue    Theme = "blue"
)

// Themes lists the selectable card themes in display order.
var Themes = []Theme{ThemeEmerald, ThemeRose, ThemeAmber, ThemeBlue}

// Event is a single planned item on the board. Date is redundant with the
// bucket the event lives in but is carried on the entity so a moved event
// stays self-describing.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Emoji     string    `json:"emoji"`
	Type      EventType `json:"type,omitempty"`
	Theme     Theme     `json:"theme,omitempty"`
	Time      string    `json:"time,omitempty"` // HH:MM format
	Note      string    `json:"note,omitempty"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"` // YYYY-MM-DD format
}

// EventPatch carries a partial update for an event. Nil fields are left
// untouched by the merge.
type EventPatch struct {
	Title *string    `json:"title,omitempty"`
	Emoji *string    `json:"emoji,omitempty"`
	Type  *EventType `json:"type,omitempty"`
	Theme *Theme     `json:"theme,omitempty"`
	Time  *string    `json:"time,omitempty"`
	Note  *string    `json:"note,omitempty"`
}

func ParseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventTypeSport, EventTypeArt, EventTypeRestaurant, EventTypeHome:
		return EventType(s), true
	}
	return "", false
}

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeEmerald, ThemeRose, ThemeAmber, ThemeBlue:
		return Theme(s), true
	}
	return "", false
}
