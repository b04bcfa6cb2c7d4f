package storage

import (
	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
)

// Settings holds the small set of persisted preferences.
type Settings struct {
	DefaultEmoji string `json:"default_emoji"`
	WeekOffset   int    `json:"week_offset"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultEmoji: constants.DefaultEmoji,
		WeekOffset:   0,
	}
}

// Provider persists the whole board. The board snapshot is the unit of
// persistence: it is written in full after every mutation.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Board
	SaveBoard(map[string][]models.Event) error
	LoadBoard() (map[string][]models.Event, error)

	// Utils
	GetConfigPath() string
}
