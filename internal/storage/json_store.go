package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/weekboard/internal/models"
)

type Store struct {
	Version  int                       `json:"version"`
	Settings Settings                  `json:"settings"`
	Events   map[string][]models.Event `json:"events"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Events:   make(map[string][]models.Event),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'weekboard init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Malformed persisted state falls back to an empty board instead of
		// failing startup; the next save rewrites the file.
		s.store = &Store{
			Version:  1,
			Settings: DefaultSettings(),
			Events:   make(map[string][]models.Event),
		}
		return nil
	}

	if s.store.Events == nil {
		s.store.Events = make(map[string][]models.Event)
	}
	if s.store.Settings.DefaultEmoji == "" {
		s.store.Settings.DefaultEmoji = DefaultSettings().DefaultEmoji
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveBoard(events map[string][]models.Event) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Drop empty buckets so an absent key stays equivalent to an empty day.
	board := make(map[string][]models.Event, len(events))
	for day, bucket := range events {
		if len(bucket) == 0 {
			continue
		}
		board[day] = bucket
	}
	s.store.Events = board
	return s.save()
}

func (s *JSONStore) LoadBoard() (map[string][]models.Event, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.store.Events, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
