package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/weekboard/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id        TEXT PRIMARY KEY,
	day       TEXT NOT NULL,
	position  INTEGER NOT NULL,
	title     TEXT NOT NULL,
	emoji     TEXT NOT NULL,
	type      TEXT NOT NULL DEFAULT '',
	theme     TEXT NOT NULL DEFAULT '',
	time      TEXT NOT NULL DEFAULT '',
	note      TEXT NOT NULL DEFAULT '',
	completed INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_events_day ON events(day, position);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'weekboard init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; applying it at load keeps databases
	// created by older builds usable.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "default_emoji":
			settings.DefaultEmoji = value
		case "week_offset":
			offset, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing week_offset: %w", err)
			}
			settings.WeekOffset = offset
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return Settings{}, err
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("default_emoji", settings.DefaultEmoji); err != nil {
		return err
	}
	if _, err := stmt.Exec("week_offset", strconv.Itoa(settings.WeekOffset)); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveBoard replaces the entire persisted board in one transaction.
func (s *SQLiteStore) SaveBoard(events map[string][]models.Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (id, day, position, title, emoji, type, theme, time, note, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for day, bucket := range events {
		for pos, e := range bucket {
			_, err := stmt.Exec(
				e.ID, day, pos, e.Title, e.Emoji, string(e.Type), string(e.Theme),
				e.Time, e.Note, e.Completed,
			)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadBoard() (map[string][]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, day, title, emoji, type, theme, time, note, completed
		FROM events ORDER BY day, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	board := make(map[string][]models.Event)
	for rows.Next() {
		var e models.Event
		var day, eventType, theme string
		if err := rows.Scan(&e.ID, &day, &e.Title, &e.Emoji, &eventType, &theme, &e.Time, &e.Note, &e.Completed); err != nil {
			return nil, err
		}
		e.Type = models.EventType(eventType)
		e.Theme = models.Theme(theme)
		e.Date = day
		board[day] = append(board[day], e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
