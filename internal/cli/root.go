package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/weekboard/internal/backup"
	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/logger"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/storage"
	"github.com/julianstephens/weekboard/internal/week"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// OpenBoard loads storage and seeds a reconciler with the persisted board
// and week offset.
func (c *Context) OpenBoard() (*board.Reconciler, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}

	snapshot, err := c.Store.LoadBoard()
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	store := board.NewBucketStore()
	store.Restore(snapshot)

	r := board.NewReconciler(store)
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	r.SetWeekOffset(settings.WeekOffset)

	return r, nil
}

// SaveBoard persists the whole board plus the visible week offset. The board
// is always written as a unit; there are no partial updates.
func (c *Context) SaveBoard(r *board.Reconciler) error {
	if err := c.Store.SaveBoard(r.Store().Snapshot()); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	settings, err := c.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.WeekOffset = r.WeekOffset()
	if err := c.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// resolveDay turns 'today', a weekday name within the visible week, or a
// literal YYYY-MM-DD date into a bucket key.
func resolveDay(s string, weekOffset int) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == "today" {
		return week.DateKey(time.Now()), nil
	}

	days := week.Dates(weekOffset)
	for i, name := range week.DayNames {
		lower := strings.ToLower(name)
		if trimmed == lower || trimmed == lower[:3] {
			return days[i].ISO, nil
		}
	}

	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid day %q, use YYYY-MM-DD, a weekday name, or 'today'", s)
	}
	return s, nil
}

// findEvent resolves an event reference (full ID, unique ID prefix, or exact
// title) to the event and the day it lives on.
func findEvent(store *board.BucketStore, ref string) (models.Event, string, error) {
	type match struct {
		event models.Event
		day   string
	}
	var exact *match
	var partial []match

	lowerRef := strings.ToLower(ref)
	for _, day := range store.Days() {
		for _, e := range store.Get(day) {
			if e.ID == ref {
				exact = &match{e, day}
			} else if strings.HasPrefix(e.ID, ref) || strings.ToLower(e.Title) == lowerRef {
				partial = append(partial, match{e, day})
			}
		}
	}

	if exact != nil {
		return exact.event, exact.day, nil
	}
	switch len(partial) {
	case 0:
		return models.Event{}, "", fmt.Errorf("no event matching %q: %w", ref, board.ErrNotFound)
	case 1:
		return partial[0].event, partial[0].day, nil
	default:
		var ids []string
		for _, m := range partial {
			ids = append(ids, fmt.Sprintf("%s (%s)", m.event.Title, m.event.ID[:8]))
		}
		return models.Event{}, "", fmt.Errorf("ambiguous event reference %q: matches %s", ref, strings.Join(ids, ", "))
	}
}

func formatEventLine(e models.Event) string {
	var b strings.Builder
	if e.Completed {
		b.WriteString("[x] ")
	} else {
		b.WriteString("[ ] ")
	}
	b.WriteString(e.Emoji)
	b.WriteString(" ")
	b.WriteString(e.Title)
	if e.Time != "" {
		fmt.Fprintf(&b, "  %s", e.Time)
	}
	if e.Type != "" {
		fmt.Fprintf(&b, "  (%s)", e.Type)
	}
	return b.String()
}
