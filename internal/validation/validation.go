package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
)

// Titles are restricted to letters (including the extended Latin set used
// for Turkish) and spaces.
var titlePattern = regexp.MustCompile(`^[A-Za-zÇĞİÖŞÜçğıöşü ]+$`)

var disallowedTitleChar = regexp.MustCompile(`[^A-Za-zÇĞİÖŞÜçğıöşü ]`)

// ValidateTitle checks charset and the 1-16 rune length bound.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if utf8.RuneCountInString(title) > constants.TitleMaxLen {
		return fmt.Errorf("title must be at most %d characters", constants.TitleMaxLen)
	}
	if !titlePattern.MatchString(title) {
		return fmt.Errorf("title may only contain letters and spaces")
	}
	return nil
}

// CleanTitle strips disallowed characters and truncates to the maximum
// length, mirroring what the editing surface does on each keystroke.
func CleanTitle(title string) string {
	cleaned := disallowedTitleChar.ReplaceAllString(title, "")
	runes := []rune(cleaned)
	if len(runes) > constants.TitleMaxLen {
		runes = runes[:constants.TitleMaxLen]
	}
	return string(runes)
}

// ValidateTime checks the HH:MM 24-hour format. Empty is allowed; time is an
// optional attribute.
func ValidateTime(t string) error {
	if t == "" {
		return nil
	}
	if _, err := time.Parse(constants.TimeFormat, t); err != nil {
		return fmt.Errorf("invalid time %q, use HH:MM", t)
	}
	return nil
}

// ValidateNote bounds a note to maxLen runes.
func ValidateNote(note string, maxLen int) error {
	if utf8.RuneCountInString(note) > maxLen {
		return fmt.Errorf("note must be at most %d characters", maxLen)
	}
	return nil
}

// ValidateDateKey checks the canonical YYYY-MM-DD bucket key form.
func ValidateDateKey(key string) error {
	if _, err := time.Parse(constants.DateFormat, key); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", key)
	}
	return nil
}

// ValidateNewEvent checks the fields required at creation time: title,
// emoji, and type must be present; time and theme are optional but must be
// well formed when given.
func ValidateNewEvent(e models.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := ValidateTitle(e.Title); err != nil {
		return err
	}
	if strings.TrimSpace(e.Emoji) == "" {
		return fmt.Errorf("emoji is required")
	}
	if e.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if _, ok := models.ParseEventType(string(e.Type)); !ok {
		return fmt.Errorf("invalid event type: %s", e.Type)
	}
	if e.Theme != "" {
		if _, ok := models.ParseTheme(string(e.Theme)); !ok {
			return fmt.Errorf("invalid theme: %s", e.Theme)
		}
	}
	if err := ValidateTime(e.Time); err != nil {
		return err
	}
	return ValidateNote(e.Note, constants.NoteMaxLenDetail)
}
