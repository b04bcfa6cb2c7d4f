package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/validation"
)

// newEventForm builds the add/edit form. Both flows share it; the caller
// seeds the form model with the current values when editing.
func newEventForm(fm *EventFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description(fmt.Sprintf("Letters and spaces, max %d characters", constants.TitleMaxLen)).
				Value(&fm.Title).
				Validate(func(s string) error {
					return validation.ValidateTitle(validation.CleanTitle(s))
				}),
			huh.NewInput().
				Title("Emoji").
				Description("Leave empty for the default placeholder").
				Value(&fm.Emoji),
			huh.NewSelect[models.EventType]().
				Title("Type").
				Options(
					huh.NewOption("Sport", models.EventTypeSport),
					huh.NewOption("Art", models.EventTypeArt),
					huh.NewOption("Restaurant", models.EventTypeRestaurant),
					huh.NewOption("Home", models.EventTypeHome),
				).
				Value(&fm.Type),
			huh.NewSelect[models.Theme]().
				Title("Theme").
				Options(
					huh.NewOption("None", models.Theme("")),
					huh.NewOption("Emerald", models.ThemeEmerald),
					huh.NewOption("Rose", models.ThemeRose),
					huh.NewOption("Amber", models.ThemeAmber),
					huh.NewOption("Blue", models.ThemeBlue),
				).
				Value(&fm.Theme),
			huh.NewInput().
				Title("Time").
				Description("HH:MM, optional").
				Value(&fm.Time).
				Validate(validation.ValidateTime),
			huh.NewInput().
				Title("Note").
				Description(fmt.Sprintf("Max %d characters", constants.NoteMaxLenDetail)).
				Value(&fm.Note).
				Validate(func(s string) error {
					return validation.ValidateNote(s, constants.NoteMaxLenDetail)
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// formEvent converts the completed form into an event, applying the title
// filter and emoji fallback.
func (m *Model) formEvent() models.Event {
	fm := m.eventForm

	emoji := strings.TrimSpace(fm.Emoji)
	if emoji == "" {
		emoji = constants.DefaultEmoji
		if settings, err := m.store.GetSettings(); err == nil && settings.DefaultEmoji != "" {
			emoji = settings.DefaultEmoji
		}
	}

	return models.Event{
		Title: validation.CleanTitle(fm.Title),
		Emoji: emoji,
		Type:  fm.Type,
		Theme: fm.Theme,
		Time:  strings.TrimSpace(fm.Time),
		Note:  fm.Note,
	}
}
