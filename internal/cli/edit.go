package cli

import (
	"fmt"

	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/validation"
)

type EditCmd struct {
	Event string  `arg:"" help:"Event to edit (ID, ID prefix, or title)."`
	Title *string `help:"New title (letters and spaces, max 16)."`
	Emoji *string `help:"New emoji."`
	Type  *string `help:"New event type (sport|art|restaurant|home)."`
	Theme *string `help:"New card theme (emerald|rose|amber|blue)."`
	Time  *string `help:"New time (HH:MM, empty to clear)."`
	Note  *string `help:"New note text."`
}

func (c *EditCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}

	event, day, err := findEvent(r.Store(), c.Event)
	if err != nil {
		return err
	}

	var patch models.EventPatch

	if c.Title != nil {
		cleaned := validation.CleanTitle(*c.Title)
		if err := validation.ValidateTitle(cleaned); err != nil {
			return err
		}
		patch.Title = &cleaned
	}
	if c.Emoji != nil {
		if *c.Emoji == "" {
			return fmt.Errorf("emoji cannot be empty")
		}
		patch.Emoji = c.Emoji
	}
	if c.Type != nil {
		eventType, ok := models.ParseEventType(*c.Type)
		if !ok {
			return fmt.Errorf("invalid event type: %s", *c.Type)
		}
		patch.Type = &eventType
	}
	if c.Theme != nil {
		theme, ok := models.ParseTheme(*c.Theme)
		if !ok {
			return fmt.Errorf("invalid theme: %s", *c.Theme)
		}
		patch.Theme = &theme
	}
	if c.Time != nil {
		if err := validation.ValidateTime(*c.Time); err != nil {
			return err
		}
		patch.Time = c.Time
	}
	if c.Note != nil {
		if err := validation.ValidateNote(*c.Note, constants.NoteMaxLenDetail); err != nil {
			return err
		}
		patch.Note = c.Note
	}

	if patch == (models.EventPatch{}) {
		fmt.Println("Nothing to change.")
		return nil
	}

	r.Store().PatchEvent(day, event.ID, patch)

	if err := ctx.SaveBoard(r); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", event.Title)
	return nil
}
