package cli

import (
	"fmt"

	"github.com/julianstephens/weekboard/internal/models"
	"github.com/julianstephens/weekboard/internal/validation"
)

type AddCmd struct {
	Title string `arg:"" help:"Event title (letters and spaces, max 16)."`
	Day   string `short:"d" help:"Target day (YYYY-MM-DD, weekday name, or 'today')." default:"today"`
	Type  string `short:"t" help:"Event type (sport|art|restaurant|home)." required:""`
	Emoji string `short:"e" help:"Event emoji. Defaults to the configured placeholder."`
	Theme string `help:"Card theme (emerald|rose|amber|blue)."`
	Time  string `help:"Event time (HH:MM)."`
	Note  string `short:"n" help:"Note text."`
}

func (c *AddCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}

	day, err := resolveDay(c.Day, r.WeekOffset())
	if err != nil {
		return err
	}

	eventType, ok := models.ParseEventType(c.Type)
	if !ok {
		return fmt.Errorf("invalid event type: %s (use sport, art, restaurant, or home)", c.Type)
	}

	var theme models.Theme
	if c.Theme != "" {
		theme, ok = models.ParseTheme(c.Theme)
		if !ok {
			return fmt.Errorf("invalid theme: %s (use emerald, rose, amber, or blue)", c.Theme)
		}
	}

	emoji := c.Emoji
	if emoji == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		emoji = settings.DefaultEmoji
	}

	event := models.Event{
		Title: validation.CleanTitle(c.Title),
		Emoji: emoji,
		Type:  eventType,
		Theme: theme,
		Time:  c.Time,
		Note:  c.Note,
	}

	created, err := r.Store().CreateEvent(day, event)
	if err != nil {
		return err
	}

	if err := ctx.SaveBoard(r); err != nil {
		return err
	}

	fmt.Printf("Added %s %s to %s (ID: %s)\n", created.Emoji, created.Title, day, created.ID)
	return nil
}
