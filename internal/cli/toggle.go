package cli

import (
	"fmt"
)

type ToggleCmd struct {
	Event string `arg:"" help:"Event to toggle (ID, ID prefix, or title)."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}

	event, day, err := findEvent(r.Store(), c.Event)
	if err != nil {
		return err
	}

	r.Store().ToggleCompleted(day, event.ID)

	if err := ctx.SaveBoard(r); err != nil {
		return err
	}

	state := "done"
	if event.Completed {
		state = "not done"
	}
	fmt.Printf("Marked %s %s as %s\n", event.Emoji, event.Title, state)
	return nil
}
