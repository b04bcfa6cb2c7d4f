package cli

import (
	"fmt"
)

type DeleteCmd struct {
	Event string `arg:"" help:"Event to delete (ID, ID prefix, or title)."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}

	event, day, err := findEvent(r.Store(), c.Event)
	if err != nil {
		return err
	}

	r.Store().RemoveEvent(day, event.ID)

	if err := ctx.SaveBoard(r); err != nil {
		return err
	}

	fmt.Printf("Deleted %s %s from %s\n", event.Emoji, event.Title, day)
	return nil
}
