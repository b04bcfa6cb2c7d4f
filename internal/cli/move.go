package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/constants"
)

type MoveCmd struct {
	Event  string `arg:"" help:"Event to move (ID, ID prefix, or title)."`
	ToDay  string `help:"Destination day (YYYY-MM-DD, weekday name, or 'today')." xor:"target"`
	Before string `help:"Same-day reorder: place before this event (ID, ID prefix, or title)." xor:"target"`
	Trash  bool   `help:"Delete the event." xor:"target"`
	Week   string `help:"Move into the adjacent week ('prev' or 'next') and follow it." enum:"prev,next," xor:"target"`
}

func (c *MoveCmd) Validate() error {
	if c.ToDay == "" && c.Before == "" && !c.Trash && c.Week == "" {
		return fmt.Errorf("specify a destination: --to-day, --before, --trash, or --week")
	}
	return nil
}

func (c *MoveCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}

	event, sourceDay, err := findEvent(r.Store(), c.Event)
	if err != nil {
		return err
	}

	var target board.DropTarget
	switch {
	case c.Trash:
		target = board.TrashTarget()

	case c.Week == "prev":
		target = board.WeekNavTarget(board.NavPrevious)

	case c.Week == "next":
		target = board.WeekNavTarget(board.NavNext)

	case c.Before != "":
		other, otherDay, err := findEvent(r.Store(), c.Before)
		if err != nil {
			return err
		}
		if otherDay != sourceDay {
			return fmt.Errorf("--before requires both events on the same day (%s vs %s)", sourceDay, otherDay)
		}
		target = board.EventTarget(otherDay, other.ID)

	default:
		day, err := resolveDay(c.ToDay, r.WeekOffset())
		if err != nil {
			return err
		}
		target = board.DayTarget(day)
	}

	if err := r.Reconcile(sourceDay, event.ID, target); err != nil {
		if errors.Is(err, board.ErrCapacityExceeded) {
			return fmt.Errorf("destination day is full (max %d events): %w", constants.MaxEventsPerDay, err)
		}
		return err
	}

	if err := ctx.SaveBoard(r); err != nil {
		return err
	}

	switch {
	case c.Trash:
		fmt.Printf("Deleted %s %s\n", event.Emoji, event.Title)
	case c.Before != "":
		fmt.Printf("Reordered %s %s on %s\n", event.Emoji, event.Title, sourceDay)
	default:
		if _, day, err := findEvent(r.Store(), event.ID); err == nil {
			fmt.Printf("Moved %s %s to %s\n", event.Emoji, event.Title, day)
		} else {
			fmt.Printf("Moved %s %s\n", event.Emoji, event.Title)
		}
	}
	return nil
}
