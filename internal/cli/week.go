package cli

import (
	"fmt"

	"github.com/julianstephens/weekboard/internal/board"
	"github.com/julianstephens/weekboard/internal/week"
)

type WeekCmd struct {
	Shift string `arg:"" optional:"" help:"Shift the visible week: 'prev', 'next', or 'this' to reset." enum:"prev,next,this,"`
}

func (c *WeekCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}

	switch c.Shift {
	case "prev":
		r.ShiftWeek(board.NavPrevious)
	case "next":
		r.ShiftWeek(board.NavNext)
	case "this":
		r.SetWeekOffset(0)
	}
	if c.Shift != "" {
		if err := ctx.SaveBoard(r); err != nil {
			return err
		}
	}

	days := week.Dates(r.WeekOffset())
	label := "this week"
	switch {
	case r.WeekOffset() < 0:
		label = fmt.Sprintf("%d week(s) back", -r.WeekOffset())
	case r.WeekOffset() > 0:
		label = fmt.Sprintf("%d week(s) ahead", r.WeekOffset())
	}
	fmt.Printf("Visible week: %s – %s (%s)\n", days[0].ISO, days[6].ISO, label)
	for _, d := range days {
		fmt.Printf("  %-9s %s  %d event(s)\n", d.Name, d.ISO, r.Store().Len(d.ISO))
	}
	return nil
}
