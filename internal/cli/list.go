package cli

import (
	"fmt"

	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/week"
)

type ListCmd struct {
	Day string `short:"d" help:"Show a single day (YYYY-MM-DD, weekday name, or 'today')."`
	All bool   `short:"a" help:"Show every day with events, not just the visible week."`
}

func (c *ListCmd) Run(ctx *Context) error {
	r, err := ctx.OpenBoard()
	if err != nil {
		return err
	}
	store := r.Store()

	if c.Day != "" {
		day, err := resolveDay(c.Day, r.WeekOffset())
		if err != nil {
			return err
		}
		bucket := store.Get(day)
		fmt.Printf("%s (%d/%d):\n", day, len(bucket), constants.MaxEventsPerDay)
		if len(bucket) == 0 {
			fmt.Println("  no events")
			return nil
		}
		for _, e := range bucket {
			fmt.Printf("  %s\n", formatEventLine(e))
		}
		return nil
	}

	if c.All {
		days := store.Days()
		if len(days) == 0 {
			fmt.Println("No events on the board.")
			return nil
		}
		for _, day := range days {
			fmt.Printf("%s:\n", day)
			for _, e := range store.Get(day) {
				fmt.Printf("  %s\n", formatEventLine(e))
			}
		}
		return nil
	}

	days := week.Dates(r.WeekOffset())
	fmt.Printf("Week of %s (%d):\n\n", days[0].DateLabel, days[0].Year)
	for _, d := range days {
		bucket := store.Get(d.ISO)
		fmt.Printf("%-9s %s  (%d/%d)\n", d.Name, d.ISO, len(bucket), constants.MaxEventsPerDay)
		for _, e := range bucket {
			fmt.Printf("  %s\n", formatEventLine(e))
		}
	}
	return nil
}
