package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/weekboard/internal/cli"
	"github.com/julianstephens/weekboard/internal/logger"
	"github.com/julianstephens/weekboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/weekboard/weekboard.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize weekboard storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive board." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add an event to a day."`
	List   cli.ListCmd   `cmd:"" help:"List events on the board."`
	Week   cli.WeekCmd   `cmd:"" help:"Show or shift the visible week."`
	Move   cli.MoveCmd   `cmd:"" help:"Move, reorder, or trash an event."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle an event's completion."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit an event's details."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete an event."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the board."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the board from a backup."`
	} `cmd:"" help:"Manage board backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("weekboard"),
		kong.Description("Weekly event planner with a drag-and-drop board"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
