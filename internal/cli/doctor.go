package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/weekboard/internal/backup"
	"github.com/julianstephens/weekboard/internal/constants"
	"github.com/julianstephens/weekboard/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: board invariants (only if storage is reachable)
	if storageReachable {
		if err := checkBoardInvariants(ctx); err != nil {
			fmt.Printf("❌ Board invariants: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Board invariants: OK\n")
		}
	} else {
		fmt.Printf("⊘ Board invariants: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 5: duplicate processes (warning only)
	if err := checkDuplicateProcesses(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

// checkBoardInvariants verifies the persisted board: no bucket past capacity,
// globally unique event IDs, and every event's date matching its bucket.
func checkBoardInvariants(ctx *Context) error {
	board, err := ctx.Store.LoadBoard()
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	seen := make(map[string]string)
	for day, bucket := range board {
		if len(bucket) > constants.MaxEventsPerDay {
			return fmt.Errorf("day %s holds %d events, max is %d", day, len(bucket), constants.MaxEventsPerDay)
		}
		for _, e := range bucket {
			if other, ok := seen[e.ID]; ok {
				return fmt.Errorf("duplicate event ID %s (on %s and %s)", e.ID, other, day)
			}
			seen[e.ID] = day
			if e.Date != day {
				return fmt.Errorf("event %s carries date %s but lives on %s", e.ID, e.Date, day)
			}
		}
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'weekboard backup create'")
	}

	return nil
}

func checkClockTimezone() error {
	// Check if system time is reasonable
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// Check if timezone is set
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}

// checkDuplicateProcesses warns when another weekboard process is running;
// concurrent writers would clobber each other's whole-board saves.
func checkDuplicateProcesses() error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable name: %w", err)
	}
	name := filepath.Base(self)

	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range processes {
		if strings.EqualFold(p.Executable(), name) && p.Pid() != os.Getpid() {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d other running %s process(es); concurrent edits can overwrite each other", count, name)
	}

	return nil
}
