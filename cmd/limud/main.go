package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/shayacohen/limud/internal/cli"
	"github.com/shayacohen/limud/internal/db"
	"github.com/shayacohen/limud/internal/hebcal"
	"github.com/shayacohen/limud/internal/repository"
	"github.com/shayacohen/limud/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.limud/limud.db
	dbPath := os.Getenv("LIMUD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".limud", "limud.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)

	// Hebrew milestone resolution goes through the Hebcal converter API.
	hebcalCfg := hebcal.LoadConfig()
	converter := hebcal.NewClient(hebcalCfg)
	resolver := hebcal.NewMilestoneResolver(converter)

	app := &cli.App{
		Schedules: service.NewScheduleService(scheduleRepo, resolver),
	}

	// Detect interactive terminal for wizard and pager entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
