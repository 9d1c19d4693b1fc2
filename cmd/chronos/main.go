package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/chronos/internal/cli"
	"github.com/alexanderramin/chronos/internal/config"
	"github.com/alexanderramin/chronos/internal/db"
	"github.com/alexanderramin/chronos/internal/repository"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/alexanderramin/chronos/internal/theme"
	"github.com/alexanderramin/chronos/internal/timeline"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultConfigDir())
	if err != nil {
		return err
	}

	// DB path precedence: env var, then config, then ~/.chronos/chronos.db
	dbPath := os.Getenv("CHRONOS_DB")
	if dbPath == "" {
		dbPath = cfg.Database
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".chronos", "chronos.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Timeline:     service.NewTimelineService(workItemRepo, depRepo, milestoneRepo),
		WorkItems:    service.NewWorkItemService(workItemRepo),
		Dependencies: service.NewDependencyService(depRepo, workItemRepo),
		Milestones:   service.NewMilestoneService(milestoneRepo, workItemRepo),
		Import:       service.NewImportService(uow),

		Theme:       theme.NewRegistry(theme.PaletteByName(cfg.Theme)),
		DefaultZoom: timeline.ZoomLevel(cfg.Zoom),
		TouchMode:   cfg.TouchMode,
	}

	// Detect interactive terminal before opening the chart TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
