package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rollcall/internal/config"
	"github.com/jask/rollcall/internal/database"
	"github.com/jask/rollcall/internal/database/repository"
	"github.com/jask/rollcall/internal/roster"
	"github.com/jask/rollcall/internal/seed"
	"github.com/jask/rollcall/internal/service"
	"github.com/jask/rollcall/internal/theme"
	"github.com/jask/rollcall/internal/tui"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("rollcall", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fresh := fs.Bool("fresh", false, "forget the saved roster and start from the seed list")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitConfig
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "log: %v\n", err)
		return exitConfig
	}
	defer closeLog()

	th, err := theme.Named(cfg.Theme.Name)
	if err == nil {
		th, err = th.WithOverrides(cfg.Theme.Colors)
	}
	if err != nil {
		fmt.Fprintf(stderr, "theme: %v\n", err)
		return exitConfig
	}

	names := seed.Default()
	if cfg.Seed.Path != "" {
		if names, err = seed.Load(cfg.Seed.Path); err != nil {
			fmt.Fprintf(stderr, "seed: %v\n", err)
			return exitConfig
		}
	}
	if dups := seed.Duplicates(names); len(dups) > 0 {
		logger.Warn("seed has duplicate names; moves affect the first occurrence", "names", dups)
	}

	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(stderr, "database: %v\n", err)
		return exitRuntime
	}
	defer db.Close()

	// repositories
	stateRepo := repository.NewRosterRepo(db)
	eventRepo := repository.NewEventRepo(db)

	maintenance := &service.MaintenanceService{DB: db}
	if *fresh {
		if err := maintenance.Forget(ctx); err != nil {
			fmt.Fprintf(stderr, "forget: %v\n", err)
			return exitRuntime
		}
		logger.Info("saved roster forgotten")
	}

	r := roster.New(names)
	journal := &service.Journal{State: stateRepo, Events: eventRepo, Logger: logger.With("component", "journal")}
	if cfg.Database.Resume {
		ok, err := journal.Resume(ctx, r)
		if err != nil {
			logger.Error("resume roster", "err", err)
		} else if ok {
			logger.Info("roster resumed", "active", len(r.Active()), "removed", len(r.Removed()))
		}
	}
	journal.Attach(r)
	go journal.Run(ctx)

	app := tui.New(ctx, cfg, r, th,
		tui.Repos{Events: eventRepo},
		tui.Services{Maintenance: maintenance},
		logger.With("component", "tui"),
	)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, runErr := p.Run()
	app.Close()
	if err := journal.Close(); err != nil {
		logger.Error("close journal", "err", err)
	}
	if runErr != nil {
		logger.Error("ui exited", "err", runErr)
		fmt.Fprintf(stderr, "error: %v\n", runErr)
		return exitRuntime
	}
	return exitOK
}

func openLogger(lc config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lc.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", lc.Level, err)
	}
	if err := os.MkdirAll(filepath.Dir(lc.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(lc.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
