package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/clocklog/internal/cli"
	"github.com/alexanderramin/clocklog/internal/clock"
	"github.com/alexanderramin/clocklog/internal/config"
	"github.com/alexanderramin/clocklog/internal/db"
	"github.com/alexanderramin/clocklog/internal/service"
	"github.com/alexanderramin/clocklog/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	configPath := os.Getenv("CLOCKLOG_CONFIG")
	if configPath == "" {
		configPath = filepath.Join(dataDir, "config.yaml")
	}
	cfg, err := config.Load(configPath, dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	sysClock := clock.System{}

	// Wire storage backend
	var store storage.Storage
	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store = storage.NewSQLiteStore(db.NewSQLiteUnitOfWork(database), sysClock)
	default:
		store = storage.NewYAMLStore(cfg.StorePath, sysClock)
	}

	// Write failures surface only through the observer. LogUseCases lowers
	// the threshold to every call.
	level, _ := cfg.SlogLevel()
	if cfg.LogUseCases && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	observer := service.NewLogUseCaseObserver(os.Stderr, level)

	app := &cli.App{
		Records:     service.NewRecordRepository(store, observer),
		Clock:       sysClock,
		WeekStart:   cfg.FirstWeekday(),
		PromptEntry: cli.HuhEntryPrompter(sysClock.Now),
	}

	// Detect interactive terminal for the add prompt.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
