package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/mealfinder/internal/config"
	"github.com/alexisbeaulieu97/mealfinder/internal/logger"
	"github.com/alexisbeaulieu97/mealfinder/internal/mealdb"
	"github.com/alexisbeaulieu97/mealfinder/internal/prefs"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Store  prefs.Store

	logFile *os.File
}

// newAppContext loads configuration, opens the log sink and the preference
// store. Interactive runs never log to stderr since it shares the screen.
func newAppContext(flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	logPath := cfg.Logging.File
	if flags.logFile != "" {
		logPath = flags.logFile
	}

	switch {
	case logPath != "":
		f, err := logger.OpenFile(logPath)
		if err != nil {
			return nil, err
		}
		app.logFile = f
		app.Logger, err = logger.New(logger.Options{Level: level, Writer: f})
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("configure logger: %w", err)
		}
	case interactive:
		app.Logger = logger.Nop()
	default:
		app.Logger, err = logger.New(logger.Options{Level: level, HumanReadable: true, Writer: stderr})
		if err != nil {
			return nil, fmt.Errorf("configure logger: %w", err)
		}
	}

	store, err := prefs.Open(cfg.Storage)
	if err != nil {
		// Searching works without saved preferences.
		app.Logger.WithFields(map[string]any{
			"backend": cfg.Storage.Backend,
			"path":    cfg.Storage.Path,
		}).Warn(err, "opening preference store failed, theme changes will not be saved")
		store = prefs.NewMemoryStore()
	}
	app.Store = store

	app.Logger.WithFields(map[string]any{
		"backend": cfg.Storage.Backend,
		"path":    cfg.Storage.Path,
	}).Debug("preference store opened")

	return app, nil
}

// Client builds the recipe API client from the configuration.
func (a *AppContext) Client() (*mealdb.Client, error) {
	return mealdb.NewClient(mealdb.Options{
		BaseURL: a.Config.API.BaseURL,
		Timeout: a.Config.API.Timeout,
		Logger:  a.Logger,
	})
}

// Close releases the store and the log file.
func (a *AppContext) Close() error {
	var errs []error
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}
