// Package cli holds the dependencies shared by the tabgallery commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/tabgallery/internal/bootstrap"
	"github.com/bnema/tabgallery/internal/cli/styles"
	"github.com/bnema/tabgallery/internal/domain/build"
	"github.com/bnema/tabgallery/internal/infrastructure/config"
	"github.com/bnema/tabgallery/internal/infrastructure/host"
	"github.com/bnema/tabgallery/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and sets up a stderr logger.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: func() {},
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// MoveLogsOffTerminal reroutes logging to the configured log file, or
// discards it, while a full-screen program owns the terminal.
//
// The logger is built at trace level; SetGlobalLevel applies the configured
// level so a config reload can change it.
func (a *App) MoveLogsOffTerminal() error {
	logger, cleanup, err := logging.NewWithFile(logging.Config{
		Level:      logging.ParseLevel("trace"),
		Format:     "json",
		TimeFormat: time.RFC3339,
	}, a.Config.Logging.File)
	if err != nil {
		return err
	}
	logging.SetGlobalLevel(a.Config.Logging.Level)

	a.logCleanup()
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return nil
}

// NewGallery builds a gallery on a fresh in-memory host.
func (a *App) NewGallery() (*bootstrap.Gallery, error) {
	return bootstrap.NewGallery(a.ctx, bootstrap.GalleryInput{
		Config:      a.Config.Gallery,
		Host:        host.NewMemory(),
		IDGenerator: uuid.NewString,
	})
}

// WatchConfig starts the config file watcher. onChange runs on the watcher
// goroutine after each successful reload.
func (a *App) WatchConfig(onChange func(*config.Config)) error {
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		logging.SetGlobalLevel(cfg.Logging.Level)
		logging.FromContext(a.ctx).Info().
			Str("level", cfg.Logging.Level).
			Msg("configuration reloaded")
		if onChange != nil {
			onChange(cfg)
		}
	})
	return a.Manager.Watch(a.ctx)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}
