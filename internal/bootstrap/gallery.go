// Package bootstrap wires the tab window gallery together.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/infrastructure/config"
	"github.com/bnema/tabgallery/internal/infrastructure/host"
	"github.com/bnema/tabgallery/internal/logging"
)

// GalleryInput holds what NewGallery needs.
type GalleryInput struct {
	Config      config.GalleryConfig
	Host        *host.Memory        // Defaults to a host with UUID handles
	IDGenerator usecase.IDGenerator // Defaults to uuid.NewString
}

// Gallery is the running set of windows plus the use cases acting on them.
type Gallery struct {
	Host       *host.Memory
	Registry   *entity.WindowRegistry
	Windows    *usecase.ManageWindowsUseCase
	Tabs       *usecase.ManageTabsUseCase
	Migrate    *usecase.MigrateTabsUseCase
	Menu       *usecase.BuildTabMenuUseCase
	TearOut    *usecase.TearOutUseCase
	MainWindow entity.WindowHandle

	cfg   config.GalleryConfig
	idGen usecase.IDGenerator
}

// NewGallery opens the main window and fills it with the demo tabs.
func NewGallery(ctx context.Context, input GalleryInput) (*Gallery, error) {
	ctx = logging.WithComponent(ctx, "gallery")

	windowHost := input.Host
	if windowHost == nil {
		windowHost = host.NewMemory()
	}
	idGen := input.IDGenerator
	if idGen == nil {
		idGen = uuid.NewString
	}

	registry := entity.NewWindowRegistry()
	windows := usecase.NewManageWindowsUseCase(windowHost, registry)
	migrate := usecase.NewMigrateTabsUseCase()

	g := &Gallery{
		Host:     windowHost,
		Registry: registry,
		Windows:  windows,
		Tabs:     usecase.NewManageTabsUseCase(idGen, windows, input.Config.CloseEmptyWindows),
		Migrate:  migrate,
		Menu:     usecase.NewBuildTabMenuUseCase(windows, migrate),
		TearOut:  usecase.NewTearOutUseCase(windows, migrate),
		cfg:      input.Config,
		idGen:    idGen,
	}

	// Windows closed by the host itself (not through the use case) still
	// have to leave the registry.
	windowHost.OnWindowClosed(func(ctx context.Context, handle entity.WindowHandle) {
		windows.HandleClosed(ctx, handle)
	})

	opened, err := windows.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open main window: %w", err)
	}
	g.MainWindow = opened.Handle

	if _, err := g.Tabs.Seed(ctx, opened.Tabs, input.Config.DemoTabs, input.Config.HeaderFormat, input.Config.ContentFormat); err != nil {
		return nil, fmt.Errorf("seed demo tabs: %w", err)
	}

	return g, nil
}

// ApplyConfig switches to a reloaded gallery configuration. Existing tabs
// and windows are left alone; demo seeding only happens at startup.
func (g *Gallery) ApplyConfig(cfg config.GalleryConfig) {
	g.cfg = cfg
	g.Tabs = usecase.NewManageTabsUseCase(g.idGen, g.Windows, cfg.CloseEmptyWindows)
}

// AddTab appends a tab with the configured header to window.
func (g *Gallery) AddTab(ctx context.Context, window entity.WindowHandle) (*entity.TabItem, error) {
	tabs, err := g.Registry.Find(window)
	if err != nil {
		return nil, err
	}
	return g.Tabs.Add(ctx, usecase.AddTabInput{
		Tabs:    tabs,
		Header:  g.cfg.NewTabHeader,
		Payload: g.cfg.NewTabHeader,
	})
}

// CloseIfEmpty applies the close-empty-windows policy after a drag/drop.
func (g *Gallery) CloseIfEmpty(ctx context.Context, window entity.WindowHandle) (bool, error) {
	if !g.cfg.CloseEmptyWindows {
		return false, nil
	}
	return g.Windows.CloseIfEmpty(ctx, window)
}
