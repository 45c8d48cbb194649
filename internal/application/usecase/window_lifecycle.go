package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabgallery/internal/application/port"
	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/logging"
)

// ManageWindowsUseCase keeps the window registry in step with the host's windows.
type ManageWindowsUseCase struct {
	host     port.WindowHost
	registry *entity.WindowRegistry
}

// NewManageWindowsUseCase creates a new window lifecycle use case.
func NewManageWindowsUseCase(host port.WindowHost, registry *entity.WindowRegistry) *ManageWindowsUseCase {
	return &ManageWindowsUseCase{
		host:     host,
		registry: registry,
	}
}

// OpenWindowOutput contains the window created by Open.
type OpenWindowOutput struct {
	Handle entity.WindowHandle
	Tabs   *entity.TabCollection
}

// Open asks the host for a window, gives it an empty collection and registers it.
// No registry or collection lock is held while the host creates the window.
func (uc *ManageWindowsUseCase) Open(ctx context.Context) (*OpenWindowOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("opening window")

	if uc.host == nil || uc.registry == nil {
		return nil, fmt.Errorf("window host and registry are required")
	}

	handle, err := uc.host.CreateWindow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	tabs := entity.NewTabCollection()
	if err := uc.Attach(ctx, handle, tabs); err != nil {
		return nil, err
	}

	return &OpenWindowOutput{Handle: handle, Tabs: tabs}, nil
}

// Attach registers a window the host created on its own, such as the main window.
func (uc *ManageWindowsUseCase) Attach(ctx context.Context, handle entity.WindowHandle, tabs *entity.TabCollection) error {
	log := logging.FromContext(ctx)

	if err := uc.registry.Register(handle, tabs); err != nil {
		return err
	}

	log.Info().
		Str("window", string(handle)).
		Int("windows", uc.registry.Len()).
		Msg("window registered")
	return nil
}

// Close closes a window through the host and drops its registry entry.
func (uc *ManageWindowsUseCase) Close(ctx context.Context, handle entity.WindowHandle) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("window", string(handle)).Msg("closing window")

	if err := uc.host.CloseWindow(ctx, handle); err != nil {
		return fmt.Errorf("failed to close window %s: %w", handle, err)
	}
	uc.HandleClosed(ctx, handle)
	return nil
}

// CloseIfEmpty closes the window when its collection has no tabs left.
func (uc *ManageWindowsUseCase) CloseIfEmpty(ctx context.Context, handle entity.WindowHandle) (bool, error) {
	tabs, err := uc.registry.Find(handle)
	if err != nil {
		return false, err
	}
	if tabs.Count() != 0 {
		return false, nil
	}
	if err := uc.Close(ctx, handle); err != nil {
		return false, err
	}
	return true, nil
}

// HandleClosed processes the host's close notification. It is idempotent
// because an explicit Close and the host notification both land here.
func (uc *ManageWindowsUseCase) HandleClosed(ctx context.Context, handle entity.WindowHandle) bool {
	log := logging.FromContext(ctx)

	tabs, err := uc.registry.Find(handle)
	if err != nil {
		log.Debug().Str("window", string(handle)).Msg("close notification for unknown window")
		return false
	}
	if !uc.registry.Unregister(handle) {
		return false
	}
	discarded := tabs.Clear()

	log.Info().
		Str("window", string(handle)).
		Int("discarded_tabs", len(discarded)).
		Int("windows", uc.registry.Len()).
		Msg("window unregistered")
	return true
}

// Activate brings a window to the foreground.
func (uc *ManageWindowsUseCase) Activate(ctx context.Context, handle entity.WindowHandle) error {
	if err := uc.host.ActivateWindow(ctx, handle); err != nil {
		return fmt.Errorf("failed to activate window %s: %w", handle, err)
	}
	return nil
}

// Registry returns the registry this use case maintains.
func (uc *ManageWindowsUseCase) Registry() *entity.WindowRegistry {
	return uc.registry
}
