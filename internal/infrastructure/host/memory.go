// Package host provides a headless window host for the CLI and tests.
package host

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/tabgallery/internal/application/port"
	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/logging"
)

// ClosedHandler receives the host's window-closed notification.
type ClosedHandler func(ctx context.Context, handle entity.WindowHandle)

// Memory is a port.WindowHost whose windows exist only as handles.
type Memory struct {
	mu       sync.Mutex
	windows  []entity.WindowHandle
	active   entity.WindowHandle
	onClosed []ClosedHandler
	newID    func() string
}

var _ port.WindowHost = (*Memory)(nil)

// NewMemory creates a host that names windows with random UUIDs.
func NewMemory() *Memory {
	return &Memory{newID: uuid.NewString}
}

// NewMemoryWithIDs creates a host with deterministic window handles.
func NewMemoryWithIDs(newID func() string) *Memory {
	return &Memory{newID: newID}
}

// OnWindowClosed registers a close notification handler.
func (m *Memory) OnWindowClosed(handler ClosedHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onClosed = append(m.onClosed, handler)
}

// CreateWindow opens a window and makes it active.
func (m *Memory) CreateWindow(ctx context.Context) (entity.WindowHandle, error) {
	handle := entity.WindowHandle("win-" + m.newID())

	m.mu.Lock()
	m.windows = append(m.windows, handle)
	m.active = handle
	m.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("window", string(handle)).Msg("host window created")
	return handle, nil
}

// CloseWindow closes a window and fires the close notification.
// Unknown handles are ignored.
func (m *Memory) CloseWindow(ctx context.Context, handle entity.WindowHandle) error {
	m.mu.Lock()
	idx := slices.Index(m.windows, handle)
	if idx < 0 {
		m.mu.Unlock()
		return nil
	}
	m.windows = slices.Delete(m.windows, idx, idx+1)
	if m.active == handle {
		m.active = ""
		if len(m.windows) > 0 {
			m.active = m.windows[min(idx, len(m.windows)-1)]
		}
	}
	handlers := slices.Clone(m.onClosed)
	m.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("window", string(handle)).Msg("host window closed")
	for _, h := range handlers {
		h(ctx, handle)
	}
	return nil
}

// ActivateWindow brings a window to the front.
func (m *Memory) ActivateWindow(_ context.Context, handle entity.WindowHandle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(m.windows, handle) {
		return fmt.Errorf("activate %s: %w", handle, entity.ErrNotFound)
	}
	m.active = handle
	return nil
}

// Active returns the foreground window.
func (m *Memory) Active() entity.WindowHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Windows returns the open windows in creation order.
func (m *Memory) Windows() []entity.WindowHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.windows)
}
