package port

import (
	"context"

	"github.com/bnema/tabgallery/internal/domain/entity"
)

//go:generate mockgen -source=window_host.go -destination=mocks/mock_window_host.go -package=mocks

// WindowHost is the host UI layer that owns real windows.
// The tab core asks it for windows but never draws or sizes them.
type WindowHost interface {
	// CreateWindow opens a new, empty window and returns its handle.
	// Implementations may run the event loop before returning, so callers
	// must not hold collection or registry locks across this call.
	CreateWindow(ctx context.Context) (entity.WindowHandle, error)

	// CloseWindow closes a window. The host later reports the closure
	// through its close notification; closing an unknown handle is a no-op.
	CloseWindow(ctx context.Context, handle entity.WindowHandle) error

	// ActivateWindow brings a window to the foreground.
	ActivateWindow(ctx context.Context, handle entity.WindowHandle) error
}
