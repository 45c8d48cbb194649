package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/logging"
)

// TearOutUseCase answers the host's drag/drop gestures.
//
// A tear-out arrives in two steps: the host first asks for a window
// (WindowRequested), then hands over the dragged tabs (TearOut). A drop onto
// an existing window arrives as a single Drop.
type TearOutUseCase struct {
	windows *ManageWindowsUseCase
	migrate *MigrateTabsUseCase

	mu      sync.Mutex
	pending map[entity.WindowHandle]entity.WindowHandle // source window -> torn-out window
}

// NewTearOutUseCase creates a new drag/drop use case.
func NewTearOutUseCase(windows *ManageWindowsUseCase, migrate *MigrateTabsUseCase) *TearOutUseCase {
	return &TearOutUseCase{
		windows: windows,
		migrate: migrate,
		pending: make(map[entity.WindowHandle]entity.WindowHandle),
	}
}

// TearOutOutput describes where the dragged tabs went.
type TearOutOutput struct {
	SourceWindow entity.WindowHandle
	TargetWindow entity.WindowHandle
	Migrated     int
	SourceEmpty  bool // The host decides whether to close SourceWindow
}

// WindowRequested opens the window that will receive tabs torn out of source.
func (uc *TearOutUseCase) WindowRequested(ctx context.Context, source entity.WindowHandle) (entity.WindowHandle, error) {
	log := logging.FromContext(ctx)

	if _, err := uc.windows.Registry().Find(source); err != nil {
		return "", err
	}

	opened, err := uc.windows.Open(ctx)
	if err != nil {
		return "", err
	}

	uc.mu.Lock()
	previous, hadPrevious := uc.pending[source]
	uc.pending[source] = opened.Handle
	uc.mu.Unlock()

	if hadPrevious {
		log.Debug().
			Str("window", string(source)).
			Str("replaced", string(previous)).
			Msg("tear-out window replaced before use")
	}
	log.Debug().
		Str("window", string(source)).
		Str("tear_out_window", string(opened.Handle)).
		Msg("tear-out window ready")

	return opened.Handle, nil
}

// TearOut moves items into the window opened by WindowRequested for source.
func (uc *TearOutUseCase) TearOut(ctx context.Context, source entity.WindowHandle, items []*entity.TabItem) (*TearOutOutput, error) {
	uc.mu.Lock()
	target, ok := uc.pending[source]
	delete(uc.pending, source)
	uc.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("tear-out window for %s: %w", source, entity.ErrNotFound)
	}

	out, err := uc.transfer(ctx, source, target, items, 0)
	if err != nil {
		if out == nil || out.Migrated == 0 {
			if _, closeErr := uc.windows.CloseIfEmpty(ctx, target); closeErr != nil {
				logging.FromContext(ctx).Warn().Err(closeErr).Msg("failed to close unused tear-out window")
			}
		}
		return out, err
	}
	return out, uc.windows.Activate(ctx, target)
}

// AcceptsDrop reports whether torn-out tabs may be dropped on window.
func (uc *TearOutUseCase) AcceptsDrop(window entity.WindowHandle) bool {
	_, err := uc.windows.Registry().Find(window)
	return err == nil
}

// Drop inserts items at index of target. The source window is whichever
// window currently holds the first item. When target is that same window,
// each item leaves it before being reinserted, so index counts positions
// after the removal and the old Count() is out of range.
func (uc *TearOutUseCase) Drop(ctx context.Context, target entity.WindowHandle, items []*entity.TabItem, index int) (*TearOutOutput, error) {
	if len(items) == 0 || items[0] == nil {
		return nil, fmt.Errorf("dropped tabs are required")
	}

	source, _, err := uc.windows.Registry().Owner(items[0].ID)
	if err != nil {
		return nil, fmt.Errorf("drop %s: %w", items[0].ID, entity.ErrItemNotInSource)
	}
	return uc.transfer(ctx, source, target, items, index)
}

func (uc *TearOutUseCase) transfer(
	ctx context.Context,
	source, target entity.WindowHandle,
	items []*entity.TabItem,
	index int,
) (*TearOutOutput, error) {
	ctx = logging.WithWindow(ctx, string(source))

	registry := uc.windows.Registry()
	src, err := registry.Find(source)
	if err != nil {
		return nil, err
	}
	dst, err := registry.Find(target)
	if err != nil {
		return nil, err
	}

	res, err := uc.migrate.Execute(ctx, MigrateTabsInput{
		Items:       items,
		Source:      src,
		Destination: dst,
		StartIndex:  index,
	})
	if res == nil {
		return nil, err
	}

	out := &TearOutOutput{
		SourceWindow: source,
		TargetWindow: target,
		Migrated:     res.Migrated,
		SourceEmpty:  res.SourceEmpty,
	}
	if res.Migrated > 0 {
		if selErr := dst.Select(items[0].ID); selErr != nil {
			logging.FromContext(ctx).Debug().Err(selErr).Msg("dropped tab not selectable")
		}
	}
	return out, err
}
