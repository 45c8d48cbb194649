package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle inside one window.
type ManageTabsUseCase struct {
	idGenerator       IDGenerator
	windows           *ManageWindowsUseCase
	closeEmptyWindows bool
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(idGenerator IDGenerator, windows *ManageWindowsUseCase, closeEmptyWindows bool) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator:       idGenerator,
		windows:           windows,
		closeEmptyWindows: closeEmptyWindows,
	}
}

// AddTabInput contains parameters for creating a new tab.
type AddTabInput struct {
	Tabs    *entity.TabCollection
	Header  string
	Payload any
}

// Add appends a new tab and selects it.
func (uc *ManageTabsUseCase) Add(ctx context.Context, input AddTabInput) (*entity.TabItem, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("header", input.Header).Msg("adding tab")

	if input.Tabs == nil {
		return nil, fmt.Errorf("tab collection is required")
	}
	if uc.idGenerator == nil {
		return nil, fmt.Errorf("id generator is required")
	}

	item := entity.NewTabItem(entity.TabID(uc.idGenerator()), input.Header, input.Payload)
	if err := input.Tabs.Append(item); err != nil {
		return nil, err
	}
	if err := input.Tabs.Select(item.ID); err != nil {
		return nil, err
	}

	log.Info().
		Str("tab_id", string(item.ID)).
		Int("count", input.Tabs.Count()).
		Msg("tab added")

	return item, nil
}

// Seed fills a window with numbered tabs, formatting headers and payloads
// with the tab index, and selects the first one.
func (uc *ManageTabsUseCase) Seed(ctx context.Context, tabs *entity.TabCollection, count int, headerFormat, payloadFormat string) ([]*entity.TabItem, error) {
	if tabs == nil {
		return nil, fmt.Errorf("tab collection is required")
	}

	items := make([]*entity.TabItem, 0, count)
	for i := 0; i < count; i++ {
		item := entity.NewTabItem(
			entity.TabID(uc.idGenerator()),
			fmt.Sprintf(headerFormat, i),
			fmt.Sprintf(payloadFormat, i),
		)
		if err := tabs.Append(item); err != nil {
			return items, err
		}
		items = append(items, item)
	}
	if len(items) > 0 {
		if err := tabs.Select(items[0].ID); err != nil {
			return items, err
		}
	}

	logging.FromContext(ctx).Debug().Int("count", len(items)).Msg("demo tabs seeded")
	return items, nil
}

// Close removes a tab from a window.
// Returns true if the window was closed because it ran out of tabs.
func (uc *ManageTabsUseCase) Close(ctx context.Context, window entity.WindowHandle, tabID entity.TabID) (windowClosed bool, err error) {
	ctx = logging.WithTabID(ctx, string(tabID))
	log := logging.FromContext(ctx)

	log.Debug().Str("window", string(window)).Msg("closing tab")

	tabs, err := uc.windows.Registry().Find(window)
	if err != nil {
		return false, err
	}
	if _, err := tabs.RemoveByID(tabID); err != nil {
		return false, err
	}

	remaining := tabs.Count()
	log.Info().Int("remaining", remaining).Msg("tab closed")

	if remaining > 0 || !uc.closeEmptyWindows {
		return false, nil
	}
	if err := uc.windows.Close(ctx, window); err != nil {
		return false, err
	}
	return true, nil
}

// Switch changes the selected tab.
func (uc *ManageTabsUseCase) Switch(ctx context.Context, tabs *entity.TabCollection, tabID entity.TabID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("tab_id", string(tabID)).Msg("switching to tab")

	if tabs == nil {
		return fmt.Errorf("tab collection is required")
	}
	return tabs.Select(tabID)
}

// SwitchNext selects the neighbouring tab in the given direction, wrapping around.
// direction: 1 for next, -1 for previous.
func (uc *ManageTabsUseCase) SwitchNext(ctx context.Context, tabs *entity.TabCollection, direction int) error {
	if tabs == nil {
		return fmt.Errorf("tab collection is required")
	}

	count := tabs.Count()
	if count == 0 {
		return nil
	}

	pos := 0
	if selected := tabs.Selected(); selected != nil {
		pos = tabs.IndexOf(selected.ID)
	}
	next := ((pos+direction)%count + count) % count

	item, err := tabs.At(next)
	if err != nil {
		return err
	}
	return uc.Switch(ctx, tabs, item.ID)
}
