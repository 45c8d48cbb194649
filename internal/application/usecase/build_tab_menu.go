package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/logging"
)

// MenuActionKind identifies a tab context menu entry.
type MenuActionKind string

const (
	MenuMoveLeft     MenuActionKind = "move_left"
	MenuMoveRight    MenuActionKind = "move_right"
	MenuNewWindow    MenuActionKind = "new_window"
	MenuMoveToWindow MenuActionKind = "move_to_window"
)

// MoveTabToSubmenu groups the entries that send a tab to another window.
const MoveTabToSubmenu = "Move tab to"

// MenuAction is one entry of a tab context menu.
type MenuAction struct {
	Kind    MenuActionKind
	Label   string
	Submenu string              // Empty for top-level entries
	Target  entity.WindowHandle // Destination window for MenuMoveToWindow
	Run     func(ctx context.Context) error
}

// TabMenu is the ordered list of actions that apply to one tab.
type TabMenu struct {
	Actions []MenuAction
}

// Empty reports whether the menu has nothing to show.
func (m *TabMenu) Empty() bool {
	return m == nil || len(m.Actions) == 0
}

// TopLevel returns the entries outside any submenu.
func (m *TabMenu) TopLevel() []MenuAction {
	return m.filter(func(a MenuAction) bool { return a.Submenu == "" })
}

// Submenu returns the entries grouped under name.
func (m *TabMenu) Submenu(name string) []MenuAction {
	return m.filter(func(a MenuAction) bool { return a.Submenu == name })
}

// Kinds lists the action kinds in menu order.
func (m *TabMenu) Kinds() []MenuActionKind {
	if m == nil {
		return nil
	}
	kinds := make([]MenuActionKind, len(m.Actions))
	for i, a := range m.Actions {
		kinds[i] = a.Kind
	}
	return kinds
}

func (m *TabMenu) filter(keep func(MenuAction) bool) []MenuAction {
	if m == nil {
		return nil
	}
	var out []MenuAction
	for _, a := range m.Actions {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// BuildTabMenuUseCase computes the context menu for a tab.
// Building is read-only; only the attached Run functions mutate state.
type BuildTabMenuUseCase struct {
	windows *ManageWindowsUseCase
	migrate *MigrateTabsUseCase
}

// NewBuildTabMenuUseCase creates a new tab menu use case.
func NewBuildTabMenuUseCase(windows *ManageWindowsUseCase, migrate *MigrateTabsUseCase) *BuildTabMenuUseCase {
	return &BuildTabMenuUseCase{
		windows: windows,
		migrate: migrate,
	}
}

// BuildTabMenuInput identifies the tab the menu was opened on.
type BuildTabMenuInput struct {
	Item        *entity.TabItem
	Index       int
	Owner       *entity.TabCollection
	OwnerWindow entity.WindowHandle
}

// Execute returns the applicable actions in display order: move left, move
// right, then the "Move tab to" submenu (new window followed by one entry per
// other non-empty window in registration order).
func (uc *BuildTabMenuUseCase) Execute(ctx context.Context, input BuildTabMenuInput) (*TabMenu, error) {
	log := logging.FromContext(ctx)

	if input.Item == nil {
		return nil, fmt.Errorf("tab item is required")
	}
	if input.Owner == nil {
		return nil, fmt.Errorf("owner: %w", entity.ErrCollectionRequired)
	}
	at, err := input.Owner.At(input.Index)
	if err != nil {
		return nil, err
	}
	if at.ID != input.Item.ID {
		return nil, fmt.Errorf("tab %s at index %d: %w", input.Item.ID, input.Index, entity.ErrNotFound)
	}

	count := input.Owner.Count()
	menu := &TabMenu{}

	if input.Index > 0 {
		menu.Actions = append(menu.Actions, MenuAction{
			Kind:  MenuMoveLeft,
			Label: "Move tab left",
			Run:   uc.moveWithinAction(input, -1),
		})
	}
	if input.Index < count-1 {
		menu.Actions = append(menu.Actions, MenuAction{
			Kind:  MenuMoveRight,
			Label: "Move tab right",
			Run:   uc.moveWithinAction(input, 1),
		})
	}
	if count > 1 {
		menu.Actions = append(menu.Actions, MenuAction{
			Kind:    MenuNewWindow,
			Label:   "New window",
			Submenu: MoveTabToSubmenu,
			Run:     uc.newWindowAction(input),
		})
	}

	for handle, tabs := range uc.windows.Registry().ListOthers(input.OwnerWindow) {
		n := tabs.Count()
		if n == 0 {
			continue
		}
		first, err := tabs.At(0)
		if err != nil {
			// Emptied since Count; skip it like any other empty window.
			continue
		}
		menu.Actions = append(menu.Actions, MenuAction{
			Kind:    MenuMoveToWindow,
			Label:   fmt.Sprintf("\"%s\" and %d other tabs", first.Header, n-1),
			Submenu: MoveTabToSubmenu,
			Target:  handle,
			Run:     uc.moveToWindowAction(input, handle),
		})
	}

	log.Debug().
		Str("tab_id", string(input.Item.ID)).
		Int("index", input.Index).
		Int("actions", len(menu.Actions)).
		Msg("tab menu built")

	return menu, nil
}

func (uc *BuildTabMenuUseCase) moveWithinAction(input BuildTabMenuInput, delta int) func(context.Context) error {
	return func(ctx context.Context) error {
		log := logging.FromContext(ctx)

		from := input.Owner.IndexOf(input.Item.ID)
		if from < 0 {
			return fmt.Errorf("move %s: %w", input.Item.ID, entity.ErrNotFound)
		}
		if err := input.Owner.MoveWithin(from, from+delta); err != nil {
			return err
		}

		log.Info().
			Str("tab_id", string(input.Item.ID)).
			Int("from", from).
			Int("to", from+delta).
			Msg("tab moved")
		return nil
	}
}

func (uc *BuildTabMenuUseCase) newWindowAction(input BuildTabMenuInput) func(context.Context) error {
	return func(ctx context.Context) error {
		if !input.Owner.Contains(input.Item.ID) {
			return fmt.Errorf("move %s: %w", input.Item.ID, entity.ErrNotFound)
		}

		opened, err := uc.windows.Open(ctx)
		if err != nil {
			return err
		}

		if _, err := uc.migrate.Execute(ctx, MigrateTabsInput{
			Items:       []*entity.TabItem{input.Item},
			Source:      input.Owner,
			Destination: opened.Tabs,
			StartIndex:  0,
		}); err != nil {
			if _, closeErr := uc.windows.CloseIfEmpty(ctx, opened.Handle); closeErr != nil {
				logging.FromContext(ctx).Warn().Err(closeErr).Msg("failed to close unused window")
			}
			return err
		}

		return uc.windows.Activate(ctx, opened.Handle)
	}
}

func (uc *BuildTabMenuUseCase) moveToWindowAction(input BuildTabMenuInput, target entity.WindowHandle) func(context.Context) error {
	return func(ctx context.Context) error {
		dest, err := uc.windows.Registry().Find(target)
		if err != nil {
			return err
		}

		if _, err := uc.migrate.Execute(ctx, MigrateTabsInput{
			Items:       []*entity.TabItem{input.Item},
			Source:      input.Owner,
			Destination: dest,
			StartIndex:  dest.Count(),
		}); err != nil {
			return err
		}
		if err := dest.Select(input.Item.ID); err != nil {
			return err
		}

		if input.Owner.Count() == 0 {
			if err := uc.windows.Close(ctx, input.OwnerWindow); err != nil {
				return err
			}
		}

		return uc.windows.Activate(ctx, target)
	}
}
