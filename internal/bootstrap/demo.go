package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/domain/entity"
)

// WindowState is a read-only picture of one window.
type WindowState struct {
	Handle   entity.WindowHandle
	Headers  []string
	Selected int // -1 when the window has no selected tab
	Active   bool
}

// DemoStep is the window layout after one scripted action.
type DemoStep struct {
	Title   string
	Windows []WindowState
}

// Snapshot lists every registered window in registration order.
func (g *Gallery) Snapshot() []WindowState {
	active := g.Host.Active()

	var states []WindowState
	for _, handle := range g.Registry.Handles() {
		tabs, err := g.Registry.Find(handle)
		if err != nil {
			continue
		}
		items := tabs.Items()
		state := WindowState{
			Handle:   handle,
			Headers:  make([]string, len(items)),
			Selected: -1,
			Active:   handle == active,
		}
		selected := tabs.Selected()
		for i, item := range items {
			state.Headers[i] = item.Title()
			if selected != nil && selected.ID == item.ID {
				state.Selected = i
			}
		}
		states = append(states, state)
	}
	return states
}

const demoMinTabs = 4

// RunDemo walks the gallery through the context menu and drag/drop paths
// and records the layout after every step.
func RunDemo(ctx context.Context, g *Gallery) ([]DemoStep, error) {
	main, err := g.Registry.Find(g.MainWindow)
	if err != nil {
		return nil, err
	}
	for main.Count() < demoMinTabs {
		if _, err := g.AddTab(ctx, g.MainWindow); err != nil {
			return nil, err
		}
	}

	var steps []DemoStep
	record := func(title string) {
		steps = append(steps, DemoStep{Title: title, Windows: g.Snapshot()})
	}
	record("Start")

	// Context menu on the second tab: move it right.
	if err := g.runMenuAction(ctx, g.MainWindow, 1, usecase.MenuMoveRight, ""); err != nil {
		return steps, err
	}
	record("Move tab right")

	// Context menu on the first tab: send it to a new window.
	if err := g.runMenuAction(ctx, g.MainWindow, 0, usecase.MenuNewWindow, ""); err != nil {
		return steps, err
	}
	second := g.Host.Active()
	record("Move tab to new window")

	// Drag the last tab of the main window out into its own window.
	torn, err := g.TearOut.WindowRequested(ctx, g.MainWindow)
	if err != nil {
		return steps, err
	}
	last, err := main.At(main.Count() - 1)
	if err != nil {
		return steps, err
	}
	if _, err := g.TearOut.TearOut(ctx, g.MainWindow, []*entity.TabItem{last}); err != nil {
		return steps, err
	}
	record("Tear out last tab")

	// Drop the torn-out tab onto the second window, emptying its window.
	tornTabs, err := g.Registry.Find(torn)
	if err != nil {
		return steps, err
	}
	out, err := g.TearOut.Drop(ctx, second, tornTabs.Items(), 1)
	if err != nil {
		return steps, err
	}
	if out.SourceEmpty {
		if _, err := g.CloseIfEmpty(ctx, out.SourceWindow); err != nil {
			return steps, err
		}
	}
	record("Drop into second window")

	// Send the second window's first tab back to the main window.
	if err := g.runMenuAction(ctx, second, 0, usecase.MenuMoveToWindow, g.MainWindow); err != nil {
		return steps, err
	}
	record("Move tab to main window")

	return steps, nil
}

// runMenuAction builds the menu for the tab at index of window and runs the
// entry of the given kind.
func (g *Gallery) runMenuAction(
	ctx context.Context,
	window entity.WindowHandle,
	index int,
	kind usecase.MenuActionKind,
	target entity.WindowHandle,
) error {
	tabs, err := g.Registry.Find(window)
	if err != nil {
		return err
	}
	item, err := tabs.At(index)
	if err != nil {
		return err
	}

	menu, err := g.Menu.Execute(ctx, usecase.BuildTabMenuInput{
		Item:        item,
		Index:       index,
		Owner:       tabs,
		OwnerWindow: window,
	})
	if err != nil {
		return err
	}
	for _, action := range menu.Actions {
		if action.Kind == kind && action.Target == target {
			return action.Run(ctx)
		}
	}
	return fmt.Errorf("menu action %s for %s: %w", kind, item.ID, entity.ErrNotFound)
}
