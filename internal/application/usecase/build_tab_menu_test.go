package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/domain/entity"
)

func buildMenu(t *testing.T, w *testWorld, window entity.WindowHandle, tabs *entity.TabCollection, index int) *usecase.TabMenu {
	t.Helper()
	uc := usecase.NewBuildTabMenuUseCase(w.windows, w.migrate)
	menu, err := uc.Execute(testContext(), usecase.BuildTabMenuInput{
		Item:        mustAt(t, tabs, index),
		Index:       index,
		Owner:       tabs,
		OwnerWindow: window,
	})
	require.NoError(t, err)
	return menu
}

func findAction(t *testing.T, menu *usecase.TabMenu, kind usecase.MenuActionKind) usecase.MenuAction {
	t.Helper()
	for _, a := range menu.Actions {
		if a.Kind == kind {
			return a
		}
	}
	require.Failf(t, "action missing", "no %s action in %v", kind, menu.Kinds())
	return usecase.MenuAction{}
}

func TestBuildTabMenu_PresenceRules(t *testing.T) {
	tests := []struct {
		name     string
		tabs     []entity.TabID
		index    int
		expected []usecase.MenuActionKind
	}{
		{
			name:     "first tab",
			tabs:     []entity.TabID{"A", "B", "C"},
			index:    0,
			expected: []usecase.MenuActionKind{usecase.MenuMoveRight, usecase.MenuNewWindow},
		},
		{
			name:     "middle tab",
			tabs:     []entity.TabID{"A", "B", "C"},
			index:    1,
			expected: []usecase.MenuActionKind{usecase.MenuMoveLeft, usecase.MenuMoveRight, usecase.MenuNewWindow},
		},
		{
			name:     "last tab",
			tabs:     []entity.TabID{"A", "B", "C"},
			index:    2,
			expected: []usecase.MenuActionKind{usecase.MenuMoveLeft, usecase.MenuNewWindow},
		},
		{
			name:     "only tab",
			tabs:     []entity.TabID{"A"},
			index:    0,
			expected: []usecase.MenuActionKind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			window, tabs := w.openWindow(t, tt.tabs...)

			menu := buildMenu(t, w, window, tabs, tt.index)

			assert.Equal(t, tt.expected, append([]usecase.MenuActionKind{}, menu.Kinds()...))
			assert.Equal(t, len(tt.expected) == 0, menu.Empty())
		})
	}
}

func TestBuildTabMenu_OtherWindowsInRegistrationOrder(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A")
	w2, _ := w.openWindow(t, "X", "Y")
	_, _ = w.openWindow(t) // empty windows are not offered
	w4, _ := w.openWindow(t, "Z")

	menu := buildMenu(t, w, w1, tabs, 0)

	require.Equal(t, []usecase.MenuActionKind{usecase.MenuMoveToWindow, usecase.MenuMoveToWindow}, menu.Kinds())
	assert.Equal(t, w2, menu.Actions[0].Target)
	assert.Equal(t, `"X" and 1 other tabs`, menu.Actions[0].Label)
	assert.Equal(t, w4, menu.Actions[1].Target)
	assert.Equal(t, `"Z" and 0 other tabs`, menu.Actions[1].Label)
}

func TestBuildTabMenu_WindowLabelKeepsHeaderVerbatim(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A")
	other, err := w.windows.Open(testContext())
	require.NoError(t, err)
	require.NoError(t, other.Tabs.Append(entity.NewTabItem("q", `Say "hi"\path`, nil)))

	menu := buildMenu(t, w, w1, tabs, 0)

	require.Len(t, menu.Actions, 1)
	assert.Equal(t, `"Say "hi"\path" and 0 other tabs`, menu.Actions[0].Label)
}

func TestBuildTabMenu_SubmenuGrouping(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B", "C")
	_, _ = w.openWindow(t, "X")

	menu := buildMenu(t, w, w1, tabs, 1)

	top := menu.TopLevel()
	require.Len(t, top, 2)
	assert.Equal(t, "Move tab left", top[0].Label)
	assert.Equal(t, "Move tab right", top[1].Label)

	sub := menu.Submenu(usecase.MoveTabToSubmenu)
	require.Len(t, sub, 2)
	assert.Equal(t, usecase.MenuNewWindow, sub[0].Kind)
	assert.Equal(t, usecase.MenuMoveToWindow, sub[1].Kind)
}

func TestBuildTabMenu_RejectsStaleIndex(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B")
	uc := usecase.NewBuildTabMenuUseCase(w.windows, w.migrate)

	_, err := uc.Execute(testContext(), usecase.BuildTabMenuInput{
		Item:        mustAt(t, tabs, 0),
		Index:       1,
		Owner:       tabs,
		OwnerWindow: w1,
	})
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = uc.Execute(testContext(), usecase.BuildTabMenuInput{
		Item:        mustAt(t, tabs, 0),
		Index:       4,
		Owner:       tabs,
		OwnerWindow: w1,
	})
	assert.ErrorIs(t, err, entity.ErrIndexOutOfRange)
}

func TestBuildTabMenu_MoveLeftAndRight(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B", "C")

	menu := buildMenu(t, w, w1, tabs, 1)
	require.NoError(t, findAction(t, menu, usecase.MenuMoveLeft).Run(testContext()))
	assert.Equal(t, []entity.TabID{"B", "A", "C"}, tabIDs(tabs))

	menu = buildMenu(t, w, w1, tabs, 0)
	require.NoError(t, findAction(t, menu, usecase.MenuMoveRight).Run(testContext()))
	assert.Equal(t, []entity.TabID{"A", "B", "C"}, tabIDs(tabs))
}

func TestBuildTabMenu_ActionFollowsItemIdentity(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B", "C")

	menu := buildMenu(t, w, w1, tabs, 2)
	// The tab shifts before the click lands.
	require.NoError(t, tabs.MoveWithin(2, 1))

	require.NoError(t, findAction(t, menu, usecase.MenuMoveLeft).Run(testContext()))
	assert.Equal(t, []entity.TabID{"C", "A", "B"}, tabIDs(tabs))

	_, err := tabs.RemoveByID("C")
	require.NoError(t, err)
	assert.ErrorIs(t, findAction(t, menu, usecase.MenuMoveLeft).Run(testContext()), entity.ErrNotFound)
}

func TestBuildTabMenu_NewWindow(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B", "C")

	menu := buildMenu(t, w, w1, tabs, 1)
	require.NoError(t, findAction(t, menu, usecase.MenuNewWindow).Run(testContext()))

	assert.Equal(t, []entity.TabID{"A", "C"}, tabIDs(tabs))

	handles := w.windows.Registry().Handles()
	require.Len(t, handles, 2)
	created, err := w.windows.Registry().Find(handles[1])
	require.NoError(t, err)
	assert.Equal(t, []entity.TabID{"B"}, tabIDs(created))
	assert.Equal(t, entity.TabID("B"), created.Selected().ID)
	assert.Equal(t, handles[1], w.host.Active())
}

func TestBuildTabMenu_MoveToWindowClosesEmptiedOwner(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A")
	w2, other := w.openWindow(t, "X", "Y")

	menu := buildMenu(t, w, w1, tabs, 0)
	require.NoError(t, findAction(t, menu, usecase.MenuMoveToWindow).Run(testContext()))

	assert.Equal(t, []entity.TabID{"X", "Y", "A"}, tabIDs(other))
	assert.Equal(t, entity.TabID("A"), other.Selected().ID)
	assert.Equal(t, []entity.WindowHandle{w2}, w.windows.Registry().Handles())
	assert.Equal(t, []entity.WindowHandle{w2}, w.host.Windows())
	assert.Equal(t, w2, w.host.Active())
}

func TestBuildTabMenu_MoveToWindowKeepsNonEmptyOwner(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B")
	_, other := w.openWindow(t, "X")

	menu := buildMenu(t, w, w1, tabs, 0)
	require.NoError(t, findAction(t, menu, usecase.MenuMoveToWindow).Run(testContext()))

	assert.Equal(t, []entity.TabID{"B"}, tabIDs(tabs))
	assert.Equal(t, []entity.TabID{"X", "A"}, tabIDs(other))
	assert.Equal(t, 2, w.windows.Registry().Len())
}

func TestBuildTabMenu_MoveToClosedWindowFails(t *testing.T) {
	w := newTestWorld()
	w1, tabs := w.openWindow(t, "A", "B")
	w2, _ := w.openWindow(t, "X")

	menu := buildMenu(t, w, w1, tabs, 0)
	require.NoError(t, w.windows.Close(testContext(), w2))

	err := findAction(t, menu, usecase.MenuMoveToWindow).Run(testContext())
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, []entity.TabID{"A", "B"}, tabIDs(tabs))
}
