package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/domain/entity"
)

func TestManageTabs_SeedAndAdd(t *testing.T) {
	w := newTestWorld()
	uc := usecase.NewManageTabsUseCase(newTestIDGen(), w.windows, true)
	_, tabs := w.openWindow(t)

	seeded, err := uc.Seed(testContext(), tabs, 3, "Item %d", "Page %d")
	require.NoError(t, err)
	require.Len(t, seeded, 3)
	assert.Equal(t, "Item 2", seeded[2].Header)
	assert.Equal(t, "Page 2", seeded[2].Payload)
	assert.Equal(t, seeded[0].ID, tabs.Selected().ID)

	added, err := uc.Add(testContext(), usecase.AddTabInput{Tabs: tabs, Header: "New Item"})
	require.NoError(t, err)
	assert.Equal(t, entity.TabID("id4"), added.ID)
	assert.Equal(t, 4, tabs.Count())
	assert.Equal(t, added.ID, tabs.Selected().ID)
}

func TestManageTabs_CloseLastTabClosesWindow(t *testing.T) {
	w := newTestWorld()
	uc := usecase.NewManageTabsUseCase(newTestIDGen(), w.windows, true)
	w1, _ := w.openWindow(t, "A", "B")

	closed, err := uc.Close(testContext(), w1, "A")
	require.NoError(t, err)
	assert.False(t, closed)

	closed, err = uc.Close(testContext(), w1, "B")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, 0, w.windows.Registry().Len())
	assert.Empty(t, w.host.Windows())
}

func TestManageTabs_CloseLastTabKeepsWindowWhenDisabled(t *testing.T) {
	w := newTestWorld()
	uc := usecase.NewManageTabsUseCase(newTestIDGen(), w.windows, false)
	w1, tabs := w.openWindow(t, "A")

	closed, err := uc.Close(testContext(), w1, "A")
	require.NoError(t, err)
	assert.False(t, closed)
	assert.Equal(t, 0, tabs.Count())
	assert.Equal(t, 1, w.windows.Registry().Len())

	_, err = uc.Close(testContext(), w1, "A")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestManageTabs_SwitchNextWraps(t *testing.T) {
	w := newTestWorld()
	uc := usecase.NewManageTabsUseCase(newTestIDGen(), w.windows, true)
	_, tabs := w.openWindow(t, "A", "B", "C")

	require.NoError(t, uc.SwitchNext(testContext(), tabs, -1))
	assert.Equal(t, entity.TabID("C"), tabs.Selected().ID)

	require.NoError(t, uc.SwitchNext(testContext(), tabs, 1))
	assert.Equal(t, entity.TabID("A"), tabs.Selected().ID)

	assert.ErrorIs(t, uc.Switch(testContext(), tabs, "missing"), entity.ErrNotFound)
}
