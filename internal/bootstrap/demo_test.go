package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/infrastructure/config"
)

func TestRunDemo(t *testing.T) {
	g := newTestGallery(t, nil)

	steps, err := RunDemo(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, steps, 6)

	assert.Equal(t, "Start", steps[0].Title)
	assert.Equal(t, []string{"Item 0", "Item 1", "Item 2", "New Item"}, steps[0].Windows[0].Headers)
	assert.Equal(t, []string{"Item 0", "Item 2", "Item 1", "New Item"}, steps[1].Windows[0].Headers)

	final := steps[len(steps)-1].Windows
	require.Len(t, final, 2)
	assert.Equal(t, g.MainWindow, final[0].Handle)
	assert.Equal(t, []string{"Item 2", "Item 1", "Item 0"}, final[0].Headers)
	assert.Equal(t, 2, final[0].Selected)
	assert.True(t, final[0].Active)
	assert.Equal(t, []string{"New Item"}, final[1].Headers)
}

func TestRunDemo_KeepsEmptyWindowsWhenConfigured(t *testing.T) {
	g := newTestGallery(t, func(c *config.GalleryConfig) { c.CloseEmptyWindows = false })

	steps, err := RunDemo(context.Background(), g)
	require.NoError(t, err)

	final := steps[len(steps)-1].Windows
	require.Len(t, final, 3)
	assert.Empty(t, final[2].Headers)
	assert.Equal(t, -1, final[2].Selected)
}

func TestSnapshot_MarksActiveWindow(t *testing.T) {
	g := newTestGallery(t, nil)
	opened, err := g.Windows.Open(context.Background())
	require.NoError(t, err)

	states := g.Snapshot()
	require.Len(t, states, 2)
	assert.False(t, states[0].Active)
	assert.True(t, states[1].Active)
	assert.Equal(t, opened.Handle, states[1].Handle)
	assert.Equal(t, entity.WindowHandle("win-1"), states[0].Handle)
}
