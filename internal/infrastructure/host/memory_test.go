package host

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgallery/internal/domain/entity"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%d", n)
	}
}

func TestMemory_CreateActivatesNewWindow(t *testing.T) {
	m := NewMemoryWithIDs(sequentialIDs())
	ctx := context.Background()

	w1, err := m.CreateWindow(ctx)
	require.NoError(t, err)
	w2, err := m.CreateWindow(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.WindowHandle("win-1"), w1)
	assert.Equal(t, entity.WindowHandle("win-2"), w2)
	assert.Equal(t, w2, m.Active())
	assert.Equal(t, []entity.WindowHandle{w1, w2}, m.Windows())
}

func TestMemory_CloseNotifiesAndMovesFocus(t *testing.T) {
	m := NewMemoryWithIDs(sequentialIDs())
	ctx := context.Background()

	var closed []entity.WindowHandle
	m.OnWindowClosed(func(_ context.Context, h entity.WindowHandle) {
		closed = append(closed, h)
		// Handlers run without the host lock held.
		_ = m.Windows()
	})

	w1, _ := m.CreateWindow(ctx)
	w2, _ := m.CreateWindow(ctx)
	w3, _ := m.CreateWindow(ctx)
	require.NoError(t, m.ActivateWindow(ctx, w2))

	require.NoError(t, m.CloseWindow(ctx, w2))
	assert.Equal(t, []entity.WindowHandle{w2}, closed)
	assert.Equal(t, w3, m.Active())

	require.NoError(t, m.CloseWindow(ctx, w1))
	assert.Equal(t, w3, m.Active())

	require.NoError(t, m.CloseWindow(ctx, w3))
	assert.Equal(t, entity.WindowHandle(""), m.Active())
	assert.Empty(t, m.Windows())
}

func TestMemory_CloseUnknownIsIgnored(t *testing.T) {
	m := NewMemoryWithIDs(sequentialIDs())
	calls := 0
	m.OnWindowClosed(func(context.Context, entity.WindowHandle) { calls++ })

	assert.NoError(t, m.CloseWindow(context.Background(), "win-404"))
	assert.Zero(t, calls)
}

func TestMemory_ActivateUnknown(t *testing.T) {
	m := NewMemory()
	err := m.ActivateWindow(context.Background(), "win-404")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestMemory_UUIDHandles(t *testing.T) {
	m := NewMemory()
	a, err := m.CreateWindow(context.Background())
	require.NoError(t, err)
	b, err := m.CreateWindow(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, string(a), len("win-")+36)
}
