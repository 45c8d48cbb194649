package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/domain/entity"
	"github.com/bnema/tabgallery/internal/infrastructure/host"
	"github.com/bnema/tabgallery/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestIDGen() func() string {
	counter := 0
	return func() string {
		counter++
		return fmt.Sprintf("id%d", counter)
	}
}

func newTabs(t *testing.T, ids ...entity.TabID) *entity.TabCollection {
	t.Helper()
	tabs := entity.NewTabCollection()
	for _, id := range ids {
		require.NoError(t, tabs.Append(entity.NewTabItem(id, string(id), nil)))
	}
	return tabs
}

func tabIDs(tabs *entity.TabCollection) []entity.TabID {
	items := tabs.Items()
	out := make([]entity.TabID, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func mustAt(t *testing.T, tabs *entity.TabCollection, index int) *entity.TabItem {
	t.Helper()
	item, err := tabs.At(index)
	require.NoError(t, err)
	return item
}

// testWorld is a registry backed by the in-memory host with w1, w2, ... handles.
type testWorld struct {
	host    *host.Memory
	windows *usecase.ManageWindowsUseCase
	migrate *usecase.MigrateTabsUseCase
}

func newTestWorld() *testWorld {
	counter := 0
	h := host.NewMemoryWithIDs(func() string {
		counter++
		return fmt.Sprintf("%d", counter)
	})
	windows := usecase.NewManageWindowsUseCase(h, entity.NewWindowRegistry())
	h.OnWindowClosed(func(ctx context.Context, handle entity.WindowHandle) {
		windows.HandleClosed(ctx, handle)
	})
	return &testWorld{
		host:    h,
		windows: windows,
		migrate: usecase.NewMigrateTabsUseCase(),
	}
}

// openWindow opens a window through the host and fills it with ids.
func (w *testWorld) openWindow(t *testing.T, ids ...entity.TabID) (entity.WindowHandle, *entity.TabCollection) {
	t.Helper()
	out, err := w.windows.Open(testContext())
	require.NoError(t, err)
	for _, id := range ids {
		require.NoError(t, out.Tabs.Append(entity.NewTabItem(id, string(id), nil)))
	}
	return out.Handle, out.Tabs
}
