package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tabgallery/internal/application/port/mocks"
	"github.com/bnema/tabgallery/internal/application/usecase"
	"github.com/bnema/tabgallery/internal/domain/entity"
)

func TestManageWindows_OpenRegistersWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	registry := entity.NewWindowRegistry()
	uc := usecase.NewManageWindowsUseCase(host, registry)

	host.EXPECT().CreateWindow(gomock.Any()).Return(entity.WindowHandle("w1"), nil)

	out, err := uc.Open(testContext())
	require.NoError(t, err)
	assert.Equal(t, entity.WindowHandle("w1"), out.Handle)
	assert.Equal(t, 0, out.Tabs.Count())

	found, err := registry.Find("w1")
	require.NoError(t, err)
	assert.Same(t, out.Tabs, found)
}

func TestManageWindows_OpenHostFailureRegistersNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	registry := entity.NewWindowRegistry()
	uc := usecase.NewManageWindowsUseCase(host, registry)

	host.EXPECT().CreateWindow(gomock.Any()).Return(entity.WindowHandle(""), errors.New("display gone"))

	out, err := uc.Open(testContext())
	assert.Nil(t, out)
	assert.ErrorContains(t, err, "display gone")
	assert.Equal(t, 0, registry.Len())
}

func TestManageWindows_OpenRejectsReusedHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	registry := entity.NewWindowRegistry()
	uc := usecase.NewManageWindowsUseCase(host, registry)

	host.EXPECT().CreateWindow(gomock.Any()).Return(entity.WindowHandle("w1"), nil).Times(2)

	_, err := uc.Open(testContext())
	require.NoError(t, err)
	_, err = uc.Open(testContext())
	assert.ErrorIs(t, err, entity.ErrAlreadyRegistered)
}

func TestManageWindows_CloseUnregistersAndClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	registry := entity.NewWindowRegistry()
	uc := usecase.NewManageWindowsUseCase(host, registry)

	tabs := newTabs(t, "A", "B")
	require.NoError(t, uc.Attach(testContext(), "w1", tabs))

	host.EXPECT().CloseWindow(gomock.Any(), entity.WindowHandle("w1")).Return(nil)

	require.NoError(t, uc.Close(testContext(), "w1"))
	assert.Equal(t, 0, registry.Len())
	assert.Equal(t, 0, tabs.Count())

	// The host's own close notification arriving afterwards is harmless.
	assert.False(t, uc.HandleClosed(testContext(), "w1"))
}

func TestManageWindows_CloseHostFailureKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	registry := entity.NewWindowRegistry()
	uc := usecase.NewManageWindowsUseCase(host, registry)

	require.NoError(t, uc.Attach(testContext(), "w1", newTabs(t, "A")))
	host.EXPECT().CloseWindow(gomock.Any(), entity.WindowHandle("w1")).Return(errors.New("busy"))

	assert.Error(t, uc.Close(testContext(), "w1"))
	assert.Equal(t, 1, registry.Len())
}

func TestManageWindows_CloseIfEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	registry := entity.NewWindowRegistry()
	uc := usecase.NewManageWindowsUseCase(host, registry)

	require.NoError(t, uc.Attach(testContext(), "full", newTabs(t, "A")))
	require.NoError(t, uc.Attach(testContext(), "empty", entity.NewTabCollection()))

	host.EXPECT().CloseWindow(gomock.Any(), entity.WindowHandle("empty")).Return(nil)

	closed, err := uc.CloseIfEmpty(testContext(), "full")
	require.NoError(t, err)
	assert.False(t, closed)

	closed, err = uc.CloseIfEmpty(testContext(), "empty")
	require.NoError(t, err)
	assert.True(t, closed)

	_, err = uc.CloseIfEmpty(testContext(), "empty")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestManageWindows_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockWindowHost(ctrl)
	uc := usecase.NewManageWindowsUseCase(host, entity.NewWindowRegistry())

	host.EXPECT().ActivateWindow(gomock.Any(), entity.WindowHandle("w1")).Return(nil)

	assert.NoError(t, uc.Activate(testContext(), "w1"))
}
