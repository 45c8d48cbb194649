package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerWatch_ReloadsAndNotifies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gallery]\nnew_tab_header = \"Before\"\n"), 0o600))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changed <- cfg })
	require.NoError(t, mgr.Watch(context.Background()))
	// A second call is a no-op.
	require.NoError(t, mgr.Watch(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("[gallery]\nnew_tab_header = \"After\"\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changed:
			if cfg.Gallery.NewTabHeader == "After" {
				assert.Equal(t, "After", mgr.Get().Gallery.NewTabHeader)
				return
			}
		case <-deadline:
			t.Fatal("config change was not delivered")
		}
	}
}
