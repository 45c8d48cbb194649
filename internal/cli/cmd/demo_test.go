package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabgallery/internal/bootstrap"
	"github.com/bnema/tabgallery/internal/cli/styles"
	"github.com/bnema/tabgallery/internal/infrastructure/config"
	"github.com/bnema/tabgallery/internal/infrastructure/host"
)

func TestPrintSteps_Plain(t *testing.T) {
	n := 0
	g, err := bootstrap.NewGallery(context.Background(), bootstrap.GalleryInput{
		Config: config.DefaultConfig().Gallery,
		Host: host.NewMemoryWithIDs(func() string {
			n++
			return fmt.Sprintf("%d", n)
		}),
	})
	require.NoError(t, err)

	steps, err := bootstrap.RunDemo(context.Background(), g)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSteps(&buf, styles.NewTheme(), steps, true)

	out := buf.String()
	assert.Contains(t, out, "1. Start\n   win-1: Item 0 | Item 1 | Item 2 | [New Item]\n")
	assert.Contains(t, out, "6. Move tab to main window\n   win-1: Item 2 | Item 1 | [Item 0]\n")
}

func TestConfigSchemaCommand(t *testing.T) {
	var buf bytes.Buffer
	configSchemaCmd.SetOut(&buf)
	require.NoError(t, configSchemaCmd.RunE(configSchemaCmd, nil))
	assert.Contains(t, buf.String(), "demo_tabs")
}
