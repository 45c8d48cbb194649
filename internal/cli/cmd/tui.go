package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabgallery/internal/cli/model"
	"github.com/bnema/tabgallery/internal/infrastructure/config"
	"github.com/bnema/tabgallery/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Shuffle tabs between windows interactively",
	Long: `Open the interactive gallery. Windows are stacked vertically, each with
its own tab bar. Press ? for the key bindings.

Logs go to logging.file from the config, or nowhere when it is unset.
Editing the config file while the gallery runs applies the new settings.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.MoveLogsOffTerminal(); err != nil {
		return err
	}
	log := logging.FromContext(app.Ctx())

	gallery, err := app.NewGallery()
	if err != nil {
		return err
	}

	m := model.NewGalleryModel(app.Ctx(), app.Theme, gallery)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if err := app.WatchConfig(func(cfg *config.Config) {
		p.Send(model.ConfigReloadedMsg{Config: cfg})
	}); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run gallery: %w", err)
	}
	return nil
}
