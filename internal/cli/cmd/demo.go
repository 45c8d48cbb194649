package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/tabgallery/internal/bootstrap"
	"github.com/bnema/tabgallery/internal/cli/styles"
)

var demoPlain bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted tab shuffle and print every step",
	Long: `Open the main window with its demo tabs, then reorder a tab, send one to
a new window, tear one out, drop it elsewhere and send a tab back home.
The window layout is printed after each step.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoPlain, "plain", false, "print one line per window without styling")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	gallery, err := app.NewGallery()
	if err != nil {
		return err
	}
	steps, err := bootstrap.RunDemo(app.Ctx(), gallery)
	printSteps(cmd.OutOrStdout(), app.Theme, steps, demoPlain)
	return err
}

func printSteps(out io.Writer, theme *styles.Theme, steps []bootstrap.DemoStep, plain bool) {
	for i, step := range steps {
		if plain {
			fmt.Fprintf(out, "%d. %s\n", i+1, step.Title)
		} else {
			fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%d. %s", i+1, step.Title)))
		}

		for _, w := range step.Windows {
			if plain {
				fmt.Fprintln(out, "   "+styles.RenderTabLine(string(w.Handle), w.Headers, w.Selected))
				continue
			}
			tabs := styles.NewTabs(theme, w.Headers...)
			tabs.Active = w.Selected
			fmt.Fprintln(out, styles.WindowView{
				Title:   string(w.Handle),
				Tabs:    tabs,
				Focused: w.Active,
			}.Render(theme))
		}
		fmt.Fprintln(out)
	}
}
