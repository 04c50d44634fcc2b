package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/logging"
	"github.com/rosagold/rosatheme/internal/prefs"
	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/tui"
	"github.com/rosagold/rosatheme/internal/tui/components"
	"github.com/rosagold/rosatheme/internal/tui/styles"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(uiCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print palette swatches and component samples",
	Long:  "Render the palette and every component with its default props in the terminal, without starting an interactive program.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context())
		if err != nil {
			return err
		}

		t := theme.Default()
		styleSet := styles.DefaultStyles(mode)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, styleSet.Title.Render(fmt.Sprintf("Palette (%s)", mode)))
		fmt.Fprintln(out, components.RenderPalette(styleSet, t.Palette()))
		fmt.Fprintln(out)

		for _, name := range t.Components() {
			card, err := components.RenderComponentCard(styleSet, t, components.ComponentCard{
				Component: name,
				Mode:      mode,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, card)
		}
		return nil
	},
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive preview",
	Long:  "Launch the terminal preview. Press t to toggle the color mode; the choice is saved.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !IsInteractive() {
			return &PreflightError{
				Message:  "the preview requires an interactive terminal",
				Hint:     "run with a TTY and without --non-interactive",
				NextStep: "rosatheme preview",
			}
		}

		ctx := cmd.Context()
		svc, closeDB, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		mode, _, err := svc.Current(ctx)
		if err != nil {
			return err
		}
		if modeFlag != "" {
			mode = parseModeArg(logging.Component("cli"), modeFlag)
		}

		return tui.Run(tui.Options{
			Theme:        theme.Default(),
			Mode:         mode,
			OnModeChange: saveMode(cmd, svc),
		})
	},
}

func saveMode(cmd *cobra.Command, svc *prefs.Service) tui.ModeChangeFunc {
	return func(mode theme.ColorMode) error {
		return svc.Set(cmd.Context(), mode)
	}
}
