package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/theme"
)

const (
	tokensColors = "colors"
	tokensSpace  = "space"
	tokensRadii  = "radii"
	tokensFonts  = "fonts"
)

var tokenGroups = []string{tokensColors, tokensSpace, tokensRadii, tokensFonts}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:       "tokens [colors|space|radii|fonts]",
	Short:     "List design tokens",
	Long:      "List the palette, spacing, radii and font tokens. Without an argument every group is printed.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: tokenGroups,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := tokenGroups
		if len(args) == 1 {
			groups = args
		}

		t := theme.Default()
		out := cmd.OutOrStdout()

		if IsStructuredOutput() {
			doc := t.Export()
			payload := make(map[string]any, len(groups))
			for _, group := range groups {
				switch group {
				case tokensColors:
					payload[group] = doc.Colors
				case tokensSpace:
					payload[group] = doc.Space
				case tokensRadii:
					payload[group] = doc.Radii
				case tokensFonts:
					payload[group] = doc.Fonts
				}
			}
			if len(groups) == 1 {
				return WriteOutput(out, payload[groups[0]])
			}
			return WriteOutput(out, payload)
		}

		for i, group := range groups {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s:\n", group)
			var err error
			switch group {
			case tokensColors:
				err = writeColorTokens(out, t.Palette())
			case tokensSpace:
				err = writeScale(out, t.Space())
			case tokensRadii:
				err = writeScale(out, t.Radii())
			case tokensFonts:
				err = writeFonts(out, t.Typography())
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func writeColorTokens(out io.Writer, palette theme.Palette) error {
	var rows [][]string
	for _, g := range palette {
		switch {
		case g.IsScale():
			for _, w := range theme.Weights {
				hex, _ := g.Scale.Get(w)
				rows = append(rows, []string{g.Name + "." + w.String(), hex})
			}
		case g.Swatches != nil:
			for _, name := range g.SwatchNames() {
				rows = append(rows, []string{g.Name + "." + name, g.Swatches[name]})
			}
		default:
			rows = append(rows, []string{g.Name, g.Color})
		}
	}
	return writeTable(out, []string{"TOKEN", "VALUE"}, rows)
}

func writeScale(out io.Writer, scale theme.Scale) error {
	rows := make([][]string, 0, len(scale))
	for _, step := range scale {
		rows = append(rows, []string{step.Key, step.Value})
	}
	return writeTable(out, []string{"TOKEN", "VALUE"}, rows)
}

func writeFonts(out io.Writer, fonts theme.Typography) error {
	return writeTable(out, []string{"ROLE", "STACK"}, [][]string{
		{"heading", fonts.Heading},
		{"body", fonts.Body},
		{"mono", fonts.Mono},
	})
}
