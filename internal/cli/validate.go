package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/theme"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidationReport is the structured result of `rosatheme validate`.
type ValidationReport struct {
	Valid    bool                        `json:"valid" yaml:"valid"`
	Problems []string                    `json:"problems,omitempty" yaml:"problems,omitempty"`
	Contrast map[theme.ColorMode]float64 `json:"contrast" yaml:"contrast"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the theme tables",
	Long: `Check every palette scale, token reference and default prop, and that body
text meets WCAG AA contrast in both color modes. Exits non-zero on problems.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		step := startProgress("Validating theme")
		t := theme.Default()
		report := buildValidationReport(t)
		if report.Valid {
			step.Done()
		} else {
			step.Fail(nil)
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			if err := WriteOutput(out, report); err != nil {
				return err
			}
		} else {
			for _, mode := range theme.ColorModes {
				fmt.Fprintf(out, "body contrast (%s): %s\n", mode, formatContrast(report.Contrast[mode]))
			}
			for _, problem := range report.Problems {
				fmt.Fprintln(out, formatCheck(false, problem))
			}
			if report.Valid {
				fmt.Fprintln(out, formatCheck(true, "theme is valid"))
			}
		}

		if !report.Valid {
			return fmt.Errorf("theme has %d problem(s)", len(report.Problems))
		}
		return nil
	},
}

func buildValidationReport(t *theme.Theme) ValidationReport {
	report := ValidationReport{
		Valid:    true,
		Contrast: make(map[theme.ColorMode]float64, len(theme.ColorModes)),
	}

	if err := theme.Validate(t); err != nil {
		report.Valid = false
		report.Problems = splitJoined(err)
	}

	for _, mode := range theme.ColorModes {
		body := t.Substitute(t.GlobalStyles(mode).Body)
		if ratio, err := theme.ContrastRatio(body.String("color"), body.String("bg")); err == nil {
			report.Contrast[mode] = ratio
		}
	}
	return report
}

// splitJoined flattens an errors.Join result into its messages.
func splitJoined(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
