package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/theme"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole theme",
	Long: `Export tokens, global styles and component styles for both color modes as
one document, for renderers that load the theme at build time.`,
	Example: `  rosatheme export --format yaml -o theme.yaml`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		switch {
		case IsYAMLOutput():
			format = "yaml"
		case IsJSONOutput():
			format = "json"
		}
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unknown export format %q (want json or yaml)", format)
		}

		doc := theme.Default().Export()

		if exportOutput == "" {
			return writeDocument(cmd.OutOrStdout(), format, doc)
		}

		step := startProgress("Writing " + exportOutput)
		f, err := os.Create(exportOutput)
		if err != nil {
			step.Fail(err)
			return fmt.Errorf("failed to create %s: %w", exportOutput, err)
		}
		if err := writeDocument(f, format, doc); err != nil {
			f.Close()
			step.Fail(err)
			return err
		}
		if err := f.Close(); err != nil {
			step.Fail(err)
			return err
		}
		step.Done()
		return nil
	},
}

func writeDocument(out io.Writer, format string, doc theme.Document) error {
	if format == "yaml" {
		return writeYAML(out, doc)
	}
	return writeJSON(out, doc)
}
