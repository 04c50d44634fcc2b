package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/theme"
)

var (
	componentVariant string
	componentSize    string
)

func init() {
	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(baseCmd)
	rootCmd.AddCommand(variantCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(componentCmd)
	rootCmd.AddCommand(componentsCmd)

	componentCmd.Flags().StringVar(&componentVariant, "variant", "", "variant (default: the component's default)")
	componentCmd.Flags().StringVar(&componentSize, "size", "", "size (default: the component's default)")
}

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Print the global styles",
	Long:  "Print the document-wide styles (body, placeholder, border defaults) for the color mode.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context())
		if err != nil {
			return err
		}
		styles := theme.Default().GlobalStyles(mode)

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, styles)
		}
		sections := []struct {
			selector string
			style    theme.StyleMap
		}{
			{theme.SelectorBody, styles.Body},
			{theme.SelectorPlaceholder, styles.Placeholder},
			{theme.SelectorBorderDefaults, styles.BorderDefaults},
		}
		for i, section := range sections {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (%s)\n", section.selector, mode)
			if err := writeStyleTable(out, section.style); err != nil {
				return err
			}
		}
		return nil
	},
}

var baseCmd = &cobra.Command{
	Use:   "base <component>",
	Short: "Print a component's base style",
	Example: `  rosatheme base Card --mode dark
  rosatheme base Button --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context())
		if err != nil {
			return err
		}
		style, err := theme.Default().ComponentBaseStyle(args[0], mode)
		if err != nil {
			return err
		}
		return writeStyle(cmd.OutOrStdout(), style)
	},
}

var variantCmd = &cobra.Command{
	Use:     "variant <component> <variant>",
	Short:   "Print a component variant",
	Example: `  rosatheme variant Button ghost --mode dark`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context())
		if err != nil {
			return err
		}
		style, err := theme.Default().ComponentVariant(args[0], args[1], mode)
		if err != nil {
			return err
		}
		return writeStyle(cmd.OutOrStdout(), style)
	},
}

var sizeCmd = &cobra.Command{
	Use:     "size <component> <size>",
	Short:   "Print a component size",
	Long:    "Print a component size. Sizes are the same in both color modes.",
	Example: `  rosatheme size Button lg`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := theme.Default().ComponentSize(args[0], args[1])
		if err != nil {
			return err
		}
		return writeStyle(cmd.OutOrStdout(), style)
	},
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults <component>",
	Short: "Print a component's default props",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := theme.Default().DefaultProps(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, props)
		}
		return writeTable(out, []string{"PROP", "VALUE"}, [][]string{
			{"variant", dashIfEmpty(props.Variant)},
			{"size", dashIfEmpty(props.Size)},
		})
	},
}

var componentCmd = &cobra.Command{
	Use:   "component <component>",
	Short: "Print base, variant and size styles together",
	Long: `Resolve a component selection. Without --variant or --size the
component's default props are used; a component without a default simply
leaves that layer out.`,
	Example: `  rosatheme component Input --mode dark
  rosatheme component Button --variant gold --size lg --yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context())
		if err != nil {
			return err
		}
		resolved, err := theme.Default().ResolveComponent(args[0], theme.Props{
			Variant: componentVariant,
			Size:    componentSize,
		}, mode)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, resolved)
		}
		return writeResolved(out, resolved)
	},
}

func writeResolved(out io.Writer, resolved theme.ResolvedComponent) error {
	fmt.Fprintf(out, "%s (%s)\n", resolved.Component, resolved.Mode)
	layers := []struct {
		title string
		name  string
		style theme.StyleMap
	}{
		{"base", "", resolved.Base},
		{"variant", resolved.Variant, resolved.VariantStyle},
		{"size", resolved.Size, resolved.SizeStyle},
	}
	for _, layer := range layers {
		if layer.title != "base" && layer.name == "" {
			continue
		}
		title := layer.title
		if layer.name != "" {
			title = fmt.Sprintf("%s %s", layer.title, layer.name)
		}
		fmt.Fprintf(out, "\n%s:\n", title)
		if err := writeStyleTable(out, layer.style); err != nil {
			return err
		}
	}
	return nil
}

// ComponentSummary lists the selectors of one component.
type ComponentSummary struct {
	Name         string             `json:"name" yaml:"name"`
	Variants     []string           `json:"variants" yaml:"variants"`
	Sizes        []string           `json:"sizes" yaml:"sizes"`
	DefaultProps theme.DefaultProps `json:"defaultProps" yaml:"defaultProps"`
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List components with their variants and sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summaries, err := componentSummaries(theme.Default())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, summaries)
		}
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{
				s.Name,
				formatList(s.Variants),
				formatList(s.Sizes),
				dashIfEmpty(s.DefaultProps.Variant),
				dashIfEmpty(s.DefaultProps.Size),
			})
		}
		return writeTable(out, []string{"COMPONENT", "VARIANTS", "SIZES", "DEFAULT VARIANT", "DEFAULT SIZE"}, rows)
	},
}

func componentSummaries(t *theme.Theme) ([]ComponentSummary, error) {
	names := t.Components()
	summaries := make([]ComponentSummary, 0, len(names))
	for _, name := range names {
		spec, err := t.Component(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ComponentSummary{
			Name:         name,
			Variants:     spec.VariantNames(),
			Sizes:        spec.SizeNames(),
			DefaultProps: spec.DefaultProps,
		})
	}
	return summaries, nil
}

func dashIfEmpty(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
