package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/tui/styles"
)

// minSwatchWidth is the narrowest swatch; longer captions widen it.
const minSwatchWidth = 6

// RenderSwatch renders one color block labelled with its key.
func RenderSwatch(styleSet styles.Styles, label, hex string) string {
	return renderSwatch(styleSet, label, hex, swatchWidth(label))
}

func renderSwatch(styleSet styles.Styles, label, hex string, width int) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(width).
		Render("")
	caption := styleSet.Muted.Copy().Width(width).Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, block, caption)
}

func swatchWidth(labels ...string) int {
	width := minSwatchWidth
	for _, label := range labels {
		width = max(width, lipgloss.Width(label)+1)
	}
	return width
}

// RenderPaletteGroup renders a palette group as a row of equal-width
// swatches. Scales render in weight order, swatch groups by name.
func RenderPaletteGroup(styleSet styles.Styles, group theme.PaletteGroup) string {
	type swatch struct{ label, hex string }
	var swatches []swatch
	switch {
	case group.IsScale():
		for _, w := range theme.Weights {
			hex, _ := group.Scale.Get(w)
			swatches = append(swatches, swatch{w.String(), hex})
		}
	case group.Swatches != nil:
		for _, name := range group.SwatchNames() {
			swatches = append(swatches, swatch{name, group.Swatches[name]})
		}
	default:
		swatches = append(swatches, swatch{group.Name, group.Color})
	}

	labels := make([]string, 0, len(swatches))
	for _, sw := range swatches {
		labels = append(labels, sw.label)
	}
	width := swatchWidth(labels...)

	cells := make([]string, 0, len(swatches))
	for _, sw := range swatches {
		cells = append(cells, renderSwatch(styleSet, sw.label, sw.hex, width))
	}

	title := styleSet.Title.Render(group.Name)
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// RenderPalette renders every group of the palette, one row each.
func RenderPalette(styleSet styles.Styles, palette theme.Palette) string {
	rows := make([]string, 0, len(palette))
	for _, group := range palette {
		rows = append(rows, RenderPaletteGroup(styleSet, group))
	}
	return strings.Join(rows, "\n")
}

// RenderScaleLine renders a scale as "key=value" pairs on one line.
func RenderScaleLine(styleSet styles.Styles, name string, scale theme.Scale) string {
	parts := make([]string, 0, len(scale))
	for _, step := range scale {
		parts = append(parts, fmt.Sprintf("%s=%s", step.Key, step.Value))
	}
	return styleSet.Text.Render(name+": ") + styleSet.Muted.Render(strings.Join(parts, " "))
}
