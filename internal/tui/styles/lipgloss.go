package styles

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rosagold/rosatheme/internal/theme"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Gold    lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles builds styles from the default theme in mode.
func DefaultStyles(mode theme.ColorMode) Styles {
	return BuildStyles(ThemeFor(theme.Default(), mode))
}

// BuildStyles converts theme tokens into lipgloss styles. Each role gets
// its own style; derive from one with Copy.
func BuildStyles(th Theme) Styles {
	tokens := th.Tokens
	text := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(tokens.Background)).
			Foreground(lipgloss.Color(color))
	}

	return Styles{
		Theme:   th,
		Title:   text(tokens.Text).Bold(true),
		Text:    text(tokens.Text),
		Muted:   text(tokens.TextMuted),
		Accent:  text(tokens.Accent),
		Gold:    text(tokens.Gold),
		Panel:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Border:  text(tokens.Border),
		Focus:   text(tokens.Focus).Bold(true),
		Success: text(tokens.Success),
		Warning: text(tokens.Warning),
		Error:   text(tokens.Error),
		Info:    text(tokens.Info),
	}
}

// cellsPerRem approximates one rem in terminal columns.
const cellsPerRem = 2

// FromStyleMap renders a substituted style map as a lipgloss style. Only
// top-level properties are read; pseudo-states and parts are ignored.
// Properties with no terminal equivalent (shadows, transforms) are skipped.
func FromStyleMap(style theme.StyleMap) lipgloss.Style {
	out := lipgloss.NewStyle()

	if bg := style.String("bg"); isHex(bg) {
		out = out.Background(lipgloss.Color(bg))
	}
	if fg := style.String("color"); isHex(fg) {
		out = out.Foreground(lipgloss.Color(fg))
	}
	if weight, err := strconv.Atoi(style.String("fontWeight")); err == nil && weight >= 500 {
		out = out.Bold(true)
	}
	if cells, ok := remCells(style.String("px")); ok {
		out = out.Padding(0, cells)
	}

	if style.String("border") != "" || style.String("borderColor") != "" {
		border := lipgloss.NormalBorder()
		if radius, ok := remCells(style.String("borderRadius")); ok && radius > 0 {
			border = lipgloss.RoundedBorder()
		}
		out = out.BorderStyle(border)
		if color := style.String("borderColor"); isHex(color) {
			out = out.BorderForeground(lipgloss.Color(color))
		}
	}
	return out
}

// ComponentStyle resolves a component selection in mode and merges base,
// variant, and size into one lipgloss style. Parts such as a Card's
// container are flattened into the top level.
func ComponentStyle(t *theme.Theme, component string, props theme.Props, mode theme.ColorMode) (lipgloss.Style, error) {
	resolved, err := t.ResolveComponent(component, props, mode)
	if err != nil {
		return lipgloss.Style{}, err
	}

	merged := theme.StyleMap{}
	for _, layer := range []theme.StyleMap{resolved.Base, resolved.VariantStyle, resolved.SizeStyle} {
		for key, value := range flattenParts(layer) {
			merged[key] = value
		}
	}
	return FromStyleMap(t.Substitute(merged)), nil
}

// flattenParts lifts component parts (keys not starting with "_") into the
// top level. Pseudo-states are kept nested under their key.
func flattenParts(style theme.StyleMap) theme.StyleMap {
	out := theme.StyleMap{}
	for _, key := range style.Keys() {
		nested, ok := style.Nested(key)
		switch {
		case !ok:
			out[key] = style[key]
		case !strings.HasPrefix(key, "_"):
			for k, v := range flattenParts(nested) {
				out[k] = v
			}
		default:
			out[key] = nested
		}
	}
	return out
}

func remCells(value string) (int, bool) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasSuffix(value, "rem"):
		rem, err := strconv.ParseFloat(strings.TrimSuffix(value, "rem"), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(rem * cellsPerRem)), true
	case value == "0":
		return 0, true
	}
	return 0, false
}

func isHex(value string) bool {
	return strings.HasPrefix(value, "#")
}
