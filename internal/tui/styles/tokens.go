// Package styles turns resolved theme styles into lipgloss styles for the
// terminal preview.
package styles

import "github.com/rosagold/rosatheme/internal/theme"

// ThemeTokens defines the semantic color roles for the TUI. Every role is a
// concrete hex color.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Gold       string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Theme bundles the roles for one color mode.
type Theme struct {
	Name   string
	Mode   theme.ColorMode
	Tokens ThemeTokens
}

// Themes returns the terminal theme for every color mode of t.
func Themes(t *theme.Theme) map[theme.ColorMode]Theme {
	out := make(map[theme.ColorMode]Theme, len(theme.ColorModes))
	for _, mode := range theme.ColorModes {
		out[mode] = ThemeFor(t, mode)
	}
	return out
}
