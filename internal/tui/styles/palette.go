package styles

import "github.com/rosagold/rosatheme/internal/theme"

// ThemeFor derives the terminal roles from the resolved global and
// component styles of t in mode. Invalid modes resolve as light.
func ThemeFor(t *theme.Theme, mode theme.ColorMode) Theme {
	mode = theme.NormalizeColorMode(mode)

	global := t.GlobalStyles(mode)
	body := t.Substitute(global.Body)
	placeholder := t.Substitute(global.Placeholder)
	borders := t.Substitute(global.BorderDefaults)

	return Theme{
		Name: "rosa-" + string(mode),
		Mode: mode,
		Tokens: ThemeTokens{
			Background: body.String("bg"),
			Panel:      componentColor(t, theme.ComponentCard, "", mode, "container", "bg"),
			Text:       body.String("color"),
			TextMuted:  placeholder.String("color"),
			Border:     borders.String("borderColor"),
			Accent:     componentColor(t, theme.ComponentButton, "solid", mode, "", "bg"),
			Focus:      componentColor(t, theme.ComponentButton, "ghost", mode, "", "color"),
			Gold:       componentColor(t, theme.ComponentButton, "gold", mode, "", "bg"),
			Success:    paletteColor(t, "accent.mint"),
			Warning:    paletteColor(t, "gold.500"),
			Error:      paletteColor(t, "accent.coral"),
			Info:       paletteColor(t, "accent.lavender"),
		},
	}
}

// componentColor reads property from a component's base style, or from a
// variant when one is named, optionally inside a part.
func componentColor(t *theme.Theme, component, variant string, mode theme.ColorMode, part, property string) string {
	var (
		style theme.StyleMap
		err   error
	)
	if variant == "" {
		style, err = t.ComponentBaseStyle(component, mode)
	} else {
		style, err = t.ComponentVariant(component, variant, mode)
	}
	if err != nil {
		return ""
	}
	style = t.Substitute(style)
	if part != "" {
		nested, ok := style.Nested(part)
		if !ok {
			return ""
		}
		style = nested
	}
	return style.String(property)
}

func paletteColor(t *theme.Theme, token string) string {
	value, _ := t.LookupToken(theme.KindColors, token)
	return value
}
