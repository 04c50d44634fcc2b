package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/tui/styles"
)

const maxValueLength = 44

// ComponentCard selects what to render for one component.
type ComponentCard struct {
	Component string
	Props     theme.Props
	Mode      theme.ColorMode
}

// RenderComponentCard renders a sample of the component styled by the
// theme, followed by the resolved properties.
func RenderComponentCard(styleSet styles.Styles, t *theme.Theme, card ComponentCard) (string, error) {
	resolved, err := t.ResolveComponent(card.Component, card.Props, card.Mode)
	if err != nil {
		return "", err
	}
	sampleStyle, err := styles.ComponentStyle(t, card.Component, card.Props, card.Mode)
	if err != nil {
		return "", err
	}

	header := styleSet.Accent.Render(card.Component)
	selection := styleSet.Muted.Render(fmt.Sprintf("variant: %s  size: %s  mode: %s",
		defaultIfEmpty(resolved.Variant, "--"),
		defaultIfEmpty(resolved.Size, "--"),
		resolved.Mode,
	))
	sample := sampleStyle.Render(sampleLabel(card.Component))

	lines := []string{header, selection, "", sample, ""}
	lines = append(lines, renderProperties(styleSet, "base", resolved.Base)...)
	lines = append(lines, renderProperties(styleSet, "variant", resolved.VariantStyle)...)
	lines = append(lines, renderProperties(styleSet, "size", resolved.SizeStyle)...)

	return styleSet.Panel.Render(strings.Join(lines, "\n")), nil
}

func sampleLabel(component string) string {
	switch component {
	case theme.ComponentButton:
		return "Book now"
	case theme.ComponentInput:
		return "Your name"
	case theme.ComponentModal:
		return "Confirm appointment"
	default:
		return "Manicure & pedicure"
	}
}

func renderProperties(styleSet styles.Styles, layer string, style theme.StyleMap) []string {
	if len(style) == 0 {
		return nil
	}
	lines := []string{styleSet.Text.Render(layer + ":")}
	style.Walk(func(path []string, property, value string) {
		key := strings.Join(append(append([]string(nil), path...), property), ".")
		lines = append(lines, fmt.Sprintf("  %s %s",
			styleSet.Muted.Render(key),
			styleSet.Text.Render(truncate(value, maxValueLength)),
		))
	})
	return lines
}

// RenderComponentList renders the component names, marking the selected one.
func RenderComponentList(styleSet styles.Styles, names []string, selected int) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if i == selected {
			parts[i] = styleSet.Focus.Render("[" + name + "]")
			continue
		}
		parts[i] = styleSet.Muted.Render(" " + name + " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
