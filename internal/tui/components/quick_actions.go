package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string
	Label   string
	Enabled bool
}

// RenderQuickActionBar renders the enabled actions as "t:Dark  v:Variant".
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		parts = append(parts, fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label)))
	}
	return strings.Join(parts, "  ")
}

// PreviewQuickActions returns the preview key bindings for the current
// selection.
func PreviewQuickActions(mode theme.ColorMode, spec *theme.ComponentSpec) []QuickAction {
	toggleLabel := "Dark"
	if mode.IsDark() {
		toggleLabel = "Light"
	}
	hasVariants := spec != nil && len(spec.Variants) > 1
	hasSizes := spec != nil && len(spec.Sizes) > 1

	return []QuickAction{
		{Key: "t", Label: toggleLabel, Enabled: true},
		{Key: "tab", Label: "Component", Enabled: true},
		{Key: "v", Label: "Variant", Enabled: hasVariants},
		{Key: "s", Label: "Size", Enabled: hasSizes},
		{Key: "p", Label: "Palette", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// RenderCenteredActions renders the action bar centered in width.
func RenderCenteredActions(styleSet styles.Styles, actions []QuickAction, width int) string {
	bar := RenderQuickActionBar(styleSet, actions)
	if bar == "" || width <= 0 {
		return bar
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar)
}
