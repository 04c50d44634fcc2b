// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/rosagold/rosatheme/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	Title    string
	Subtitle string
	// Suggestions are commands the user can run instead.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	Command     string
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	lines := []string{styleSet.Muted.Render(e.Title)}
	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "", styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := fmt.Sprintf("  %s", styleSet.Accent.Render(s.Command))
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// NoVariants is shown for components that only carry a base style.
func NoVariants(component string) EmptyState {
	return EmptyState{
		Title:    fmt.Sprintf("%s has no variants", component),
		Subtitle: "Only the base style applies.",
		Suggestions: []Suggestion{
			{Command: "rosatheme base " + component, Description: "print the base style"},
		},
	}
}

// NoSizes is shown for components without a size scale.
func NoSizes(component string) EmptyState {
	return EmptyState{
		Title: fmt.Sprintf("%s has no sizes", component),
	}
}

// NoComponents is shown when the theme defines no components.
func NoComponents() EmptyState {
	return EmptyState{
		Title:    "No components defined",
		Subtitle: "The theme only carries tokens and global styles.",
		Suggestions: []Suggestion{
			{Command: "rosatheme tokens", Description: "list the tokens"},
			{Command: "rosatheme global", Description: "print the global styles"},
		},
	}
}
