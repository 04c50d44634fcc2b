package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rosagold/rosatheme/internal/prefs"
	"github.com/rosagold/rosatheme/internal/theme"
)

var (
	statusOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FD1C7"))
	statusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("#D4AF37"))
	statusErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B9D"))
)

func colorize(text string, style lipgloss.Style) string {
	if IsStructuredOutput() {
		return text
	}
	return style.Render(text)
}

func formatModeSource(mode theme.ColorMode, source prefs.Source) string {
	return colorize(formatStatusLabel(string(mode), "from "+string(source)), statusOK)
}

func formatCheck(ok bool, detail string) string {
	if ok {
		return colorize(formatStatusLabel("OK", detail), statusOK)
	}
	return colorize(formatStatusLabel("ERR", detail), statusErr)
}

func formatContrast(ratio float64) string {
	detail := fmt.Sprintf("%.2f:1", ratio)
	if ratio >= theme.MinBodyContrast {
		return colorize(formatStatusLabel("AA", detail), statusOK)
	}
	return colorize(formatStatusLabel("LOW", detail), statusWarn)
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}
