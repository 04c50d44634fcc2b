package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/tui/styles"
)

func TestRenderComponentCard(t *testing.T) {
	th := theme.Default()
	styleSet := styles.DefaultStyles(theme.ModeDark)

	out, err := RenderComponentCard(styleSet, th, ComponentCard{
		Component: theme.ComponentButton,
		Props:     theme.Props{Variant: "ghost", Size: "lg"},
		Mode:      theme.ModeDark,
	})
	require.NoError(t, err)
	for _, want := range []string{"Button", "variant: ghost", "size: lg", "mode: dark", "Book now", "brand.300", "_hover.bg", "fontSize"} {
		require.Contains(t, out, want)
	}

	out, err = RenderComponentCard(styleSet, th, ComponentCard{Component: theme.ComponentInput, Mode: theme.ModeLight})
	require.NoError(t, err)
	require.Contains(t, out, "variant: filled", "Input falls back to its default variant")
	require.Contains(t, out, "field.borderColor")

	_, err = RenderComponentCard(styleSet, th, ComponentCard{Component: "Tooltip"})
	require.ErrorIs(t, err, theme.ErrUnknownComponent)
}

func TestRenderPalette(t *testing.T) {
	styleSet := styles.DefaultStyles(theme.ModeLight)
	out := RenderPalette(styleSet, theme.Default().Palette())

	for _, want := range []string{"rosa", "brand", "gold", "neutral", "accent", "mint", "lavender", "900"} {
		require.Contains(t, out, want)
	}
	require.Zero(t, styleSet.Title.GetWidth(), "captions must not resize the title style")
	require.Zero(t, styleSet.Muted.GetWidth())
}

func TestRenderSwatchFitsLongLabels(t *testing.T) {
	styleSet := styles.DefaultStyles(theme.ModeLight)

	out := RenderSwatch(styleSet, "lavender", "#B794F6")
	require.Contains(t, out, "lavender")
	require.Equal(t, 9, lipgloss.Width(out))

	out = RenderSwatch(styleSet, "50", "#FDF2F8")
	require.Equal(t, minSwatchWidth, lipgloss.Width(out))
}

func TestRenderScaleLine(t *testing.T) {
	styleSet := styles.DefaultStyles(theme.ModeLight)
	out := RenderScaleLine(styleSet, "radii", theme.Scale{{Key: "sm", Value: "0.125rem"}, {Key: "lg", Value: "0.5rem"}})
	require.Contains(t, out, "radii:")
	require.Contains(t, out, "sm=0.125rem lg=0.5rem")
}

func TestPreviewQuickActions(t *testing.T) {
	th := theme.Default()
	styleSet := styles.DefaultStyles(theme.ModeLight)

	button, err := th.Component(theme.ComponentButton)
	require.NoError(t, err)
	bar := RenderQuickActionBar(styleSet, PreviewQuickActions(theme.ModeLight, button))
	require.Contains(t, bar, "t:Dark")
	require.Contains(t, bar, "v:Variant")
	require.Contains(t, bar, "s:Size")
	require.False(t, styleSet.Accent.GetBold(), "key styling must not leak into the accent style")

	card, err := th.Component(theme.ComponentCard)
	require.NoError(t, err)
	bar = RenderQuickActionBar(styleSet, PreviewQuickActions(theme.ModeDark, card))
	require.Contains(t, bar, "t:Light")
	require.False(t, strings.Contains(bar, "v:Variant"), "Card has no variants")
	require.False(t, strings.Contains(bar, "s:Size"), "Card has no sizes")
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	require.Equal(t, "ab", truncate("abcdef", 2))
}
