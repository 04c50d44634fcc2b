package theme

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func TestColorScalesHaveTenWeights(t *testing.T) {
	t.Parallel()

	palette := Default().Palette()
	for _, name := range []string{"rosa", "brand", "gold", "neutral"} {
		g, ok := palette.Group(name)
		if !ok {
			t.Fatalf("palette group %q missing", name)
		}
		if !g.IsScale() {
			t.Fatalf("palette group %q should be a scale", name)
		}
		keys := g.Scale.Map()
		if len(keys) != 10 {
			t.Fatalf("%s has %d weights, want 10", name, len(keys))
		}
		for _, w := range []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"} {
			value, ok := keys[w]
			if !ok {
				t.Fatalf("%s missing weight %s", name, w)
			}
			if !hexPattern.MatchString(value) {
				t.Fatalf("%s.%s = %q is not a hex literal", name, w, value)
			}
		}
	}
}

func TestBrandAliasesRosa(t *testing.T) {
	t.Parallel()

	palette := Default().Palette()
	rosa, _ := palette.Group("rosa")
	brand, _ := palette.Group("brand")
	require.Equal(t, *rosa.Scale, *brand.Scale)
	require.NotSame(t, rosa.Scale, brand.Scale)
}

func TestAccentSwatches(t *testing.T) {
	t.Parallel()

	accent, ok := Default().Palette().Group("accent")
	require.True(t, ok)
	require.False(t, accent.IsScale())
	require.Equal(t, []string{"coral", "lavender", "mint", "peach"}, accent.SwatchNames())
	for _, name := range accent.SwatchNames() {
		require.Regexp(t, hexPattern, accent.Swatches[name])
	}
}

func TestValidateDefaultTheme(t *testing.T) {
	t.Parallel()

	if err := Validate(New()); err != nil {
		t.Fatalf("Validate(default) = %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	t.Parallel()

	th := New()
	brand := *th.palette[4].Scale
	brand[3] = "pink"
	th.palette[4].Scale = &brand

	th.components[ComponentButton].Variants["broken"] = Static(StyleMap{
		"bg":           "brand.250",
		"borderRadius": "huge",
	})
	th.components[ComponentInput].DefaultProps = DefaultProps{Variant: "outline", Size: "xs"}

	err := Validate(th)
	require.Error(t, err)
	msg := err.Error()

	for _, want := range []string{
		`palette brand.300: "pink" is not a hex color`,
		`Button variant "broken" (light): bg: unknown token "brand.250"`,
		`Button variant "broken" (dark): borderRadius: unknown token "huge"`,
		`Input default props: unknown variant "outline" for component Input`,
		`Input default props: unknown size "xs" for component Input`,
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("Validate error missing %q:\n%s", want, msg)
		}
	}
	require.ErrorIs(t, err, ErrUnknownVariant)
	require.ErrorIs(t, err, ErrUnknownSize)
}

func TestValidateNestedPath(t *testing.T) {
	t.Parallel()

	th := New()
	th.components[ComponentModal].BaseStyle = Static(StyleMap{
		"dialog": StyleMap{"bg": "plum.100"},
	})

	err := Validate(th)
	require.Error(t, err)
	require.Contains(t, err.Error(), `Modal base (light): dialog.bg: unknown token "plum.100"`)
}

func TestValidateBodyContrast(t *testing.T) {
	t.Parallel()

	th := New()
	th.global.body = Static(StyleMap{"bg": "neutral.50", "color": "neutral.100", "fontFamily": "body", "lineHeight": "base"})

	err := Validate(th)
	require.Error(t, err)
	require.Contains(t, err.Error(), "body contrast (light)")
	require.Contains(t, err.Error(), "body contrast (dark)")
}

func TestContrastRatio(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastRatio("#000000", "#FFFFFF")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 0.01)

	ratio, err = ContrastRatio("#FFFFFF", "#FFFFFF")
	require.NoError(t, err)
	require.InDelta(t, 1.0, ratio, 0.001)

	same, err := ContrastRatio("#3C4043", "#F8F9FA")
	require.NoError(t, err)
	swapped, err := ContrastRatio("#F8F9FA", "#3C4043")
	require.NoError(t, err)
	require.InDelta(t, same, swapped, 1e-9)
	require.Greater(t, same, MinBodyContrast)

	_, err = ContrastRatio("pink", "#FFFFFF")
	require.Error(t, err)
}
