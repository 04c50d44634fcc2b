package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportDocument(t *testing.T) {
	t.Parallel()

	doc := Default().Export()

	require.Len(t, doc.Components, 4)
	require.Equal(t, DefaultProps{Variant: "filled"}, doc.Components[ComponentInput].DefaultProps)
	require.Nil(t, doc.Components[ComponentInput].BaseStyle)
	require.Len(t, doc.Components[ComponentButton].Sizes, 3)
	require.Equal(t, "brand.300", doc.Components[ComponentButton].Variants["ghost"][ModeDark].String("color"))
	require.Equal(t, "gray.900", doc.Global[ModeDark].Body.String("bg"))

	brand, ok := doc.Colors["brand"].(map[string]string)
	require.True(t, ok)
	require.Equal(t, "#E8B4CB", brand["200"])
	require.Equal(t, "#FFFFFF", doc.Colors["white"])

	// Scales the component styles refer to by token.
	for _, ref := range []struct {
		scale Scale
		key   string
		want  string
	}{
		{doc.FontSizes, "sm", "0.875rem"},
		{doc.FontWeights, "medium", "500"},
		{doc.LineHeights, "base", "1.5"},
		{doc.Shadows, "lg", "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)"},
	} {
		got, ok := ref.scale.Lookup(ref.key)
		require.True(t, ok, ref.key)
		require.Equal(t, ref.want, got)
	}
}

func TestExportEncodes(t *testing.T) {
	t.Parallel()

	doc := Default().Export()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Contains(t, decoded, "components")
	require.Contains(t, decoded, "global")

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), "initialColorMode: light")
	require.Contains(t, string(out), "useSystemColorMode: true")
}
