package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLookupToken(t *testing.T) {
	t.Parallel()

	th := Default()
	tests := []struct {
		name   string
		kind   TokenKind
		token  string
		want   string
		wantOK bool
	}{
		{name: "brand weight", kind: KindColors, token: "brand.200", want: "#E8B4CB", wantOK: true},
		{name: "gold weight", kind: KindColors, token: "gold.400", want: "#D4AF37", wantOK: true},
		{name: "gray base", kind: KindColors, token: "gray.900", want: "#171923", wantOK: true},
		{name: "accent swatch", kind: KindColors, token: "accent.mint", want: "#4FD1C7", wantOK: true},
		{name: "white", kind: KindColors, token: "white", want: "#FFFFFF", wantOK: true},
		{name: "hex literal", kind: KindColors, token: "#123456", want: "#123456", wantOK: true},
		{name: "rgba literal", kind: KindColors, token: "rgba(0, 0, 0, 0.3)", want: "rgba(0, 0, 0, 0.3)", wantOK: true},
		{name: "unknown weight", kind: KindColors, token: "brand.250", wantOK: false},
		{name: "unknown group", kind: KindColors, token: "plum.100", wantOK: false},
		{name: "scale without weight", kind: KindColors, token: "brand", wantOK: false},
		{name: "single with key", kind: KindColors, token: "white.100", wantOK: false},
		{name: "space step", kind: KindSpace, token: "2.5", want: "0.625rem", wantOK: true},
		{name: "space px", kind: KindSpace, token: "px", want: "1px", wantOK: true},
		{name: "size uses space", kind: KindSizes, token: "10", want: "2.5rem", wantOK: true},
		{name: "radius", kind: KindRadii, token: "xl", want: "0.75rem", wantOK: true},
		{name: "radius full", kind: KindRadii, token: "full", want: "9999px", wantOK: true},
		{name: "font role", kind: KindFonts, token: "mono", want: `"Fira Code", "Consolas", monospace`, wantOK: true},
		{name: "font size", kind: KindFontSizes, token: "lg", want: "1.125rem", wantOK: true},
		{name: "numeric weight", kind: KindFontWeights, token: "500", want: "500", wantOK: true},
		{name: "named weight", kind: KindFontWeights, token: "bold", want: "700", wantOK: true},
		{name: "line height", kind: KindLineHeights, token: "base", want: "1.5", wantOK: true},
		{name: "shadow token", kind: KindShadows, token: "lg", want: "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)", wantOK: true},
		{name: "shadow literal", kind: KindShadows, token: "0 0 0 1px red", want: "0 0 0 1px red", wantOK: true},
		{name: "empty", kind: KindColors, token: "  ", wantOK: false},
		{name: "unknown kind", kind: TokenKind("zIndices"), token: "1", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := th.LookupToken(tt.kind, tt.token)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("LookupToken(%s, %q) = (%q, %v), want (%q, %v)", tt.kind, tt.token, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	th := Default()
	style, err := th.ComponentVariant(ComponentButton, "solid", ModeLight)
	if err != nil {
		t.Fatalf("ComponentVariant: %v", err)
	}

	want := StyleMap{
		"bg":    "#E8B4CB",
		"color": "#FFFFFF",
		"_hover": StyleMap{
			"bg":        "#DB91B8",
			"transform": "translateY(-2px)",
			"boxShadow": "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
		},
		"_active": StyleMap{
			"bg":        "#CF6FA5",
			"transform": "translateY(0)",
		},
	}

	got := th.Substitute(style)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Substitute mismatch (-want +got):\n%s", diff)
	}
	if style.String("bg") != "brand.200" {
		t.Fatalf("Substitute modified its input: bg = %q", style.String("bg"))
	}
}

func TestStyleMapWalkOrder(t *testing.T) {
	t.Parallel()

	style := StyleMap{
		"b": "2",
		"a": StyleMap{"z": "26", "y": "25"},
		"c": 3,
	}

	var got []string
	style.Walk(func(path []string, property, value string) {
		got = append(got, joinPath(path, property)+"="+value)
	})

	want := []string{"a.y=25", "a.z=26", "b=2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func joinPath(path []string, property string) string {
	out := ""
	for _, p := range path {
		out += p + "."
	}
	return out + property
}
