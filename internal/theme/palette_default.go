package theme

import "strings"

// Palette is the ordered list of color groups of a theme.
type Palette []PaletteGroup

// Group returns the group called name.
func (p Palette) Group(name string) (PaletteGroup, bool) {
	for _, g := range p {
		if g.Name == name {
			return g, true
		}
	}
	return PaletteGroup{}, false
}

// Lookup resolves a color token such as "brand.200", "accent.mint" or
// "white".
func (p Palette) Lookup(token string) (string, bool) {
	name, key, _ := strings.Cut(token, ".")
	g, ok := p.Group(name)
	if !ok {
		return "", false
	}
	return g.Lookup(key)
}

// Scales returns the groups that carry a weight structure.
func (p Palette) Scales() []PaletteGroup {
	out := make([]PaletteGroup, 0, len(p))
	for _, g := range p {
		if g.IsScale() {
			out = append(out, g)
		}
	}
	return out
}

var rosaScale = ColorScale{
	"#FCF2F7",
	"#F7E1ED",
	"#E8B4CB", // primary rose gold
	"#DB91B8",
	"#CF6FA5",
	"#C24D92",
	"#A53D7A",
	"#882D62",
	"#6B1E4A",
	"#4E0E32",
}

var goldScale = ColorScale{
	"#FDF8E8",
	"#F9ECBE",
	"#F4D775",
	"#EFC32C",
	"#D4AF37", // primary gold
	"#B8941F",
	"#9C7A07",
	"#806000",
	"#644600",
	"#482C00",
}

var neutralScale = ColorScale{
	"#F8F9FA",
	"#F1F3F4",
	"#E8EAED",
	"#DADCE0",
	"#BDC1C6",
	"#9AA0A6",
	"#80868B",
	"#5F6368",
	"#3C4043",
	"#202124",
}

// grayScale is the base gray the dark arms of the component styles use.
var grayScale = ColorScale{
	"#F7FAFC",
	"#EDF2F7",
	"#E2E8F0",
	"#CBD5E0",
	"#A0AEC0",
	"#718096",
	"#4A5568",
	"#2D3748",
	"#1A202C",
	"#171923",
}

var accentSwatches = map[string]string{
	"coral":    "#FF6B9D",
	"mint":     "#4FD1C7",
	"lavender": "#B794F6",
	"peach":    "#FBB6CE",
}

func defaultPalette() Palette {
	rosa := rosaScale
	brand := rosaScale
	gold := goldScale
	neutral := neutralScale
	gray := grayScale

	swatches := make(map[string]string, len(accentSwatches))
	for name, color := range accentSwatches {
		swatches[name] = color
	}

	return Palette{
		{Name: "white", Color: "#FFFFFF"},
		{Name: "black", Color: "#000000"},
		{Name: "gray", Scale: &gray},
		{Name: "rosa", Scale: &rosa},
		{Name: "brand", Scale: &brand},
		{Name: "gold", Scale: &gold},
		{Name: "accent", Swatches: swatches},
		{Name: "neutral", Scale: &neutral},
	}
}
