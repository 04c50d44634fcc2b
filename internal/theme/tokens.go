package theme

import (
	"sort"
	"strconv"
)

// Weight is one of the ten fixed steps of a ColorScale.
type Weight int

// Weights lists the steps every ColorScale carries, lightest first.
var Weights = [...]Weight{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return strconv.Itoa(int(w))
}

// ParseWeight parses a weight key such as "200".
func ParseWeight(value string) (Weight, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	for _, w := range Weights {
		if int(w) == n {
			return w, true
		}
	}
	return 0, false
}

func weightIndex(w Weight) int {
	for i, candidate := range Weights {
		if candidate == w {
			return i
		}
	}
	return -1
}

// ColorScale holds one hex color per weight, in Weights order. It is an
// array so copies never alias the palette tables.
type ColorScale [len(Weights)]string

// Get returns the color for weight w.
func (c ColorScale) Get(w Weight) (string, bool) {
	i := weightIndex(w)
	if i < 0 || c[i] == "" {
		return "", false
	}
	return c[i], true
}

// Map returns the scale keyed by weight string.
func (c ColorScale) Map() map[string]string {
	out := make(map[string]string, len(c))
	for i, w := range Weights {
		out[w.String()] = c[i]
	}
	return out
}

// PaletteGroup is a named family of colors: either a ten-step Scale, flat
// named Swatches, or a single Color.
type PaletteGroup struct {
	Name     string
	Scale    *ColorScale
	Swatches map[string]string
	Color    string
}

// IsScale reports whether the group carries a weight structure.
func (g PaletteGroup) IsScale() bool {
	return g.Scale != nil
}

// SwatchNames returns the swatch names in sorted order.
func (g PaletteGroup) SwatchNames() []string {
	names := make([]string, 0, len(g.Swatches))
	for name := range g.Swatches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves the part after the group name ("200", "coral", or "" for
// single colors).
func (g PaletteGroup) Lookup(key string) (string, bool) {
	switch {
	case g.Scale != nil:
		w, ok := ParseWeight(key)
		if !ok {
			return "", false
		}
		return g.Scale.Get(w)
	case g.Swatches != nil:
		color, ok := g.Swatches[key]
		return color, ok
	default:
		if key != "" || g.Color == "" {
			return "", false
		}
		return g.Color, true
	}
}

// Typography groups the font tokens.
type Typography struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
	Mono    string `json:"mono" yaml:"mono"`
}

// Role returns the font stack for a role name.
func (t Typography) Role(role string) (string, bool) {
	switch role {
	case "heading":
		return t.Heading, t.Heading != ""
	case "body":
		return t.Body, t.Body != ""
	case "mono":
		return t.Mono, t.Mono != ""
	}
	return "", false
}

// Step is one entry of an ordered Scale.
type Step struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Scale is an ordered token scale such as spacing or radii.
type Scale []Step

// Lookup returns the value stored under key.
func (s Scale) Lookup(key string) (string, bool) {
	for _, step := range s {
		if step.Key == key {
			return step.Value, true
		}
	}
	return "", false
}

// Keys returns the step keys in scale order.
func (s Scale) Keys() []string {
	keys := make([]string, len(s))
	for i, step := range s {
		keys[i] = step.Key
	}
	return keys
}

// Clone copies the scale.
func (s Scale) Clone() Scale {
	return append(Scale(nil), s...)
}
