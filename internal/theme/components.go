package theme

import "sort"

// Component names with styles in the default theme.
const (
	ComponentButton = "Button"
	ComponentCard   = "Card"
	ComponentInput  = "Input"
	ComponentModal  = "Modal"
)

// DefaultProps names the variant and size a consumer applies when none is
// given. Empty fields mean no default.
type DefaultProps struct {
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size    string `json:"size,omitempty" yaml:"size,omitempty"`
}

// ComponentSpec is the style table of one component. Sizes never depend on
// the color mode.
type ComponentSpec struct {
	Name         string
	BaseStyle    ModeStyle
	Variants     map[string]ModeStyle
	Sizes        map[string]StyleMap
	DefaultProps DefaultProps
}

// VariantNames returns the variant names in sorted order.
func (c *ComponentSpec) VariantNames() []string {
	return sortedKeys(c.Variants)
}

// SizeNames returns the size names in sorted order.
func (c *ComponentSpec) SizeNames() []string {
	return sortedKeys(c.Sizes)
}

// HasVariant reports whether name is in the variant set.
func (c *ComponentSpec) HasVariant(name string) bool {
	_, ok := c.Variants[name]
	return ok
}

// HasSize reports whether name is in the size set.
func (c *ComponentSpec) HasSize(name string) bool {
	_, ok := c.Sizes[name]
	return ok
}

// Props selects a variant and size. Empty fields fall back to DefaultProps.
type Props struct {
	Variant string
	Size    string
}

// ResolvedComponent carries the style maps of one component selection side
// by side. They are not merged.
type ResolvedComponent struct {
	Component    string    `json:"component" yaml:"component"`
	Mode         ColorMode `json:"mode" yaml:"mode"`
	Variant      string    `json:"variant,omitempty" yaml:"variant,omitempty"`
	Size         string    `json:"size,omitempty" yaml:"size,omitempty"`
	Base         StyleMap  `json:"base" yaml:"base"`
	VariantStyle StyleMap  `json:"variantStyle,omitempty" yaml:"variantStyle,omitempty"`
	SizeStyle    StyleMap  `json:"sizeStyle,omitempty" yaml:"sizeStyle,omitempty"`
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
