package theme

import (
	"sort"
	"sync"
)

// Theme holds the token tables and the component style specs. A Theme is
// never mutated after construction, so its methods are safe for concurrent
// use. Every returned style map is a fresh copy.
type Theme struct {
	config      ModeConfig
	palette     Palette
	typography  Typography
	space       Scale
	radii       Scale
	fontSizes   Scale
	fontWeights Scale
	lineHeights Scale
	shadows     Scale
	global      globalSpec
	components  map[string]*ComponentSpec
}

var defaultTheme = sync.OnceValue(New)

// Default returns the process-wide theme, built on first use.
func Default() *Theme {
	return defaultTheme()
}

// New builds a fresh theme from the built-in tables.
func New() *Theme {
	return &Theme{
		config:      DefaultModeConfig(),
		palette:     defaultPalette(),
		typography:  defaultTypography(),
		space:       defaultSpace(),
		radii:       defaultRadii(),
		fontSizes:   defaultFontSizes(),
		fontWeights: defaultFontWeights(),
		lineHeights: defaultLineHeights(),
		shadows:     defaultShadows(),
		global:      defaultGlobal(),
		components:  defaultComponents(),
	}
}

// Config returns the color-mode settings.
func (t *Theme) Config() ModeConfig {
	return t.config
}

// Palette returns a copy of the color groups.
func (t *Theme) Palette() Palette {
	out := make(Palette, len(t.palette))
	for i, g := range t.palette {
		c := g
		if g.Scale != nil {
			scale := *g.Scale
			c.Scale = &scale
		}
		if g.Swatches != nil {
			c.Swatches = make(map[string]string, len(g.Swatches))
			for name, color := range g.Swatches {
				c.Swatches[name] = color
			}
		}
		out[i] = c
	}
	return out
}

// Typography returns the font roles.
func (t *Theme) Typography() Typography {
	return t.typography
}

// Space returns the spacing scale.
func (t *Theme) Space() Scale {
	return t.space.Clone()
}

// Radii returns the border-radius scale.
func (t *Theme) Radii() Scale {
	return t.radii.Clone()
}

// Components returns the component names in sorted order.
func (t *Theme) Components() []string {
	names := make([]string, 0, len(t.components))
	for name := range t.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component returns the spec for name. The spec is shared; callers must
// not modify it.
func (t *Theme) Component(name string) (*ComponentSpec, error) {
	spec, ok := t.components[name]
	if !ok {
		return nil, unknownComponent(name)
	}
	return spec, nil
}

// GlobalStyles resolves the document-wide styles. Modes outside
// {light, dark} resolve as light.
func (t *Theme) GlobalStyles(mode ColorMode) GlobalStyles {
	return t.global.resolve(mode)
}

// ComponentBaseStyle resolves the base style of a component. The mode is
// ignored by components whose base style is static, such as Button.
// Components without a base style return an empty map.
func (t *Theme) ComponentBaseStyle(component string, mode ColorMode) (StyleMap, error) {
	spec, err := t.Component(component)
	if err != nil {
		return nil, err
	}
	return spec.BaseStyle.Resolve(mode), nil
}

// ComponentVariant resolves a named variant of a component.
func (t *Theme) ComponentVariant(component, variant string, mode ColorMode) (StyleMap, error) {
	spec, err := t.Component(component)
	if err != nil {
		return nil, err
	}
	style, ok := spec.Variants[variant]
	if !ok {
		return nil, unknownVariant(component, variant)
	}
	return style.Resolve(mode), nil
}

// ComponentSize resolves a named size of a component. Sizes are the same
// in every color mode.
func (t *Theme) ComponentSize(component, size string) (StyleMap, error) {
	spec, err := t.Component(component)
	if err != nil {
		return nil, err
	}
	style, ok := spec.Sizes[size]
	if !ok {
		return nil, unknownSize(component, size)
	}
	return style.Clone(), nil
}

// DefaultProps returns the variant and size a component uses when none is
// given.
func (t *Theme) DefaultProps(component string) (DefaultProps, error) {
	spec, err := t.Component(component)
	if err != nil {
		return DefaultProps{}, err
	}
	return spec.DefaultProps, nil
}

// ResolveComponent resolves base, variant and size styles for a selection,
// filling empty props from the component's defaults. A variant or size
// that is neither given nor defaulted is left out.
func (t *Theme) ResolveComponent(component string, props Props, mode ColorMode) (ResolvedComponent, error) {
	spec, err := t.Component(component)
	if err != nil {
		return ResolvedComponent{}, err
	}

	if props.Variant == "" {
		props.Variant = spec.DefaultProps.Variant
	}
	if props.Size == "" {
		props.Size = spec.DefaultProps.Size
	}

	resolved := ResolvedComponent{
		Component: component,
		Mode:      NormalizeColorMode(mode),
		Variant:   props.Variant,
		Size:      props.Size,
		Base:      spec.BaseStyle.Resolve(mode),
	}

	if props.Variant != "" {
		resolved.VariantStyle, err = t.ComponentVariant(component, props.Variant, mode)
		if err != nil {
			return ResolvedComponent{}, err
		}
	}
	if props.Size != "" {
		resolved.SizeStyle, err = t.ComponentSize(component, props.Size)
		if err != nil {
			return ResolvedComponent{}, err
		}
	}

	return resolved, nil
}
