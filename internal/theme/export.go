package theme

// Document is the serializable form of a whole theme.
type Document struct {
	Config      ModeConfig                   `json:"config" yaml:"config"`
	Colors      map[string]any               `json:"colors" yaml:"colors"`
	Fonts       Typography                   `json:"fonts" yaml:"fonts"`
	FontSizes   Scale                        `json:"fontSizes" yaml:"fontSizes"`
	FontWeights Scale                        `json:"fontWeights" yaml:"fontWeights"`
	LineHeights Scale                        `json:"lineHeights" yaml:"lineHeights"`
	Space       Scale                        `json:"space" yaml:"space"`
	Radii       Scale                        `json:"radii" yaml:"radii"`
	Shadows     Scale                        `json:"shadows" yaml:"shadows"`
	Global      map[ColorMode]GlobalStyles   `json:"global" yaml:"global"`
	Components  map[string]ComponentDocument `json:"components" yaml:"components"`
}

// ComponentDocument is the serializable form of a ComponentSpec with every
// mode-dependent style expanded per mode.
type ComponentDocument struct {
	BaseStyle    map[ColorMode]StyleMap            `json:"baseStyle,omitempty" yaml:"baseStyle,omitempty"`
	Variants     map[string]map[ColorMode]StyleMap `json:"variants,omitempty" yaml:"variants,omitempty"`
	Sizes        map[string]StyleMap               `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	DefaultProps DefaultProps                      `json:"defaultProps" yaml:"defaultProps"`
}

// Export builds the serializable document. Style maps are copies.
func (t *Theme) Export() Document {
	doc := Document{
		Config:      t.config,
		Colors:      make(map[string]any, len(t.palette)),
		Fonts:       t.typography,
		FontSizes:   t.fontSizes.Clone(),
		FontWeights: t.fontWeights.Clone(),
		LineHeights: t.lineHeights.Clone(),
		Space:       t.space.Clone(),
		Radii:       t.radii.Clone(),
		Shadows:     t.shadows.Clone(),
		Global:      make(map[ColorMode]GlobalStyles, len(ColorModes)),
		Components:  make(map[string]ComponentDocument, len(t.components)),
	}

	for _, g := range t.Palette() {
		switch {
		case g.Scale != nil:
			doc.Colors[g.Name] = g.Scale.Map()
		case g.Swatches != nil:
			doc.Colors[g.Name] = g.Swatches
		default:
			doc.Colors[g.Name] = g.Color
		}
	}

	for _, mode := range ColorModes {
		doc.Global[mode] = t.GlobalStyles(mode)
	}

	for name, spec := range t.components {
		cd := ComponentDocument{DefaultProps: spec.DefaultProps}
		if !spec.BaseStyle.IsZero() {
			cd.BaseStyle = expandModes(spec.BaseStyle)
		}
		if len(spec.Variants) > 0 {
			cd.Variants = make(map[string]map[ColorMode]StyleMap, len(spec.Variants))
			for variant, style := range spec.Variants {
				cd.Variants[variant] = expandModes(style)
			}
		}
		if len(spec.Sizes) > 0 {
			cd.Sizes = make(map[string]StyleMap, len(spec.Sizes))
			for size, style := range spec.Sizes {
				cd.Sizes[size] = style.Clone()
			}
		}
		doc.Components[name] = cd
	}

	return doc
}

func expandModes(style ModeStyle) map[ColorMode]StyleMap {
	out := make(map[ColorMode]StyleMap, len(ColorModes))
	for _, mode := range ColorModes {
		out[mode] = style.Resolve(mode)
	}
	return out
}
