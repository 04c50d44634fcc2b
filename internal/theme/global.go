package theme

// CSS selectors the global styles apply to.
const (
	SelectorBody           = "body"
	SelectorPlaceholder    = "*::placeholder"
	SelectorBorderDefaults = "*, *::before, &::after"
)

// GlobalStyles are the document-wide styles for one color mode.
type GlobalStyles struct {
	Body           StyleMap `json:"body" yaml:"body"`
	Placeholder    StyleMap `json:"placeholder" yaml:"placeholder"`
	BorderDefaults StyleMap `json:"borderDefaults" yaml:"borderDefaults"`
}

// BySelector returns the styles keyed by the CSS selector they target.
func (g GlobalStyles) BySelector() map[string]StyleMap {
	return map[string]StyleMap{
		SelectorBody:           g.Body,
		SelectorPlaceholder:    g.Placeholder,
		SelectorBorderDefaults: g.BorderDefaults,
	}
}

type globalSpec struct {
	body           ModeStyle
	placeholder    ModeStyle
	borderDefaults ModeStyle
}

func (g globalSpec) resolve(mode ColorMode) GlobalStyles {
	return GlobalStyles{
		Body:           g.body.Resolve(mode),
		Placeholder:    g.placeholder.Resolve(mode),
		BorderDefaults: g.borderDefaults.Resolve(mode),
	}
}

func defaultGlobal() globalSpec {
	return globalSpec{
		body: Precompute(func(mode ColorMode) StyleMap {
			return StyleMap{
				"bg":         ResolveByMode("neutral.50", "gray.900", mode),
				"color":      ResolveByMode("neutral.800", "gray.50", mode),
				"fontFamily": "body",
				"lineHeight": "base",
			}
		}),
		placeholder: Precompute(func(mode ColorMode) StyleMap {
			return StyleMap{
				"color": ResolveByMode("neutral.400", "gray.400", mode),
			}
		}),
		borderDefaults: Precompute(func(mode ColorMode) StyleMap {
			return StyleMap{
				"borderColor": ResolveByMode("neutral.200", "gray.600", mode),
			}
		}),
	}
}
