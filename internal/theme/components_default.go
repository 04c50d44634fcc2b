package theme

const focusRing = "0 0 0 3px rgba(226, 180, 203, 0.6)"

func defaultComponents() map[string]*ComponentSpec {
	return map[string]*ComponentSpec{
		ComponentButton: buttonSpec(),
		ComponentCard:   cardSpec(),
		ComponentInput:  inputSpec(),
		ComponentModal:  modalSpec(),
	}
}

func buttonSpec() *ComponentSpec {
	return &ComponentSpec{
		Name: ComponentButton,
		BaseStyle: Static(StyleMap{
			"fontWeight":   "500",
			"borderRadius": "lg",
			"_focus": StyleMap{
				"boxShadow": focusRing,
			},
		}),
		Variants: map[string]ModeStyle{
			"solid": Static(StyleMap{
				"bg":    "brand.200",
				"color": "white",
				"_hover": StyleMap{
					"bg":        "brand.300",
					"transform": "translateY(-2px)",
					"boxShadow": "lg",
				},
				"_active": StyleMap{
					"bg":        "brand.400",
					"transform": "translateY(0)",
				},
			}),
			"ghost": Precompute(func(mode ColorMode) StyleMap {
				return StyleMap{
					"color": ResolveByMode("brand.500", "brand.300", mode),
					"_hover": StyleMap{
						"bg":        ResolveByMode("brand.50", "gray.700", mode),
						"transform": "translateY(-1px)",
					},
				}
			}),
			"gold": Static(StyleMap{
				"bg":    "gold.400",
				"color": "white",
				"_hover": StyleMap{
					"bg":        "gold.500",
					"transform": "translateY(-2px)",
					"boxShadow": "lg",
				},
			}),
		},
		Sizes: map[string]StyleMap{
			"sm": {"h": "8", "px": "4", "fontSize": "sm"},
			"md": {"h": "10", "px": "6", "fontSize": "md"},
			"lg": {"h": "12", "px": "8", "fontSize": "lg"},
		},
	}
}

func cardSpec() *ComponentSpec {
	return &ComponentSpec{
		Name: ComponentCard,
		BaseStyle: Precompute(func(mode ColorMode) StyleMap {
			return StyleMap{
				"container": StyleMap{
					"bg":           ResolveByMode("white", "gray.800", mode),
					"borderRadius": "xl",
					"boxShadow":    ResolveByMode("0 4px 6px rgba(0, 0, 0, 0.05)", "0 4px 6px rgba(0, 0, 0, 0.3)", mode),
					"border":       "1px solid",
					"borderColor":  ResolveByMode("neutral.100", "gray.600", mode),
					"_hover": StyleMap{
						"boxShadow": ResolveByMode("0 8px 25px rgba(0, 0, 0, 0.1)", "0 8px 25px rgba(0, 0, 0, 0.4)", mode),
						"transform": "translateY(-2px)",
					},
					"transition": "all 0.3s ease",
				},
			}
		}),
	}
}

func inputSpec() *ComponentSpec {
	return &ComponentSpec{
		Name: ComponentInput,
		Variants: map[string]ModeStyle{
			"filled": Precompute(func(mode ColorMode) StyleMap {
				return StyleMap{
					"field": StyleMap{
						"bg":          ResolveByMode("neutral.50", "gray.700", mode),
						"border":      "1px solid",
						"borderColor": ResolveByMode("neutral.200", "gray.600", mode),
						"color":       ResolveByMode("neutral.800", "gray.100", mode),
						"_hover": StyleMap{
							"bg":          ResolveByMode("white", "gray.600", mode),
							"borderColor": "brand.200",
						},
						"_focus": StyleMap{
							"bg":          ResolveByMode("white", "gray.600", mode),
							"borderColor": "brand.300",
							"boxShadow":   "0 0 0 1px rgba(226, 180, 203, 0.6)",
						},
					},
				}
			}),
		},
		DefaultProps: DefaultProps{Variant: "filled"},
	}
}

func modalSpec() *ComponentSpec {
	return &ComponentSpec{
		Name: ComponentModal,
		BaseStyle: Precompute(func(mode ColorMode) StyleMap {
			return StyleMap{
				"dialog": StyleMap{
					"bg":           ResolveByMode("white", "gray.800", mode),
					"borderRadius": "xl",
					"boxShadow":    "0 20px 25px rgba(0, 0, 0, 0.15)",
				},
			}
		}),
	}
}
