package theme

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MinBodyContrast is the WCAG AA ratio for normal body text.
const MinBodyContrast = 4.5

// Validate checks the theme tables and returns every problem found, joined.
// It is meant to run once at startup so misconfiguration fails early.
func Validate(t *Theme) error {
	var errs []error

	for _, g := range t.palette {
		errs = append(errs, validateGroup(g)...)
	}

	for _, mode := range ColorModes {
		for selector, style := range t.GlobalStyles(mode).BySelector() {
			errs = append(errs, t.validateStyle(fmt.Sprintf("global %q (%s)", selector, mode), style)...)
		}
	}

	for _, name := range t.Components() {
		spec := t.components[name]
		for _, mode := range ColorModes {
			errs = append(errs, t.validateStyle(fmt.Sprintf("%s base (%s)", name, mode), spec.BaseStyle.Resolve(mode))...)
			for _, variant := range spec.VariantNames() {
				where := fmt.Sprintf("%s variant %q (%s)", name, variant, mode)
				errs = append(errs, t.validateStyle(where, spec.Variants[variant].Resolve(mode))...)
			}
		}
		for _, size := range spec.SizeNames() {
			errs = append(errs, t.validateStyle(fmt.Sprintf("%s size %q", name, size), spec.Sizes[size])...)
		}
		if v := spec.DefaultProps.Variant; v != "" && !spec.HasVariant(v) {
			errs = append(errs, fmt.Errorf("%s default props: %w", name, unknownVariant(name, v)))
		}
		if s := spec.DefaultProps.Size; s != "" && !spec.HasSize(s) {
			errs = append(errs, fmt.Errorf("%s default props: %w", name, unknownSize(name, s)))
		}
	}

	for _, mode := range ColorModes {
		if err := t.checkBodyContrast(mode); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func validateGroup(g PaletteGroup) []error {
	var errs []error
	switch {
	case g.Scale != nil:
		for i, w := range Weights {
			if err := validateHex(g.Scale[i]); err != nil {
				errs = append(errs, fmt.Errorf("palette %s.%s: %w", g.Name, w, err))
			}
		}
	case g.Swatches != nil:
		if len(g.Swatches) == 0 {
			errs = append(errs, fmt.Errorf("palette %s: no swatches", g.Name))
		}
		for _, name := range g.SwatchNames() {
			if err := validateHex(g.Swatches[name]); err != nil {
				errs = append(errs, fmt.Errorf("palette %s.%s: %w", g.Name, name, err))
			}
		}
	default:
		if err := validateHex(g.Color); err != nil {
			errs = append(errs, fmt.Errorf("palette %s: %w", g.Name, err))
		}
	}
	return errs
}

func validateHex(value string) error {
	if value == "" {
		return errors.New("missing color")
	}
	if !strings.HasPrefix(value, "#") || (len(value) != 7 && len(value) != 4) {
		return fmt.Errorf("%q is not a hex color", value)
	}
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%q is not a hex color: %w", value, err)
	}
	return nil
}

func (t *Theme) validateStyle(where string, style StyleMap) []error {
	var errs []error
	style.Walk(func(path []string, property, value string) {
		if _, ok := t.LookupProperty(property, value); ok {
			return
		}
		at := property
		if len(path) > 0 {
			at = strings.Join(path, ".") + "." + property
		}
		errs = append(errs, fmt.Errorf("%s: %s: unknown token %q", where, at, value))
	})
	return errs
}

func (t *Theme) checkBodyContrast(mode ColorMode) error {
	body := t.GlobalStyles(mode).Body
	fg, okFg := t.LookupToken(KindColors, body.String("color"))
	bg, okBg := t.LookupToken(KindColors, body.String("bg"))
	if !okFg || !okBg {
		// Reported by the token checks.
		return nil
	}
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return fmt.Errorf("body contrast (%s): %w", mode, err)
	}
	if ratio < MinBodyContrast {
		return fmt.Errorf("body contrast (%s): %.2f below %.1f", mode, ratio, MinBodyContrast)
	}
	return nil
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors,
// from 1 to 21.
func ContrastRatio(fg, bg string) (float64, error) {
	a, err := colorful.Hex(fg)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", fg, err)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", bg, err)
	}
	la, lb := relativeLuminance(a), relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
