// Package theme holds the salon UI design tokens and resolves component
// styles per color mode.
//
// Resolution is a table lookup by component and selector followed by a
// light/dark branch:
//
//	t := theme.Default()
//	base, err := t.ComponentBaseStyle(theme.ComponentCard, theme.ModeDark)
//	if err != nil {
//		return err
//	}
//	card.Apply(base)
//
// Style values such as "brand.200" or "lg" stay symbolic. Renderers that
// need concrete values call LookupToken or Substitute.
package theme
