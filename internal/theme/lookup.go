package theme

import "strings"

// TokenKind names the scale a token is resolved against.
type TokenKind string

const (
	KindColors      TokenKind = "colors"
	KindSpace       TokenKind = "space"
	KindSizes       TokenKind = "sizes"
	KindRadii       TokenKind = "radii"
	KindFonts       TokenKind = "fonts"
	KindFontSizes   TokenKind = "fontSizes"
	KindFontWeights TokenKind = "fontWeights"
	KindLineHeights TokenKind = "lineHeights"
	KindShadows     TokenKind = "shadows"
)

// propertyKinds maps tokenized style properties to their scale. Properties
// missing here (border, transform, transition) hold literal CSS.
var propertyKinds = map[string]TokenKind{
	"bg":           KindColors,
	"color":        KindColors,
	"borderColor":  KindColors,
	"borderRadius": KindRadii,
	"px":           KindSpace,
	"h":            KindSizes,
	"fontFamily":   KindFonts,
	"fontSize":     KindFontSizes,
	"fontWeight":   KindFontWeights,
	"lineHeight":   KindLineHeights,
	"boxShadow":    KindShadows,
}

// PropertyKind returns the scale a style property draws its tokens from.
func PropertyKind(property string) (TokenKind, bool) {
	kind, ok := propertyKinds[property]
	return kind, ok
}

// LookupToken resolves token against the scale of kind. Values that are
// already literal CSS (hex, rgb/rgba, numeric font weights, multi-part
// shadows) are returned unchanged.
func (t *Theme) LookupToken(kind TokenKind, token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	switch kind {
	case KindColors:
		if isLiteralColor(token) {
			return token, true
		}
		return t.palette.Lookup(token)
	case KindSpace, KindSizes:
		return t.space.Lookup(token)
	case KindRadii:
		return t.radii.Lookup(token)
	case KindFonts:
		return t.typography.Role(token)
	case KindFontSizes:
		return t.fontSizes.Lookup(token)
	case KindFontWeights:
		if value, ok := t.fontWeights.Lookup(token); ok {
			return value, true
		}
		for _, step := range t.fontWeights {
			if step.Value == token {
				return token, true
			}
		}
		return "", false
	case KindLineHeights:
		return t.lineHeights.Lookup(token)
	case KindShadows:
		if value, ok := t.shadows.Lookup(token); ok {
			return value, true
		}
		if strings.Contains(token, " ") {
			return token, true
		}
		return "", false
	}
	return "", false
}

// LookupProperty resolves the value of a style property through the scale
// the property uses. Properties without a scale return value unchanged.
func (t *Theme) LookupProperty(property, value string) (string, bool) {
	kind, ok := PropertyKind(property)
	if !ok {
		return value, true
	}
	return t.LookupToken(kind, value)
}

// Substitute returns a copy of style with every tokenized property replaced
// by its concrete value. Unresolvable tokens are kept as-is.
func (t *Theme) Substitute(style StyleMap) StyleMap {
	out := make(StyleMap, len(style))
	for key, value := range style {
		switch v := value.(type) {
		case StyleMap:
			out[key] = t.Substitute(v)
		case string:
			if resolved, ok := t.LookupProperty(key, v); ok {
				out[key] = resolved
			} else {
				out[key] = v
			}
		default:
			out[key] = v
		}
	}
	return out
}

func isLiteralColor(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "rgb(") ||
		strings.HasPrefix(lower, "rgba(") ||
		lower == "transparent" ||
		lower == "currentcolor"
}
