package theme

import "sort"

// StyleMap maps style properties to values. Values are strings, or nested
// StyleMaps for pseudo-states (_hover, _active, _focus) and component parts
// (container, field, dialog). Values may hold token names such as
// "brand.200" which the consuming renderer substitutes.
type StyleMap map[string]any

// Clone returns a deep copy of s. A nil map clones to an empty one.
func (s StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(s))
	for key, value := range s {
		if nested, ok := value.(StyleMap); ok {
			out[key] = nested.Clone()
			continue
		}
		out[key] = value
	}
	return out
}

// String returns the string value of key, or "" when absent or nested.
func (s StyleMap) String(key string) string {
	value, _ := s[key].(string)
	return value
}

// Nested returns the sub-map stored under key.
func (s StyleMap) Nested(key string) (StyleMap, bool) {
	nested, ok := s[key].(StyleMap)
	return nested, ok
}

// Keys returns the keys of s in sorted order.
func (s StyleMap) Keys() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Walk calls fn for every string property, depth first in key order. path
// holds the nested keys leading to the property.
func (s StyleMap) Walk(fn func(path []string, property, value string)) {
	s.walk(nil, fn)
}

func (s StyleMap) walk(path []string, fn func(path []string, property, value string)) {
	for _, key := range s.Keys() {
		switch value := s[key].(type) {
		case StyleMap:
			next := append(append([]string(nil), path...), key)
			value.walk(next, fn)
		case string:
			fn(path, key, value)
		}
	}
}

// ToPlain converts s into map[string]any with nested plain maps, the shape
// expected by encoders that do not know about StyleMap.
func (s StyleMap) ToPlain() map[string]any {
	out := make(map[string]any, len(s))
	for key, value := range s {
		if nested, ok := value.(StyleMap); ok {
			out[key] = nested.ToPlain()
			continue
		}
		out[key] = value
	}
	return out
}

// FromPlain converts decoded map[string]any values (JSON, structpb) back
// into a StyleMap. Non-string scalars are kept as-is.
func FromPlain(m map[string]any) StyleMap {
	out := make(StyleMap, len(m))
	for key, value := range m {
		if nested, ok := value.(map[string]any); ok {
			out[key] = FromPlain(nested)
			continue
		}
		out[key] = value
	}
	return out
}

// ModeStyle is a style precomputed for both color modes. Static styles hold
// the same map in both arms.
type ModeStyle struct {
	Light StyleMap
	Dark  StyleMap
}

// Static builds a ModeStyle that ignores the color mode.
func Static(style StyleMap) ModeStyle {
	return ModeStyle{Light: style, Dark: style}
}

// ByMode builds a ModeStyle with distinct light and dark arms.
func ByMode(light, dark StyleMap) ModeStyle {
	return ModeStyle{Light: light, Dark: dark}
}

// Resolve returns a copy of the arm selected by mode.
func (m ModeStyle) Resolve(mode ColorMode) StyleMap {
	return ResolveByMode(m.Light, m.Dark, mode).Clone()
}

// Precompute evaluates build once per mode.
func Precompute(build func(mode ColorMode) StyleMap) ModeStyle {
	return ModeStyle{Light: build(ModeLight), Dark: build(ModeDark)}
}

// IsZero reports whether neither arm is set.
func (m ModeStyle) IsZero() bool {
	return m.Light == nil && m.Dark == nil
}
