package theme

import (
	"fmt"
	"strings"
)

// ColorMode is the display preference that selects between the light and
// dark arm of every mode-dependent style.
type ColorMode string

const (
	ModeLight ColorMode = "light"
	ModeDark  ColorMode = "dark"
)

// DefaultColorMode is used whenever a mode signal is missing or malformed.
const DefaultColorMode = ModeLight

// ColorModes lists the known modes in display order.
var ColorModes = []ColorMode{ModeLight, ModeDark}

// ModeConfig mirrors the color-mode settings shipped with the theme.
type ModeConfig struct {
	InitialColorMode   ColorMode `json:"initialColorMode" yaml:"initialColorMode"`
	UseSystemColorMode bool      `json:"useSystemColorMode" yaml:"useSystemColorMode"`
}

// DefaultModeConfig starts in light mode and follows the system preference.
func DefaultModeConfig() ModeConfig {
	return ModeConfig{
		InitialColorMode:   ModeLight,
		UseSystemColorMode: true,
	}
}

// String implements fmt.Stringer.
func (m ColorMode) String() string {
	return string(m)
}

// Valid reports whether m is one of the known modes.
func (m ColorMode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// IsDark reports whether m selects the dark arm.
func (m ColorMode) IsDark() bool {
	return NormalizeColorMode(m) == ModeDark
}

// Toggle returns the opposite mode. Malformed modes toggle from light.
func (m ColorMode) Toggle() ColorMode {
	if NormalizeColorMode(m) == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ParseColorMode parses a user-supplied mode. It is strict: anything other
// than light or dark (case-insensitive) returns ErrInvalidColorMode along
// with the fallback mode, so callers can log and continue.
func ParseColorMode(value string) (ColorMode, error) {
	mode := ColorMode(strings.ToLower(strings.TrimSpace(value)))
	if mode.Valid() {
		return mode, nil
	}
	return DefaultColorMode, fmt.Errorf("%w: %q", ErrInvalidColorMode, value)
}

// NormalizeColorMode maps any value outside {light, dark} to light.
func NormalizeColorMode(m ColorMode) ColorMode {
	if m.Valid() {
		return m
	}
	return DefaultColorMode
}

// ResolveByMode picks the arm for mode. It is the only place where the
// light/dark branch is taken.
func ResolveByMode[T any](light, dark T, mode ColorMode) T {
	if NormalizeColorMode(mode) == ModeDark {
		return dark
	}
	return light
}
