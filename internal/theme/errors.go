package theme

import (
	"errors"
	"fmt"
)

// Selector errors. Every lookup failure wraps ErrUnknownSelector.
var (
	ErrUnknownSelector  = errors.New("unknown selector")
	ErrUnknownComponent = fmt.Errorf("%w: component", ErrUnknownSelector)
	ErrUnknownVariant   = fmt.Errorf("%w: variant", ErrUnknownSelector)
	ErrUnknownSize      = fmt.Errorf("%w: size", ErrUnknownSelector)
)

// ErrInvalidColorMode is returned by ParseColorMode for values outside
// {light, dark}. Resolvers never return it; they fall back to light.
var ErrInvalidColorMode = errors.New("invalid color mode")

// SelectorKind names the table a failed lookup was made against.
type SelectorKind string

const (
	SelectorComponent SelectorKind = "component"
	SelectorVariant   SelectorKind = "variant"
	SelectorSize      SelectorKind = "size"
)

// SelectorError describes a lookup of a name that is not in the tables.
type SelectorError struct {
	Kind      SelectorKind
	Component string
	Name      string
}

func (e *SelectorError) Error() string {
	if e.Kind == SelectorComponent {
		return fmt.Sprintf("unknown component %q", e.Component)
	}
	return fmt.Sprintf("unknown %s %q for component %s", e.Kind, e.Name, e.Component)
}

// Is matches the kind-specific sentinel and ErrUnknownSelector.
func (e *SelectorError) Is(target error) bool {
	switch target {
	case ErrUnknownSelector:
		return true
	case ErrUnknownComponent:
		return e.Kind == SelectorComponent
	case ErrUnknownVariant:
		return e.Kind == SelectorVariant
	case ErrUnknownSize:
		return e.Kind == SelectorSize
	}
	return false
}

func unknownComponent(component string) error {
	return &SelectorError{Kind: SelectorComponent, Component: component}
}

func unknownVariant(component, name string) error {
	return &SelectorError{Kind: SelectorVariant, Component: component, Name: name}
}

func unknownSize(component, name string) error {
	return &SelectorError{Kind: SelectorSize, Component: component, Name: name}
}
