package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPreference is returned when a preference misses a key or value.
var ErrInvalidPreference = errors.New("invalid preference")

// Preference is one persisted key/value setting, such as the saved color
// mode.
type Preference struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks that key and value are set.
func (p *Preference) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Key) == "" {
		missing = append(missing, "key")
	}
	if strings.TrimSpace(p.Value) == "" {
		missing = append(missing, "value")
	}
	if len(missing) > 0 {
		return &FieldError{Err: ErrInvalidPreference, Fields: missing}
	}
	return nil
}

// FieldError lists the fields that failed validation.
type FieldError struct {
	Err    error
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: missing %s", e.Err, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
