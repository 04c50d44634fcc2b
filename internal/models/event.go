// Package models defines the records persisted by rosatheme.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	EventTypeColorModeChanged EventType = "color_mode.changed"
	EventTypeColorModeCleared EventType = "color_mode.cleared"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypePreference EntityType = "preference"
)

// ErrInvalidEvent is returned when an event misses a required field.
var ErrInvalidEvent = errors.New("invalid event")

// Event represents an append-only log entry.
type Event struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Type       EventType         `json:"type"`
	EntityType EntityType        `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Payload    json.RawMessage   `json:"payload,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Validate checks that the event carries a type and an entity.
func (e *Event) Validate() error {
	var missing []string
	if strings.TrimSpace(string(e.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		missing = append(missing, "entity_type")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		missing = append(missing, "entity_id")
	}
	if len(missing) > 0 {
		return &FieldError{Err: ErrInvalidEvent, Fields: missing}
	}
	return nil
}

// ColorModeChangedPayload is the payload for color_mode.changed events.
type ColorModeChangedPayload struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Source string `json:"source"`
}
