// Package events provides helper functions for logging rosatheme events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rosagold/rosatheme/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogColorModeChanged records a color mode change for a preference key.
func LogColorModeChanged(ctx context.Context, repo Repository, key, from, to, source string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	payload, err := json.Marshal(models.ColorModeChangedPayload{
		From:   from,
		To:     to,
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal color mode payload: %w", err)
	}

	event := &models.Event{
		Type:       models.EventTypeColorModeChanged,
		EntityType: models.EntityTypePreference,
		EntityID:   key,
		Payload:    payload,
	}

	return repo.Create(ctx, event)
}

// LogColorModeCleared records that a saved color mode was removed.
func LogColorModeCleared(ctx context.Context, repo Repository, key string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if key == "" {
		return fmt.Errorf("preference key is required")
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeColorModeCleared,
		EntityType: models.EntityTypePreference,
		EntityID:   key,
	})
}
