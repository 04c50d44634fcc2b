package db

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rosagold/rosatheme/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if _, err := database.MigrateUp(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return database
}

func TestMigrateUpIdempotent(t *testing.T) {
	ctx := context.Background()

	database, err := Open(filepath.Join(t.TempDir(), "nested", "rosatheme.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	applied, err := database.MigrateUp(ctx)
	if err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	if applied != len(migrations) {
		t.Fatalf("expected %d migrations applied, got %d", len(migrations), applied)
	}

	applied, err = database.MigrateUp(ctx)
	if err != nil {
		t.Fatalf("MigrateUp again: %v", err)
	}
	if applied != 0 {
		t.Fatalf("expected no migrations on second run, got %d", applied)
	}
}

func TestPreferenceRepositorySetGet(t *testing.T) {
	ctx := context.Background()
	repo := NewPreferenceRepository(openTestDB(t))

	if _, err := repo.Get(ctx, "beauty-salon-theme"); !errors.Is(err, ErrPreferenceNotFound) {
		t.Fatalf("expected ErrPreferenceNotFound, got %v", err)
	}

	pref := &models.Preference{Key: "beauty-salon-theme", Value: "dark"}
	if err := repo.Set(ctx, pref); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if pref.UpdatedAt.IsZero() {
		t.Fatal("expected UpdatedAt to be set")
	}

	got, err := repo.Get(ctx, "beauty-salon-theme")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value != "dark" {
		t.Fatalf("expected dark, got %q", got.Value)
	}
	if !got.UpdatedAt.Equal(pref.UpdatedAt) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, pref.UpdatedAt)
	}

	if err := repo.Set(ctx, &models.Preference{Key: "beauty-salon-theme", Value: "light"}); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err = repo.Get(ctx, "beauty-salon-theme")
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if got.Value != "light" {
		t.Fatalf("expected light after overwrite, got %q", got.Value)
	}

	if err := repo.Delete(ctx, "beauty-salon-theme"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "beauty-salon-theme"); !errors.Is(err, ErrPreferenceNotFound) {
		t.Fatalf("expected ErrPreferenceNotFound on second delete, got %v", err)
	}
}

func TestPreferenceRepositoryRejectsInvalid(t *testing.T) {
	repo := NewPreferenceRepository(openTestDB(t))

	err := repo.Set(context.Background(), &models.Preference{Key: "k"})
	if !errors.Is(err, models.ErrInvalidPreference) {
		t.Fatalf("expected ErrInvalidPreference, got %v", err)
	}
}

func TestEventRepositoryCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, to := range []string{"dark", "light", "dark"} {
		payload, _ := json.Marshal(models.ColorModeChangedPayload{To: to, Source: "toggle"})
		event := &models.Event{
			Timestamp:  base.Add(time.Duration(i) * time.Second),
			Type:       models.EventTypeColorModeChanged,
			EntityType: models.EntityTypePreference,
			EntityID:   "beauty-salon-theme",
			Payload:    payload,
			Metadata:   map[string]string{"step": to},
		}
		if err := repo.Create(ctx, event); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if event.ID == "" {
			t.Fatal("expected ID to be set")
		}
	}

	events, err := repo.ListByEntity(ctx, models.EntityTypePreference, "beauty-salon-theme", 2)
	if err != nil {
		t.Fatalf("ListByEntity: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].Timestamp.Equal(base.Add(2 * time.Second)) {
		t.Fatalf("expected newest first, got %v", events[0].Timestamp)
	}

	var payload models.ColorModeChangedPayload
	if err := json.Unmarshal(events[1].Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.To != "light" {
		t.Fatalf("expected second newest to be light, got %q", payload.To)
	}
	if events[1].Metadata["step"] != "light" {
		t.Fatalf("unexpected metadata: %+v", events[1].Metadata)
	}

	got, err := repo.Get(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Type != models.EventTypeColorModeChanged {
		t.Fatalf("unexpected type %q", got.Type)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventRepositoryRejectsInvalid(t *testing.T) {
	repo := NewEventRepository(openTestDB(t))

	err := repo.Create(context.Background(), &models.Event{Type: models.EventTypeColorModeChanged})
	if !errors.Is(err, models.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}
