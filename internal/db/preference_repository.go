package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rosagold/rosatheme/internal/models"
)

// ErrPreferenceNotFound is returned when no value is stored under a key.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceRepository handles preference persistence.
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves the preference stored under key.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (*models.Preference, error) {
	var (
		pref      models.Preference
		updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT key, value, updated_at FROM preferences WHERE key = ?
	`, key).Scan(&pref.Key, &pref.Value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPreferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference %q: %w", key, err)
	}

	pref.UpdatedAt, err = time.Parse(timeLayout, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at for %q: %w", key, err)
	}
	return &pref, nil
}

// Set inserts or replaces a preference.
func (r *PreferenceRepository) Set(ctx context.Context, pref *models.Preference) error {
	if err := pref.Validate(); err != nil {
		return err
	}
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, pref.Key, pref.Value, pref.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to set preference %q: %w", pref.Key, err)
	}
	return nil
}

// Delete removes the preference stored under key. Deleting a missing key
// returns ErrPreferenceNotFound.
func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	if n == 0 {
		return ErrPreferenceNotFound
	}
	return nil
}
