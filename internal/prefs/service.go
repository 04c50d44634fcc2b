// Package prefs persists the user's color mode choice.
//
// The current mode is picked in order: the saved preference, the system
// preference when the theme follows it, then the initial mode. Whatever is
// picked on first use is saved, so later runs are stable until the user
// changes it.
package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rosagold/rosatheme/internal/db"
	"github.com/rosagold/rosatheme/internal/events"
	"github.com/rosagold/rosatheme/internal/models"
	"github.com/rosagold/rosatheme/internal/theme"
)

// Source tells where the current mode came from.
type Source string

const (
	SourceSaved   Source = "saved"
	SourceSystem  Source = "system"
	SourceInitial Source = "initial"
)

// Change sources recorded on events.
const (
	changeSet    = "set"
	changeToggle = "toggle"
)

// Store reads and writes preferences.
type Store interface {
	Get(ctx context.Context, key string) (*models.Preference, error)
	Set(ctx context.Context, pref *models.Preference) error
	Delete(ctx context.Context, key string) error
}

// EventStore records and lists preference events.
type EventStore interface {
	events.Repository
	ListByEntity(ctx context.Context, entityType models.EntityType, entityID string, limit int) ([]*models.Event, error)
}

// SystemDarkFunc reports whether the system prefers a dark appearance.
type SystemDarkFunc func() bool

// Service resolves and updates the saved color mode.
type Service struct {
	store      Store
	events     EventStore
	key        string
	modes      theme.ModeConfig
	systemDark SystemDarkFunc
	logger     zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSystemDark sets the system preference probe.
func WithSystemDark(fn SystemDarkFunc) Option {
	return func(s *Service) {
		s.systemDark = fn
	}
}

// WithLogger sets the service logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a preference service for key.
func NewService(store Store, eventStore EventStore, key string, modes theme.ModeConfig, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("preference store is required")
	}
	if key == "" {
		return nil, errors.New("preference key is required")
	}

	s := &Service{
		store:  store,
		events: eventStore,
		key:    key,
		modes:  modes,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Key returns the preference key the service manages.
func (s *Service) Key() string {
	return s.key
}

// Current returns the mode to display and where it came from. When nothing
// valid is saved, the picked mode is saved.
func (s *Service) Current(ctx context.Context) (theme.ColorMode, Source, error) {
	saved, ok, err := s.saved(ctx)
	if err != nil {
		return theme.DefaultColorMode, "", err
	}
	if ok {
		return saved, SourceSaved, nil
	}

	mode, source := s.fallback()
	if err := s.store.Set(ctx, &models.Preference{Key: s.key, Value: string(mode)}); err != nil {
		return mode, source, fmt.Errorf("failed to save color mode: %w", err)
	}
	s.logger.Debug().
		Str("key", s.key).
		Str("mode", string(mode)).
		Str("source", string(source)).
		Msg("saved initial color mode")
	return mode, source, nil
}

// Set saves mode. Modes outside {light, dark} are rejected.
func (s *Service) Set(ctx context.Context, mode theme.ColorMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", theme.ErrInvalidColorMode, mode)
	}
	previous, _, err := s.saved(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, previous, mode, changeSet)
}

// Toggle flips the current mode and saves the result.
func (s *Service) Toggle(ctx context.Context) (theme.ColorMode, error) {
	current, _, err := s.Current(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if err := s.write(ctx, current, next, changeToggle); err != nil {
		return current, err
	}
	return next, nil
}

// Reset removes the saved mode so the next Current call picks again.
func (s *Service) Reset(ctx context.Context) error {
	err := s.store.Delete(ctx, s.key)
	if errors.Is(err, db.ErrPreferenceNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if s.events != nil {
		if err := events.LogColorModeCleared(ctx, s.events, s.key); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record color mode reset")
		}
	}
	return nil
}

// History returns recent mode change events, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]*models.Event, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.ListByEntity(ctx, models.EntityTypePreference, s.key, limit)
}

func (s *Service) saved(ctx context.Context) (theme.ColorMode, bool, error) {
	pref, err := s.store.Get(ctx, s.key)
	if errors.Is(err, db.ErrPreferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read color mode: %w", err)
	}

	mode, err := theme.ParseColorMode(pref.Value)
	if err != nil {
		s.logger.Warn().
			Str("key", s.key).
			Str("value", pref.Value).
			Msg("ignoring invalid saved color mode")
		return "", false, nil
	}
	return mode, true, nil
}

func (s *Service) fallback() (theme.ColorMode, Source) {
	if s.modes.UseSystemColorMode && s.systemDark != nil {
		if s.systemDark() {
			return theme.ModeDark, SourceSystem
		}
		return theme.ModeLight, SourceSystem
	}
	return theme.NormalizeColorMode(s.modes.InitialColorMode), SourceInitial
}

func (s *Service) write(ctx context.Context, from, to theme.ColorMode, source string) error {
	if err := s.store.Set(ctx, &models.Preference{Key: s.key, Value: string(to)}); err != nil {
		return fmt.Errorf("failed to save color mode: %w", err)
	}
	if from == to || s.events == nil {
		return nil
	}
	if err := events.LogColorModeChanged(ctx, s.events, s.key, string(from), string(to), source); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record color mode change")
	}
	return nil
}
