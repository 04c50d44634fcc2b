package prefs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosagold/rosatheme/internal/db"
	"github.com/rosagold/rosatheme/internal/models"
	"github.com/rosagold/rosatheme/internal/theme"
)

const testKey = "beauty-salon-theme"

type fixture struct {
	prefs  *db.PreferenceRepository
	events *db.EventRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	database, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.MigrateUp(context.Background())
	require.NoError(t, err)

	return fixture{
		prefs:  db.NewPreferenceRepository(database),
		events: db.NewEventRepository(database),
	}
}

func (f fixture) service(t *testing.T, modes theme.ModeConfig, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(f.prefs, f.events, testKey, modes, opts...)
	require.NoError(t, err)
	return svc
}

func TestCurrentFollowsSystemWhenNothingSaved(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.service(t, theme.DefaultModeConfig(), WithSystemDark(func() bool { return true }))

	mode, source, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeDark, mode)
	require.Equal(t, SourceSystem, source)

	saved, err := f.prefs.Get(ctx, testKey)
	require.NoError(t, err)
	require.Equal(t, "dark", saved.Value)

	mode, source, err = svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeDark, mode)
	require.Equal(t, SourceSaved, source)
}

func TestCurrentUsesInitialWithoutSystem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	probed := false
	svc := f.service(t,
		theme.ModeConfig{InitialColorMode: theme.ModeDark, UseSystemColorMode: false},
		WithSystemDark(func() bool { probed = true; return false }),
	)

	mode, source, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeDark, mode)
	require.Equal(t, SourceInitial, source)
	require.False(t, probed, "system preference should not be probed")
}

func TestCurrentDefaultsToLightWithoutProbe(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, theme.DefaultModeConfig())

	mode, source, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, theme.ModeLight, mode)
	require.Equal(t, SourceInitial, source)
}

func TestCurrentIgnoresInvalidSavedValue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.prefs.Set(ctx, &models.Preference{Key: testKey, Value: "sepia"}))

	svc := f.service(t, theme.ModeConfig{InitialColorMode: theme.ModeLight})
	mode, source, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeLight, mode)
	require.Equal(t, SourceInitial, source)

	saved, err := f.prefs.Get(ctx, testKey)
	require.NoError(t, err)
	require.Equal(t, "light", saved.Value)
}

func TestToggleRecordsEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.service(t, theme.ModeConfig{InitialColorMode: theme.ModeLight})

	next, err := svc.Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeDark, next)

	next, err = svc.Toggle(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeLight, next)

	history, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	var newest models.ColorModeChangedPayload
	require.NoError(t, json.Unmarshal(history[0].Payload, &newest))
	require.Equal(t, models.ColorModeChangedPayload{From: "dark", To: "light", Source: "toggle"}, newest)
}

func TestSetRejectsInvalidMode(t *testing.T) {
	f := newFixture(t)
	svc := f.service(t, theme.DefaultModeConfig())

	err := svc.Set(context.Background(), theme.ColorMode("sepia"))
	require.ErrorIs(t, err, theme.ErrInvalidColorMode)
}

func TestSetSameModeSkipsEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.service(t, theme.DefaultModeConfig())

	require.NoError(t, svc.Set(ctx, theme.ModeDark))
	require.NoError(t, svc.Set(ctx, theme.ModeDark))

	history, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestResetClearsSavedMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := f.service(t, theme.ModeConfig{InitialColorMode: theme.ModeLight})

	require.NoError(t, svc.Set(ctx, theme.ModeDark))
	require.NoError(t, svc.Reset(ctx))
	require.NoError(t, svc.Reset(ctx))

	mode, source, err := svc.Current(ctx)
	require.NoError(t, err)
	require.Equal(t, theme.ModeLight, mode)
	require.Equal(t, SourceInitial, source)

	history, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, models.EventTypeColorModeCleared, history[0].Type)
}

func TestNewServiceValidates(t *testing.T) {
	_, err := NewService(nil, nil, testKey, theme.DefaultModeConfig())
	require.Error(t, err)

	f := newFixture(t)
	_, err = NewService(f.prefs, nil, "", theme.DefaultModeConfig())
	require.Error(t, err)
}
