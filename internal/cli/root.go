// Package cli implements the rosatheme command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/config"
	"github.com/rosagold/rosatheme/internal/db"
	"github.com/rosagold/rosatheme/internal/logging"
	"github.com/rosagold/rosatheme/internal/prefs"
	"github.com/rosagold/rosatheme/internal/theme"
)

var (
	cfgFile        string
	jsonOutput     bool
	yamlOutput     bool
	logLevel       string
	modeFlag       string
	nonInteractive bool
	noProgress     bool

	appConfig *config.Config
	version   = "dev"

	// systemDarkFunc probes the terminal background when the theme follows
	// the system preference.
	systemDarkFunc prefs.SystemDarkFunc = lipgloss.HasDarkBackground
)

var rootCmd = &cobra.Command{
	Use:   "rosatheme",
	Short: "Resolve the rosa gold theme",
	Long: `rosatheme resolves the salon UI theme: palettes, typography, spacing,
radii and the Button, Card, Input and Modal component styles in light and
dark mode.

Without --mode, commands use the saved color mode preference. The first
such command creates the preference database and saves the mode it picked.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ~/.config/rosatheme/config.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&yamlOutput, "yaml", false, "output YAML")
	flags.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&modeFlag, "mode", "", "color mode: light or dark (default: saved preference)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start interactive programs")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// Execute runs the root command.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	appConfig = cfg
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func openDatabase(ctx context.Context) (*db.DB, error) {
	database, err := db.Open(GetConfig().Database.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// openPrefs opens the database and builds the preference service. The
// returned close function releases the database.
func openPrefs(ctx context.Context) (*prefs.Service, func() error, error) {
	database, err := openDatabase(ctx)
	if err != nil {
		return nil, nil, err
	}
	cfg := GetConfig()
	svc, err := prefs.NewService(
		db.NewPreferenceRepository(database),
		db.NewEventRepository(database),
		cfg.Theme.StorageKey,
		cfg.ModeConfig(),
		prefs.WithSystemDark(systemDarkFunc),
		prefs.WithLogger(logging.Component("prefs")),
	)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return svc, database.Close, nil
}

// resolveMode returns the mode commands render with: --mode when given,
// else the saved preference.
func resolveMode(ctx context.Context) (theme.ColorMode, error) {
	logger := logging.Component("cli")
	if modeFlag != "" {
		return parseModeArg(logger, modeFlag), nil
	}

	svc, closeDB, err := openPrefs(ctx)
	if err != nil {
		return theme.DefaultColorMode, err
	}
	defer closeDB()

	mode, source, err := svc.Current(ctx)
	if err != nil {
		return theme.DefaultColorMode, err
	}
	logger.Debug().Str("mode", string(mode)).Str("source", string(source)).Msg("resolved color mode")
	return mode, nil
}

// parseModeArg applies the light fallback to malformed mode input.
func parseModeArg(logger zerolog.Logger, value string) theme.ColorMode {
	mode, err := theme.ParseColorMode(value)
	if errors.Is(err, theme.ErrInvalidColorMode) {
		logger.Debug().Str("mode", value).Msg("invalid color mode, using light")
	}
	return mode
}
