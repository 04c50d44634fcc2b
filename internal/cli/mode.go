package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/models"
	"github.com/rosagold/rosatheme/internal/prefs"
	"github.com/rosagold/rosatheme/internal/theme"
)

var modeHistoryLimit int

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(modeGetCmd)
	modeCmd.AddCommand(modeSetCmd)
	modeCmd.AddCommand(modeToggleCmd)
	modeCmd.AddCommand(modeResetCmd)
	modeCmd.AddCommand(modeHistoryCmd)

	modeHistoryCmd.Flags().IntVarP(&modeHistoryLimit, "limit", "n", 20, "maximum number of entries")
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Manage the saved color mode",
	Long: `Manage the color mode preference stored under the configured key.

When nothing is saved, the system preference is used if the theme follows
it, otherwise the initial color mode. The picked mode is then saved.`,
}

// ModeStatus is the structured output of the mode commands.
type ModeStatus struct {
	Mode         theme.ColorMode `json:"mode" yaml:"mode"`
	Source       prefs.Source    `json:"source,omitempty" yaml:"source,omitempty"`
	Key          string          `json:"key" yaml:"key"`
	FollowSystem bool            `json:"followSystem" yaml:"followSystem"`
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current color mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, closeDB, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		mode, source, err := svc.Current(ctx)
		if err != nil {
			return err
		}
		status := ModeStatus{
			Mode:         mode,
			Source:       source,
			Key:          svc.Key(),
			FollowSystem: GetConfig().Theme.UseSystemColorMode,
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, status)
		}
		return writeTable(out, nil, [][]string{
			{"Mode:", formatModeSource(status.Mode, status.Source)},
			{"Key:", status.Key},
			{"Follow system:", formatYesNo(status.FollowSystem)},
		})
	},
}

var modeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Save a color mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.ModeLight), string(theme.ModeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := theme.ParseColorMode(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		svc, closeDB, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := svc.Set(ctx, mode); err != nil {
			return err
		}
		return writeModeResult(cmd, svc, mode)
	},
}

var modeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, closeDB, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		mode, err := svc.Toggle(ctx)
		if err != nil {
			return err
		}
		return writeModeResult(cmd, svc, mode)
	},
}

var modeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved color mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, closeDB, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := svc.Reset(ctx); err != nil {
			return err
		}
		if IsStructuredOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]any{"key": svc.Key(), "reset": true})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared saved color mode %q\n", svc.Key())
		return nil
	},
}

func writeModeResult(cmd *cobra.Command, svc *prefs.Service, mode theme.ColorMode) error {
	out := cmd.OutOrStdout()
	if IsStructuredOutput() {
		return WriteOutput(out, ModeStatus{
			Mode:         mode,
			Source:       prefs.SourceSaved,
			Key:          svc.Key(),
			FollowSystem: GetConfig().Theme.UseSystemColorMode,
		})
	}
	fmt.Fprintf(out, "Color mode set to %s\n", mode)
	return nil
}

// HistoryEntry is one recorded mode change.
type HistoryEntry struct {
	Time   time.Time        `json:"time" yaml:"time"`
	Type   models.EventType `json:"type" yaml:"type"`
	From   string           `json:"from,omitempty" yaml:"from,omitempty"`
	To     string           `json:"to,omitempty" yaml:"to,omitempty"`
	Source string           `json:"source,omitempty" yaml:"source,omitempty"`
}

var modeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent color mode changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, closeDB, err := openPrefs(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		events, err := svc.History(ctx, modeHistoryLimit)
		if err != nil {
			return err
		}
		entries := make([]HistoryEntry, 0, len(events))
		for _, event := range events {
			entries = append(entries, historyEntry(event))
		}

		out := cmd.OutOrStdout()
		if IsStructuredOutput() {
			return WriteOutput(out, entries)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No color mode changes recorded")
			return nil
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				e.Time.Local().Format(time.DateTime),
				string(e.Type),
				dashIfEmpty(e.From),
				dashIfEmpty(e.To),
				dashIfEmpty(e.Source),
			})
		}
		return writeTable(out, []string{"TIME", "EVENT", "FROM", "TO", "SOURCE"}, rows)
	},
}

func historyEntry(event *models.Event) HistoryEntry {
	entry := HistoryEntry{Time: event.Timestamp, Type: event.Type}
	if event.Type == models.EventTypeColorModeChanged && len(event.Payload) > 0 {
		var payload models.ColorModeChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err == nil {
			entry.From, entry.To, entry.Source = payload.From, payload.To, payload.Source
		}
	}
	return entry
}
