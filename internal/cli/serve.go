package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rosagold/rosatheme/internal/logging"
	"github.com/rosagold/rosatheme/internal/theme"
	"github.com/rosagold/rosatheme/internal/themed"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "bind address (default: daemon.hostname from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port (default: daemon.port from config)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC theme service",
	Long: `Serve the resolver operations over gRPC as rosatheme.v1.ThemeService.
Requests and responses are google.protobuf.Struct messages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Component("themed")

		t := theme.Default()
		if err := theme.Validate(t); err != nil {
			return err
		}

		daemon, err := themed.New(GetConfig(), logger, themed.Options{
			Hostname: serveHost,
			Port:     servePort,
			Version:  version,
			Theme:    t,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return daemon.Run(ctx)
	},
}
