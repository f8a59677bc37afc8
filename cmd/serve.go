// =============================================================================
// EFD Contribuicoes Toolkit - Serve Command
// =============================================================================
//
// COMMAND USAGE:
//   efd serve [--addr :8080]
//
// Starts the HTTP editing session. Stops gracefully on SIGINT or SIGTERM.
//
// =============================================================================

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ginjaninja78/efd-contribuicoes/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a ledger editing session over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		wopts, err := writerOptions()
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = appConfig.Server.Addr
		}

		srv := server.New(server.Options{
			Addr:           addr,
			Registry:       registry,
			Transformer:    wopts.Transformer,
			Prefix:         wopts.Prefix,
			YieldEvery:     appConfig.YieldEvery,
			MaxUploadBytes: int64(appConfig.Server.MaxUploadMB) << 20,
			Logger:         log,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: server.addr from the configuration)")
}
