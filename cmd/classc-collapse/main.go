// Command classc-collapse folds a per-domain ASN resolution aggregation into
// classC block tables.
//
// Usage:
//
//	classc-collapse <asn-aggregation> <outprefix>
//
// writes <outprefix>.classC-domain.json ({classC -> {domain -> resolutions}})
// and <outprefix>.domain-classC.json ({domain -> {classC -> resolutions}}).
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"metamerge/internal/aggregate"
	"metamerge/internal/config"
	"metamerge/internal/domain"
	"metamerge/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("collapse failed", "error", err)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "classc-collapse <asn-aggregation> <outprefix>",
		Short:         "Collapse ASN resolution records into classC tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
				return fmt.Errorf("%w: expected 2 arguments, got %d", domain.ErrInvalidArguments, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			closer, err := logging.Setup(cfg.Log, "classc-collapse")
			if err != nil {
				return err
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = aggregate.Run(ctx, args[0], args[1])
			return err
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	return cmd
}
