// Command metamerge merges domain clusters that share a confident metadata
// signature on the network blocks their domains resolved to.
//
// Usage:
//
//	metamerge <clusters.json> <clusters.ip.json> <ptrs.json | whois.json> <threshold> <clusters.out.json>
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"metamerge/internal/config"
	"metamerge/internal/domain"
	"metamerge/internal/logging"
	"metamerge/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("merge failed", "error", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "metamerge <clusters.json> <clusters.ip.json> <metadata.json> <threshold> <output.json>",
		Short:         "Merge domain clusters that share network-block metadata",
		Args:          requireArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := domain.ParseThreshold(args[3])
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}

			closer, err := logging.Setup(cfg.Log, "metamerge")
			if err != nil {
				return err
			}
			defer closer.Close()
			log.Debug("Configuration", "summary", cfg.Summary())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := service.NewMergeService(cfg, log.Default())
			_, err = svc.Run(ctx, service.MergeRequest{
				ClustersPath:   args[0],
				MembershipPath: args[1],
				MetadataPath:   args[2],
				Threshold:      threshold,
				OutputPath:     args[4],
			})
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: search "+config.ConfigFileName+" locations)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	return cmd
}

// requireArgs prints usage and fails without doing any work when fewer than n
// positional arguments are supplied
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s\n", cmd.UseLine())
			return fmt.Errorf("%w: expected %d arguments, got %d", domain.ErrInvalidArguments, n, len(args))
		}
		return nil
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, _, err := config.LoadFromPath(path)
		return cfg, err
	}
	cfg, _, err := config.Load()
	return cfg, err
}
