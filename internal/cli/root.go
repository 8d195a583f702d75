// Package cli wires the health record store to a cobra command tree. Every
// leaf command opens the store, runs one operation and closes it again, so
// the database file is never held across invocations.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/DarkSyed/sugari-sub000/internal/apperrors"
	"github.com/DarkSyed/sugari-sub000/internal/config"
	"github.com/DarkSyed/sugari-sub000/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string
	cfg        *config.Config
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sugari",
		Short:         "Local health journal for diabetes management",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = os.Getenv("SUGARI_CONFIG")
			}

			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.Storage.DBFile = dbPath
			}
			return logger.InitWithConfig(logger.Config{
				Level:      cfg.Logger.Level,
				OutputPath: cfg.Logger.OutputPath,
				Format:     cfg.Logger.Format,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: ~/.sugari/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path (overrides config)")

	rootCmd.AddCommand(glucoseCmd())
	rootCmd.AddCommand(foodCmd())
	rootCmd.AddCommand(insulinCmd())
	rootCmd.AddCommand(a1cCmd())
	rootCmd.AddCommand(weightCmd())
	rootCmd.AddCommand(bpCmd())
	rootCmd.AddCommand(medicationCmd())
	rootCmd.AddCommand(settingsCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(resetCmd())

	return rootCmd
}

// Execute runs the command tree. Errors are logged with their structured
// fields and printed once for the user.
func Execute(ctx context.Context) error {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		apperrors.NewHandler(logger.GetLogger()).Handle(ctx, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
