// Package cmd provides the everest command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"everest-finance/config"
	"everest-finance/logging"
	"everest-finance/repository"
)

var (
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "everest",
	Short: "Everest Finance investment projections and figure counters",
	Long: `everest serves and runs the Everest Finance investment calculator.

Examples:
  everest serve
  everest project --initial 1000000 --monthly 50000 --years 5 --return 0.08 --tier premium
  everest counter "124,5 M FCFA" --frames 10
  everest tiers`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(tiersCmd)
}

// setup loads configuration and builds the logger shared by every command.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logging: %w", err)
	}
	return cfg, logger, nil
}

func loadTiers(cfg config.Config) (*repository.TierCatalog, error) {
	if cfg.TiersFile == "" {
		return repository.DefaultTierCatalog(), nil
	}
	return repository.LoadTierCatalog(cfg.TiersFile)
}
