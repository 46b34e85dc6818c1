package main

import (
	"fmt"
	"os"

	"buckshot/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger = zap.NewNop()
	limits = config.DefaultLimits()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "buckshot",
		Short: "Chamber odds and move advice for Buckshot Roulette",
		Long: `buckshot tracks the shells loaded into the shotgun and estimates, chamber by
chamber, how likely each one is to be live. It also suggests who to shoot.

Use "buckshot repl" to follow a whole table interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return loadLimits()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Solver config file (JSON, or YAML by extension)")

	root.AddCommand(newChambersCmd(), newOddsCmd(), newRecommendCmd(), newReplCmd())
	return root
}

// loadLimits applies --config, keeping the built-in table limits when unset.
func loadLimits() error {
	if configPath == "" {
		limits = config.DefaultLimits()
		return nil
	}
	cfg, err := config.ReadGameConfig(configPath)
	if err != nil {
		return err
	}
	limits = cfg.Limits()
	logger.Debug("loaded solver config",
		zap.String("path", configPath),
		zap.Int("max_shells_per_kind", limits.MaxShellsPerKind),
		zap.Int("max_players", limits.MaxPlayers))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
