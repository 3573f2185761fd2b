package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"probelab/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded on startup
	logger  *zap.Logger
	toolCfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "probelab",
	Short: "probelab - sycophancy and rationalization dataset engine",
	Long: `probelab builds reproducible datasets for probing whether sycophantic
answer-switching and self-contradiction are linearly detectable in a
language model's activations.

A manifest pins exactly which (question, feedback) trajectories a dataset
run contains; the engine expands it deterministically, drives two-turn
exchanges through a pluggable generation backend, and labels each
trajectory (sycophantic / maintained / consistent / invalid). Model
inference, activation capture, and probing live outside this tool.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		toolCfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "probelab.yaml", "path to tool config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
