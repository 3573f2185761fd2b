package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"probelab/internal/corpus"
	"probelab/internal/experiment"
	"probelab/internal/generate"
	"probelab/internal/label"
	"probelab/internal/manifest"
	"probelab/internal/results"
	"probelab/internal/trajectory"
)

var (
	runSplit string
	runName  string
	dryRun   bool
)

var runCmd = &cobra.Command{
	Use:   "run <manifest>",
	Short: "Generate and label every trajectory in a manifest split",
	Long: `Expands the manifest split into trajectory specs, drives each two-turn
exchange through the configured generation backend, labels the outcomes,
and writes a self-contained run folder with a sqlite store, a CSV table,
and aggregate results.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		split := manifest.SplitName(runSplit)
		specs, err := m.Expand(split)
		if err != nil {
			return err
		}
		polarity := corpus.BankPolarity(m.Feedback.TemplateBank)

		ctx := cmd.Context()
		gen, err := buildGenerator(ctx, len(specs))
		if err != nil {
			return err
		}

		name := runName
		if name == "" {
			name = m.Name
		}
		cfg := experiment.NewConfig(name, time.Now())
		cfg.Provider = toolCfg.Provider
		cfg.Model = toolCfg.Model
		cfg.Description = fmt.Sprintf("manifest %s, split %s", m.Name, split)
		run, err := experiment.CreateRun(toolCfg.ExperimentsDir, cfg, time.Now())
		if err != nil {
			return err
		}
		logger.Info("starting run",
			zap.String("dir", run.Dir),
			zap.String("split", string(split)),
			zap.Int("trajectories", len(specs)),
			zap.String("provider", toolCfg.Provider))

		start := time.Now()
		res, failures := trajectory.RunAll(ctx, specs, polarity, gen, trajectory.BatchOptions{
			Concurrency: toolCfg.Concurrency,
			Logger:      logger,
		})

		store, err := results.Open(filepath.Join(run.Dir, "trajectories", "results.db"))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.PutAll(res); err != nil {
			return err
		}
		csvPath := filepath.Join(run.Dir, "trajectories", "results.csv")
		if err := results.WriteCSVFile(csvPath, res); err != nil {
			return err
		}

		summary := results.Summarize(res)
		runResults := experiment.Results{
			TrajectorySummary: summary.Export(),
			StartTime:         start.Format(time.RFC3339),
			EndTime:           time.Now().Format(time.RFC3339),
			DurationSeconds:   time.Since(start).Seconds(),
		}
		for _, f := range failures {
			runResults.Errors = append(runResults.Errors,
				fmt.Sprintf("%s: %v", f.TrajectoryID, f.Err))
		}
		if err := run.SaveResults(runResults); err != nil {
			return err
		}

		fmt.Printf("Run complete: %s\n", run.Dir)
		fmt.Printf("  trajectories: %d completed, %d failed\n", len(res), len(failures))
		for _, class := range []label.FeedbackClass{label.Sycophantic, label.Maintained, label.Consistent, label.Invalid} {
			fmt.Printf("  %-12s %d\n", string(class)+":", summary.ByLabel[class])
		}
		if polarity == corpus.Negative {
			fmt.Printf("  sycophancy rate: %.1f%% (%d valid)\n", summary.SycophancyRate*100, summary.Valid)
		}
		return nil
	},
}

// buildGenerator constructs the configured generation backend. A dry run
// always uses the scripted generator so no network calls happen.
func buildGenerator(ctx context.Context, specCount int) (trajectory.Generator, error) {
	provider := toolCfg.Provider
	if dryRun {
		provider = "scripted"
	}
	switch provider {
	case "openai":
		cfg := generate.DefaultConfig(toolCfg.APIKey())
		if toolCfg.Model != "" {
			cfg.Model = toolCfg.Model
		}
		if toolCfg.BaseURL != "" {
			cfg.BaseURL = toolCfg.BaseURL
		}
		cfg.Timeout = toolCfg.GenTimeout()
		cfg.MaxTokens = toolCfg.MaxTokens
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("no API key in environment variable %s", toolCfg.APIKeyEnv)
		}
		return generate.NewClient(cfg), nil
	case "gemini":
		apiKey := toolCfg.APIKey()
		if apiKey == "" {
			return nil, fmt.Errorf("no API key in environment variable %s", toolCfg.APIKeyEnv)
		}
		return generate.NewGemini(ctx, apiKey, toolCfg.Model)
	case "scripted":
		// Two turns per trajectory.
		responses := make([]string, 2*specCount)
		for i := range responses {
			responses[i] = "I am not able to answer."
		}
		return generate.NewScripted(responses...), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", provider)
	}
}

func init() {
	runCmd.Flags().StringVar(&runSplit, "split", "train", "manifest split to run (train or eval)")
	runCmd.Flags().StringVar(&runName, "name", "", "run name (defaults to the manifest name)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "use the scripted generator instead of a live backend")
	rootCmd.AddCommand(runCmd)
}
