package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"probelab/internal/corpus"
	"probelab/internal/experiment"
	"probelab/internal/generate"
	"probelab/internal/label"
	"probelab/internal/results"
	"probelab/internal/trajectory"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Run and inspect the paired-question contradiction task",
}

var (
	pairsDomains []string
	pairsMax     int
	pairsRunName string
	pairsDry     bool
)

var pairsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rendered question pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range selectedDomains() {
			pairs, err := corpus.PairSet(d)
			if err != nil {
				return err
			}
			for _, p := range limitPairs(pairs) {
				fmt.Printf("%s\t%s vs %s\t[%s/%s]\t%s\n",
					p.PairID, p.EntityX, p.EntityY, p.GroundTruthA, p.GroundTruthB, p.Difficulty)
			}
		}
		return nil
	},
}

var pairsRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Ask both questions of each pair and classify the answers",
	Long: `For every pair, asks question A and question B in independent
conversations, extracts the YES/NO answers, and classifies the pair
(Honest, Rationalization, Honest_Mistake, Unknown). Identical answers to
the two converse questions are a provable self-contradiction. Writes one
CSV per domain plus aggregate metrics into a run folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		domains := selectedDomains()

		// The scripted dry-run path answers NO to everything, which produces
		// contradictions on every non-tie pair.
		gen, err := buildPairGenerator(ctx, domains)
		if err != nil {
			return err
		}

		name := pairsRunName
		if name == "" {
			name = "pairs"
		}
		cfg := experiment.NewConfig(name, time.Now())
		cfg.Provider = toolCfg.Provider
		cfg.Model = toolCfg.Model
		cfg.Domains = nil
		for _, d := range domains {
			cfg.Domains = append(cfg.Domains, string(d))
		}
		cfg.MaxPairsPerDomain = pairsMax
		run, err := experiment.CreateRun(toolCfg.ExperimentsDir, cfg, time.Now())
		if err != nil {
			return err
		}

		start := time.Now()
		var runResults experiment.Results
		for _, d := range domains {
			pairs, err := corpus.PairSet(d)
			if err != nil {
				return err
			}
			pairs = limitPairs(pairs)
			system := corpus.PairSystemPrompt(d)

			labeled := make([]label.PairResult, 0, len(pairs))
			correctA, correctB, contradictions := 0, 0, 0
			for _, p := range pairs {
				responseA, err := askOne(ctx, gen, system, p.QuestionA)
				if err != nil {
					runResults.Errors = append(runResults.Errors,
						fmt.Sprintf("%s question A: %v", p.PairID, err))
					continue
				}
				responseB, err := askOne(ctx, gen, system, p.QuestionB)
				if err != nil {
					runResults.Errors = append(runResults.Errors,
						fmt.Sprintf("%s question B: %v", p.PairID, err))
					continue
				}

				r := label.LabelPair(p, responseA, responseB)
				labeled = append(labeled, r)
				if r.IsContradiction {
					contradictions++
				}
				if r.AnswerA == p.GroundTruthA {
					correctA++
				}
				if r.AnswerB == p.GroundTruthB {
					correctB++
				}
				logger.Debug("pair labeled",
					zap.String("pair_id", p.PairID),
					zap.String("class", string(r.Class)))
			}

			csvPath := filepath.Join(run.Dir, "trajectories", fmt.Sprintf("pairs_%s.csv", d))
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", csvPath, err)
			}
			if err := results.WritePairCSV(f, labeled); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			runResults.LogDomain(string(d), len(labeled), contradictions, correctA, correctB)
			fmt.Printf("%s: %d pairs, %d contradictions (%.1f%%)\n",
				d, len(labeled), contradictions, label.ContradictionRate(labeled)*100)
		}

		runResults.Finalize()
		runResults.StartTime = start.Format(time.RFC3339)
		runResults.EndTime = time.Now().Format(time.RFC3339)
		runResults.DurationSeconds = time.Since(start).Seconds()
		if err := run.SaveResults(runResults); err != nil {
			return err
		}

		fmt.Printf("Overall: %d/%d contradictions (%.1f%%), results in %s\n",
			runResults.TotalContradictions, runResults.TotalPairs,
			runResults.ContradictionRate*100, run.Dir)
		return nil
	},
}

// askOne runs a single one-turn conversation.
func askOne(ctx context.Context, gen trajectory.Generator, system, question string) (string, error) {
	return gen.Generate(ctx, []trajectory.Message{
		{Role: trajectory.RoleSystem, Content: system},
		{Role: trajectory.RoleUser, Content: question},
	})
}

// buildPairGenerator constructs the backend for a pair run. The scripted
// dry-run variant needs two responses per pair across the selected domains.
func buildPairGenerator(ctx context.Context, domains []corpus.Domain) (trajectory.Generator, error) {
	if !pairsDry {
		return buildGenerator(ctx, 0)
	}
	total := 0
	for _, d := range domains {
		pairs, err := corpus.PairSet(d)
		if err != nil {
			return nil, err
		}
		total += len(limitPairs(pairs))
	}
	responses := make([]string, 2*total)
	for i := range responses {
		responses[i] = "ANSWER: NO"
	}
	return generate.NewScripted(responses...), nil
}

func selectedDomains() []corpus.Domain {
	if len(pairsDomains) == 0 {
		return corpus.Domains()
	}
	out := make([]corpus.Domain, 0, len(pairsDomains))
	for _, d := range pairsDomains {
		out = append(out, corpus.Domain(d))
	}
	return out
}

func limitPairs(pairs []corpus.QuestionPair) []corpus.QuestionPair {
	if pairsMax > 0 && len(pairs) > pairsMax {
		return pairs[:pairsMax]
	}
	return pairs
}

func init() {
	pairsCmd.PersistentFlags().StringSliceVar(&pairsDomains, "domain", nil,
		"domains to include (geography, dates, population); default all")
	pairsCmd.PersistentFlags().IntVar(&pairsMax, "max-pairs", 0, "cap pairs per domain (0 = all)")
	pairsRunCmd.Flags().StringVar(&pairsRunName, "name", "", "run name")
	pairsRunCmd.Flags().BoolVar(&pairsDry, "dry-run", false, "use the scripted generator instead of a live backend")

	pairsCmd.AddCommand(pairsListCmd, pairsRunCmd)
	rootCmd.AddCommand(pairsCmd)
}
