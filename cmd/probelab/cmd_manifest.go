package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"probelab/internal/corpus"
	"probelab/internal/manifest"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Create, validate, and inspect dataset manifests",
}

var manifestCreateCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Write the canonical v1 manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := manifest.Canonical(time.Now())
		if err := manifest.Save(m, args[0]); err != nil {
			return err
		}
		logger.Info("manifest written",
			zap.String("path", args[0]),
			zap.String("name", m.Name))
		fmt.Printf("Wrote %s (%s)\n", args[0], m.Name)
		return nil
	},
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a manifest against the corpus catalogue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		trainCount, err := m.TrajectoryCount(manifest.Train)
		if err != nil {
			return err
		}
		evalCount, err := m.TrajectoryCount(manifest.Eval)
		if err != nil {
			return err
		}
		fmt.Printf("Manifest %q is valid: %d train + %d eval trajectories\n",
			m.Name, trainCount, evalCount)
		return nil
	},
}

var manifestShowCmd = &cobra.Command{
	Use:   "show <path>",
	Short: "Print a manifest summary",
	Long: `Prints the splits and feedback configuration of a manifest. Historical
manifests that recorded randomized feedback per trajectory are rejected by
default; pass --legacy to inspect them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showLegacy {
			return showLegacyManifest(args[0])
		}
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		printManifestSummary(m)
		return nil
	},
}

func printManifestSummary(m *manifest.Manifest) {
	fmt.Printf("Name:        %s\n", m.Name)
	fmt.Printf("Schema:      %s\n", m.SchemaVersion)
	fmt.Printf("Created:     %s\n", m.Created)
	fmt.Printf("Description: %s\n", m.Description)
	fmt.Printf("Train:       %d questions (%s)\n",
		len(m.Splits.Train.QuestionIndices), m.Splits.Train.Description)
	fmt.Printf("Eval:        %d questions (%s)\n",
		len(m.Splits.Eval.QuestionIndices), m.Splits.Eval.Description)
	if templates, err := m.Feedback.Templates(); err == nil {
		fmt.Printf("Feedback:    %s (%d templates, polarity %s)\n",
			m.Feedback.TemplateBank, len(templates),
			corpus.BankPolarity(m.Feedback.TemplateBank))
	}
}

func showLegacyManifest(path string) error {
	m, err := manifest.LoadLegacy(path)
	if err != nil {
		return err
	}
	printManifestSummary(&m.Manifest)
	ids := m.TrajectoryIDs()
	fmt.Printf("Legacy:      %d recorded feedback trajectories (not reproducible from the manifest alone)\n", len(ids))
	const preview = 5
	for i, id := range ids {
		if i == preview {
			fmt.Printf("  ... %d more\n", len(ids)-preview)
			break
		}
		text, _ := m.FeedbackFor(id)
		fmt.Printf("  %s: %q\n", id, text)
	}
	return nil
}

var manifestExpandCmd = &cobra.Command{
	Use:   "expand <path>",
	Short: "List the trajectory ids a manifest split expands to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}
		specs, err := m.Expand(manifest.SplitName(expandSplit))
		if err != nil {
			return err
		}
		for _, spec := range specs {
			fmt.Println(spec.TrajectoryID)
		}
		logger.Debug("manifest expanded",
			zap.String("split", expandSplit),
			zap.Int("trajectories", len(specs)))
		return nil
	},
}

var (
	expandSplit string
	showLegacy  bool
)

func init() {
	manifestExpandCmd.Flags().StringVar(&expandSplit, "split", "train", "split to expand (train or eval)")
	manifestShowCmd.Flags().BoolVar(&showLegacy, "legacy", false, "load a legacy manifest with recorded feedback")

	manifestCmd.AddCommand(manifestCreateCmd, manifestValidateCmd, manifestShowCmd, manifestExpandCmd)
	rootCmd.AddCommand(manifestCmd)
}
