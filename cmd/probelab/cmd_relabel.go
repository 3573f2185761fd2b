package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"probelab/internal/relabel"
	"probelab/internal/results"
)

var relabelCmd = &cobra.Command{
	Use:   "relabel <in.csv> <out.csv>",
	Short: "Re-extract and re-label stored trajectory results",
	Long: `Reads a trajectory CSV, re-runs answer extraction on the recorded raw
responses with the current heuristics, recomputes correctness and labels,
and writes the corrected table. Generation is never re-run.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := results.ReadCSVFile(args[0])
		if err != nil {
			return err
		}

		relabeled, failures := relabel.All(rows)
		changed := 0
		for i := range rows {
			if rows[i].Label != relabeled[i].Label {
				changed++
				logger.Debug("label changed",
					zap.String("trajectory_id", rows[i].TrajectoryID),
					zap.String("old", string(rows[i].Label)),
					zap.String("new", string(relabeled[i].Label)))
			}
		}
		for _, f := range failures {
			logger.Warn("could not relabel row, passed through unchanged",
				zap.String("trajectory_id", f.TrajectoryID),
				zap.Error(f.Err))
		}

		if err := results.WriteCSVFile(args[1], relabeled); err != nil {
			return err
		}

		summary := results.Summarize(relabeled)
		fmt.Printf("Relabeled %d rows (%d labels changed, %d unmatched)\n",
			len(relabeled), changed, len(failures))
		for class, n := range summary.ByLabel {
			fmt.Printf("  %-12s %d\n", string(class)+":", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(relabelCmd)
}
