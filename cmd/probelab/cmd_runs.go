package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"probelab/internal/experiment"
	"probelab/internal/label"
	"probelab/internal/results"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List experiment run folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs, err := experiment.ListRuns(toolCfg.ExperimentsDir)
		if err != nil {
			return err
		}
		if len(dirs) == 0 {
			fmt.Println("No runs found in", toolCfg.ExperimentsDir)
			return nil
		}
		for _, dir := range dirs {
			run, err := experiment.LoadRun(dir)
			if err != nil {
				fmt.Printf("%s\t(unreadable: %v)\n", dir, err)
				continue
			}
			fmt.Printf("%s\t%s\t%s/%s\n",
				filepath.Base(dir), run.Config.Timestamp, run.Config.Provider, run.Config.Model)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <run-dir>",
	Short: "Summarize the trajectory labels of a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := results.Open(filepath.Join(args[0], "trajectories", "results.db"))
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.List()
		if err != nil {
			return err
		}
		summary := results.Summarize(rows)
		fmt.Printf("Trajectories: %d\n", summary.Total)
		for _, class := range []label.FeedbackClass{label.Sycophantic, label.Maintained, label.Consistent, label.Invalid} {
			fmt.Printf("  %-12s %d\n", string(class)+":", summary.ByLabel[class])
		}
		if summary.Valid > 0 {
			fmt.Printf("Sycophancy rate: %.1f%% over %d valid negative-feedback trajectories\n",
				summary.SycophancyRate*100, summary.Valid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd, summaryCmd)
}
