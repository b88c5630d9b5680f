package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tenpai-trainer/internal/trainer"
)

var statsMode string

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show training scores per mode",
		RunE:  runStats,
	}
	statsCmd.Flags().StringVar(&statsMode, "mode", "", "single mode to show (empty = all)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := trainer.OpenStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	var all []trainer.ModeStats
	if statsMode != "" {
		stats, err := store.Stats(statsMode)
		if err != nil {
			return err
		}
		all = append(all, stats)
	} else {
		all, err = store.AllStats()
		if err != nil {
			return err
		}
	}

	if len(all) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}
	fmt.Printf("%-20s %8s %8s %9s\n", "MODE", "PLAYED", "CORRECT", "ACCURACY")
	for _, stats := range all {
		fmt.Printf("%-20s %8d %8d %8.0f%%\n",
			stats.Mode, stats.Played, stats.Correct, stats.Accuracy*100)
	}
	return nil
}
