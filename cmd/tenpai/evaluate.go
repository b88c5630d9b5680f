package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tenpai-trainer/mahjong"
)

func init() {
	evaluateCmd := &cobra.Command{
		Use:   "evaluate <hand>",
		Short: "Rank the discards of an 8-, 10- or 14-tile hand",
		Long: `Rank every distinct discard by the number of tiles that would
then complete the hand.

Example:
  tenpai evaluate "123456789m 88s 567p 3s"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEvaluate,
	}
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	hand, err := mahjong.ParseTiles(strings.Join(args, " "))
	if err != nil {
		return err
	}

	eval, err := mahjong.EvaluateDiscards(hand)
	if err != nil {
		return err
	}

	fmt.Printf("Hand: %s\n\n", renderTiles(hand))
	for _, option := range eval.Options {
		if !option.IsTenpai {
			fmt.Printf("  discard %-3s -> not tenpai\n", option.Discard.Short())
			continue
		}
		fmt.Printf("  discard %-3s -> waits %s (%d tiles)\n",
			option.Discard.Short(), renderTiles(option.Waits), option.CompletingTiles)
	}

	if len(eval.BestDiscards) == 0 {
		fmt.Println("\nNo discard reaches tenpai.")
		return nil
	}
	fmt.Printf("\nBest: %s (%d completing tiles)\n", renderTiles(eval.BestDiscards), eval.BestCount)
	return nil
}
