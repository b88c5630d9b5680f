package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tenpai-trainer/mahjong"
)

func init() {
	detectCmd := &cobra.Command{
		Use:   "detect <hand>",
		Short: "Check whether a hand is tenpai and list its waits",
		Long: `Check whether a 7-, 10- or 13-tile hand is one tile from winning.

Examples:
  tenpai detect "123456789m 88s 56p"
  tenpai detect 789m 111p 5s`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDetect,
	}
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	hand, err := mahjong.ParseTiles(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if err := mahjong.ValidateHand(hand); err != nil {
		return err
	}

	result, err := mahjong.DetectTenpaiSized(hand, len(hand))
	if err != nil {
		return err
	}

	fmt.Printf("Hand:  %s\n", renderTiles(hand))
	if !result.IsTenpai {
		fmt.Println("Not tenpai.")
		return nil
	}
	fmt.Printf("Waits: %s\n", renderTiles(result.Waits))
	fmt.Printf("Shape: %s\n", result.Pattern)
	return nil
}
