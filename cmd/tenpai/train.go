package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tenpai-trainer/internal/logging"
	"tenpai-trainer/internal/trainer"
	"tenpai-trainer/mahjong"
)

var (
	trainRounds  int
	trainSize    int
	trainPattern string
	trainMode    string
)

func init() {
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Run an interactive wait-reading session",
		Long: `Present generated hands one by one and grade your waiting-set answers.
Results are saved per training mode.

Example:
  tenpai train --rounds 5 --size 7 --pattern two-sided-wait`,
		RunE: runTrain,
	}

	trainCmd.Flags().IntVar(&trainRounds, "rounds", 0, "rounds per session (0 = config default)")
	trainCmd.Flags().IntVar(&trainSize, "size", 0, "display size: 7, 10 or 13 (0 = config default)")
	trainCmd.Flags().StringVar(&trainPattern, "pattern", "", "fixed wait shape (empty = random)")
	trainCmd.Flags().StringVar(&trainMode, "mode", "", "training-mode name for the score book")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	sessionCfg := trainer.Config{
		Mode:        cfg.Trainer.Mode,
		DisplaySize: cfg.Trainer.DisplaySize,
		Rounds:      cfg.Trainer.Rounds,
	}
	if trainMode != "" {
		sessionCfg.Mode = trainMode
	}
	if trainSize != 0 {
		sessionCfg.DisplaySize = trainSize
	}
	if trainRounds != 0 {
		sessionCfg.Rounds = trainRounds
	}
	patternName := cfg.Trainer.Pattern
	if trainPattern != "" {
		patternName = trainPattern
	}
	if patternName != "" {
		pattern, err := mahjong.ParseWaitPattern(patternName)
		if err != nil {
			return err
		}
		sessionCfg.Pattern = pattern
	}

	session, err := trainer.NewSession(sessionCfg, newGenerator())
	if err != nil {
		return err
	}

	store, err := trainer.OpenStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := session.Begin(); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	round := 0
	for session.State() != trainer.StateResult {
		round++
		exercise, err := session.Present()
		if err != nil {
			return err
		}

		fmt.Printf("\nRound %d/%d\n", round, sessionCfg.Rounds)
		fmt.Println(renderHandRow(exercise.Hand))

		answer := promptWaits(reader)
		correct, err := session.Answer(answer)
		if err != nil {
			return err
		}

		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. Waits: %s (%s)\n", renderTiles(exercise.Waits), exercise.Pattern)
		}

		if err := store.SaveResult(sessionCfg.Mode, exercise.Pattern, exercise.DisplaySize, exercise.ID, correct); err != nil {
			logging.Warn("could not save result: %v", err)
		}
	}

	summary, err := session.Summary()
	if err != nil {
		return err
	}
	fmt.Printf("\nSession over: %d/%d correct (%.0f%%)\n",
		summary.Correct, summary.Played, summary.Accuracy*100)
	return nil
}

// promptWaits reads a waiting-set guess, retrying on bad notation. An empty
// line is a deliberate "no idea" and grades as an empty set.
func promptWaits(reader *bufio.Reader) []mahjong.Tile {
	for {
		fmt.Print("Waiting tiles? ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		tiles, err := mahjong.ParseTiles(line)
		if err != nil {
			fmt.Println("Could not read that, e.g. \"4p 7p\" or \"47p\". Try again.")
			continue
		}
		return tiles
	}
}
