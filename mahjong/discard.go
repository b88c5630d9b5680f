package mahjong

import (
	"errors"
	"fmt"
)

var ErrUnsupportedSize = errors.New("unsupported hand size")

// DiscardOption is the outcome of removing one copy of a kind from an
// oversized hand: whether the rest is tenpai, on what, and how many physical
// completing tiles remain drawable.
type DiscardOption struct {
	Discard         Tile
	IsTenpai        bool
	Waits           []Tile
	CompletingTiles int
}

// DiscardEvaluation ranks every distinct discard of an oversized hand.
// BestDiscards holds every kind tied for the highest completing-tile count;
// both stay empty when no discard reaches tenpai, which is a valid outcome.
type DiscardEvaluation struct {
	Options      []DiscardOption
	BestCount    int
	BestDiscards []Tile
}

// EvaluateDiscards enumerates candidate discards from an 8-, 10- or 14-tile
// hand. Duplicate copies of a kind yield identical results, so only distinct
// kinds are tried. For each candidate the remaining hand runs through the
// tenpai detector at the reduced size, and tenpai outcomes are scored by the
// completing-tile count: for every waiting kind, the copies the player could
// still draw (4 minus the copies already held after the discard).
func EvaluateDiscards(hand []Tile) (DiscardEvaluation, error) {
	if err := ValidateHand(hand); err != nil {
		return DiscardEvaluation{}, err
	}
	switch len(hand) {
	case 8, 10, 14:
	default:
		return DiscardEvaluation{}, fmt.Errorf("%w: %d tiles (want 8, 10 or 14)", ErrUnsupportedSize, len(hand))
	}

	eval := DiscardEvaluation{}
	for _, kind := range UniqueKinds(hand) {
		rest := removeOneCopy(hand, kind)
		result, err := DetectTenpaiSized(rest, len(rest))
		if err != nil {
			return DiscardEvaluation{}, err
		}

		option := DiscardOption{Discard: kind, IsTenpai: result.IsTenpai, Waits: result.Waits}
		if result.IsTenpai {
			restCounts := CountTiles(rest)
			for _, wait := range result.Waits {
				option.CompletingTiles += MaxCopies - restCounts[wait]
			}
		}
		eval.Options = append(eval.Options, option)

		if option.IsTenpai && option.CompletingTiles > eval.BestCount {
			eval.BestCount = option.CompletingTiles
		}
	}

	// Ties are preserved: every tenpai discard reaching the maximum counts.
	if eval.BestCount > 0 {
		for _, option := range eval.Options {
			if option.IsTenpai && option.CompletingTiles == eval.BestCount {
				eval.BestDiscards = append(eval.BestDiscards, option.Discard)
			}
		}
	}
	return eval, nil
}

// removeOneCopy returns the hand minus a single occurrence of the kind.
func removeOneCopy(hand []Tile, kind Tile) []Tile {
	rest := make([]Tile, 0, len(hand)-1)
	removed := false
	for _, t := range hand {
		if !removed && t == kind {
			removed = true
			continue
		}
		rest = append(rest, t)
	}
	return rest
}
