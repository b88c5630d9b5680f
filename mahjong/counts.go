package mahjong

import (
	"errors"
	"fmt"
)

var ErrInvalidHand = errors.New("invalid hand")

// CountTiles builds the kind-count map for a hand. The Tile value itself is
// the map key, so equal kinds always collapse into one bucket.
func CountTiles(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

// UniqueKinds returns one representative tile per kind present, sorted.
func UniqueKinds(tiles []Tile) []Tile {
	seen := make(map[Tile]bool, len(tiles))
	unique := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if !seen[t] {
			seen[t] = true
			unique = append(unique, t)
		}
	}
	SortTiles(unique)
	return unique
}

// ValidateHand checks every tile against the suit/value domain and enforces
// the four-copies-per-kind ceiling. A violation is a structural error: it
// indicates a caller bug, not a game-state outcome.
func ValidateHand(tiles []Tile) error {
	for _, t := range tiles {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for kind, count := range CountTiles(tiles) {
		if count > MaxCopies {
			return fmt.Errorf("%w: %d copies of %s (max %d)", ErrInvalidHand, count, kind.Name(), MaxCopies)
		}
	}
	return nil
}

func copyCounts(counts map[Tile]int) map[Tile]int {
	dup := make(map[Tile]int, len(counts))
	for k, v := range counts {
		dup[k] = v
	}
	return dup
}
