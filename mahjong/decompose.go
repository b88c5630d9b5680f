package mahjong

import "fmt"

// CanDecompose reports whether the kind-count map reduces exactly to `melds`
// melds (triplets or runs) plus, if needPair, one pair, with no tiles left
// over. It is a satisfiability search, not an enumerator: it returns on the
// first decomposition found. A total tile count that cannot match the target
// is a plain false; only negative counts are an error.
func CanDecompose(counts map[Tile]int, melds int, needPair bool) (bool, error) {
	if melds < 0 {
		return false, fmt.Errorf("%w: negative meld target %d", ErrInvalidHand, melds)
	}
	total := 0
	for kind, count := range counts {
		if count < 0 {
			return false, fmt.Errorf("%w: negative count for %s", ErrInvalidHand, kind.Name())
		}
		total += count
	}
	expected := melds * 3
	pairs := 0
	if needPair {
		expected += 2
		pairs = 1
	}
	if total != expected {
		return false, nil
	}
	return decomposeRecursive(counts, sortedKinds(counts), melds, pairs), nil
}

// IsWinningHand checks the standard winning shape: 14 tiles forming exactly
// 4 melds and 1 pair.
func IsWinningHand(hand []Tile) bool {
	if len(hand) != 14 || ValidateHand(hand) != nil {
		return false
	}
	ok, _ := CanDecompose(CountTiles(hand), 4, true)
	return ok
}

func sortedKinds(counts map[Tile]int) []Tile {
	kinds := make([]Tile, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	SortTiles(kinds)
	return kinds
}

// decomposeRecursive anchors on the lowest kind still held and tries, in
// order, committing it to the pair, a triplet, or a run it starts. Any valid
// decomposition must consume the lowest kind one of these three ways (a run
// through it starting lower would need kinds already exhausted), so the
// search is complete. Each branch works on its own copy of the counts;
// backtracking is restore-by-discard. Hands are at most 14 tiles, so the
// copy cost stays negligible.
func decomposeRecursive(counts map[Tile]int, kinds []Tile, melds, pairs int) bool {
	anchorIdx := -1
	for i, kind := range kinds {
		if counts[kind] > 0 {
			anchorIdx = i
			break
		}
	}
	if anchorIdx == -1 {
		return melds == 0 && pairs == 0
	}

	anchor := kinds[anchorIdx]
	held := counts[anchor]

	// 1. Commit the anchor as the pair.
	if pairs > 0 && held >= 2 {
		next := copyCounts(counts)
		next[anchor] -= 2
		if decomposeRecursive(next, kinds, melds, pairs-1) {
			return true
		}
	}

	if melds > 0 {
		// 2. Consume a triplet of the anchor.
		if held >= 3 {
			next := copyCounts(counts)
			next[anchor] -= 3
			if decomposeRecursive(next, kinds, melds-1, pairs) {
				return true
			}
		}

		// 3. Consume a run starting at the anchor. Honors never form runs,
		// and runs only start at values 1-7.
		if anchor.IsNumeral() && anchor.Value <= 7 {
			second := Tile{Suit: anchor.Suit, Value: anchor.Value + 1}
			third := Tile{Suit: anchor.Suit, Value: anchor.Value + 2}
			if counts[second] > 0 && counts[third] > 0 {
				next := copyCounts(counts)
				next[anchor]--
				next[second]--
				next[third]--
				if decomposeRecursive(next, kinds, melds-1, pairs) {
					return true
				}
			}
		}
	}

	return false
}
