package mahjong

// TenpaiResult reports whether a hand is one tile away from a winning shape,
// which kinds complete it, and the shape the wait takes.
type TenpaiResult struct {
	IsTenpai bool
	Waits    []Tile
	Pattern  WaitPattern
}

// meldsForSize maps a display size to the meld target after drawing the
// completing tile: 13 tiles -> 4 melds + pair on 14, 10 -> 3 on 11,
// 7 -> 2 on 8. Nine tiles plus a draw make 10, which no 3*melds+2 can
// reach, so size 9 is conservatively never tenpai (the ambiguity comes from
// the discard-evaluation path on 10-tile hands and is resolved as
// always-false rather than guessed at).
func meldsForSize(size int) (int, bool) {
	switch size {
	case 13:
		return 4, true
	case 10:
		return 3, true
	case 7:
		return 2, true
	}
	return 0, false
}

// DetectTenpai analyzes a canonical 13-tile hand.
func DetectTenpai(hand []Tile) (TenpaiResult, error) {
	return DetectTenpaiSized(hand, 13)
}

// DetectTenpaiSized analyzes a hand of display size 7, 9, 10 or 13 by trial
// insertion: for every candidate kind, add one copy and ask the decomposer
// whether the enlarged hand reduces to the target melds plus a pair. The
// candidate space is restricted to suits already present in the hand, so
// honor waits are only explored when honor tiles are held.
//
// A size mismatch or a hand already holding four copies too many is a
// not-tenpai outcome, not an error; only structurally invalid tiles are.
func DetectTenpaiSized(hand []Tile, size int) (TenpaiResult, error) {
	for _, t := range hand {
		if err := t.Validate(); err != nil {
			return TenpaiResult{}, err
		}
	}

	melds, supported := meldsForSize(size)
	if !supported || len(hand) != size {
		return TenpaiResult{}, nil
	}

	counts := CountTiles(hand)
	for _, count := range counts {
		if count > MaxCopies {
			return TenpaiResult{}, nil
		}
	}

	seen := make(map[string]bool, 5)
	suits := make([]string, 0, 5)
	for _, t := range hand {
		if !seen[t.Suit] {
			seen[t.Suit] = true
			suits = append(suits, t.Suit)
		}
	}

	var waits []Tile
	for _, kind := range KindsInSuits(suits...) {
		if counts[kind] >= MaxCopies {
			continue
		}
		counts[kind]++
		ok, err := CanDecompose(counts, melds, true)
		counts[kind]--
		if err != nil {
			return TenpaiResult{}, err
		}
		if ok {
			waits = append(waits, kind)
		}
	}
	SortTiles(waits)

	return TenpaiResult{
		IsTenpai: len(waits) > 0,
		Waits:    waits,
		Pattern:  ClassifyWait(waits, hand),
	}, nil
}
