package mahjong

import "fmt"

// WaitPattern names the shape of a waiting-tile set. The closed enum keeps
// dispatch over patterns exhaustive at compile time.
type WaitPattern int

const (
	WaitUnknown    WaitPattern = iota
	WaitSingle                 // tanki: one kind pairing the lone tile
	WaitTwoSided               // ryanmen: open run skeleton, two kinds three apart
	WaitThreeSided             // sanmenchan: five-tile run skeleton, three kinds
	WaitClosed                 // kanchan: the middle of a gapped run
	WaitEdge                   // penchan: the 3 next to 1-2, or the 7 next to 8-9
	WaitPair                   // shanpon: either of two pairs
	WaitMulti                  // anything wider or irregular
)

var waitPatternNames = map[WaitPattern]string{
	WaitUnknown:    "unknown",
	WaitSingle:     "single-wait",
	WaitTwoSided:   "two-sided-wait",
	WaitThreeSided: "three-sided-wait",
	WaitClosed:     "closed-wait",
	WaitEdge:       "edge-wait",
	WaitPair:       "pair-wait",
	WaitMulti:      "multi-wait",
}

func (p WaitPattern) String() string {
	if name, ok := waitPatternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("WaitPattern(%d)", int(p))
}

// ParseWaitPattern resolves a pattern from its display name.
func ParseWaitPattern(s string) (WaitPattern, error) {
	for pattern, name := range waitPatternNames {
		if name == s {
			return pattern, nil
		}
	}
	return WaitUnknown, fmt.Errorf("unknown wait pattern %q", s)
}

// GeneratablePatterns lists the wait shapes the synthetic hand generator can
// construct on request.
func GeneratablePatterns() []WaitPattern {
	return []WaitPattern{WaitSingle, WaitTwoSided, WaitThreeSided, WaitClosed, WaitEdge, WaitPair}
}

// ClassifyWait names the shape of a waiting set. It is a pure function of
// the set's cardinality, suit spread and rank spacing, consulting the hand
// only to tell apart the one-kind shapes (a lone pairing tile versus a
// gapped or edge run skeleton). Checks run in priority order and are
// mutually exclusive; adjacency shapes win over the generic multi fallback.
func ClassifyWait(waits []Tile, hand []Tile) WaitPattern {
	switch len(waits) {
	case 0:
		return WaitUnknown
	case 1:
		return classifySingle(waits[0], hand)
	case 2:
		return classifyDouble(waits[0], waits[1], hand)
	case 3:
		a, b, c := waits[0], waits[1], waits[2]
		if a.Suit == b.Suit && b.Suit == c.Suit {
			// Consecutive or uniformly spaced, e.g. 1-4-7 off a five-tile run.
			if b.Value-a.Value == c.Value-b.Value {
				return WaitThreeSided
			}
		}
		return WaitMulti
	default:
		return WaitMulti
	}
}

// classifySingle tells tanki, kanchan and penchan apart: if the hand already
// holds a copy of the waited kind it can only be pairing up; otherwise the
// neighbours in hand reveal the run skeleton around the gap.
func classifySingle(wait Tile, hand []Tile) WaitPattern {
	counts := CountTiles(hand)
	if !wait.IsNumeral() || counts[wait] > 0 {
		return WaitSingle
	}
	holds := func(value int) bool {
		return value >= 1 && value <= 9 && counts[Tile{Suit: wait.Suit, Value: value}] > 0
	}
	if wait.Value == 3 && holds(1) && holds(2) {
		return WaitEdge
	}
	if wait.Value == 7 && holds(8) && holds(9) {
		return WaitEdge
	}
	if holds(wait.Value-1) && holds(wait.Value+1) {
		return WaitClosed
	}
	return WaitSingle
}

func classifyDouble(a, b Tile, hand []Tile) WaitPattern {
	if a.Suit != b.Suit {
		return WaitPair
	}
	if !a.IsNumeral() {
		// Two honor kinds of the same suit can only be two pairs.
		return WaitPair
	}
	gap := b.Value - a.Value
	switch {
	case gap == 3:
		// The two ends of an open run skeleton, e.g. 5-6 waiting 4 and 7.
		return WaitTwoSided
	case gap == 1:
		if a.Value == 1 || b.Value == 9 {
			return WaitEdge
		}
		return WaitTwoSided
	case gap == 2:
		return WaitClosed
	default:
		return WaitPair
	}
}
