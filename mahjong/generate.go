package mahjong

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const DefaultMaxAttempts = 50

// Options configures synthetic hand generation.
type Options struct {
	Seed        int64 // Seed for reproducible hands (0 = time-based)
	MaxAttempts int   // Construction retries before the fixed fallback
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{Seed: 0, MaxAttempts: DefaultMaxAttempts}
}

// Generator constructs training hands that exhibit a requested wait shape.
// It owns its random source so tests can seed it.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewGenerator creates a generator with the given options.
func NewGenerator(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	attempts := options.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		maxAttempts: attempts,
	}
}

// Exercise is one generated training hand: the (shuffled) tiles shown to the
// trainee, the kinds that complete them, and the wait shape exhibited. ID
// ties score records back to the exercise without persisting tile data.
type Exercise struct {
	ID          string
	Hand        []Tile
	Waits       []Tile
	Pattern     WaitPattern
	DisplaySize int
}

// RandomPattern picks one of the constructible wait shapes.
func (g *Generator) RandomPattern() WaitPattern {
	patterns := GeneratablePatterns()
	return patterns[g.rng.Intn(len(patterns))]
}

// Generate builds a hand of the given display size (7, 10 or 13) whose
// waiting set takes the requested shape. Construction is randomized and
// verified through the tenpai detector; after MaxAttempts failures it
// degrades to a fixed, pre-verified fallback hand instead of failing.
// Only an unsupported size or pattern is an error (a caller bug).
func (g *Generator) Generate(pattern WaitPattern, displaySize int) (Exercise, error) {
	switch displaySize {
	case 7, 10, 13:
	default:
		return Exercise{}, fmt.Errorf("%w: display size %d (want 7, 10 or 13)", ErrUnsupportedSize, displaySize)
	}
	switch pattern {
	case WaitSingle, WaitTwoSided, WaitThreeSided, WaitClosed, WaitEdge, WaitPair:
	default:
		return Exercise{}, fmt.Errorf("cannot generate pattern %s", pattern)
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		hand, intended, ok := g.build(pattern, displaySize)
		if !ok {
			continue
		}
		result, err := DetectTenpaiSized(hand, displaySize)
		if err != nil || !result.IsTenpai || result.Pattern != pattern {
			continue
		}
		if !sameKinds(result.Waits, intended) {
			// Fillers widened or shifted the wait; rebuild.
			continue
		}
		g.rng.Shuffle(len(hand), func(i, j int) { hand[i], hand[j] = hand[j], hand[i] })
		return Exercise{
			ID:          uuid.NewString(),
			Hand:        hand,
			Waits:       result.Waits,
			Pattern:     pattern,
			DisplaySize: displaySize,
		}, nil
	}

	return g.fallback(pattern, displaySize), nil
}

// build assembles one candidate hand: the wait shape, the pair when the
// shape does not supply one, then filler melds, all against a shared usage
// ledger that enforces the four-copies ceiling. A false return means this
// attempt painted itself into a corner.
func (g *Generator) build(pattern WaitPattern, displaySize int) ([]Tile, []Tile, bool) {
	usage := make(map[Tile]int)
	reserved := make(map[Tile]bool)

	shape, intended, needPair := g.buildWaitShape(pattern, reserved)
	for _, t := range shape {
		usage[t]++
	}

	hand := append([]Tile(nil), shape...)
	if needPair {
		pairKind, ok := g.pickPairKind(usage, reserved)
		if !ok {
			return nil, nil, false
		}
		usage[pairKind] += 2
		hand = append(hand, pairKind, pairKind)
	}

	for len(hand)+3 <= displaySize {
		meld, ok := g.buildFillerMeld(usage, reserved, displaySize)
		if !ok {
			return nil, nil, false
		}
		hand = append(hand, meld...)
	}
	if len(hand) != displaySize {
		return nil, nil, false
	}
	return hand, intended, true
}

// buildWaitShape constructs the 1-5 tiles that carry the wait, returning the
// shape tiles, the intended waiting kinds, and whether a separate pair is
// still needed. It also reserves the surrounding ranks so fillers in the
// wait suit cannot smear the shape.
func (g *Generator) buildWaitShape(pattern WaitPattern, reserved map[Tile]bool) (shape, intended []Tile, needPair bool) {
	suit := numeralSuits[g.rng.Intn(len(numeralSuits))]
	tile := func(value int) Tile { return Tile{Suit: suit, Value: value} }

	switch pattern {
	case WaitSingle:
		value := 1 + g.rng.Intn(9)
		reserveRange(reserved, suit, value-2, value+2)
		return []Tile{tile(value)}, []Tile{tile(value)}, false

	case WaitTwoSided:
		// Open run skeleton b,b+1 waiting on both ends.
		base := 2 + g.rng.Intn(6) // 2..7
		reserveRange(reserved, suit, base-2, base+3)
		return []Tile{tile(base), tile(base + 1)},
			[]Tile{tile(base - 1), tile(base + 2)}, true

	case WaitClosed:
		base := 1 + g.rng.Intn(7) // 1..7
		reserveRange(reserved, suit, base-1, base+3)
		return []Tile{tile(base), tile(base + 2)}, []Tile{tile(base + 1)}, true

	case WaitEdge:
		if g.rng.Intn(2) == 0 {
			reserveRange(reserved, suit, 1, 4)
			return []Tile{tile(1), tile(2)}, []Tile{tile(3)}, true
		}
		reserveRange(reserved, suit, 6, 9)
		return []Tile{tile(8), tile(9)}, []Tile{tile(7)}, true

	case WaitThreeSided:
		// Five-tile run skeleton b..b+4 waiting b-1, b+2 and b+5.
		base := 2 + g.rng.Intn(3) // 2..4
		reserveRange(reserved, suit, base-3, base+7)
		shape = []Tile{tile(base), tile(base + 1), tile(base + 2), tile(base + 3), tile(base + 4)}
		return shape, []Tile{tile(base - 1), tile(base + 2), tile(base + 5)}, true

	case WaitPair:
		// Shanpon: two pairs in different suits so the waits cannot merge
		// into a run shape.
		first := tile(1 + g.rng.Intn(9))
		second := g.pickSecondPairKind(suit)
		reserveRange(reserved, first.Suit, first.Value-2, first.Value+2)
		if second.IsNumeral() {
			reserveRange(reserved, second.Suit, second.Value-2, second.Value+2)
		} else {
			reserved[second] = true
		}
		return []Tile{first, first, second, second}, []Tile{first, second}, false
	}
	return nil, nil, false
}

func (g *Generator) pickSecondPairKind(excludeSuit string) Tile {
	if g.rng.Intn(2) == 0 {
		honors := AllKinds()[27:]
		return honors[g.rng.Intn(len(honors))]
	}
	var suits []string
	for _, s := range numeralSuits {
		if s != excludeSuit {
			suits = append(suits, s)
		}
	}
	suit := suits[g.rng.Intn(len(suits))]
	return Tile{Suit: suit, Value: 1 + g.rng.Intn(9)}
}

// pickPairKind chooses the hand's pair. Honor pairs are allowed at every
// size. When the random pick would breach the copies ceiling, the least-used
// eligible kind is taken instead.
func (g *Generator) pickPairKind(usage map[Tile]int, reserved map[Tile]bool) (Tile, bool) {
	var eligible []Tile
	for _, kind := range AllKinds() {
		if reserved[kind] {
			continue
		}
		eligible = append(eligible, kind)
	}
	if len(eligible) == 0 {
		return Tile{}, false
	}
	pick := eligible[g.rng.Intn(len(eligible))]
	if usage[pick]+2 > MaxCopies {
		for _, kind := range eligible {
			if usage[kind] < usage[pick] {
				pick = kind
			}
		}
	}
	if usage[pick]+2 > MaxCopies {
		return Tile{}, false
	}
	return pick, true
}

// buildFillerMeld produces one triplet or run that stays clear of reserved
// ranks. Honor triplets stand in for tiles hidden by called melds and are
// only used at the short display sizes.
func (g *Generator) buildFillerMeld(usage map[Tile]int, reserved map[Tile]bool, displaySize int) ([]Tile, bool) {
	allowHonors := displaySize == 7 || displaySize == 10
	if allowHonors && g.rng.Intn(3) == 0 {
		if meld, ok := g.pickHonorTriplet(usage, reserved); ok {
			return meld, true
		}
	}
	if g.rng.Intn(2) == 0 {
		if meld, ok := g.pickRun(usage, reserved); ok {
			return meld, true
		}
		return g.pickTriplet(usage, reserved)
	}
	if meld, ok := g.pickTriplet(usage, reserved); ok {
		return meld, true
	}
	return g.pickRun(usage, reserved)
}

func (g *Generator) pickHonorTriplet(usage map[Tile]int, reserved map[Tile]bool) ([]Tile, bool) {
	var candidates []Tile
	for _, kind := range AllKinds()[27:] {
		if !reserved[kind] && usage[kind]+3 <= MaxCopies {
			candidates = append(candidates, kind)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	kind := candidates[g.rng.Intn(len(candidates))]
	usage[kind] += 3
	return []Tile{kind, kind, kind}, true
}

func (g *Generator) pickTriplet(usage map[Tile]int, reserved map[Tile]bool) ([]Tile, bool) {
	var candidates []Tile
	for _, kind := range AllKinds()[:27] {
		if !reserved[kind] && usage[kind]+3 <= MaxCopies {
			candidates = append(candidates, kind)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	kind := candidates[g.rng.Intn(len(candidates))]
	usage[kind] += 3
	return []Tile{kind, kind, kind}, true
}

func (g *Generator) pickRun(usage map[Tile]int, reserved map[Tile]bool) ([]Tile, bool) {
	type run struct{ tiles [3]Tile }
	var candidates []run
	for _, suit := range numeralSuits {
		for start := 1; start <= 7; start++ {
			r := run{tiles: [3]Tile{
				{Suit: suit, Value: start},
				{Suit: suit, Value: start + 1},
				{Suit: suit, Value: start + 2},
			}}
			ok := true
			for _, t := range r.tiles {
				if reserved[t] || usage[t]+1 > MaxCopies {
					ok = false
					break
				}
			}
			if ok {
				candidates = append(candidates, r)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	pick := candidates[g.rng.Intn(len(candidates))]
	for _, t := range pick.tiles {
		usage[t]++
	}
	return pick.tiles[:], true
}

func reserveRange(reserved map[Tile]bool, suit string, from, to int) {
	for value := from; value <= to; value++ {
		if value >= 1 && value <= 9 {
			reserved[Tile{Suit: suit, Value: value}] = true
		}
	}
}

// fallbackNotation holds hand-verified tenpai hands per pattern and size.
// They are the guaranteed result when randomized construction keeps failing.
var fallbackNotation = map[WaitPattern]map[int]string{
	WaitSingle: {
		13: "123456789m 111p 5s",
		10: "456789m 111p 5s",
		7:  "789m 111p 5s",
	},
	WaitTwoSided: {
		13: "123456789m 11p 56s",
		10: "456789m 11p 56s",
		7:  "789m 11p 56s",
	},
	WaitClosed: {
		13: "123456789m 11p 57s",
		10: "456789m 11p 57s",
		7:  "789m 11p 57s",
	},
	WaitEdge: {
		13: "123456789m 11p 12s",
		10: "456789m 11p 12s",
		7:  "789m 11p 12s",
	},
	WaitPair: {
		13: "123456789m 55p 99s",
		10: "456789m 55p 99s",
		7:  "789m 55p 99s",
	},
	WaitThreeSided: {
		13: "123m 456m 11p 34567s",
		10: "456m 11p 34567s",
		7:  "11p 34567s",
	},
}

func (g *Generator) fallback(pattern WaitPattern, displaySize int) Exercise {
	hand := MustParseTiles(fallbackNotation[pattern][displaySize])
	result, _ := DetectTenpaiSized(hand, displaySize)
	g.rng.Shuffle(len(hand), func(i, j int) { hand[i], hand[j] = hand[j], hand[i] })
	return Exercise{
		ID:          uuid.NewString(),
		Hand:        hand,
		Waits:       result.Waits,
		Pattern:     pattern,
		DisplaySize: displaySize,
	}
}

func sameKinds(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	counts := CountTiles(a)
	for _, t := range b {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}
	return true
}
