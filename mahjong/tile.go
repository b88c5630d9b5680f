package mahjong

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Suits. Man, Pin and Sou are the numeral suits (values 1-9). Wind and
// Dragon together make up the seven honor kinds; honors never form runs.
const (
	Man    = "Man"
	Pin    = "Pin"
	Sou    = "Sou"
	Wind   = "Wind"
	Dragon = "Dragon"
)

// MaxCopies is the number of physical copies of each kind in the deck.
const MaxCopies = 4

var ErrInvalidTile = errors.New("invalid tile")

var (
	numeralSuits = []string{Man, Pin, Sou}
	windNames    = []string{"East", "South", "West", "North"}
	dragonNames  = []string{"White", "Green", "Red"}

	suitOrder = map[string]int{Man: 1, Pin: 2, Sou: 3, Wind: 4, Dragon: 5}
)

// Tile is a kind identity: suit plus value. Two tiles are equal iff suit and
// value match, so Tile works directly as a map key for kind counting. The
// display name and sort key are derived, never stored.
type Tile struct {
	Suit  string
	Value int
}

// NewTile creates a tile, validating the suit/value domain: numeral suits
// take values 1-9, Wind 1-4 (East..North), Dragon 1-3 (White/Green/Red).
func NewTile(suit string, value int) (Tile, error) {
	switch suit {
	case Man, Pin, Sou:
		if value < 1 || value > 9 {
			return Tile{}, fmt.Errorf("%w: %s value %d out of range 1-9", ErrInvalidTile, suit, value)
		}
	case Wind:
		if value < 1 || value > len(windNames) {
			return Tile{}, fmt.Errorf("%w: wind value %d out of range 1-4", ErrInvalidTile, value)
		}
	case Dragon:
		if value < 1 || value > len(dragonNames) {
			return Tile{}, fmt.Errorf("%w: dragon value %d out of range 1-3", ErrInvalidTile, value)
		}
	default:
		return Tile{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidTile, suit)
	}
	return Tile{Suit: suit, Value: value}, nil
}

// MustTile is NewTile for hardcoded tiles; it panics on invalid input.
func MustTile(suit string, value int) Tile {
	t, err := NewTile(suit, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate re-checks the suit/value domain of a tile built without NewTile.
func (t Tile) Validate() error {
	_, err := NewTile(t.Suit, t.Value)
	return err
}

// IsHonor reports whether the tile is a wind or dragon.
func (t Tile) IsHonor() bool {
	return t.Suit == Wind || t.Suit == Dragon
}

// IsNumeral reports whether the tile belongs to one of the three numeral suits.
func (t Tile) IsNumeral() bool {
	return t.Suit == Man || t.Suit == Pin || t.Suit == Sou
}

// Name returns the user-friendly name, e.g. "Man 5", "East", "Red".
func (t Tile) Name() string {
	switch t.Suit {
	case Wind:
		if t.Value >= 1 && t.Value <= len(windNames) {
			return windNames[t.Value-1]
		}
	case Dragon:
		if t.Value >= 1 && t.Value <= len(dragonNames) {
			return dragonNames[t.Value-1]
		}
	}
	return fmt.Sprintf("%s %d", t.Suit, t.Value)
}

// Key returns a stable string key for the kind, e.g. "Man-5".
func (t Tile) Key() string {
	return fmt.Sprintf("%s-%d", t.Suit, t.Value)
}

// Short returns compact notation: "5m", "3p", "7s", "E", "Wh".
func (t Tile) Short() string {
	switch t.Suit {
	case Man:
		return fmt.Sprintf("%dm", t.Value)
	case Pin:
		return fmt.Sprintf("%dp", t.Value)
	case Sou:
		return fmt.Sprintf("%ds", t.Value)
	case Wind:
		return [...]string{"E", "S", "W", "N"}[t.Value-1]
	case Dragon:
		return [...]string{"Wh", "Gr", "Rd"}[t.Value-1]
	}
	return t.Key()
}

func (t Tile) String() string {
	return t.Name()
}

// AllKinds returns the 34 unique tile kinds in canonical sort order.
func AllKinds() []Tile {
	kinds := make([]Tile, 0, 34)
	for _, suit := range numeralSuits {
		for value := 1; value <= 9; value++ {
			kinds = append(kinds, Tile{Suit: suit, Value: value})
		}
	}
	for value := 1; value <= len(windNames); value++ {
		kinds = append(kinds, Tile{Suit: Wind, Value: value})
	}
	for value := 1; value <= len(dragonNames); value++ {
		kinds = append(kinds, Tile{Suit: Dragon, Value: value})
	}
	return kinds
}

// KindsInSuits returns the kinds belonging to any of the given suits, in
// canonical order. It narrows search spaces, e.g. tenpai candidates to suits
// a hand actually holds.
func KindsInSuits(suits ...string) []Tile {
	want := make(map[string]bool, len(suits))
	for _, s := range suits {
		want[s] = true
	}
	var kinds []Tile
	for _, kind := range AllKinds() {
		if want[kind.Suit] {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// BySuitValue sorts tiles by suit (Man < Pin < Sou < Wind < Dragon), then value.
type BySuitValue []Tile

func (a BySuitValue) Len() int      { return len(a) }
func (a BySuitValue) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a BySuitValue) Less(i, j int) bool {
	if suitOrder[a[i].Suit] != suitOrder[a[j].Suit] {
		return suitOrder[a[i].Suit] < suitOrder[a[j].Suit]
	}
	return a[i].Value < a[j].Value
}

// SortTiles sorts a tile slice in place into canonical order.
func SortTiles(tiles []Tile) {
	sort.Sort(BySuitValue(tiles))
}

// TilesToNames converts tiles to their display names.
func TilesToNames(tiles []Tile) []string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Name()
	}
	return names
}

// FormatHand renders a hand in compact notation, sorted, e.g. "1m 2m 3m E E".
func FormatHand(tiles []Tile) string {
	sorted := make([]Tile, len(tiles))
	copy(sorted, tiles)
	SortTiles(sorted)
	parts := make([]string, len(sorted))
	for i, t := range sorted {
		parts[i] = t.Short()
	}
	return strings.Join(parts, " ")
}

var honorShortNames = map[string]Tile{
	"E": {Wind, 1}, "S": {Wind, 2}, "W": {Wind, 3}, "N": {Wind, 4},
	"Wh": {Dragon, 1}, "Gr": {Dragon, 2}, "Rd": {Dragon, 3},
}

// ParseTiles parses compact hand notation into tiles. Digits group before
// their suit letter, so "123m55p" is 1m 2m 3m 5p 5p; honor tiles are the
// standalone words E, S, W, N, Wh, Gr, Rd. Whitespace is optional between
// suited groups and required around honor words.
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	for _, token := range strings.Fields(s) {
		if honor, ok := honorShortNames[token]; ok {
			tiles = append(tiles, honor)
			continue
		}
		var pending []int
		for _, r := range token {
			switch {
			case r >= '1' && r <= '9':
				pending = append(pending, int(r-'0'))
			case r == 'm' || r == 'p' || r == 's':
				if len(pending) == 0 {
					return nil, fmt.Errorf("%w: suit letter %q with no values in %q", ErrInvalidTile, r, token)
				}
				suit := map[rune]string{'m': Man, 'p': Pin, 's': Sou}[r]
				for _, v := range pending {
					tiles = append(tiles, Tile{Suit: suit, Value: v})
				}
				pending = nil
			default:
				return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidTile, r, token)
			}
		}
		if len(pending) > 0 {
			return nil, fmt.Errorf("%w: trailing values without a suit letter in %q", ErrInvalidTile, token)
		}
	}
	return tiles, nil
}

// MustParseTiles is ParseTiles for hardcoded hands; it panics on bad notation.
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}
