package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTenpaiFullHands(t *testing.T) {
	testCases := []struct {
		name    string
		hand    string
		waits   string
		pattern WaitPattern
	}{
		{
			name:    "open run end",
			hand:    "123456789m 88s 56p",
			waits:   "4p 7p",
			pattern: WaitTwoSided,
		},
		{
			name:    "lone pairing tile",
			hand:    "111m 222m 333m 456p 7s",
			waits:   "7s",
			pattern: WaitSingle,
		},
		{
			name:    "gapped run",
			hand:    "123456789m 88s 57p",
			waits:   "6p",
			pattern: WaitClosed,
		},
		{
			name:    "edge of one-two",
			hand:    "123456789m 88s 12p",
			waits:   "3p",
			pattern: WaitEdge,
		},
		{
			name:    "two pairs",
			hand:    "123456789m 88s 55p",
			waits:   "5p 8s",
			pattern: WaitPair,
		},
		{
			name:    "five-tile run skeleton",
			hand:    "123m 456m 88p 34567s",
			waits:   "2s 5s 8s",
			pattern: WaitThreeSided,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DetectTenpai(MustParseTiles(tc.hand))
			require.NoError(t, err)
			assert.True(t, result.IsTenpai)
			assert.Equal(t, MustParseTiles(tc.waits), result.Waits)
			assert.Equal(t, tc.pattern, result.Pattern)
		})
	}
}

func TestDetectTenpaiNegative(t *testing.T) {
	for _, hand := range []string{
		"19m 19p 19s E S W N Wh Gr Rd", // thirteen orphans, no standard shape
		"123m 456m 789m 147s 9p",      // scattered sou
		"1111m 2222m 5555m 9s",        // four-of-a-kind blocks strand the nine
	} {
		result, err := DetectTenpai(MustParseTiles(hand))
		require.NoError(t, err)
		assert.False(t, result.IsTenpai, "hand %s", hand)
		assert.Empty(t, result.Waits)
		assert.Equal(t, WaitUnknown, result.Pattern)
	}
}

func TestDetectTenpaiSizes(t *testing.T) {
	result, err := DetectTenpaiSized(MustParseTiles("789m 111p 5s"), 7)
	require.NoError(t, err)
	assert.True(t, result.IsTenpai)
	assert.Equal(t, MustParseTiles("5s"), result.Waits)

	result, err = DetectTenpaiSized(MustParseTiles("456789m 111p 5s"), 10)
	require.NoError(t, err)
	assert.True(t, result.IsTenpai)
	assert.Equal(t, MustParseTiles("5s"), result.Waits)

	// Nine plus a draw makes ten tiles, which no melds-plus-pair total hits.
	result, err = DetectTenpaiSized(MustParseTiles("123456m 789m"), 9)
	require.NoError(t, err)
	assert.False(t, result.IsTenpai)

	// A size mismatch is a not-tenpai outcome, not an error.
	result, err = DetectTenpaiSized(MustParseTiles("123m"), 13)
	require.NoError(t, err)
	assert.False(t, result.IsTenpai)
}

func TestDetectTenpaiCopyCeiling(t *testing.T) {
	// Both 1m (for the 11 pair) and 8m (extending 789) would complete the
	// hand, but all four 1m are already held, so only 8m may be counted.
	hand := MustParseTiles("1111m 234m 567m 999m")
	result, err := DetectTenpai(hand)
	require.NoError(t, err)
	assert.True(t, result.IsTenpai)
	assert.Equal(t, MustParseTiles("8m"), result.Waits)
}

func TestDetectTenpaiRestrictsToHeldSuits(t *testing.T) {
	// The waiting kind is computed only over suits present in the hand, so a
	// pure man-suit hand never probes pin, sou or honor candidates. The waits
	// here must all be man tiles.
	result, err := DetectTenpai(MustParseTiles("1112345678999m"))
	require.NoError(t, err)
	assert.True(t, result.IsTenpai)
	for _, wait := range result.Waits {
		assert.Equal(t, Man, wait.Suit)
	}
}

func TestDetectTenpaiInvalidTile(t *testing.T) {
	hand := []Tile{{Suit: Man, Value: 11}}
	_, err := DetectTenpaiSized(hand, 13)
	assert.ErrorIs(t, err, ErrInvalidTile)
}
