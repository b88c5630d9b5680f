package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionFor(t *testing.T, eval DiscardEvaluation, discard Tile) DiscardOption {
	t.Helper()
	for _, option := range eval.Options {
		if option.Discard == discard {
			return option
		}
	}
	t.Fatalf("no option for discard %s", discard.Short())
	return DiscardOption{}
}

func TestEvaluateDiscardsRanking(t *testing.T) {
	// Cutting 5s leaves the open 4s-5s run (waits 3s/6s, eight live tiles);
	// cutting 4s leaves two pairs (waits 5p/5s, four live tiles). Every other
	// discard breaks the hand out of tenpai entirely.
	hand := MustParseTiles("123456789m 55p 455s")
	eval, err := EvaluateDiscards(hand)
	require.NoError(t, err)

	assert.Len(t, eval.Options, len(UniqueKinds(hand)))
	assert.Equal(t, 8, eval.BestCount)
	assert.Equal(t, MustParseTiles("5s"), eval.BestDiscards)

	best := optionFor(t, eval, MustTile(Sou, 5))
	assert.True(t, best.IsTenpai)
	assert.Equal(t, MustParseTiles("3s 6s"), best.Waits)
	assert.Equal(t, 8, best.CompletingTiles)

	shanpon := optionFor(t, eval, MustTile(Sou, 4))
	assert.True(t, shanpon.IsTenpai)
	assert.Equal(t, MustParseTiles("5p 5s"), shanpon.Waits)
	assert.Equal(t, 4, shanpon.CompletingTiles)

	dead := optionFor(t, eval, MustTile(Man, 1))
	assert.False(t, dead.IsTenpai)
	assert.Zero(t, dead.CompletingTiles)
}

func TestEvaluateDiscardsCountsHeldCopies(t *testing.T) {
	// After cutting 2p the hand waits on the 5p/8s shanpon while already
	// holding two copies of each waiting kind.
	hand := MustParseTiles("123456789m 88s 55p 2p")
	eval, err := EvaluateDiscards(hand)
	require.NoError(t, err)

	option := optionFor(t, eval, MustTile(Pin, 2))
	require.True(t, option.IsTenpai)
	assert.Equal(t, MustParseTiles("5p 8s"), option.Waits)
	// Two copies of each waiting kind are held, leaving two of each drawable.
	assert.Equal(t, 4, option.CompletingTiles)
}

func TestEvaluateDiscardsNoTenpai(t *testing.T) {
	eval, err := EvaluateDiscards(MustParseTiles("19m 19p 19s E S W N Wh Gr Rd 5m"))
	require.NoError(t, err)

	assert.Zero(t, eval.BestCount)
	assert.Empty(t, eval.BestDiscards)
	for _, option := range eval.Options {
		assert.False(t, option.IsTenpai)
	}
}

func TestEvaluateDiscardsSmallSizes(t *testing.T) {
	// Eight tiles reduce to seven, which the detector supports directly.
	eval, err := EvaluateDiscards(MustParseTiles("789m 11p 56s 9s"))
	require.NoError(t, err)
	assert.Equal(t, MustParseTiles("9s"), eval.BestDiscards)
	assert.Equal(t, 8, eval.BestCount)

	// Ten tiles reduce to nine, which is never tenpai, so every option is
	// dead and the empty outcome is still not an error.
	eval, err = EvaluateDiscards(MustParseTiles("123m 456m 789m 5s"))
	require.NoError(t, err)
	assert.Zero(t, eval.BestCount)
	assert.Empty(t, eval.BestDiscards)
}

func TestEvaluateDiscardsErrors(t *testing.T) {
	_, err := EvaluateDiscards(MustParseTiles("123m 456m 789m 55s"))
	assert.ErrorIs(t, err, ErrUnsupportedSize)

	_, err = EvaluateDiscards(MustParseTiles("11111m 234m 567m 99m"))
	assert.ErrorIs(t, err, ErrInvalidHand)
}
