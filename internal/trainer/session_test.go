package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenpai-trainer/mahjong"
)

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	gen := mahjong.NewGenerator(&mahjong.Options{Seed: 42})
	session, err := NewSession(cfg, gen)
	require.NoError(t, err)
	return session
}

func TestNewSessionValidation(t *testing.T) {
	gen := mahjong.NewGenerator(&mahjong.Options{Seed: 1})
	valid := Config{Mode: "standard", DisplaySize: 13, Rounds: 3}

	_, err := NewSession(valid, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	for _, broken := range []Config{
		{Mode: "", DisplaySize: 13, Rounds: 3},
		{Mode: "standard", DisplaySize: 9, Rounds: 3},
		{Mode: "standard", DisplaySize: 13, Rounds: 0},
	} {
		_, err := NewSession(broken, gen)
		assert.ErrorIs(t, err, ErrInvalidConfig, "config %+v", broken)
	}

	session, err := NewSession(valid, gen)
	require.NoError(t, err)
	assert.Equal(t, StateConfigure, session.State())
}

func TestSessionFullRun(t *testing.T) {
	session := newTestSession(t, Config{Mode: "standard", DisplaySize: 13, Rounds: 2})
	require.NoError(t, session.Begin())

	// Round 1: answer with the engine's own waits, which must grade correct.
	exercise, err := session.Present()
	require.NoError(t, err)
	assert.Equal(t, exercise, session.Current())
	assert.Equal(t, StateAnswer, session.State())

	correct, err := session.Answer(exercise.Waits)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, StatePresent, session.State())

	// Round 2: an empty guess against a non-empty wait set is wrong.
	_, err = session.Present()
	require.NoError(t, err)
	correct, err = session.Answer(nil)
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, StateResult, session.State())

	summary, err := session.Summary()
	require.NoError(t, err)
	assert.Equal(t, "standard", summary.Mode)
	assert.Equal(t, 2, summary.Played)
	assert.Equal(t, 1, summary.Correct)
	assert.InDelta(t, 0.5, summary.Accuracy, 1e-9)
	require.Len(t, summary.Outcomes, 2)
	assert.True(t, summary.Outcomes[0].Correct)
	assert.False(t, summary.Outcomes[1].Correct)
}

func TestSessionGradingIgnoresOrderAndDuplicates(t *testing.T) {
	session := newTestSession(t, Config{
		Mode:        "standard",
		DisplaySize: 13,
		Rounds:      1,
		Pattern:     mahjong.WaitTwoSided,
	})
	require.NoError(t, session.Begin())

	exercise, err := session.Present()
	require.NoError(t, err)
	require.Len(t, exercise.Waits, 2)

	// Reversed order with a duplicated kind still names the same set.
	guess := []mahjong.Tile{exercise.Waits[1], exercise.Waits[0], exercise.Waits[1]}
	correct, err := session.Answer(guess)
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestSessionFixedPattern(t *testing.T) {
	session := newTestSession(t, Config{
		Mode:        "edge-drill",
		DisplaySize: 7,
		Rounds:      3,
		Pattern:     mahjong.WaitEdge,
	})
	require.NoError(t, session.Begin())

	for i := 0; i < 3; i++ {
		exercise, err := session.Present()
		require.NoError(t, err)
		assert.Equal(t, mahjong.WaitEdge, exercise.Pattern)
		_, err = session.Answer(exercise.Waits)
		require.NoError(t, err)
	}
	assert.Equal(t, StateResult, session.State())
}

func TestSessionRejectsOutOfOrderCalls(t *testing.T) {
	session := newTestSession(t, Config{Mode: "standard", DisplaySize: 13, Rounds: 1})

	_, err := session.Present()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = session.Answer(nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = session.Summary()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, session.Begin())
	assert.ErrorIs(t, session.Begin(), ErrInvalidTransition)

	_, err = session.Answer(nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
