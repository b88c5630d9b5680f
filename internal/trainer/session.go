// Package trainer owns the training-session flow around the stateless
// mahjong engine: an explicit state machine drives configure, present,
// answer and result, and a sqlite store keeps per-mode score records.
package trainer

import (
	"errors"
	"fmt"

	"tenpai-trainer/mahjong"
)

// State is the session phase. Transitions are configure -> present ->
// answer -> present (next round) | result.
type State int

const (
	StateConfigure State = iota
	StatePresent
	StateAnswer
	StateResult
)

func (s State) String() string {
	switch s {
	case StateConfigure:
		return "configure"
	case StatePresent:
		return "present"
	case StateAnswer:
		return "answer"
	case StateResult:
		return "result"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrInvalidConfig     = errors.New("invalid session config")
)

// Config fixes a session's shape before it begins.
type Config struct {
	Mode        string              // score records are keyed by this name
	DisplaySize int                 // 7, 10 or 13
	Rounds      int                 // exercises per session
	Pattern     mahjong.WaitPattern // WaitUnknown = random pattern each round
}

// RoundOutcome records one graded exercise.
type RoundOutcome struct {
	Exercise mahjong.Exercise
	Answer   []mahjong.Tile
	Correct  bool
}

// Summary is the result-phase tally.
type Summary struct {
	Mode     string
	Played   int
	Correct  int
	Accuracy float64
	Outcomes []RoundOutcome
}

// Session walks a trainee through Config.Rounds generated exercises. The
// engine stays stateless; all flow state lives here.
type Session struct {
	cfg      Config
	gen      *mahjong.Generator
	state    State
	current  mahjong.Exercise
	outcomes []RoundOutcome
}

// NewSession validates the config and returns a session in StateConfigure.
func NewSession(cfg Config, gen *mahjong.Generator) (*Session, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidConfig)
	}
	if cfg.Mode == "" {
		return nil, fmt.Errorf("%w: empty mode name", ErrInvalidConfig)
	}
	switch cfg.DisplaySize {
	case 7, 10, 13:
	default:
		return nil, fmt.Errorf("%w: display size %d", ErrInvalidConfig, cfg.DisplaySize)
	}
	if cfg.Rounds < 1 {
		return nil, fmt.Errorf("%w: %d rounds", ErrInvalidConfig, cfg.Rounds)
	}
	return &Session{cfg: cfg, gen: gen, state: StateConfigure}, nil
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Begin leaves the configure phase.
func (s *Session) Begin() error {
	if s.state != StateConfigure {
		return fmt.Errorf("%w: begin from %s", ErrInvalidTransition, s.state)
	}
	s.state = StatePresent
	return nil
}

// Present generates and returns the next exercise, moving to the answer
// phase.
func (s *Session) Present() (mahjong.Exercise, error) {
	if s.state != StatePresent {
		return mahjong.Exercise{}, fmt.Errorf("%w: present from %s", ErrInvalidTransition, s.state)
	}
	pattern := s.cfg.Pattern
	if pattern == mahjong.WaitUnknown {
		pattern = s.gen.RandomPattern()
	}
	exercise, err := s.gen.Generate(pattern, s.cfg.DisplaySize)
	if err != nil {
		return mahjong.Exercise{}, err
	}
	s.current = exercise
	s.state = StateAnswer
	return exercise, nil
}

// Answer grades the trainee's waiting-set guess against the engine's answer
// (exact kind-set match) and advances to the next round or to the result
// phase.
func (s *Session) Answer(waits []mahjong.Tile) (bool, error) {
	if s.state != StateAnswer {
		return false, fmt.Errorf("%w: answer from %s", ErrInvalidTransition, s.state)
	}
	correct := sameKindSet(waits, s.current.Waits)
	s.outcomes = append(s.outcomes, RoundOutcome{
		Exercise: s.current,
		Answer:   mahjong.UniqueKinds(waits),
		Correct:  correct,
	})
	if len(s.outcomes) >= s.cfg.Rounds {
		s.state = StateResult
	} else {
		s.state = StatePresent
	}
	return correct, nil
}

// Current returns the exercise being answered.
func (s *Session) Current() mahjong.Exercise {
	return s.current
}

// Summary is only available once every round is answered.
func (s *Session) Summary() (Summary, error) {
	if s.state != StateResult {
		return Summary{}, fmt.Errorf("%w: summary from %s", ErrInvalidTransition, s.state)
	}
	correct := 0
	for _, outcome := range s.outcomes {
		if outcome.Correct {
			correct++
		}
	}
	summary := Summary{
		Mode:     s.cfg.Mode,
		Played:   len(s.outcomes),
		Correct:  correct,
		Outcomes: s.outcomes,
	}
	if summary.Played > 0 {
		summary.Accuracy = float64(correct) / float64(summary.Played)
	}
	return summary, nil
}

// sameKindSet compares answers as kind sets: duplicates in the guess
// collapse, order is ignored.
func sameKindSet(answer, expected []mahjong.Tile) bool {
	a := mahjong.UniqueKinds(answer)
	b := mahjong.UniqueKinds(expected)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
