package session

import (
	"errors"
	"time"

	"github.com/abhisek/wordiz/internal/evaluate"
	"github.com/abhisek/wordiz/internal/words"
)

// ErrNoWords is returned when a session would have an empty word list.
var ErrNoWords = errors.New("no words available for practice")

// Phase is the coarse UI/state mode of a running session.
type Phase int

const (
	PhaseGame     Phase = iota // an exercise is active
	PhaseWordCard              // the review/reinforcement card is shown
	PhaseSummary               // terminal phase
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGame:
		return "game"
	case PhaseWordCard:
		return "word-card"
	case PhaseSummary:
		return "summary"
	}
	return "unknown"
}

// State is the mutable aggregate for one run through a word list. The word
// order is fixed at creation and is session truth; Index only ever grows.
type State struct {
	SessionID    string
	Words        []words.Word
	Index        int
	PracticeType words.PracticeType
	Difficulty   int
	Policy       Policy

	Phase    Phase
	Progress Progress

	// Results is the append-only log of evaluated attempts, in strict
	// presentation order.
	Results []evaluate.Result

	// Answered is true once the current word has an evaluated result,
	// distinguishing the pre-exercise card (new-word intro) from the
	// post-exercise review card.
	Answered bool

	completed bool
}

// New creates a session over a fixed word list. The initial phase for word 0
// comes from the exercise selector.
func New(sessionID string, list []words.Word, practiceType words.PracticeType, difficulty int, policy Policy) (*State, error) {
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}

	s := &State{
		SessionID:    sessionID,
		Words:        list,
		PracticeType: practiceType,
		Difficulty:   difficulty,
		Policy:       policy,
		Progress:     Progress{StartedAt: time.Now()},
	}
	s.Phase = StartPhase(s.Current(), practiceType)
	return s, nil
}

// Current returns the word at the cursor, or nil once the session is done.
func (s *State) Current() *words.Word {
	if s.Index < 0 || s.Index >= len(s.Words) {
		return nil
	}
	return &s.Words[s.Index]
}

// Done reports whether the cursor has moved past the last word.
func (s *State) Done() bool {
	return s.Index >= len(s.Words)
}

// LastWord reports whether the cursor is on the final word.
func (s *State) LastWord() bool {
	return s.Index >= len(s.Words)-1
}

// CompleteOnce flips the completion guard. It returns true exactly once per
// session, so multi-fire completion triggers cannot duplicate the
// session-complete write.
func (s *State) CompleteOnce() bool {
	if s.completed {
		return false
	}
	s.completed = true
	return true
}

// Completed reports whether the completion side effect has run.
func (s *State) Completed() bool {
	return s.completed
}
