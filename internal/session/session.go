package session

import (
	"time"

	"github.com/abhisek/wordiz/internal/evaluate"
)

// Post-answer display delays before the review card auto-appears. Longer on
// a miss so the learner can read the correction. UX policy, not a
// concurrency requirement; the timer must be cancellable on teardown.
const (
	CorrectFeedbackDelay   = 1500 * time.Millisecond
	IncorrectFeedbackDelay = 2500 * time.Millisecond
)

// FeedbackDelay returns the review-card delay for an answer outcome.
func FeedbackDelay(correct bool) time.Duration {
	if correct {
		return CorrectFeedbackDelay
	}
	return IncorrectFeedbackDelay
}

// HandleAnswer scores an evaluated result under the session policy, appends
// it to the result log, and folds it into the progress. Returns the scored
// result. One result per word: repeat calls for an already-answered word are
// ignored and return the previous result.
func (s *State) HandleAnswer(res evaluate.Result) evaluate.Result {
	if s.Answered && len(s.Results) > 0 {
		return s.Results[len(s.Results)-1]
	}

	scored := Score(res, s.Difficulty, s.Policy)
	s.Results = append(s.Results, scored)
	s.Progress = s.Progress.Apply(scored)
	s.Answered = true
	return scored
}

// EnterCard moves the session onto the word card. Used both for the
// pre-exercise intro card and the post-answer review card.
func (s *State) EnterCard() {
	if s.Phase != PhaseSummary {
		s.Phase = PhaseWordCard
	}
}

// AdvanceFromCard handles the Next press on a word card and returns the new
// phase. A pre-exercise card (word not yet answered) leads into the game for
// the same word. A post-answer card advances the cursor: to the next word's
// start phase, or to the summary after the last word. The cursor never moves
// backwards and never exceeds the word count.
func (s *State) AdvanceFromCard() Phase {
	if s.Phase != PhaseWordCard {
		return s.Phase
	}

	if !s.Answered {
		s.Phase = PhaseGame
		return s.Phase
	}

	if s.LastWord() {
		s.Index = len(s.Words)
		s.Phase = PhaseSummary
		return s.Phase
	}

	s.Index++
	s.Answered = false
	s.Phase = StartPhase(s.Current(), s.PracticeType)
	return s.Phase
}
