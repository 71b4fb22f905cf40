package session

import (
	"time"

	"github.com/abhisek/wordiz/internal/evaluate"
)

// Policy centralizes the scoring decisions that were historically scattered
// across individual exercise components. Defaults preserve the original
// behavior; each quirk sits behind a named flag so it can be toggled without
// code changes.
type Policy struct {
	// DifficultyMultiplier scales the award for a correct answer:
	// points = difficulty * DifficultyMultiplier.
	DifficultyMultiplier int

	// SkipPenalty is the (negative) score delta for a skipped word.
	SkipPenalty int

	// SelfReportScored scores remember-translation self-reports exactly like
	// graded answers. On by default, matching the original behavior; when
	// off, self-reported corrects still count toward accuracy but earn no
	// points.
	SelfReportScored bool

	// PartialCredit awards half the correct points for a near-miss typed
	// answer. Off by default.
	PartialCredit bool
}

// DefaultPolicy returns the scoring policy matching the original behavior.
func DefaultPolicy() Policy {
	return Policy{
		DifficultyMultiplier: 10,
		SkipPenalty:          evaluate.SkipPoints,
		SelfReportScored:     true,
		PartialCredit:        false,
	}
}

// Score assigns points to an evaluated result under the policy. It returns a
// copy; the input is not mutated.
func Score(res evaluate.Result, difficulty int, pol Policy) evaluate.Result {
	switch {
	case res.Skipped:
		res.Points = pol.SkipPenalty
	case res.IsCorrect && res.SelfReported && !pol.SelfReportScored:
		res.Points = 0
	case res.IsCorrect:
		res.Points = difficulty * pol.DifficultyMultiplier
	case pol.PartialCredit && res.PartialCredit:
		res.Points = difficulty * pol.DifficultyMultiplier / 2
	default:
		res.Points = 0
	}
	return res
}

// Progress accumulates session stats. Counts only ever grow; the score can
// drop on skips.
type Progress struct {
	CorrectAnswers   int
	IncorrectAnswers int
	Score            int
	StartedAt        time.Time
}

// Apply folds a scored result into the progress, returning the updated copy.
func (p Progress) Apply(res evaluate.Result) Progress {
	if res.IsCorrect {
		p.CorrectAnswers++
	} else {
		p.IncorrectAnswers++
	}
	p.Score += res.Points
	return p
}

// Accuracy returns the percent of correct answers so far. Zero answers give
// 0, never a division by zero.
func (p Progress) Accuracy() int {
	total := p.CorrectAnswers + p.IncorrectAnswers
	if total == 0 {
		return 0
	}
	return p.CorrectAnswers * 100 / total
}

// Elapsed returns the wall-clock time since the session started. Computed on
// demand; display cadence is the UI's concern.
func (p Progress) Elapsed(now time.Time) time.Duration {
	if p.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(p.StartedAt)
}
