package session

import (
	"time"

	"github.com/abhisek/wordiz/internal/evaluate"
)

// Summary holds the data displayed on the summary screen and written to the
// session-complete event.
type Summary struct {
	SessionID    string
	TotalWords   int
	Correct      int
	Incorrect    int
	Score        int
	Accuracy     int // 0-100
	Duration     time.Duration
	Results      []evaluate.Result
	Achievements []string
}

// BuildSummary creates a Summary from the finished session state.
func BuildSummary(s *State, now time.Time) *Summary {
	sum := &Summary{
		SessionID:  s.SessionID,
		TotalWords: len(s.Words),
		Correct:    s.Progress.CorrectAnswers,
		Incorrect:  s.Progress.IncorrectAnswers,
		Score:      s.Progress.Score,
		Accuracy:   s.Progress.Accuracy(),
		Duration:   s.Progress.Elapsed(now),
		Results:    s.Results,
	}
	sum.Achievements = achievements(sum)
	return sum
}

// achievements derives the badge list for the summary card.
func achievements(sum *Summary) []string {
	var out []string
	if sum.TotalWords > 0 && sum.Correct == sum.TotalWords {
		out = append(out, "Perfect session")
	}
	if sum.Accuracy >= 80 && sum.Correct != sum.TotalWords {
		out = append(out, "Sharp memory")
	}
	skipped := 0
	for _, r := range sum.Results {
		if r.Skipped {
			skipped++
		}
	}
	if skipped == 0 && sum.TotalWords >= 3 {
		out = append(out, "No skips")
	}
	if sum.TotalWords >= 5 && sum.Duration > 0 && sum.Duration < time.Duration(sum.TotalWords)*15*time.Second {
		out = append(out, "Quick thinker")
	}
	return out
}
