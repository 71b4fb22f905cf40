package session

import (
	"testing"
	"time"

	"github.com/abhisek/wordiz/internal/evaluate"
	"github.com/abhisek/wordiz/internal/words"
)

func summaryState(t *testing.T, results []evaluate.Result) *State {
	t.Helper()
	list := testWords(len(results))
	for i := range list {
		list[i].Attempts = 2 // no intro cards
	}
	s, err := New("sum-1", list, words.PracticeType(words.WriteByDefinition), 2, DefaultPolicy())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, res := range results {
		s.HandleAnswer(res)
		s.EnterCard()
		s.AdvanceFromCard()
	}
	return s
}

func TestBuildSummary_Totals(t *testing.T) {
	s := summaryState(t, []evaluate.Result{
		evaluate.FromOutcome("hund", "hund", true),
		evaluate.FromOutcome("katz", "katze", false),
		evaluate.Skipped("vogel"),
	})
	if s.Phase != PhaseSummary {
		t.Fatalf("phase = %v, want summary", s.Phase)
	}

	now := s.Progress.StartedAt.Add(90 * time.Second)
	sum := BuildSummary(s, now)

	if sum.SessionID != "sum-1" {
		t.Errorf("session id = %q", sum.SessionID)
	}
	if sum.TotalWords != 3 || sum.Correct != 1 || sum.Incorrect != 2 {
		t.Errorf("totals = %d/%d/%d, want 3/1/2", sum.TotalWords, sum.Correct, sum.Incorrect)
	}
	// One correct at difficulty 2 (20) plus one skip (-2).
	if sum.Score != 18 {
		t.Errorf("score = %d, want 18", sum.Score)
	}
	if sum.Accuracy != 33 {
		t.Errorf("accuracy = %d, want 33", sum.Accuracy)
	}
	if sum.Duration != 90*time.Second {
		t.Errorf("duration = %v, want 90s", sum.Duration)
	}
	if len(sum.Results) != 3 {
		t.Errorf("results = %d, want 3", len(sum.Results))
	}
}

func TestBuildSummary_PerfectSession(t *testing.T) {
	s := summaryState(t, []evaluate.Result{
		evaluate.FromOutcome("a", "a", true),
		evaluate.FromOutcome("b", "b", true),
		evaluate.FromOutcome("c", "c", true),
	})
	sum := BuildSummary(s, s.Progress.StartedAt.Add(20*time.Second))

	if !containsString(sum.Achievements, "Perfect session") {
		t.Errorf("achievements = %v, want Perfect session", sum.Achievements)
	}
	if !containsString(sum.Achievements, "No skips") {
		t.Errorf("achievements = %v, want No skips", sum.Achievements)
	}
	if containsString(sum.Achievements, "Sharp memory") {
		t.Errorf("perfect session should not also claim Sharp memory: %v", sum.Achievements)
	}
}

func TestBuildSummary_SkipsBlockBadge(t *testing.T) {
	s := summaryState(t, []evaluate.Result{
		evaluate.FromOutcome("a", "a", true),
		evaluate.FromOutcome("b", "b", true),
		evaluate.Skipped("c"),
	})
	sum := BuildSummary(s, s.Progress.StartedAt.Add(20*time.Second))
	if containsString(sum.Achievements, "No skips") {
		t.Errorf("achievements = %v, should not include No skips", sum.Achievements)
	}
}

func TestBuildSummary_EmptyResults(t *testing.T) {
	list := testWords(1)
	list[0].Attempts = 2
	s, err := New("sum-2", list, words.PracticeType(words.WriteByDefinition), 1, DefaultPolicy())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sum := BuildSummary(s, s.Progress.StartedAt.Add(time.Second))
	if sum.Accuracy != 0 || sum.Score != 0 {
		t.Errorf("empty summary accuracy/score = %d/%d, want 0/0", sum.Accuracy, sum.Score)
	}
	if len(sum.Achievements) != 0 {
		t.Errorf("achievements = %v, want none", sum.Achievements)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
