package words

import "testing"

func TestIsNew(t *testing.T) {
	w := &Word{Text: "hund"}
	if !w.IsNew() {
		t.Error("expected word with zero attempts to be new")
	}
	w.Attempts = 1
	if w.IsNew() {
		t.Error("expected word with attempts to not be new")
	}
}

func TestAttemptBudget_Defaults(t *testing.T) {
	w := &Word{Text: "hund"}
	if got := w.AttemptBudget(); got != DefaultMaxAttempts {
		t.Errorf("AttemptBudget = %d, want %d", got, DefaultMaxAttempts)
	}

	phrase := &Word{Text: "guten morgen"}
	if got := phrase.AttemptBudget(); got != DefaultPhraseMaxAttempts {
		t.Errorf("AttemptBudget = %d, want %d", got, DefaultPhraseMaxAttempts)
	}

	explicit := &Word{Text: "hund", MaxAttempts: 5}
	if got := explicit.AttemptBudget(); got != 5 {
		t.Errorf("AttemptBudget = %d, want 5 (explicit)", got)
	}
}

func TestParsePracticeType(t *testing.T) {
	tests := []struct {
		in      string
		want    PracticeType
		wantErr bool
	}{
		{"unified-practice", UnifiedPractice, false},
		{"choose-right-word", PracticeType(ChooseRightWord), false},
		{"write-by-sound", PracticeType(WriteBySound), false},
		{"flashcards", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePracticeType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePracticeType(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePracticeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPracticeType_Exercise(t *testing.T) {
	if _, ok := UnifiedPractice.Exercise(); ok {
		t.Error("unified practice should not resolve to a fixed exercise")
	}
	et, ok := PracticeType(MakeUpWord).Exercise()
	if !ok || et != MakeUpWord {
		t.Errorf("Exercise() = %q, %v, want make-up-word, true", et, ok)
	}
}

func TestNextStatus(t *testing.T) {
	learned := &Word{Attempts: 4, CorrectAttempts: 3, Status: StatusInProgress}
	if got := NextStatus(learned, true); got != StatusLearned {
		t.Errorf("NextStatus = %q, want learned", got)
	}

	relapse := &Word{Attempts: 5, CorrectAttempts: 4, Status: StatusLearned}
	if got := NextStatus(relapse, false); got != StatusNeedsReview {
		t.Errorf("NextStatus = %q, want needs-review", got)
	}

	struggling := &Word{Attempts: 2, CorrectAttempts: 0, Status: StatusInProgress}
	if got := NextStatus(struggling, false); got != StatusDifficult {
		t.Errorf("NextStatus = %q, want difficult", got)
	}

	fresh := &Word{Status: StatusNotStarted}
	if got := NextStatus(fresh, true); got != StatusInProgress {
		t.Errorf("NextStatus = %q, want in-progress", got)
	}
}
