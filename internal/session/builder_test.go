package session

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/wordiz/internal/words"
)

// fakeSource implements WordSource for builder tests.
type fakeSource struct {
	words []words.Word
	err   error
}

func (f *fakeSource) ListForPractice(_ context.Context, limit int) ([]words.Word, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.words) {
		return f.words[:limit], nil
	}
	return f.words, nil
}

func sourceWords() []words.Word {
	return []words.Word{
		{ID: 1, Text: "hund", Translation: "dog", Attempts: 0, Status: words.StatusNotStarted},
		{ID: 2, Text: "katze", Translation: "cat", Attempts: 2, Status: words.StatusInProgress},
		{ID: 3, Text: "vogel", Translation: "bird", Attempts: 4, Status: words.StatusInProgress},
		{ID: 4, Text: "fisch", Translation: "fish", Attempts: 5, Status: words.StatusLearned},
		{ID: 5, Text: "pferd", Translation: "horse", Attempts: 3, AudioURL: "pferd.mp3", Status: words.StatusInProgress},
	}
}

func TestBuild_UnifiedAssignsVariants(t *testing.T) {
	b := NewBuilder(&fakeSource{words: sourceWords()})
	s, err := b.Build(context.Background(), Request{
		WordsCount:   5,
		Difficulty:   3,
		PracticeType: words.UnifiedPractice,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.SessionID == "" {
		t.Error("expected a session id")
	}
	if len(s.Words) != 5 {
		t.Fatalf("word count = %d, want 5", len(s.Words))
	}

	byID := map[int64]*words.Word{}
	for i := range s.Words {
		w := &s.Words[i]
		if !words.ValidExercise(w.DynamicExercise) {
			t.Errorf("word %d has invalid exercise %q", w.ID, w.DynamicExercise)
		}
		byID[w.ID] = w
	}

	if byID[1].DynamicExercise != words.ChooseRightWord {
		t.Errorf("new word variant = %q, want choose-right-word", byID[1].DynamicExercise)
	}
	if byID[4].DynamicExercise != words.RememberTranslation {
		t.Errorf("learned word variant = %q, want remember-translation", byID[4].DynamicExercise)
	}
	if byID[5].DynamicExercise != words.WriteBySound {
		t.Errorf("audio word variant = %q, want write-by-sound", byID[5].DynamicExercise)
	}
}

func TestBuild_ChoicePayload(t *testing.T) {
	b := NewBuilder(&fakeSource{words: sourceWords()})
	s, err := b.Build(context.Background(), Request{
		WordsCount:   5,
		Difficulty:   1,
		PracticeType: words.PracticeType(words.ChooseRightWord),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range s.Words {
		w := &s.Words[i]
		if len(w.Options) != 4 {
			t.Fatalf("word %q options = %d, want 4", w.Text, len(w.Options))
		}
		if w.CorrectIndex < 0 || w.CorrectIndex >= len(w.Options) {
			t.Fatalf("word %q correct index %d out of range", w.Text, w.CorrectIndex)
		}
		if w.Options[w.CorrectIndex] != w.Translation {
			t.Errorf("word %q: option at correct index = %q, want %q",
				w.Text, w.Options[w.CorrectIndex], w.Translation)
		}
	}
}

func TestBuild_AssemblyPayload(t *testing.T) {
	b := NewBuilder(&fakeSource{words: sourceWords()})
	s, err := b.Build(context.Background(), Request{
		WordsCount:   5,
		Difficulty:   1,
		PracticeType: words.PracticeType(words.MakeUpWord),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range s.Words {
		w := &s.Words[i]
		if len(w.CharPool) < len([]rune(w.Text)) {
			t.Errorf("word %q pool too small: %d", w.Text, len(w.CharPool))
		}
		if w.MaxAttempts != w.AttemptBudget() {
			t.Errorf("word %q max attempts = %d, want %d", w.Text, w.MaxAttempts, w.AttemptBudget())
		}
		// The pool must contain every target rune.
		pool := map[rune]int{}
		for _, r := range w.CharPool {
			pool[r]++
		}
		for _, r := range w.Text {
			if pool[r] == 0 {
				t.Errorf("word %q pool missing %q", w.Text, r)
			}
			pool[r]--
		}
	}
}

func TestBuild_EmptySource(t *testing.T) {
	b := NewBuilder(&fakeSource{})
	_, err := b.Build(context.Background(), Request{PracticeType: words.UnifiedPractice})
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("err = %v, want ErrNoWords", err)
	}
}

func TestBuild_SourceFailure(t *testing.T) {
	b := NewBuilder(&fakeSource{err: errors.New("db locked")})
	_, err := b.Build(context.Background(), Request{PracticeType: words.UnifiedPractice})
	if err == nil {
		t.Fatal("expected error from failing source")
	}
}

func TestBuild_InvalidPracticeType(t *testing.T) {
	b := NewBuilder(&fakeSource{words: sourceWords()})
	_, err := b.Build(context.Background(), Request{PracticeType: "speedrun"})
	if err == nil {
		t.Fatal("expected error for invalid practice type")
	}
}

func TestBuild_EnabledSubset(t *testing.T) {
	b := NewBuilder(&fakeSource{words: sourceWords()})
	s, err := b.Build(context.Background(), Request{
		WordsCount:   5,
		PracticeType: words.UnifiedPractice,
		Enabled:      []words.ExerciseType{words.ChooseRightWord, words.MakeUpWord},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := range s.Words {
		et := s.Words[i].DynamicExercise
		if et != words.ChooseRightWord && et != words.MakeUpWord {
			t.Errorf("word %q assigned %q, outside the enabled set", s.Words[i].Text, et)
		}
	}
}
