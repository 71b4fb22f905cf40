package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/wordiz/internal/words"
)

func TestStartPhase_NewWordGetsCard(t *testing.T) {
	w := &words.Word{Text: "hund"}
	for _, pt := range []words.PracticeType{
		words.UnifiedPractice,
		words.PracticeType(words.ChooseRightWord),
		words.PracticeType(words.WriteByDefinition),
	} {
		if got := StartPhase(w, pt); got != PhaseWordCard {
			t.Errorf("StartPhase(new, %s) = %v, want word-card", pt, got)
		}
	}
}

func TestStartPhase_RememberTranslationNeverCards(t *testing.T) {
	fresh := &words.Word{Text: "hund"}
	seen := &words.Word{Text: "hund", Attempts: 7}
	pt := words.PracticeType(words.RememberTranslation)
	if StartPhase(fresh, pt) != PhaseGame {
		t.Error("remember-translation must skip the card even for new words")
	}
	if StartPhase(seen, pt) != PhaseGame {
		t.Error("remember-translation must skip the card for familiar words")
	}
}

func TestExerciseFor_FixedType(t *testing.T) {
	w := &words.Word{Text: "hund"}
	et, err := ExerciseFor(w, words.PracticeType(words.MakeUpWord))
	if err != nil {
		t.Fatalf("ExerciseFor: %v", err)
	}
	if et != words.MakeUpWord {
		t.Errorf("ExerciseFor = %q, want make-up-word", et)
	}
}

func TestExerciseFor_UnifiedDispatchesOnWord(t *testing.T) {
	w := &words.Word{Text: "hund", AudioURL: "hund.mp3", DynamicExercise: words.WriteBySound}
	et, err := ExerciseFor(w, words.UnifiedPractice)
	if err != nil {
		t.Fatalf("ExerciseFor: %v", err)
	}
	if et != words.WriteBySound {
		t.Errorf("ExerciseFor = %q, want write-by-sound", et)
	}
}

func TestExerciseFor_NoAudioFallsBackToDefinition(t *testing.T) {
	silent := &words.Word{Text: "hund", Definition: "a dog"}

	et, err := ExerciseFor(silent, words.PracticeType(words.WriteBySound))
	if err != nil {
		t.Fatalf("ExerciseFor: %v", err)
	}
	if et != words.WriteByDefinition {
		t.Errorf("fixed write-by-sound without audio = %q, want write-by-definition", et)
	}

	silent.DynamicExercise = words.WriteBySound
	et, err = ExerciseFor(silent, words.UnifiedPractice)
	if err != nil {
		t.Fatalf("ExerciseFor: %v", err)
	}
	if et != words.WriteByDefinition {
		t.Errorf("unified write-by-sound without audio = %q, want write-by-definition", et)
	}
}

func TestExerciseFor_UnknownIsError(t *testing.T) {
	w := &words.Word{Text: "hund", DynamicExercise: "flashcards"}
	_, err := ExerciseFor(w, words.UnifiedPractice)
	if err == nil {
		t.Fatal("expected error for unknown exercise type")
	}
	var ue *UnknownExerciseError
	if !errors.As(err, &ue) {
		t.Fatalf("error type = %T, want UnknownExerciseError", err)
	}
	if !strings.Contains(err.Error(), "flashcards") {
		t.Errorf("error %q should name the offending value", err)
	}

	_, err = ExerciseFor(w, words.PracticeType("bogus"))
	if err == nil {
		t.Error("expected error for unknown fixed practice type")
	}
}
