package session

import (
	"fmt"

	"github.com/abhisek/wordiz/internal/words"
)

// UnknownExerciseError marks a word whose exercise variant cannot be
// resolved. It is fatal for that word and must surface as an error state,
// never a silent fallback exercise.
type UnknownExerciseError struct {
	Value string
}

func (e *UnknownExerciseError) Error() string {
	return fmt.Sprintf("unknown practice type: %s", e.Value)
}

// StartPhase decides the entry phase for a word. New words get the full word
// card before being tested, except under remember-translation, which is
// itself a review exercise and goes straight to the game.
func StartPhase(w *words.Word, practiceType words.PracticeType) Phase {
	if w == nil {
		return PhaseSummary
	}
	if w.IsNew() && practiceType != words.PracticeType(words.RememberTranslation) {
		return PhaseWordCard
	}
	return PhaseGame
}

// ExerciseFor resolves the concrete exercise variant for a word. Fixed
// practice types map to themselves; unified practice dispatches on the
// word's DynamicExercise field, assigned by the session builder.
func ExerciseFor(w *words.Word, practiceType words.PracticeType) (words.ExerciseType, error) {
	et := w.DynamicExercise
	if !practiceType.IsUnified() {
		var ok bool
		et, ok = practiceType.Exercise()
		if !ok {
			return "", &UnknownExerciseError{Value: string(practiceType)}
		}
	} else if !words.ValidExercise(et) {
		return "", &UnknownExerciseError{Value: string(et)}
	}

	// A sound exercise needs something to play. Words without audio are
	// tested by definition instead.
	if et == words.WriteBySound && w.AudioURL == "" {
		return words.WriteByDefinition, nil
	}
	return et, nil
}
