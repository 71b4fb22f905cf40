package words

import "fmt"

// ExerciseType identifies one concrete practice mechanic.
type ExerciseType string

const (
	ChooseRightWord     ExerciseType = "choose-right-word"
	RememberTranslation ExerciseType = "remember-translation"
	MakeUpWord          ExerciseType = "make-up-word"
	WriteByDefinition   ExerciseType = "write-by-definition"
	WriteBySound        ExerciseType = "write-by-sound"
)

// AllExerciseTypes lists every supported exercise variant.
func AllExerciseTypes() []ExerciseType {
	return []ExerciseType{
		ChooseRightWord,
		RememberTranslation,
		MakeUpWord,
		WriteByDefinition,
		WriteBySound,
	}
}

// ValidExercise reports whether t is a known exercise type.
func ValidExercise(t ExerciseType) bool {
	switch t {
	case ChooseRightWord, RememberTranslation, MakeUpWord, WriteByDefinition, WriteBySound:
		return true
	}
	return false
}

// IsTyped reports whether the exercise takes free-text input graded by the
// evaluator.
func (t ExerciseType) IsTyped() bool {
	return t == WriteByDefinition || t == WriteBySound
}

// PracticeType is either a fixed exercise type for the whole session, or
// UnifiedPractice, meaning the variant is chosen per word.
type PracticeType string

// UnifiedPractice lets the session pick the exercise variant per word.
const UnifiedPractice PracticeType = "unified-practice"

// ParsePracticeType validates a practice type string.
func ParsePracticeType(s string) (PracticeType, error) {
	if PracticeType(s) == UnifiedPractice {
		return UnifiedPractice, nil
	}
	if ValidExercise(ExerciseType(s)) {
		return PracticeType(s), nil
	}
	return "", fmt.Errorf("unknown practice type: %q", s)
}

// IsUnified reports whether the exercise variant is chosen per word.
func (p PracticeType) IsUnified() bool {
	return p == UnifiedPractice
}

// Exercise returns the fixed exercise type for non-unified practice.
func (p PracticeType) Exercise() (ExerciseType, bool) {
	if p.IsUnified() {
		return "", false
	}
	t := ExerciseType(p)
	return t, ValidExercise(t)
}
