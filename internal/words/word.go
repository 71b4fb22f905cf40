package words

import (
	"strings"
	"time"
)

// Default attempt budgets for the assembly exercise.
const (
	DefaultMaxAttempts       = 3
	DefaultPhraseMaxAttempts = 6
)

// LearningStatus tracks how far along a learner is with a word.
type LearningStatus string

const (
	StatusNotStarted  LearningStatus = "not-started"
	StatusInProgress  LearningStatus = "in-progress"
	StatusDifficult   LearningStatus = "difficult"
	StatusNeedsReview LearningStatus = "needs-review"
	StatusLearned     LearningStatus = "learned"
)

// Word is one vocabulary item scheduled for practice. Display and
// exercise-payload fields are fixed at session build time; progress fields
// are only written back to the store after a session-level decision.
type Word struct {
	ID           int64  `db:"id"`
	Text         string `db:"text"`
	Definition   string `db:"definition"`
	Translation  string `db:"translation"` // one-word translation
	Phonetic     string `db:"phonetic"`
	PartOfSpeech string `db:"part_of_speech"`
	AudioURL     string `db:"audio_url"`
	ImageURL     string `db:"image_url"`

	Attempts        int            `db:"attempts"`
	CorrectAttempts int            `db:"correct_attempts"`
	Status          LearningStatus `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Exercise payload, populated by the session builder (not persisted).
	DynamicExercise ExerciseType `db:"-"` // variant used under unified practice
	Options         []string     `db:"-"` // multiple-choice options
	CorrectIndex    int          `db:"-"` // index into Options
	CharPool        []rune       `db:"-"` // letter pool for assembly
	MaxAttempts     int          `db:"-"` // assembly attempt budget
}

// IsNew reports whether the word has never been practiced.
func (w *Word) IsNew() bool {
	return w.Attempts == 0
}

// IsPhrase reports whether the word text contains multiple tokens.
func (w *Word) IsPhrase() bool {
	return strings.ContainsRune(strings.TrimSpace(w.Text), ' ')
}

// AttemptBudget returns the assembly attempt budget, applying the
// word/phrase defaults when none was assigned by the builder.
func (w *Word) AttemptBudget() int {
	if w.MaxAttempts > 0 {
		return w.MaxAttempts
	}
	if w.IsPhrase() {
		return DefaultPhraseMaxAttempts
	}
	return DefaultMaxAttempts
}

// ValidStatus reports whether s is a known learning status.
func ValidStatus(s LearningStatus) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDifficult, StatusNeedsReview, StatusLearned:
		return true
	}
	return false
}

// NextStatus derives the learning status after a session outcome.
// A correct final answer moves the word toward learned; a miss marks it
// difficult until it recovers.
func NextStatus(w *Word, correct bool) LearningStatus {
	if correct {
		if w.CorrectAttempts+1 >= 3 && w.Attempts+1 >= 3 {
			return StatusLearned
		}
		return StatusInProgress
	}
	if w.Status == StatusLearned {
		return StatusNeedsReview
	}
	if w.Attempts >= 2 && w.CorrectAttempts == 0 {
		return StatusDifficult
	}
	return StatusInProgress
}
