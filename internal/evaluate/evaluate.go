// Package evaluate grades a single typed attempt against a target word.
// It is pure: no store access, no UI side effects.
package evaluate

import (
	"strings"
	"time"
)

// SkipPoints is the fixed score delta for a skipped word.
const SkipPoints = -2

// Mistake records one differing character position between the learner's
// input and the target word. A side that is shorter contributes "".
type Mistake struct {
	Position int
	Expected string
	Actual   string
}

// Result is the immutable record of one evaluated attempt (or skip).
// Points is filled in by the session scorer for non-skip results.
type Result struct {
	IsCorrect     bool
	Accuracy      int // 0-100, percent of matching positions
	PartialCredit bool
	Points        int
	Feedback      string
	ResponseTime  time.Duration
	UserInput     string
	CorrectWord   string
	Mistakes      []Mistake
	Skipped       bool
	SelfReported  bool // correctness came from the learner, not grading
}

// partialCreditThreshold is the accuracy floor for a near-miss.
const partialCreditThreshold = 70

// Evaluate compares learner input to the target word. Matching is
// case-insensitive and ignores surrounding whitespace. The mistake list is a
// positional diff over the longer of the two normalized strings.
func Evaluate(userInput, correctWord string) Result {
	normIn := Normalize(userInput)
	normWant := Normalize(correctWord)

	res := Result{
		UserInput:   userInput,
		CorrectWord: correctWord,
	}

	if normIn == normWant {
		res.IsCorrect = true
		res.Accuracy = 100
		res.Feedback = "Correct!"
		return res
	}

	in := []rune(normIn)
	want := []rune(normWant)
	longest := len(in)
	if len(want) > longest {
		longest = len(want)
	}

	matching := 0
	for i := 0; i < longest; i++ {
		var actual, expected string
		if i < len(in) {
			actual = string(in[i])
		}
		if i < len(want) {
			expected = string(want[i])
		}
		if actual == expected {
			matching++
			continue
		}
		res.Mistakes = append(res.Mistakes, Mistake{
			Position: i,
			Expected: expected,
			Actual:   actual,
		})
	}

	if longest > 0 {
		res.Accuracy = matching * 100 / longest
	}
	res.PartialCredit = res.Accuracy >= partialCreditThreshold
	if res.PartialCredit {
		res.Feedback = "Almost! Check the highlighted letters."
	} else {
		res.Feedback = "Not quite."
	}
	return res
}

// Skipped synthesizes the fixed result for a word the learner skipped.
func Skipped(correctWord string) Result {
	return Result{
		IsCorrect:   false,
		Accuracy:    0,
		Points:      SkipPoints,
		Feedback:    "Skipped",
		CorrectWord: correctWord,
		Skipped:     true,
	}
}

// SelfReport wraps a learner's own remembered/forgot verdict as a result.
func SelfReport(correctWord string, remembered bool) Result {
	res := Result{
		IsCorrect:    remembered,
		CorrectWord:  correctWord,
		SelfReported: true,
	}
	if remembered {
		res.Accuracy = 100
		res.Feedback = "Nice recall!"
	} else {
		res.Feedback = "No worries, it will come back around."
	}
	return res
}

// FromOutcome builds a result for exercises that grade themselves
// (multiple choice, assembly), where correctness is already decided.
func FromOutcome(userInput, correctWord string, correct bool) Result {
	res := Result{
		IsCorrect:   correct,
		UserInput:   userInput,
		CorrectWord: correctWord,
	}
	if correct {
		res.Accuracy = 100
		res.Feedback = "Correct!"
	} else {
		res.Feedback = "Not quite."
	}
	return res
}

// Normalize is the canonical form inputs are compared in. Mistake
// positions index into this form, not the raw input.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
