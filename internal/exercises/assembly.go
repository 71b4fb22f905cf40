package exercises

import (
	"strings"
	"unicode"
)

// Assembly is the make-up-word machine: the learner rebuilds the target word
// by picking characters from a pool. Validation is position-locked: a pick
// must match the target's character at the current build position, not merely
// appear somewhere in the word.
type Assembly struct {
	target      []rune
	selected    []rune
	pool        []rune
	attempts    int
	maxAttempts int
	done        bool
	correct     bool
}

// NewAssembly creates an assembly machine for the target word. The pool
// should contain at least every rune of the target; maxAttempts <= 0 falls
// back to the single-word default.
func NewAssembly(target string, pool []rune, maxAttempts int) *Assembly {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	norm := []rune(strings.ToLower(strings.TrimSpace(target)))
	p := make([]rune, len(pool))
	for i, r := range pool {
		p[i] = unicode.ToLower(r)
	}
	return &Assembly{
		target:      norm,
		pool:        p,
		maxAttempts: maxAttempts,
	}
}

// Pick attempts to append r to the assembly. A wrong pick is rejected (the
// assembly is unchanged) and costs one attempt; exhausting the attempt budget
// force-completes the exercise as incorrect. Completing the word
// force-completes as correct. Returns whether the pick was accepted.
func (a *Assembly) Pick(r rune) bool {
	if a.done || len(a.selected) >= len(a.target) {
		return false
	}

	r = unicode.ToLower(r)
	if r != a.target[len(a.selected)] {
		a.attempts++
		if a.attempts >= a.maxAttempts {
			a.done = true
			a.correct = false
		}
		return false
	}

	a.selected = append(a.selected, r)
	a.removeFromPool(r)
	if len(a.selected) == len(a.target) {
		a.done = true
		a.correct = true
	}
	return true
}

func (a *Assembly) removeFromPool(r rune) {
	for i, p := range a.pool {
		if p == r {
			a.pool = append(a.pool[:i], a.pool[i+1:]...)
			return
		}
	}
}

// Selected returns the in-progress assembly.
func (a *Assembly) Selected() string { return string(a.selected) }

// Pool returns the remaining character pool.
func (a *Assembly) Pool() []rune { return a.pool }

// Attempts returns the number of wrong picks so far.
func (a *Assembly) Attempts() int { return a.attempts }

// AttemptsLeft returns the remaining wrong-pick budget.
func (a *Assembly) AttemptsLeft() int { return a.maxAttempts - a.attempts }

// Done reports whether the exercise has completed.
func (a *Assembly) Done() bool { return a.done }

// Outcome returns the exercise result. Only meaningful once Done.
func (a *Assembly) Outcome() Outcome {
	return Outcome{
		UserInput: string(a.selected),
		Correct:   a.correct,
		Attempts:  a.attempts,
	}
}
