// Package exercises holds the per-exercise state machines. Each machine is
// scoped to one word's presentation: it tracks local attempts and completion
// and surfaces a single Outcome to the session when done. None of them touch
// the store or the UI.
package exercises

// Outcome is the single upward contract shared by every exercise type.
type Outcome struct {
	UserInput string
	Correct   bool
	Attempts  int
}
