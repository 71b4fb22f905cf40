package exercises

// DefaultMaxReplays bounds audio replays in the write-by-sound exercise.
const DefaultMaxReplays = 3

// Writing is the machine behind write-by-definition and write-by-sound:
// free-text input, one submission, graded by the evaluator. For the sound
// variant it also bounds audio replays; the counter resets only when a new
// machine is created for the next word.
type Writing struct {
	fromSound  bool
	replays    int
	maxReplays int
	submitted  bool
	input      string
}

// NewWriting creates a writing machine. fromSound enables the replay budget;
// maxReplays <= 0 uses the default.
func NewWriting(fromSound bool, maxReplays int) *Writing {
	if maxReplays <= 0 {
		maxReplays = DefaultMaxReplays
	}
	return &Writing{fromSound: fromSound, maxReplays: maxReplays}
}

// CanReplay reports whether another audio replay is allowed.
func (w *Writing) CanReplay() bool {
	return w.fromSound && w.replays < w.maxReplays
}

// Replay consumes one replay. Returns false when the budget is spent.
func (w *Writing) Replay() bool {
	if !w.CanReplay() {
		return false
	}
	w.replays++
	return true
}

// Replays returns the number of replays used.
func (w *Writing) Replays() int { return w.replays }

// ReplaysLeft returns the remaining replay budget (0 for the definition
// variant, which has no audio).
func (w *Writing) ReplaysLeft() int {
	if !w.fromSound {
		return 0
	}
	return w.maxReplays - w.replays
}

// Submit records the single free-text submission. Repeat submissions are
// ignored.
func (w *Writing) Submit(input string) {
	if w.submitted {
		return
	}
	w.submitted = true
	w.input = input
}

// Done reports whether the answer was submitted.
func (w *Writing) Done() bool { return w.submitted }

// Input returns the submitted text.
func (w *Writing) Input() string { return w.input }
