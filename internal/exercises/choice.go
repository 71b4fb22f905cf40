package exercises

// Choice is the choose-right-word machine: single shot, the first selection
// is final.
type Choice struct {
	options      []string
	correctIndex int
	chosen       int
	done         bool
}

// NewChoice creates a choice machine over the given options.
func NewChoice(options []string, correctIndex int) *Choice {
	return &Choice{
		options:      options,
		correctIndex: correctIndex,
		chosen:       -1,
	}
}

// Select records the learner's pick. Out-of-range indexes and repeat
// selections are ignored.
func (c *Choice) Select(i int) {
	if c.done || i < 0 || i >= len(c.options) {
		return
	}
	c.chosen = i
	c.done = true
}

// Options returns the displayed options.
func (c *Choice) Options() []string { return c.options }

// CorrectIndex returns the index of the right answer.
func (c *Choice) CorrectIndex() int { return c.correctIndex }

// Chosen returns the selected index, or -1 before selection.
func (c *Choice) Chosen() int { return c.chosen }

// Done reports whether a selection was made.
func (c *Choice) Done() bool { return c.done }

// Outcome returns the exercise result. Only meaningful once Done.
func (c *Choice) Outcome() Outcome {
	var input string
	if c.chosen >= 0 && c.chosen < len(c.options) {
		input = c.options[c.chosen]
	}
	return Outcome{
		UserInput: input,
		Correct:   c.done && c.chosen == c.correctIndex,
		Attempts:  1,
	}
}
