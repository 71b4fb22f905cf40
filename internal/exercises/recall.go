package exercises

// Recall is the remember-translation machine. The system computes no
// correctness here: the learner sees the word, recalls the translation,
// reveals the answer, and reports whether they remembered. That self-report
// passes through as the outcome's correctness.
type Recall struct {
	revealed   bool
	reported   bool
	remembered bool
}

// NewRecall creates a recall machine.
func NewRecall() *Recall {
	return &Recall{}
}

// Reveal shows the answer. Reporting is only allowed after reveal.
func (r *Recall) Reveal() {
	r.revealed = true
}

// Report records the learner's self-assessment. Ignored before Reveal and
// after the first report.
func (r *Recall) Report(remembered bool) {
	if !r.revealed || r.reported {
		return
	}
	r.reported = true
	r.remembered = remembered
}

// Revealed reports whether the answer is visible.
func (r *Recall) Revealed() bool { return r.revealed }

// Done reports whether the learner has self-assessed.
func (r *Recall) Done() bool { return r.reported }

// Outcome returns the exercise result. Only meaningful once Done.
func (r *Recall) Outcome() Outcome {
	return Outcome{
		Correct:  r.remembered,
		Attempts: 1,
	}
}
