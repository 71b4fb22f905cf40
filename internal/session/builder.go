package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/abhisek/wordiz/internal/exercises"
	"github.com/abhisek/wordiz/internal/words"
)

// WordSource supplies words for a new session, least-learned first.
type WordSource interface {
	ListForPractice(ctx context.Context, limit int) ([]words.Word, error)
}

// Request describes the session to build.
type Request struct {
	WordsCount   int
	Difficulty   int
	PracticeType words.PracticeType
	Enabled      []words.ExerciseType // unified practice only; empty = all
	MaxReplays   int                  // write-by-sound replay budget; 0 = default
}

// Builder assembles sessions: it loads words, assigns per-word exercise
// variants for unified practice, and generates the exercise payloads
// (distractor options, character pools, attempt budgets).
type Builder struct {
	source WordSource
}

// NewBuilder creates a session builder over a word source.
func NewBuilder(source WordSource) *Builder {
	return &Builder{source: source}
}

// Build creates a new session state. It fails without side effects: no
// partial session exists on error.
func (b *Builder) Build(ctx context.Context, req Request) (*State, error) {
	if _, err := words.ParsePracticeType(string(req.PracticeType)); err != nil {
		return nil, err
	}
	if req.WordsCount <= 0 {
		req.WordsCount = 10
	}

	enabled := req.Enabled
	if len(enabled) == 0 {
		enabled = words.AllExerciseTypes()
	}

	list, err := b.source.ListForPractice(ctx, req.WordsCount)
	if err != nil {
		return nil, fmt.Errorf("load practice words: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrNoWords
	}

	list = lo.Shuffle(list)
	for i := range list {
		w := &list[i]
		if req.PracticeType.IsUnified() {
			w.DynamicExercise = assignExercise(w, enabled)
		}
		et, err := ExerciseFor(w, req.PracticeType)
		if err != nil {
			return nil, err
		}
		switch et {
		case words.ChooseRightWord:
			w.Options, w.CorrectIndex = buildOptions(w, list)
		case words.MakeUpWord:
			w.CharPool = buildCharPool(w.Text)
			w.MaxAttempts = w.AttemptBudget()
		case words.WriteBySound:
			if w.MaxAttempts == 0 {
				w.MaxAttempts = exercises.DefaultMaxReplays
			}
			if req.MaxReplays > 0 {
				w.MaxAttempts = req.MaxReplays
			}
		}
	}

	return New(uuid.New().String(), list, req.PracticeType, req.Difficulty, DefaultPolicy())
}

// assignExercise picks the unified-practice variant from the word's
// familiarity, restricted to the enabled set.
func assignExercise(w *words.Word, enabled []words.ExerciseType) words.ExerciseType {
	var want words.ExerciseType
	switch {
	case w.Status == words.StatusLearned:
		want = words.RememberTranslation
	case w.IsNew():
		want = words.ChooseRightWord
	case w.Attempts >= 3 && w.AudioURL != "":
		want = words.WriteBySound
	case w.Attempts >= 3:
		want = words.WriteByDefinition
	default:
		want = words.MakeUpWord
	}

	if lo.Contains(enabled, want) {
		return want
	}
	// Sound writing needs audio; skip it when falling back.
	for _, et := range enabled {
		if et == words.WriteBySound && w.AudioURL == "" {
			continue
		}
		return et
	}
	return enabled[0]
}

// fallbackDistractors pad the option set when the dictionary is too small to
// supply three sibling translations.
var fallbackDistractors = []string{"journey", "window", "quiet", "harvest", "shadow", "ladder"}

// buildOptions generates the multiple-choice option set: the word's own
// translation plus three distractors drawn from sibling words.
func buildOptions(w *words.Word, list []words.Word) ([]string, int) {
	correct := w.Translation
	if correct == "" {
		correct = w.Definition
	}

	siblings := lo.FilterMap(list, func(o words.Word, _ int) (string, bool) {
		t := o.Translation
		if t == "" {
			t = o.Definition
		}
		return t, o.ID != w.ID && t != "" && !strings.EqualFold(t, correct)
	})
	siblings = lo.Shuffle(lo.Uniq(siblings))

	for _, f := range fallbackDistractors {
		if len(siblings) >= 3 {
			break
		}
		if !strings.EqualFold(f, correct) && !lo.Contains(siblings, f) {
			siblings = append(siblings, f)
		}
	}

	opts := append([]string{correct}, siblings[:3]...)
	opts = lo.Shuffle(opts)
	return opts, lo.IndexOf(opts, correct)
}

// decoyLetters seed the assembly pool with characters not in the target.
const decoyLetters = "aeinorst"

// buildCharPool returns the shuffled letter pool for the assembly exercise:
// every rune of the target plus up to three decoys.
func buildCharPool(text string) []rune {
	target := []rune(strings.ToLower(strings.TrimSpace(text)))
	pool := make([]rune, len(target))
	copy(pool, target)

	present := lo.SliceToMap(target, func(r rune) (rune, bool) { return r, true })
	added := 0
	for _, d := range decoyLetters {
		if added >= 3 {
			break
		}
		if !present[d] {
			pool = append(pool, d)
			added++
		}
	}
	return lo.Shuffle(pool)
}
