package practice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordiz/internal/config"
	"github.com/abhisek/wordiz/internal/evaluate"
	"github.com/abhisek/wordiz/internal/session"
	"github.com/abhisek/wordiz/internal/store"
	"github.com/abhisek/wordiz/internal/words"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// screenWithWords seeds the given words and returns a practice screen with a
// running session over them.
func screenWithWords(t *testing.T, pt words.PracticeType, list ...words.Word) (*PracticeScreen, *store.Store) {
	t.Helper()
	st := openTestStore(t)
	repo := st.Words()
	ctx := context.Background()

	for i := range list {
		if err := repo.Insert(ctx, &list[i]); err != nil {
			t.Fatalf("insert %q: %v", list[i].Text, err)
		}
	}

	sess, err := session.New("s-test", list, pt, 1, session.DefaultPolicy())
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	events, err := st.Events()
	if err != nil {
		t.Fatalf("events repo: %v", err)
	}

	s := New(nil, repo, events, nil, config.Default())
	s.state = sess
	return s, st
}

func TestProgressFlushedAtSessionEndOnly(t *testing.T) {
	pt := words.PracticeType(words.ChooseRightWord)
	s, st := screenWithWords(t, pt,
		words.Word{Text: "hund", Translation: "dog"},
		words.Word{Text: "katze", Translation: "cat"},
	)
	ctx := context.Background()
	s.exercise = words.ChooseRightWord

	scored := s.state.HandleAnswer(evaluate.FromOutcome("dog", "dog", true))
	msg := s.persistResult(s.state.Current(), scored)()
	if pm, ok := msg.(persistMsg); !ok || pm.Err != nil {
		t.Fatalf("persistResult msg = %#v", msg)
	}

	// Mid-session the durable counters stay untouched.
	got, err := st.Words().GetByText(ctx, "hund")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Attempts != 0 || got.Status != words.StatusNotStarted {
		t.Fatalf("word mutated mid-session: attempts=%d status=%q", got.Attempts, got.Status)
	}

	s.handleSessionEnd()

	got, err = st.Words().GetByText(ctx, "hund")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Attempts != 1 || got.CorrectAttempts != 1 {
		t.Errorf("answered word not flushed: attempts=%d correct=%d", got.Attempts, got.CorrectAttempts)
	}
	if got.Status != words.StatusInProgress {
		t.Errorf("status = %q, want in-progress", got.Status)
	}

	// The unanswered second word is left alone.
	rest, err := st.Words().GetByText(ctx, "katze")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rest.Attempts != 0 {
		t.Errorf("unanswered word flushed: attempts=%d", rest.Attempts)
	}
}

func TestSessionEndFlushesOnce(t *testing.T) {
	pt := words.PracticeType(words.ChooseRightWord)
	s, st := screenWithWords(t, pt, words.Word{Text: "hund", Translation: "dog"})
	ctx := context.Background()
	s.exercise = words.ChooseRightWord

	s.state.HandleAnswer(evaluate.FromOutcome("cat", "dog", false))
	s.handleSessionEnd()
	s.handleSessionEnd()

	got, err := st.Words().GetByText(ctx, "hund")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Attempts != 1 {
		t.Errorf("attempts = %d after repeated session end, want 1", got.Attempts)
	}
}

func TestAudioFailureIsVisible(t *testing.T) {
	pt := words.PracticeType(words.WriteBySound)
	s, _ := screenWithWords(t, pt,
		words.Word{Text: "hund", Translation: "dog", AudioURL: "hund.mp3", Attempts: 3},
	)

	s.setupWord()
	if s.exercise != words.WriteBySound {
		t.Fatalf("exercise = %q, want write-by-sound", s.exercise)
	}

	s.Update(audioDoneMsg{Err: errors.New("no player")})
	if !s.audioFailed {
		t.Fatal("audio failure not recorded")
	}
	if out := s.renderExercise(100); !strings.Contains(out, "No audio") {
		t.Error("sound exercise view does not surface the playback failure")
	}

	// A successful replay clears the notice.
	s.Update(audioDoneMsg{Err: nil})
	if s.audioFailed {
		t.Error("notice not cleared after successful playback")
	}

	// And the next word starts clean.
	s.audioFailed = true
	s.setupWord()
	if s.audioFailed {
		t.Error("notice carried over into the next word")
	}
}

func TestRenderDiffUsesNormalizedInput(t *testing.T) {
	res := evaluate.Evaluate("  Hnud ", "hund")
	got := renderDiff(res)

	want := utf8.RuneCountInString(evaluate.Normalize("  Hnud "))
	if w := lipgloss.Width(got); w != want {
		t.Errorf("diff width = %d, want %d (the normalized form the mistakes index)", w, want)
	}
}
