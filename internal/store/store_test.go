package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordiz/internal/words"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func seedWord(t *testing.T, repo *WordRepo, text, translation string) *words.Word {
	t.Helper()
	w := &words.Word{Text: text, Translation: translation, Definition: "a " + text}
	require.NoError(t, repo.Insert(context.Background(), w), "insert %q", text)
	return w
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestWordRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Words()
	ctx := context.Background()

	w := seedWord(t, repo, "hund", "dog")
	require.NotZero(t, w.ID, "insert did not assign an id")

	got, err := repo.GetByText(ctx, "hund")
	require.NoError(t, err)
	assert.Equal(t, "dog", got.Translation)
	assert.Equal(t, words.StatusNotStarted, got.Status)

	_, err = repo.GetByText(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWordRepoUpsertKeepsProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.Words()
	ctx := context.Background()

	w := seedWord(t, repo, "katze", "cat")
	require.NoError(t, repo.RecordOutcome(ctx, w, true))

	update := &words.Word{Text: "katze", Translation: "cat", Definition: "a feline", Phonetic: "ˈkatsə"}
	require.NoError(t, repo.Upsert(ctx, update))
	assert.Equal(t, w.ID, update.ID, "upsert should resolve the existing id")

	got, err := repo.GetByText(ctx, "katze")
	require.NoError(t, err)
	assert.Equal(t, "a feline", got.Definition)
	assert.Equal(t, "ˈkatsə", got.Phonetic)
	assert.Equal(t, 1, got.Attempts, "upsert must not clobber progress")
	assert.Equal(t, 1, got.CorrectAttempts, "upsert must not clobber progress")
}

func TestListForPracticeOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.Words()
	ctx := context.Background()

	fresh := seedWord(t, repo, "vogel", "bird")
	tried := seedWord(t, repo, "fisch", "fish")
	learned := seedWord(t, repo, "pferd", "horse")

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.RecordOutcome(ctx, tried, false))
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.RecordOutcome(ctx, learned, true))
	}
	require.Equal(t, words.StatusLearned, learned.Status, "status after 5 correct")

	list, err := repo.ListForPractice(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, fresh.ID, list[0].ID, "unseen word comes first")
	assert.Equal(t, learned.ID, list[2].ID, "learned word comes last")
}

func TestEventLogSequence(t *testing.T) {
	s := openTestStore(t)
	events, err := s.Events()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: ActionSessionStart, PracticeType: "unified", WordsCount: 2,
	}))
	require.NoError(t, events.AppendResultEvent(ctx, ResultEventData{
		SessionID: "s1", WordID: 1, ExerciseType: "choose-right-word",
		UserInput: "dog", CorrectWord: "dog", Correct: true, Points: 10,
		ResponseTime: 1200 * time.Millisecond,
	}))
	require.NoError(t, events.AppendResultEvent(ctx, ResultEventData{
		SessionID: "s1", WordID: 2, ExerciseType: "make-up-word",
		CorrectWord: "cat", Skipped: true, Points: -2,
	}))
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: ActionSessionComplete, WordsCount: 2,
		CorrectAnswers: 1, IncorrectAnswers: 1, Score: 8, Accuracy: 50, DurationSecs: 42,
	}))

	var seqs []int64
	err = s.DB().Select(&seqs, `
		SELECT sequence FROM (
			SELECT sequence FROM session_events
			UNION ALL
			SELECT sequence FROM result_events
		) ORDER BY sequence`)
	require.NoError(t, err)
	require.Len(t, seqs, 4)
	for i, seq := range seqs {
		assert.Equal(t, int64(i+1), seq, "events interleave on one global sequence")
	}

	st, err := events.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.SessionsCompleted)
	assert.Equal(t, 2, st.TotalAnswers)
	assert.Equal(t, 1, st.CorrectAnswers)
	assert.Equal(t, 8, st.TotalScore)
	assert.Equal(t, 50, st.Accuracy())
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.Words()
	ctx := context.Background()

	w := seedWord(t, repo, "haus", "house")
	require.NoError(t, repo.RecordOutcome(ctx, w, true))
	events, err := s.Events()
	require.NoError(t, err)
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionSessionStart}))

	require.NoError(t, s.Reset())

	got, err := repo.GetByText(ctx, "haus")
	require.NoError(t, err)
	assert.Zero(t, got.Attempts, "word progress survived reset")
	assert.Equal(t, words.StatusNotStarted, got.Status)

	st, err := events.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.TotalAnswers, "event log survived reset")
	assert.Zero(t, st.SessionsCompleted)

	// Sequence restarts after a reset.
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: ActionSessionStart}))
	var seq int64
	require.NoError(t, s.DB().Get(&seq, `SELECT sequence FROM session_events`))
	assert.Equal(t, int64(1), seq)
}
