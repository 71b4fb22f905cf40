package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// Session event actions.
const (
	ActionSessionStart    = "session-start"
	ActionSessionComplete = "session-complete"
	ActionSessionAbort    = "session-abort"
)

// SessionEventData is one session lifecycle record.
type SessionEventData struct {
	SessionID        string
	Action           string
	PracticeType     string
	WordsCount       int
	CorrectAnswers   int
	IncorrectAnswers int
	Score            int
	Accuracy         int
	DurationSecs     int
}

// ResultEventData is one evaluated attempt record.
type ResultEventData struct {
	SessionID    string
	WordID       int64
	ExerciseType string
	UserInput    string
	CorrectWord  string
	Correct      bool
	Skipped      bool
	Accuracy     int
	Points       int
	ResponseTime time.Duration
}

// EventRepo appends to and reads the practice event log. The log is
// append-only; rows are never updated or reordered.
type EventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

// AppendSessionEvent writes one session lifecycle row.
func (r *EventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
		 (sequence, session_id, action, practice_type, words_count,
		  correct_answers, incorrect_answers, score, accuracy, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.Action, data.PracticeType, data.WordsCount,
		data.CorrectAnswers, data.IncorrectAnswers, data.Score, data.Accuracy,
		data.DurationSecs)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// AppendResultEvent writes one evaluated attempt row.
func (r *EventRepo) AppendResultEvent(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO result_events
		 (sequence, session_id, word_id, exercise_type, user_input,
		  correct_word, correct, skipped, accuracy, points, response_time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.WordID, data.ExerciseType, data.UserInput,
		data.CorrectWord, data.Correct, data.Skipped, data.Accuracy, data.Points,
		data.ResponseTime.Milliseconds())
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

// Stats is the aggregate view over the whole event log.
type Stats struct {
	SessionsCompleted int `db:"sessions_completed"`
	TotalAnswers      int `db:"total_answers"`
	CorrectAnswers    int `db:"correct_answers"`
	TotalScore        int `db:"total_score"`
}

// Accuracy returns the lifetime accuracy percentage. Zero answers means
// zero accuracy.
func (s Stats) Accuracy() int {
	if s.TotalAnswers == 0 {
		return 0
	}
	return s.CorrectAnswers * 100 / s.TotalAnswers
}

// Stats computes lifetime aggregates from the event log.
func (r *EventRepo) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := r.db.GetContext(ctx, &st.SessionsCompleted,
		`SELECT COUNT(*) FROM session_events WHERE action = ?`, ActionSessionComplete)
	if err != nil {
		return Stats{}, fmt.Errorf("count sessions: %w", err)
	}

	row := struct {
		Total   int `db:"total"`
		Correct int `db:"correct"`
		Score   int `db:"score"`
	}{}
	err = r.db.GetContext(ctx, &row,
		`SELECT COUNT(*) AS total,
		        COALESCE(SUM(correct), 0) AS correct,
		        COALESCE(SUM(points), 0) AS score
		 FROM result_events`)
	if err != nil {
		return Stats{}, fmt.Errorf("aggregate results: %w", err)
	}
	st.TotalAnswers = row.Total
	st.CorrectAnswers = row.Correct
	st.TotalScore = row.Score
	return st, nil
}

// sequenceCounter assigns a single increasing sequence number to every
// event regardless of type. Per-table auto-increment IDs can't establish
// cross-type ordering; the shared counter can (did the result land before
// or after the session-complete row?). The mutex serializes within the
// process; RETURNING makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sqlx.DB
}

// newSequenceCounter creates a counter and re-seeds the tracking row in
// case an old database lost it.
func newSequenceCounter(db *sqlx.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var n int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return n, nil
}
