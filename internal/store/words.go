package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/abhisek/wordiz/internal/words"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// WordRepo provides dictionary access.
type WordRepo struct {
	db *sqlx.DB
}

// wordColumns is the insert/update column set, minus the generated ones.
const wordColumns = `text, definition, translation, phonetic, part_of_speech, audio_url, image_url, attempts, correct_attempts, status`

// List returns the full dictionary ordered alphabetically.
func (r *WordRepo) List(ctx context.Context) ([]words.Word, error) {
	var out []words.Word
	err := r.db.SelectContext(ctx, &out, `SELECT * FROM words ORDER BY text`)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return out, nil
}

// Count returns the dictionary size.
func (r *WordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM words`); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// GetByText returns the word with the given text, or ErrNotFound.
func (r *WordRepo) GetByText(ctx context.Context, text string) (*words.Word, error) {
	var w words.Word
	err := r.db.GetContext(ctx, &w, `SELECT * FROM words WHERE text = ?`, text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get word %q: %w", text, err)
	}
	return &w, nil
}

// Insert adds a new word and fills in its generated ID. Duplicate texts are
// rejected by the unique constraint.
func (r *WordRepo) Insert(ctx context.Context, w *words.Word) error {
	if w.Status == "" {
		w.Status = words.StatusNotStarted
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO words (`+wordColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Text, w.Definition, w.Translation, w.Phonetic, w.PartOfSpeech,
		w.AudioURL, w.ImageURL, w.Attempts, w.CorrectAttempts, w.Status)
	if err != nil {
		return fmt.Errorf("insert word %q: %w", w.Text, err)
	}
	w.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert word %q: %w", w.Text, err)
	}
	return nil
}

// Upsert inserts the word or refreshes the descriptive fields of an
// existing one. Learning counters are never overwritten by an import.
func (r *WordRepo) Upsert(ctx context.Context, w *words.Word) error {
	existing, err := r.GetByText(ctx, w.Text)
	if errors.Is(err, ErrNotFound) {
		return r.Insert(ctx, w)
	}
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE words
		 SET definition = ?, translation = ?, phonetic = ?, part_of_speech = ?,
		     audio_url = ?, image_url = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		w.Definition, w.Translation, w.Phonetic, w.PartOfSpeech,
		w.AudioURL, w.ImageURL, existing.ID)
	if err != nil {
		return fmt.Errorf("update word %q: %w", w.Text, err)
	}
	w.ID = existing.ID
	return nil
}

// ListForPractice returns up to limit words, least-learned first: unseen
// words, then by attempt count, learned words last.
func (r *WordRepo) ListForPractice(ctx context.Context, limit int) ([]words.Word, error) {
	var out []words.Word
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM words
		 ORDER BY CASE status WHEN 'learned' THEN 1 ELSE 0 END,
		          attempts, correct_attempts
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list practice words: %w", err)
	}
	return out, nil
}

// RecordOutcome folds one evaluated attempt into the word's counters and
// learning status.
func (r *WordRepo) RecordOutcome(ctx context.Context, w *words.Word, correct bool) error {
	// NextStatus folds the pending outcome in itself, so derive the status
	// before touching the counters.
	w.Status = words.NextStatus(w, correct)
	w.Attempts++
	if correct {
		w.CorrectAttempts++
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE words
		 SET attempts = ?, correct_attempts = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		w.Attempts, w.CorrectAttempts, w.Status, w.ID)
	if err != nil {
		return fmt.Errorf("record outcome for word %d: %w", w.ID, err)
	}
	return nil
}

// StatusCounts returns the number of words per learning status.
func (r *WordRepo) StatusCounts(ctx context.Context) (map[words.LearningStatus]int, error) {
	rows := []struct {
		Status words.LearningStatus `db:"status"`
		N      int                  `db:"n"`
	}{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS n FROM words GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	out := make(map[words.LearningStatus]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
