package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/priyansh/career-compass/internal/types"
)

// SampleQuestions deals n random questions from a category.
func (db *DB) SampleQuestions(ctx context.Context, category string, n int) ([]types.Question, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, category, question, options, answer
		 FROM aptitude_questions WHERE category = $1
		 ORDER BY random() LIMIT $2`,
		category, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sample questions: %w", err)
	}
	defer rows.Close()

	var questions []types.Question
	for rows.Next() {
		var q types.Question
		var optionsJSON []byte
		if err := rows.Scan(&q.ID, &q.Category, &q.Question, &optionsJSON, &q.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		if err := json.Unmarshal(optionsJSON, &q.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for %s: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CategoryCounts returns the number of seeded questions per category.
func (db *DB) CategoryCounts(ctx context.Context) (map[string]int, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM aptitude_questions GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

// InsertQuestions loads a question bank, assigning IDs where absent.
// Returns the number of rows inserted.
func (db *DB) InsertQuestions(ctx context.Context, questions []types.Question) (int, error) {
	inserted := 0
	for _, q := range questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return inserted, fmt.Errorf("failed to marshal options: %w", err)
		}
		_, err = db.pool.Exec(ctx,
			`INSERT INTO aptitude_questions (id, category, question, options, answer)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			q.ID, q.Category, q.Question, optionsJSON, q.Answer,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert question: %w", err)
		}
		inserted++
	}
	return inserted, nil
}

// GetQuizSession retrieves the saved snapshot for (uid, category), or
// nil when no quiz is in progress.
func (db *DB) GetQuizSession(ctx context.Context, uid, category string) (*types.QuizSession, error) {
	var snapshot []byte
	err := db.pool.QueryRow(ctx,
		`SELECT snapshot FROM aptitude_sessions WHERE uid = $1 AND category = $2`,
		uid, category,
	).Scan(&snapshot)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz session: %w", err)
	}

	var session types.QuizSession
	if err := json.Unmarshal(snapshot, &session); err != nil {
		return nil, fmt.Errorf("failed to decode quiz session: %w", err)
	}
	return &session, nil
}

// PutQuizSession upserts the full session snapshot.
func (db *DB) PutQuizSession(ctx context.Context, uid string, session *types.QuizSession) error {
	snapshot, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz session: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO aptitude_sessions (uid, category, snapshot)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (uid, category) DO UPDATE SET snapshot = $3, updated_at = NOW()`,
		uid, session.Category, snapshot,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz session: %w", err)
	}
	return nil
}

// DeleteQuizSession removes the snapshot for (uid, category).
func (db *DB) DeleteQuizSession(ctx context.Context, uid, category string) error {
	if _, err := db.pool.Exec(ctx,
		`DELETE FROM aptitude_sessions WHERE uid = $1 AND category = $2`,
		uid, category,
	); err != nil {
		return fmt.Errorf("failed to delete quiz session: %w", err)
	}
	return nil
}

// GetHistory retrieves the per-category quiz history, newest first.
func (db *DB) GetHistory(ctx context.Context, uid, category string) ([]types.HistoryEntry, error) {
	var entriesJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT entries FROM aptitude_history WHERE uid = $1 AND category = $2`,
		uid, category,
	).Scan(&entriesJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	var entries []types.HistoryEntry
	if err := json.Unmarshal(entriesJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return entries, nil
}

// PutHistory overwrites the per-category history list.
func (db *DB) PutHistory(ctx context.Context, uid, category string, entries []types.HistoryEntry) error {
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO aptitude_history (uid, category, entries)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (uid, category) DO UPDATE SET entries = $3, updated_at = NOW()`,
		uid, category, entriesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
