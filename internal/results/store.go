// Package results persists trajectory results. SQLite is the primary store;
// CSV export/import exists for the analysis notebooks that consume these
// datasets. Writes are idempotent per trajectory id, so re-running a
// manifest overwrites rather than duplicates.
package results

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"probelab/internal/corpus"
	"probelab/internal/label"
	"probelab/internal/trajectory"
)

// Store is a SQLite-backed trajectory result table.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS trajectories (
	trajectory_id   TEXT PRIMARY KEY,
	split           TEXT NOT NULL,
	question_idx    INTEGER NOT NULL,
	feedback_idx    INTEGER NOT NULL,
	question        TEXT NOT NULL,
	correct_answer  TEXT NOT NULL,
	category        TEXT NOT NULL,
	first_response  TEXT NOT NULL,
	first_answer    TEXT NOT NULL,
	first_correct   INTEGER NOT NULL,
	feedback_type   TEXT NOT NULL,
	feedback        TEXT NOT NULL,
	second_response TEXT NOT NULL,
	second_answer   TEXT NOT NULL,
	second_correct  INTEGER NOT NULL,
	answer_changed  INTEGER NOT NULL,
	label           TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_trajectories_split ON trajectories(split);
CREATE INDEX IF NOT EXISTS idx_trajectories_label ON trajectories(label);
`

// Open initializes the SQLite database at the given path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put upserts one result, keyed by trajectory id.
func (s *Store) Put(r trajectory.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO trajectories (
			trajectory_id, split, question_idx, feedback_idx,
			question, correct_answer, category,
			first_response, first_answer, first_correct,
			feedback_type, feedback,
			second_response, second_answer, second_correct,
			answer_changed, label
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.TrajectoryID, r.Split, r.QuestionIdx, r.FeedbackIdx,
		r.Question, r.CorrectAnswer, string(r.Category),
		r.FirstResponse, r.FirstAnswer, boolToInt(r.FirstCorrect),
		string(r.FeedbackType), r.Feedback,
		r.SecondResponse, r.SecondAnswer, boolToInt(r.SecondCorrect),
		boolToInt(r.AnswerChanged), string(r.Label),
	)
	if err != nil {
		return fmt.Errorf("failed to store trajectory %s: %w", r.TrajectoryID, err)
	}
	return nil
}

// PutAll upserts a batch of results.
func (s *Store) PutAll(results []trajectory.Result) error {
	for _, r := range results {
		if err := s.Put(r); err != nil {
			return err
		}
	}
	return nil
}

// List returns all stored results ordered by trajectory id.
func (s *Store) List() ([]trajectory.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT trajectory_id, split, question_idx, feedback_idx,
			question, correct_answer, category,
			first_response, first_answer, first_correct,
			feedback_type, feedback,
			second_response, second_answer, second_correct,
			answer_changed, label
		FROM trajectories ORDER BY trajectory_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trajectories: %w", err)
	}
	defer rows.Close()

	var out []trajectory.Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Get returns one result by trajectory id.
func (s *Store) Get(trajectoryID string) (trajectory.Result, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT trajectory_id, split, question_idx, feedback_idx,
			question, correct_answer, category,
			first_response, first_answer, first_correct,
			feedback_type, feedback,
			second_response, second_answer, second_correct,
			answer_changed, label
		FROM trajectories WHERE trajectory_id = ?`, trajectoryID)
	if err != nil {
		return trajectory.Result{}, false, fmt.Errorf("failed to query trajectory: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return trajectory.Result{}, false, rows.Err()
	}
	r, err := scanResult(rows)
	if err != nil {
		return trajectory.Result{}, false, err
	}
	return r, true, nil
}

// Count returns the number of stored trajectories.
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM trajectories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count trajectories: %w", err)
	}
	return n, nil
}

func scanResult(rows *sql.Rows) (trajectory.Result, error) {
	var r trajectory.Result
	var category, feedbackType, labelTag string
	var firstCorrect, secondCorrect, answerChanged int
	err := rows.Scan(
		&r.TrajectoryID, &r.Split, &r.QuestionIdx, &r.FeedbackIdx,
		&r.Question, &r.CorrectAnswer, &category,
		&r.FirstResponse, &r.FirstAnswer, &firstCorrect,
		&feedbackType, &r.Feedback,
		&r.SecondResponse, &r.SecondAnswer, &secondCorrect,
		&answerChanged, &labelTag,
	)
	if err != nil {
		return trajectory.Result{}, fmt.Errorf("failed to scan trajectory: %w", err)
	}
	r.Category = corpus.Category(category)
	r.FeedbackType = corpus.Polarity(feedbackType)
	r.FirstCorrect = firstCorrect != 0
	r.SecondCorrect = secondCorrect != 0
	r.AnswerChanged = answerChanged != 0
	r.Label = label.FeedbackClass(labelTag)
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
