package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Store is the pgx-backed implementation of the question and category
// stores. Every read re-queries Postgres; the service keeps no caches,
// so listings always reflect current state.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps a connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ListQuestions returns every question ordered by ascending id.
func (s *Store) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

// InsertQuestion persists a new question and returns the serial id the
// database assigned. Serial ids are monotonic and never reused.
func (s *Store) InsertQuestion(ctx context.Context, q trivia.Question) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Question, q.Answer, q.Category, q.Difficulty).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// DeleteQuestion removes a question by id and reports whether a row
// was deleted.
func (s *Store) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListCategories returns every category ordered by ascending id.
func (s *Store) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetCategoryType returns the display string for a category id, or
// trivia.ErrNotFound when no such category exists.
func (s *Store) GetCategoryType(ctx context.Context, id int) (string, error) {
	var label string
	err := s.pool.QueryRow(ctx, `SELECT type FROM categories WHERE id = $1`, id).Scan(&label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", trivia.ErrNotFound
		}
		return "", fmt.Errorf("get category: %w", err)
	}
	return label, nil
}
