package repository

import (
	"context"
	"strings"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]trivia.Question, error)
	InsertQuestion(ctx context.Context, q trivia.Question) (int, error)
	DeleteQuestion(ctx context.Context, id int) (bool, error)
}

// QuestionRepository exposes typed question operations over a narrow
// store. The derived reads (FindByID, FilterByCategory,
// FilterBySubstring) are computed over ListAll so every query sees the
// same current snapshot of the collection.
type QuestionRepository struct {
	store questionStore
}

// NewQuestionRepository wraps a question store.
func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// ListAll returns every question ordered by ascending id. This is the
// base set every other read filters or slices.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]trivia.Question, error) {
	return r.store.ListQuestions(ctx)
}

// Insert persists a new question and returns the assigned id. The id
// field of q is ignored; the store allocates it.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.Question) (int, error) {
	return r.store.InsertQuestion(ctx, q)
}

// Delete removes the question with the given id. The bool reports
// whether a row was actually removed, so callers can tell "already
// absent" apart from a store failure.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.store.DeleteQuestion(ctx, id)
}

// FindByID returns the question with the given id, or ErrNotFound.
func (r *QuestionRepository) FindByID(ctx context.Context, id int) (*trivia.Question, error) {
	questions, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], nil
		}
	}
	return nil, trivia.ErrNotFound
}

// FilterByCategory returns all questions in the given category, in id
// order. A zero-match result is returned as an empty slice; the caller
// decides whether that is an error.
func (r *QuestionRepository) FilterByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	questions, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]trivia.Question, 0)
	for _, q := range questions {
		if q.Category == categoryID {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

// FilterBySubstring returns all questions whose text contains term,
// case-insensitively. Only the question text is matched, never the
// answer.
func (r *QuestionRepository) FilterBySubstring(ctx context.Context, term string) ([]trivia.Question, error) {
	questions, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	matches := make([]trivia.Question, 0)
	for _, q := range questions {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}
