package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trivia.Question), args.Error(1)
}

func (m *mockQuestionStore) InsertQuestion(ctx context.Context, q trivia.Question) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *mockQuestionStore) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func sampleQuestions() []trivia.Question {
	return []trivia.Question{
		{ID: 1, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{ID: 2, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{ID: 5, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 9, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
	}
}

func TestQuestionRepository_InsertDelegates(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	q := trivia.Question{Question: "utq1", Answer: "uta1", Category: 1, Difficulty: 1}
	store.On("InsertQuestion", mock.Anything, q).Return(24, nil)

	id, err := repo.Insert(context.Background(), q)
	assert.NoError(t, err)
	assert.Equal(t, 24, id)
	store.AssertExpectations(t)
}

func TestQuestionRepository_DeleteReportsOutcome(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("DeleteQuestion", mock.Anything, 5).Return(true, nil)
	store.On("DeleteQuestion", mock.Anything, 99).Return(false, nil)

	deleted, err := repo.Delete(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.False(t, deleted)
	store.AssertExpectations(t)
}

func TestQuestionRepository_FindByID(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	store.On("ListQuestions", mock.Anything).Return(sampleQuestions(), nil)

	q, err := repo.FindByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Lake Victoria", q.Answer)

	_, err = repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}

func TestQuestionRepository_FilterByCategory(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	store.On("ListQuestions", mock.Anything).Return(sampleQuestions(), nil)

	matches, err := repo.FilterByCategory(context.Background(), 4)
	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = repo.FilterByCategory(context.Background(), 7)
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQuestionRepository_FilterBySubstring(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	store.On("ListQuestions", mock.Anything).Return(sampleQuestions(), nil)

	matches, err := repo.FilterBySubstring(context.Background(), "LARGEST lake")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, 5, matches[0].ID)

	// Answers are never searched.
	matches, err = repo.FilterBySubstring(context.Background(), "Muhammad")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQuestionRepository_ListAllPropagatesStoreFailure(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)
	storeErr := errors.New("connection refused")
	store.On("ListQuestions", mock.Anything).Return([]trivia.Question(nil), storeErr)

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
