package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]trivia.Category), args.Error(1)
}

func (m *mockCategoryStore) GetCategoryType(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func TestCategoryRepository_ListAll(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	expect := []trivia.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	store.On("ListCategories", mock.Anything).Return(expect, nil)

	categories, err := repo.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, categories)
	store.AssertExpectations(t)
}

func TestCategoryRepository_ResolveLabel(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	store.On("GetCategoryType", mock.Anything, 1).Return("Science", nil)
	store.On("GetCategoryType", mock.Anything, 42).Return("", trivia.ErrNotFound)

	label, err := repo.ResolveLabel(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Science", label)

	_, err = repo.ResolveLabel(context.Background(), 42)
	assert.ErrorIs(t, err, trivia.ErrNotFound)
}
