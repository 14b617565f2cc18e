package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]trivia.Category, error)
	GetCategoryType(ctx context.Context, id int) (string, error)
}

// CategoryRepository exposes the read-only category reference data.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository wraps a category store.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// ListAll returns every category ordered by ascending id.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]trivia.Category, error) {
	return r.store.ListCategories(ctx)
}

// ResolveLabel returns the display string for a category id, or
// ErrNotFound when no category has that id. Unknown ids are an
// ordinary outcome here; callers decide how to surface absence.
func (r *CategoryRepository) ResolveLabel(ctx context.Context, id int) (string, error) {
	return r.store.GetCategoryType(ctx, id)
}
