package trivia

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

type questionRepo interface {
	ListAll(ctx context.Context) ([]Question, error)
	Insert(ctx context.Context, q Question) (int, error)
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*Question, error)
	FilterByCategory(ctx context.Context, categoryID int) ([]Question, error)
	FilterBySubstring(ctx context.Context, term string) ([]Question, error)
}

type categoryRepo interface {
	ListAll(ctx context.Context) ([]Category, error)
	ResolveLabel(ctx context.Context, id int) (string, error)
}

// Service implements the question query, quiz selection and mutation
// operations over the injected repositories. It holds no state of its
// own; every call re-reads the current collection.
type Service struct {
	questions  questionRepo
	categories categoryRepo
	logger     zerolog.Logger
}

// NewService constructs the trivia service.
func NewService(questions questionRepo, categories categoryRepo, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "trivia").Logger(),
	}
}

// ListCategories returns the id -> display-name map of all categories.
func (s *Service) ListCategories(ctx context.Context) (map[int]string, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m, nil
}

// PageQuestions returns one window of the id-ordered question listing.
// A page below 1 falls back to page 1. A page whose offset is past the
// end of the collection is ErrNotFound, not an empty success; that
// holds for an empty collection too.
func (s *Service) PageQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	if page < 1 {
		page = 1
	}

	all, err := s.questions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(all) {
		return nil, ErrNotFound
	}
	end := start + QuestionsPerPage
	if end > len(all) {
		end = len(all)
	}
	window := all[start:end]

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.currentCategory(ctx, window)
	if err != nil {
		return nil, err
	}

	return &QuestionPage{
		Questions:       window,
		TotalQuestions:  len(window),
		Categories:      categories,
		CurrentCategory: current,
	}, nil
}

// SearchQuestions returns every question whose text contains term,
// case-insensitively. Zero matches is an ordinary empty result with an
// empty current-category label; term presence is the transport's
// responsibility.
func (s *Service) SearchQuestions(ctx context.Context, term string) (*QuestionSet, error) {
	matches, err := s.questions.FilterBySubstring(ctx, term)
	if err != nil {
		return nil, err
	}
	current, err := s.currentCategory(ctx, matches)
	if err != nil {
		return nil, err
	}
	return &QuestionSet{
		Questions:       matches,
		TotalQuestions:  len(matches),
		CurrentCategory: current,
	}, nil
}

// QuestionsByCategory returns every question in the given category in
// id order. Zero matches is ErrNotFound: the caller asked for a
// category that has no questions to offer.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) (*QuestionSet, error) {
	matches, err := s.questions.FilterByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	current, err := s.currentCategory(ctx, matches)
	if err != nil {
		return nil, err
	}
	return &QuestionSet{
		Questions:       matches,
		TotalQuestions:  len(matches),
		CurrentCategory: current,
	}, nil
}

// DrawQuestion picks one unseen question uniformly at random,
// optionally restricted to a category. A nil question with a nil error
// is the normal end-of-quiz sentinel: every candidate has already been
// asked.
func (s *Service) DrawQuestion(ctx context.Context, params DrawParams) (*Question, error) {
	var (
		pool []Question
		err  error
	)
	if params.Category != nil {
		pool, err = s.questions.FilterByCategory(ctx, *params.Category)
	} else {
		pool, err = s.questions.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(params.PreviousIDs))
	for _, id := range params.PreviousIDs {
		seen[id] = struct{}{}
	}

	candidates := pool[:0:0]
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	pick := candidates[rand.IntN(len(candidates))]
	return &pick, nil
}

// CreateQuestion validates and persists a new question, returning the
// assigned id. A missing field is a ValidationError and never touches
// the store; so is a category id that resolves to no known category. A
// failed insert is a PersistenceError.
func (s *Service) CreateQuestion(ctx context.Context, params CreateQuestionParams) (int, error) {
	if params.Question == nil {
		return 0, &ValidationError{Field: "question", Message: "question is required"}
	}
	if params.Answer == nil {
		return 0, &ValidationError{Field: "answer", Message: "answer is required"}
	}
	if params.Category == nil {
		return 0, &ValidationError{Field: "category", Message: "category is required"}
	}
	if params.Difficulty == nil {
		return 0, &ValidationError{Field: "difficulty", Message: "difficulty is required"}
	}

	if _, err := s.categories.ResolveLabel(ctx, *params.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, &ValidationError{Field: "category", Message: "unknown category"}
		}
		return 0, err
	}

	id, err := s.questions.Insert(ctx, Question{
		Question:   *params.Question,
		Answer:     *params.Answer,
		Category:   *params.Category,
		Difficulty: *params.Difficulty,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("question insert failed")
		return 0, &PersistenceError{Op: "insert question", Err: err}
	}
	return id, nil
}

// DeleteQuestion removes a question by id. An unknown id is
// ErrNotFound; the lookup happens before the delete so the two
// outcomes stay distinguishable.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questions.FindByID(ctx, id); err != nil {
		return err
	}
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("question_id", id).Msg("question delete failed")
		return &PersistenceError{Op: "delete question", Err: err}
	}
	if !deleted {
		// Lost a race with a concurrent delete.
		return ErrNotFound
	}
	return nil
}

// currentCategory resolves the label of the first question's category.
// An empty set, or a first question pointing at a category that no
// longer exists, yields the empty-string sentinel.
func (s *Service) currentCategory(ctx context.Context, questions []Question) (string, error) {
	if len(questions) == 0 {
		return "", nil
	}
	label, err := s.categories.ResolveLabel(ctx, questions[0].Category)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return label, err
}
