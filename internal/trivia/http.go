package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trivia_requests_total",
	Help: "Trivia API requests by operation and outcome.",
}, []string{"operation", "outcome"})

// quizSessionStore tracks asked-question history server-side so the
// Play tab can resume a quiz across requests. Optional; the draw
// operation works purely from client-supplied history without it.
type quizSessionStore interface {
	History(ctx context.Context, token string) ([]int, error)
	Append(ctx context.Context, token string, questionID int) error
}

// HTTPHandlers provides the REST endpoints for the trivia service.
type HTTPHandlers struct {
	service  *Service
	sessions quizSessionStore
	logger   zerolog.Logger
}

// NewHTTPHandlers creates the trivia HTTP handlers. sessions may be
// nil, which disables server-side quiz history.
func NewHTTPHandlers(service *Service, sessions quizSessionStore, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service:  service,
		sessions: sessions,
		logger:   logger.With().Str("component", "trivia_http").Logger(),
	}
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.fail(w, "list_categories", err)
		return
	}
	h.respondJSON(w, "list_categories", http.StatusOK, map[string]any{"categories": categories})
}

// ListQuestions handles GET /questions with a page query parameter.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	result, err := h.service.PageQuestions(r.Context(), page)
	if err != nil {
		h.fail(w, "list_questions", err)
		return
	}
	h.respondJSON(w, "list_questions", http.StatusOK, result)
}

// CreateQuestion handles POST /questions.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestsTotal.WithLabelValues("create_question", "bad_request").Inc()
		httperrors.RespondBadRequest(w)
		return
	}

	id, err := h.service.CreateQuestion(r.Context(), CreateQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.intPtr(),
		Difficulty: req.Difficulty.intPtr(),
	})
	if err != nil {
		h.fail(w, "create_question", err)
		return
	}
	h.respondJSON(w, "create_question", http.StatusOK, map[string]any{
		"success":             true,
		"created_question_id": id,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		// A non-numeric id cannot name any stored question.
		requestsTotal.WithLabelValues("delete_question", "not_found").Inc()
		httperrors.RespondNotFound(w)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.fail(w, "delete_question", err)
		return
	}
	h.respondJSON(w, "delete_question", http.StatusOK, map[string]any{"success": true})
}

// SearchQuestions handles POST /searchQuestions. A missing body or
// missing searchTerm field is the caller's error, before the engine is
// ever consulted.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SearchTerm == nil {
		requestsTotal.WithLabelValues("search_questions", "bad_request").Inc()
		httperrors.RespondBadRequest(w)
		return
	}

	result, err := h.service.SearchQuestions(r.Context(), *req.SearchTerm)
	if err != nil {
		h.fail(w, "search_questions", err)
		return
	}
	h.respondJSON(w, "search_questions", http.StatusOK, result)
}

// QuestionsByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		requestsTotal.WithLabelValues("questions_by_category", "not_found").Inc()
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.service.QuestionsByCategory(r.Context(), id)
	if err != nil {
		h.fail(w, "questions_by_category", err)
		return
	}
	h.respondJSON(w, "questions_by_category", http.StatusOK, result)
}

// PlayQuiz handles POST /quizzes: one random unseen question per call.
// previous_questions is required even when empty; quiz_category and
// quiz_session are optional.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PreviousQuestions == nil {
		requestsTotal.WithLabelValues("play_quiz", "bad_request").Inc()
		httperrors.RespondBadRequest(w)
		return
	}

	previous := *req.PreviousQuestions
	if h.sessions != nil && req.QuizSession != "" {
		history, err := h.sessions.History(r.Context(), req.QuizSession)
		if err != nil {
			h.logger.Warn().Err(err).Msg("quiz session read failed, using client history only")
		} else {
			previous = mergeHistory(previous, history)
		}
	}

	params := DrawParams{PreviousIDs: previous}
	if req.QuizCategory != nil && int(req.QuizCategory.ID) != 0 {
		id := int(req.QuizCategory.ID)
		params.Category = &id
	}

	question, err := h.service.DrawQuestion(r.Context(), params)
	if err != nil {
		h.fail(w, "play_quiz", err)
		return
	}

	if question != nil && h.sessions != nil && req.QuizSession != "" {
		if err := h.sessions.Append(r.Context(), req.QuizSession, question.ID); err != nil {
			h.logger.Warn().Err(err).Msg("quiz session append failed")
		}
	}

	// question is nil once the candidate set is exhausted; the null in
	// the payload is the end-of-quiz signal, not an error.
	h.respondJSON(w, "play_quiz", http.StatusOK, map[string]any{"question": question})
}

// fail classifies a service error into the wire contract.
func (h *HTTPHandlers) fail(w http.ResponseWriter, operation string, err error) {
	var validationErr *ValidationError
	var persistenceErr *PersistenceError

	switch {
	case errors.Is(err, ErrNotFound):
		requestsTotal.WithLabelValues(operation, "not_found").Inc()
		httperrors.RespondNotFound(w)
	case errors.As(err, &validationErr):
		requestsTotal.WithLabelValues(operation, "validation_failed").Inc()
		httperrors.RespondUnprocessable(w)
	case errors.As(err, &persistenceErr):
		// Same caller-visible outcome as a validation failure, but a
		// different failure origin; the service already logged it.
		requestsTotal.WithLabelValues(operation, "persistence_failed").Inc()
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Str("operation", operation).Msg("request failed")
		requestsTotal.WithLabelValues(operation, "internal_error").Inc()
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, operation string, status int, data any) {
	requestsTotal.WithLabelValues(operation, "ok").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Str("operation", operation).Msg("response encode failed")
	}
}

func mergeHistory(client, server []int) []int {
	seen := make(map[int]struct{}, len(client)+len(server))
	merged := make([]int, 0, len(client)+len(server))
	for _, id := range client {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	for _, id := range server {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			merged = append(merged, id)
		}
	}
	return merged
}

type createQuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *flexInt `json:"category"`
	Difficulty *flexInt `json:"difficulty"`
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type quizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions"`
	QuizCategory      *quizCategory `json:"quiz_category"`
	QuizSession       string        `json:"quiz_session"`
}

type quizCategory struct {
	ID   flexInt `json:"id"`
	Type string  `json:"type"`
}

// flexInt accepts both 1 and "1"; the add-question form submits
// category and difficulty as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

func (f *flexInt) intPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
