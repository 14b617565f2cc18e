package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia routes plus health and metrics
// endpoints. Method-qualified patterns make the mux answer 405 for a
// wrong verb on a known path.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handlers.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.ListQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /searchQuestions", handlers.SearchQuestions)
	mux.HandleFunc("POST /quizzes", handlers.PlayQuiz)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestIDMiddleware(logger, corsMiddleware(cfg.CORS, mux)),
	}
}

// requestIDMiddleware tags each request with an id, echoes it back in
// the response and stores a request-scoped logger in the context.
func requestIDMiddleware(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		reqLogger := logger.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))
	})
}

// corsMiddleware adds the CORS headers the browser frontend expects on
// every response and short-circuits preflight requests.
func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	origins := strings.Join(cfg.AllowedOrigins, ",")
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origins)
		h.Set("Access-Control-Allow-Methods", methods)
		h.Set("Access-Control-Allow-Headers", headers)

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
