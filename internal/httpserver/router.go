package httpserver

import (
	"log/slog"
	"net/http"

	"interviewq/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

type RouterDeps struct {
	Logger           *slog.Logger
	QuestionsHandler http.Handler
	// CORSOrigins enables CORS for the listed origins when non-empty.
	CORSOrigins []string
}

// NewRouter builds the chi router with the shared middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: deps.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
		}).Handler)
	}

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Post("/generate-questions", deps.QuestionsHandler.ServeHTTP)

	return r
}
