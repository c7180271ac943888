// Package server provides the JSON HTTP API of the tutor.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	"github.com/at-ishikawa/polypal/internal/conversation"
	"github.com/at-ishikawa/polypal/internal/dictionary"
	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/export"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/quiz"
	"github.com/at-ishikawa/polypal/internal/scenario"
	"github.com/at-ishikawa/polypal/internal/settings"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_server.go -package=mock_server

// FlashcardLookup drafts a card for a word
type FlashcardLookup interface {
	IsConfigured() bool
	CreateFlashcard(ctx context.Context, word string) (dictionary.FlashcardDraft, error)
}

// Dependencies are the components served by the Handler. Lookup is optional.
type Dependencies struct {
	Conversation *conversation.Conversation
	Translator   *dictionary.Translator
	Lookup       FlashcardLookup
	Flashcards   *flashcard.Store
	ErrorLog     *errorlog.Store
	Settings     *settings.Store
	Scenarios    *scenario.Catalog
	Quiz         *quiz.Generator
	Exporter     *export.Exporter
	Logger       *slog.Logger
}

type Handler struct {
	Dependencies

	validate *validator.Validate
	messages ut.Translator
}

func NewHandler(deps Dependencies) (*Handler, error) {
	if deps.Conversation == nil || deps.Translator == nil || deps.Flashcards == nil ||
		deps.ErrorLog == nil || deps.Settings == nil || deps.Scenarios == nil ||
		deps.Quiz == nil || deps.Exporter == nil {
		return nil, errors.New("server: missing dependency")
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	validate, messages, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}
	return &Handler{
		Dependencies: deps,
		validate:     validate,
		messages:     messages,
	}, nil
}

func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)

	mux.HandleFunc("GET /api/conversation/entries", h.ListEntries)
	mux.HandleFunc("POST /api/conversation/entries", h.SubmitMessage)
	mux.HandleFunc("DELETE /api/conversation/entries", h.ClearEntries)
	mux.HandleFunc("PUT /api/conversation/mode", h.SwitchMode)

	mux.HandleFunc("GET /api/translations/{word}", h.Translate)

	mux.HandleFunc("GET /api/flashcards", h.ListFlashcards)
	mux.HandleFunc("POST /api/flashcards", h.CreateFlashcard)
	mux.HandleFunc("GET /api/flashcards/export", h.ExportFlashcards)
	mux.HandleFunc("DELETE /api/flashcards/{id}", h.DeleteFlashcard)
	mux.HandleFunc("GET /api/flashcards/{id}/quiz", h.QuizRound)
	mux.HandleFunc("POST /api/flashcards/{id}/quiz", h.AnswerQuiz)

	mux.HandleFunc("GET /api/errors", h.ListErrors)
	mux.HandleFunc("POST /api/errors", h.CreateError)
	mux.HandleFunc("DELETE /api/errors", h.ClearErrors)
	mux.HandleFunc("GET /api/errors/export", h.ExportErrors)
	mux.HandleFunc("DELETE /api/errors/{id}", h.DeleteError)

	mux.HandleFunc("GET /api/settings", h.GetSettings)
	mux.HandleFunc("PATCH /api/settings", h.UpdateSettings)
	mux.HandleFunc("DELETE /api/settings", h.ResetSettings)

	mux.HandleFunc("GET /api/scenarios", h.ListScenarios)
	return mux
}

// HTTPHandler wraps the routes with request logging and CORS
func (h *Handler) HTTPHandler(allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:         3600,
	}).Handler(h.logRequests(h.Routes()))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		h.Logger.Debug("Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start))
	})
}
