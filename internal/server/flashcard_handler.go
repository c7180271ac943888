package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/inference"
	"github.com/at-ishikawa/polypal/internal/quiz"
)

type createFlashcardRequest struct {
	Front   string `json:"front" validate:"required_without=Lookup,max=200"`
	Back    string `json:"back" validate:"required_without=Lookup,max=500"`
	Example string `json:"example" validate:"max=500"`
	// Lookup drafts the back of the card for Front with the remote service
	Lookup bool `json:"lookup"`
}

type createFlashcardResponse struct {
	Card    flashcard.Card `json:"card"`
	Created bool           `json:"created"`
	Hint    string         `json:"hint,omitempty"`
}

type answerQuizRequest struct {
	Choice string `json:"choice" validate:"required"`
}

type answerQuizResponse struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	var cards []flashcard.Card
	switch deck := flashcard.Deck(r.URL.Query().Get("deck")); deck {
	case "":
		cards = h.Flashcards.All()
	case flashcard.DeckBuiltIn, flashcard.DeckPersonal:
		cards = h.Flashcards.Cards(deck)
	default:
		writeError(w, http.StatusBadRequest, "deck must be one of [built-in personal]")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

// CreateFlashcard adds a personal card. With lookup set, the card is drafted
// from front alone and fallback drafts are rejected instead of stored.
func (h *Handler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var req createFlashcardRequest
	if !h.decode(w, r, &req) {
		return
	}

	var hint string
	if req.Lookup {
		if req.Front == "" {
			writeError(w, http.StatusBadRequest, "invalid request", "front is a required field")
			return
		}
		if h.Lookup == nil || !h.Lookup.IsConfigured() {
			writeError(w, http.StatusServiceUnavailable, inference.ErrNotConfigured.Error())
			return
		}
		draft, err := h.Lookup.CreateFlashcard(r.Context(), req.Front)
		if err != nil {
			h.internalError(w, r, err)
			return
		}
		if draft.Fallback {
			writeError(w, http.StatusBadGateway, draft.Back)
			return
		}
		req.Front, req.Back, hint = draft.Front, draft.Back, draft.Hint
	}

	card, created, err := h.Flashcards.Add(req.Front, req.Back, req.Example)
	if err != nil {
		if errors.Is(err, flashcard.ErrInvalidCard) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		h.persist(r, "flashcards", h.Flashcards.Save)
		status = http.StatusCreated
	}
	writeJSON(w, status, createFlashcardResponse{Card: card, Created: created, Hint: hint})
}

func (h *Handler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if !h.Flashcards.Remove(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "flashcard not found")
		return
	}
	h.persist(r, "flashcards", h.Flashcards.Save)
	w.WriteHeader(http.StatusNoContent)
}

// QuizRound builds a multiple choice round for a card out of its own deck
func (h *Handler) QuizRound(w http.ResponseWriter, r *http.Request) {
	card, ok := h.Flashcards.Find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flashcard not found")
		return
	}
	round, err := h.Quiz.NewRound(card, h.Flashcards.Cards(card.Deck))
	if err != nil {
		if errors.Is(err, quiz.ErrNotEnoughCards) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

func (h *Handler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	card, ok := h.Flashcards.Find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "flashcard not found")
		return
	}
	var req answerQuizRequest
	if !h.decode(w, r, &req) {
		return
	}
	round := quiz.Round{CardID: card.ID, Prompt: card.Front, Answer: card.Back}
	writeJSON(w, http.StatusOK, answerQuizResponse{
		Correct: round.Check(req.Choice),
		Answer:  card.Back,
	})
}

func (h *Handler) ExportFlashcards(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.Exporter.WriteFlashcards(&buf,
		h.Flashcards.Cards(flashcard.DeckBuiltIn),
		h.Flashcards.Cards(flashcard.DeckPersonal))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeMarkdown(w, "flashcards.md", buf.Bytes())
}
