package server

import (
	"errors"
	"net/http"

	"github.com/at-ishikawa/polypal/internal/conversation"
	"github.com/at-ishikawa/polypal/internal/dictionary"
	"github.com/at-ishikawa/polypal/internal/scenario"
)

type conversationResponse struct {
	Mode       conversation.Mode    `json:"mode"`
	ScenarioID string               `json:"scenarioId,omitempty"`
	Context    string               `json:"context"`
	PendingID  string               `json:"pendingId,omitempty"`
	Entries    []conversation.Entry `json:"entries"`
}

type submitMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type submitMessageResponse struct {
	Entries []conversation.Entry `json:"entries"`
}

type switchModeRequest struct {
	Mode       string `json:"mode" validate:"required,oneof=general scenarios teacher"`
	ScenarioID string `json:"scenarioId"`
}

func (h *Handler) conversationState() conversationResponse {
	pendingID, _ := h.Conversation.Pending()
	return conversationResponse{
		Mode:       h.Conversation.Mode(),
		ScenarioID: h.Conversation.ScenarioID(),
		Context:    h.Conversation.Context(),
		PendingID:  pendingID,
		Entries:    h.Conversation.Entries(),
	}
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.conversationState())
}

// SubmitMessage runs one turn and returns the tutor's entries. The user entry
// is visible through ListEntries.
func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req submitMessageRequest
	if !h.decode(w, r, &req) {
		return
	}

	entries, err := h.Conversation.Submit(r.Context(), req.Text)
	switch {
	case errors.Is(err, conversation.ErrTurnInProgress):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, conversation.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitMessageResponse{Entries: entries})
}

func (h *Handler) ClearEntries(w http.ResponseWriter, r *http.Request) {
	if err := h.Conversation.Clear(); err != nil {
		if errors.Is(err, conversation.ErrTurnInProgress) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SwitchMode changes the mode. Switching to scenarios with a scenario id
// starts that scenario and appends its greeting.
func (h *Handler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	var req switchModeRequest
	if !h.decode(w, r, &req) {
		return
	}
	mode, err := conversation.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if mode == conversation.ModeScenarios && req.ScenarioID != "" {
		_, err = h.Conversation.StartScenario(req.ScenarioID)
	} else {
		err = h.Conversation.SwitchMode(mode, req.ScenarioID)
	}
	switch {
	case errors.Is(err, conversation.ErrTurnInProgress):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, scenario.ErrUnknownScenario):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.conversationState())
}

func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	translation, err := h.Translator.Translate(r.Context(), r.PathValue("word"))
	if err != nil {
		if errors.Is(err, dictionary.ErrNotTranslatable) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, translation)
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": h.Scenarios.All()})
}
