package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
)

type createErrorRequest struct {
	OriginalText  string `json:"originalText" validate:"required,max=2000"`
	CorrectedText string `json:"correctedText" validate:"required,max=2000"`
	Explanation   string `json:"explanation" validate:"max=2000"`
}

func (h *Handler) ListErrors(w http.ResponseWriter, r *http.Request) {
	entries := h.ErrorLog.List()
	if value := r.URL.Query().Get("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit: %q", value))
			return
		}
		entries = h.ErrorLog.Recent(limit)
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (h *Handler) CreateError(w http.ResponseWriter, r *http.Request) {
	var req createErrorRequest
	if !h.decode(w, r, &req) {
		return
	}
	entry, created, err := h.ErrorLog.Add(req.OriginalText, req.CorrectedText, req.Explanation)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		h.persist(r, "error log", h.ErrorLog.Save)
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{"entry": entry, "created": created})
}

func (h *Handler) DeleteError(w http.ResponseWriter, r *http.Request) {
	if !h.ErrorLog.Remove(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "error log entry not found")
		return
	}
	h.persist(r, "error log", h.ErrorLog.Save)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearErrors(w http.ResponseWriter, r *http.Request) {
	h.ErrorLog.Clear()
	h.persist(r, "error log", h.ErrorLog.Save)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ExportErrors(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Exporter.WriteErrorLog(&buf, h.ErrorLog.List()); err != nil {
		h.internalError(w, r, err)
		return
	}
	writeMarkdown(w, "error-log.md", buf.Bytes())
}

// persist writes a store through after a change. The change is kept in
// memory when saving fails.
func (h *Handler) persist(r *http.Request, name string, save func(context.Context) error) {
	if err := save(r.Context()); err != nil {
		h.Logger.Warn("Failed to persist changes",
			"store", name,
			"error", err)
	}
}

func writeMarkdown(w http.ResponseWriter, fileName string, body []byte) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
