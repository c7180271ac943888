package server

import (
	"net/http"
	"slices"

	"github.com/at-ishikawa/polypal/internal/settings"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Settings.Get())
}

// UpdateSettings applies a partial update such as {"voiceEnabled": false}.
// Unknown keys reject the whole request before anything changes.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req map[string]bool
	if !h.decode(w, r, &req) {
		return
	}
	if len(req) == 0 {
		writeError(w, http.StatusBadRequest, "no settings to update")
		return
	}
	for key := range req {
		if !slices.Contains(settings.Keys(), key) {
			writeError(w, http.StatusBadRequest, settings.ErrUnknownSetting.Error()+": "+key)
			return
		}
	}

	current := h.Settings.Get()
	for _, key := range settings.Keys() {
		value, ok := req[key]
		if !ok {
			continue
		}
		updated, err := h.Settings.Update(r.Context(), key, value)
		if err != nil {
			h.Logger.Warn("Failed to persist changes",
				"store", "settings",
				"error", err)
		}
		current = updated
	}
	writeJSON(w, http.StatusOK, current)
}

func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.Settings.Reset(r.Context())
	if err != nil {
		h.Logger.Warn("Failed to persist changes",
			"store", "settings",
			"error", err)
	}
	writeJSON(w, http.StatusOK, defaults)
}
