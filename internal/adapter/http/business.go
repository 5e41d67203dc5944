package httpadapter

import (
	"log/slog"
	"net/http"

	"growth-agent/internal/core/domain"
)

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profiles.Get(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.logger.Error("get profile error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, profile)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd domain.BusinessProfile
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	profile, err := h.svc.Profiles.Update(r.Context(), userFrom(r.Context()), upd)
	if err != nil {
		h.logger.Error("update profile error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, profile)
}

// handleGrowthPlan returns the active plan, composing one on first access.
// A failed composition is retried on the next request.
func (h *Handler) handleGrowthPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.Plans.Get(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.logger.Error("growth plan error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, plan)
}
