package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"growth-agent/internal/core/domain"
	"growth-agent/internal/core/port"
)

const rateLimitMessage = "You've reached your free limit. Sign up to keep generating content."

// handleGenerate runs one generation for an authenticated or anonymous
// caller. Anonymous callers are subject to the free tier: exhausted callers
// get HTTP 429. A failed generation returns HTTP 500 with the failure in
// details.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	caller, err := callerFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.svc.Content.Generate(r.Context(), caller, req)
	switch {
	case errors.Is(err, port.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, port.ErrRateLimitExceeded):
		h.logger.Info("free tier exhausted", slog.String("ip", caller.IP.String()))
		writeError(w, http.StatusTooManyRequests, rateLimitMessage)
		return
	case err != nil:
		h.logger.Error("generate content error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if !res.Success {
		h.logger.Warn("content generation failed",
			slog.String("content_type", string(req.ContentType)),
			slog.String("error", res.Error))
		writeJSON(w, h.logger, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate content",
			"details": res.Error,
		})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *Handler) handleListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Content.List(r.Context(), userFrom(r.Context()))
	if err != nil {
		h.logger.Error("list content error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, items)
}

func (h *Handler) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	var in domain.MarketingContent
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	out, err := h.svc.Content.Create(r.Context(), userFrom(r.Context()), in)
	if errors.Is(err, port.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("create content error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, out)
}

// handleApproveContent marks content of the caller's business as approved.
// Content owned by another business is reported as not found.
func (h *Handler) handleApproveContent(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Content.Approve(r.Context(), userFrom(r.Context()), chi.URLParam(r, "id"))
	if errors.Is(err, port.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Content not found")
		return
	}
	if err != nil {
		h.logger.Error("approve content error", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "content approved"})
}
