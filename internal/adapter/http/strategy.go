package httpadapter

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const maxRequestBody = 1 << 20

// handleGenerateStrategy decodes a strategy request and runs the use case.
// Unreadable or malformed JSON yields HTTP 400, a body that violates the
// request schema yields HTTP 422 with a VALIDATION_ERROR body. Everything
// past the schema gate is HTTP 200, including domain failures, which are
// reported in the response body.
func (h *Handler) handleGenerateStrategy(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	if !json.Valid(body) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	violations, err := validateBody(generateRequestSchema, body)
	if err != nil {
		h.logger.Error("schema validation error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("request failed schema validation",
			slog.String("request_id", port.RequestIDFrom(r.Context())),
			slog.Any("errors", violations),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, port.ErrorResponse(domain.NewStrategyError(
			domain.CodeValidationError,
			"Request validation failed",
			map[string]any{"errors": violations},
		)))
		return
	}

	var req port.GenerateRequest
	if err = json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp := h.svc.GenerateStrategy(r.Context(), req)
	h.writeJSON(w, http.StatusOK, resp)
}
