package httpadapter

import (
	"ad-strategy/internal/core/domain"
	"ad-strategy/internal/core/port"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type runsResponse struct {
	Runs  []domain.StrategyRun `json:"runs"`
	Count int                  `json:"count"`
}

// handleGetRun returns one recorded strategy run. Unknown ids produce
// HTTP 404 and a disabled history HTTP 503.
func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.svc.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.runsError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, run)
}

// handleListRuns returns the most recent runs. The optional `limit` query
// parameter must be a positive integer.
func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := h.svc.ListRuns(r.Context(), limit)
	if err != nil {
		h.runsError(w, err)
		return
	}
	if runs == nil {
		runs = []domain.StrategyRun{}
	}
	h.writeJSON(w, http.StatusOK, runsResponse{Runs: runs, Count: len(runs)})
}

func (h *Handler) runsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrRunNotFound):
		http.Error(w, "run not found", http.StatusNotFound)
	case errors.Is(err, port.ErrHistoryDisabled):
		http.Error(w, "run history is disabled", http.StatusServiceUnavailable)
	default:
		h.logger.Error("strategy runs error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
