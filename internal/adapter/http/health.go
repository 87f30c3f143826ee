package httpadapter

import "net/http"

const serviceName = "strategy_service"

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// handleHealth reports liveness. It does not probe Postgres or Redis:
// both are optional and their faults degrade features, not the service.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: serviceName})
}
