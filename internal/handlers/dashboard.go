package handlers

import (
	"net/http"

	"github.com/cyberme/apiserver/internal/services"
)

// DashboardHandler provides the read-only dashboard summary endpoint.
type DashboardHandler struct {
	dashboard *services.DashboardService
}

// NewDashboardHandler constructs a handler with the provided service.
func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetSummary composes the dashboard summary from current task state.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
