package httpadapter

import "net/http"

// handleDashboardStats returns the dashboard headline figures. They are
// recomputed on every request.
func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.DashboardStats(r.Context())
	if err != nil {
		h.internalError(w, "dashboard stats", err, "Failed to fetch dashboard stats")
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleResourceSummary returns the resources page figures.
func (h *Handler) handleResourceSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.dashboard.ResourceSummary(r.Context())
	if err != nil {
		h.internalError(w, "resource summary", err, "Failed to fetch resource summary")
		return
	}
	h.writeJSON(w, http.StatusOK, sum)
}
