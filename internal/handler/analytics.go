package handler

import (
	"log"
	"net/http"

	"threadboard/internal/httputil"
	"threadboard/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview handles GET /comments/analytics
// Global counters plus top-5 posts and users by non-deleted comment count,
// all computed live.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analyticsService.Overview(r.Context())
	if err != nil {
		log.Printf("[ERROR] Analytics handler: err=%v", err)
		httputil.WriteInternalError(w, "Failed to compute analytics")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, analytics)
}
