package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-evault/internal/dashboard"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

// Summarizer builds the admin aggregation view.
type Summarizer interface {
	Summary(ctx context.Context, actor models.Principal) (dashboard.Summary, error)
}

// NewDashboardHandler returns the admin aggregation view.
// @Summary Admin dashboard
// @Description Totals, a six-month series and the asset mix, derived from current records.
// @Tags admin
// @Produce json
// @Success 200 {object} dashboard.Summary
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), actor)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// RegisterDashboardHandler registers the dashboard route
func RegisterDashboardHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/admin/dashboard", h)
}
