package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=rate.go -destination=rate_mock.go -package=handlers

// RateLister returns the rate table.
type RateLister interface {
	List(ctx context.Context) []models.Rate
}

// RateUpdater overrides one rate.
type RateUpdater interface {
	Update(ctx context.Context, actor models.Principal, symbol string, rate float64, period string) (models.Rate, error)
}

// UpdateRateRequest is the body of a rate override
// swagger:model UpdateRateRequest
type UpdateRateRequest struct {
	// Yield in percent per period
	// required: true
	// default: 0.66
	Rate float64 `json:"rate"`

	// Daily or Monthly, empty keeps the current period
	Period string `json:"period"`
}

// NewGetRatesHandler returns the rate table.
// @Summary Get rates
// @Description Returns the yield rate of every asset, sorted by symbol.
// @Tags rates
// @Produce json
// @Success 200 {array} models.Rate
// @Failure 401 {object} handlers.ErrorResponse
// @Router /rates [get]
// @Security BearerAuth
func NewGetRatesHandler(svc RateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.List(r.Context()))
	}
}

// RegisterGetRatesHandler registers the rate table route
func RegisterGetRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/rates", h)
}

// NewUpdateRateHandler overrides the rate of one asset.
// @Summary Update rate
// @Tags admin
// @Accept json
// @Produce json
// @Param symbol path string true "Asset symbol"
// @Param request body handlers.UpdateRateRequest true "Rate"
// @Success 200 {object} models.Rate
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /rates/{symbol} [put]
// @Security BearerAuth
func NewUpdateRateHandler(svc RateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		var req UpdateRateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		rate, err := svc.Update(r.Context(), actor, chi.URLParam(r, "symbol"), req.Rate, req.Period)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rate)
	}
}

// RegisterUpdateRateHandler registers the rate override route
func RegisterUpdateRateHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/rates/{symbol}", h)
}
