package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-evault/internal/yield"
)

// CalculatorRequest holds the calculator inputs
// swagger:model CalculatorRequest
type CalculatorRequest struct {
	// Principal
	// default: 1000
	Amount float64 `json:"amount"`

	// Daily rate in percent
	// default: 0.6
	DailyROI float64 `json:"dailyRoi"`

	// Duration in days
	// default: 30
	Duration float64 `json:"duration"`
}

// NewCalculatorHandler projects simple daily yield.
// @Summary Yield calculator
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body handlers.CalculatorRequest true "Inputs"
// @Success 200 {object} yield.Result
// @Failure 400 {object} handlers.ErrorResponse
// @Router /calculator [post]
func NewCalculatorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalculatorRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := yield.Calculate(req.Amount, req.DailyROI, req.Duration)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// RegisterCalculatorHandler registers the calculator route
func RegisterCalculatorHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/calculator", h)
}
