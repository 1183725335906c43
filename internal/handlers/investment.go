package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=investment.go -destination=investment_mock.go -package=handlers

// InvestmentSubmitter creates investment requests.
type InvestmentSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, amount float64, method, walletAddress string) (*models.InvestmentDB, error)
}

// InvestmentReader lists the caller's investment requests.
type InvestmentReader interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error)
}

// InvestmentAdminReader lists every investment request.
type InvestmentAdminReader interface {
	ListAll(ctx context.Context, actor models.Principal) ([]models.InvestmentView, error)
}

// InvestmentUpdater applies admin updates to an investment request.
type InvestmentUpdater interface {
	Update(ctx context.Context, actor models.Principal, id uuid.UUID, upd models.InvestmentUpdate) (*models.InvestmentDB, error)
}

// InvestmentRequest is the body of a new investment
// swagger:model InvestmentRequest
type InvestmentRequest struct {
	// Amount to invest
	// required: true
	// default: 1000
	Amount float64 `json:"amount"`

	// Asset symbol
	// required: true
	// default: USDT
	Method string `json:"method"`

	// Reference deposit address
	WalletAddress string `json:"walletAddress"`
}

// UpdateInvestmentRequest is an admin update of an investment
// swagger:model UpdateInvestmentRequest
type UpdateInvestmentRequest struct {
	// Active or Rejected
	Status *string `json:"status,omitempty"`

	// New reference deposit address
	WalletAddress *string `json:"walletAddress,omitempty"`
}

// investmentDecision accepts both the target status and the decision verb.
func investmentDecision(status string) models.InvestmentDecision {
	switch strings.TrimSpace(status) {
	case string(models.InvestmentActive), string(models.DecisionActivate):
		return models.DecisionActivate
	case string(models.InvestmentRejected), string(models.DecisionReject):
		return models.DecisionReject
	}
	return models.InvestmentDecision(status)
}

// NewSubmitInvestmentHandler creates a pending investment request.
// @Summary Submit investment
// @Tags investments
// @Accept json
// @Produce json
// @Param request body handlers.InvestmentRequest true "Investment"
// @Success 201 {object} models.InvestmentDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /investments [post]
// @Security BearerAuth
func NewSubmitInvestmentHandler(svc InvestmentSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		var req InvestmentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		inv, err := svc.Submit(r.Context(), actor.UserID, req.Amount, req.Method, req.WalletAddress)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, inv)
	}
}

// RegisterSubmitInvestmentHandler registers the investment submission route
func RegisterSubmitInvestmentHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/investments", h)
}

// NewListInvestmentsHandler lists the caller's investments.
// @Summary My investments
// @Tags investments
// @Produce json
// @Success 200 {array} models.InvestmentDB
// @Failure 401 {object} handlers.ErrorResponse
// @Router /investments [get]
// @Security BearerAuth
func NewListInvestmentsHandler(svc InvestmentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		investments, err := svc.ListMine(r.Context(), actor.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, investments)
	}
}

// RegisterListInvestmentsHandler registers the investment listing route
func RegisterListInvestmentsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/investments", h)
}

// NewListAllInvestmentsHandler lists every investment with its owner.
// @Summary All investments
// @Tags admin
// @Produce json
// @Success 200 {array} models.InvestmentView
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /investments/admin [get]
// @Security BearerAuth
func NewListAllInvestmentsHandler(svc InvestmentAdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		investments, err := svc.ListAll(r.Context(), actor)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, investments)
	}
}

// RegisterListAllInvestmentsHandler registers the admin investment listing route
func RegisterListAllInvestmentsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/investments/admin", h)
}

// NewUpdateInvestmentHandler decides an investment and/or rewrites its reference wallet.
// @Summary Update investment
// @Description Activates or rejects a pending investment, and/or sets its reference wallet address.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param request body handlers.UpdateInvestmentRequest true "Update"
// @Success 200 {object} models.InvestmentDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Already decided"
// @Router /investments/{id} [put]
// @Security BearerAuth
func NewUpdateInvestmentHandler(svc InvestmentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateInvestmentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Status == nil && req.WalletAddress == nil {
			writeError(w, http.StatusBadRequest, "status or walletAddress is required")
			return
		}

		upd := models.InvestmentUpdate{WalletAddress: req.WalletAddress}
		if req.Status != nil {
			decision := investmentDecision(*req.Status)
			upd.Decision = &decision
		}

		inv, err := svc.Update(r.Context(), actor, id, upd)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, inv)
	}
}

// RegisterUpdateInvestmentHandler registers the investment update route
func RegisterUpdateInvestmentHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/investments/{id}", h)
}
