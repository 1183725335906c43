package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=withdrawal.go -destination=withdrawal_mock.go -package=handlers

// WithdrawalSubmitter creates withdrawal requests.
type WithdrawalSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, amount float64, method, address string, isSos bool) (*models.WithdrawalDB, error)
}

// WithdrawalReader lists the caller's withdrawal requests.
type WithdrawalReader interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error)
}

// WithdrawalAdminReader searches every withdrawal request.
type WithdrawalAdminReader interface {
	ListAll(ctx context.Context, actor models.Principal, search string) ([]models.WithdrawalView, error)
}

// WithdrawalDecider approves or rejects withdrawal requests.
type WithdrawalDecider interface {
	Decide(ctx context.Context, actor models.Principal, id uuid.UUID, decision models.WithdrawalDecision, txID string) (*models.WithdrawalDB, error)
}

// WithdrawRequest is the body of a new withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// default: 100
	Amount float64 `json:"amount"`

	// Asset symbol
	// required: true
	// default: USDT
	Method string `json:"method"`

	// Destination address
	Address string `json:"address"`

	// Destination address, used when address is empty
	WalletAddress string `json:"walletAddress,omitempty"`

	// Expedited request
	IsSos bool `json:"isSos"`
}

// DecideWithdrawalRequest is an admin decision on a withdrawal
// swagger:model DecideWithdrawalRequest
type DecideWithdrawalRequest struct {
	// Approved or Rejected
	// required: true
	Status string `json:"status"`

	// External transfer reference, ignored on rejection
	TxID string `json:"txId"`
}

func withdrawalDecision(status string) models.WithdrawalDecision {
	switch strings.TrimSpace(status) {
	case string(models.WithdrawalApproved), string(models.DecisionApprove):
		return models.DecisionApprove
	case string(models.WithdrawalRejected), string(models.DecisionRejectWithdrawal):
		return models.DecisionRejectWithdrawal
	}
	return models.WithdrawalDecision(status)
}

// NewWithdrawHandler creates a pending withdrawal request.
// @Summary Request withdrawal
// @Description Creates a pending withdrawal. The balance is checked but not reserved.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdrawal"
// @Success 201 {object} models.WithdrawalDB
// @Failure 400 {object} handlers.ErrorResponse "Insufficient balance / invalid request"
// @Failure 401 {object} handlers.ErrorResponse
// @Router /transactions/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawalSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		var req WithdrawRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		address := req.Address
		if strings.TrimSpace(address) == "" {
			address = req.WalletAddress
		}

		wd, err := svc.Submit(r.Context(), actor.UserID, req.Amount, req.Method, address, req.IsSos)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, wd)
	}
}

// RegisterWithdrawHandler registers the withdrawal submission route
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/transactions/withdraw", h)
}

// NewListWithdrawalsHandler lists the caller's withdrawals.
// @Summary My withdrawals
// @Tags transactions
// @Produce json
// @Success 200 {array} models.WithdrawalDB
// @Failure 401 {object} handlers.ErrorResponse
// @Router /transactions [get]
// @Security BearerAuth
func NewListWithdrawalsHandler(svc WithdrawalReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		withdrawals, err := svc.ListMine(r.Context(), actor.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, withdrawals)
	}
}

// RegisterListWithdrawalsHandler registers the withdrawal listing route
func RegisterListWithdrawalsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/transactions", h)
}

// NewSearchWithdrawalsHandler searches every withdrawal.
// @Summary Search withdrawals
// @Description Case-insensitive match over address, tx id, owner name and email, or exact id.
// @Tags admin
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {array} models.WithdrawalView
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /transactions/admin [get]
// @Security BearerAuth
func NewSearchWithdrawalsHandler(svc WithdrawalAdminReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		withdrawals, err := svc.ListAll(r.Context(), actor, r.URL.Query().Get("search"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, withdrawals)
	}
}

// RegisterSearchWithdrawalsHandler registers the admin withdrawal search route
func RegisterSearchWithdrawalsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/transactions/admin", h)
}

// NewDecideWithdrawalHandler approves or rejects a pending withdrawal.
// @Summary Decide withdrawal
// @Description Approval settles the owner's ledger in the same transaction.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Withdrawal ID"
// @Param request body handlers.DecideWithdrawalRequest true "Decision"
// @Success 200 {object} models.WithdrawalDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Already decided"
// @Router /transactions/{id} [put]
// @Security BearerAuth
func NewDecideWithdrawalHandler(svc WithdrawalDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req DecideWithdrawalRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		wd, err := svc.Decide(r.Context(), actor, id, withdrawalDecision(req.Status), req.TxID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, wd)
	}
}

// RegisterDecideWithdrawalHandler registers the withdrawal decision route
func RegisterDecideWithdrawalHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/transactions/{id}", h)
}
