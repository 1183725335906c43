// Package client is a typed API client for the staking service together with
// the client-side state container that front ends build on.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/dashboard"
	"github.com/sbilibin2017/gw-evault/internal/handlers"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/sbilibin2017/gw-evault/internal/yield"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client calls the HTTP API. Safe for concurrent use.
type Client struct {
	http *resty.Client
}

// New creates a client for the API mounted at baseURL, e.g. http://localhost:8080/api.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(10 * time.Second),
	}
}

// SetToken sets the bearer token sent with every request. Empty clears it.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var (
		result T
		apiErr handlers.ErrorResponse
	)

	req := c.http.R().SetContext(ctx).SetResult(&result).SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return result, err
	}
	if resp.IsError() {
		return result, &APIError{Status: resp.StatusCode(), Message: apiErr.Message}
	}
	return result, nil
}

// Register creates an account and returns its token.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	resp, err := send[handlers.TokenResponse](ctx, c, http.MethodPost, "/auth/register",
		handlers.RegisterRequest{Name: name, Email: email, Password: password})
	return resp.Token, err
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := send[handlers.TokenResponse](ctx, c, http.MethodPost, "/auth/login",
		handlers.LoginRequest{Email: email, Password: password})
	return resp.Token, err
}

// Profile returns the caller's account.
func (c *Client) Profile(ctx context.Context) (models.UserDB, error) {
	return send[models.UserDB](ctx, c, http.MethodGet, "/auth/profile", nil)
}

// AddFunds grants test funds and returns the new balance.
func (c *Client) AddFunds(ctx context.Context, amount float64) (float64, error) {
	resp, err := send[handlers.BalanceResponse](ctx, c, http.MethodPut, "/auth/profile/funds",
		handlers.AddFundsRequest{Amount: amount})
	return resp.Balance, err
}

// Users lists every account. Admin only.
func (c *Client) Users(ctx context.Context) ([]models.UserDB, error) {
	return send[[]models.UserDB](ctx, c, http.MethodGet, "/auth/users", nil)
}

// SubmitInvestment creates a pending investment request.
func (c *Client) SubmitInvestment(ctx context.Context, amount float64, method, walletAddress string) (models.InvestmentDB, error) {
	return send[models.InvestmentDB](ctx, c, http.MethodPost, "/investments",
		handlers.InvestmentRequest{Amount: amount, Method: method, WalletAddress: walletAddress})
}

// MyInvestments lists the caller's investments, newest first.
func (c *Client) MyInvestments(ctx context.Context) ([]models.InvestmentDB, error) {
	return send[[]models.InvestmentDB](ctx, c, http.MethodGet, "/investments", nil)
}

// AllInvestments lists every investment with its owner. Admin only.
func (c *Client) AllInvestments(ctx context.Context) ([]models.InvestmentView, error) {
	return send[[]models.InvestmentView](ctx, c, http.MethodGet, "/investments/admin", nil)
}

// UpdateInvestment decides an investment and/or sets its reference wallet. Nil fields are left out.
func (c *Client) UpdateInvestment(ctx context.Context, id uuid.UUID, status, walletAddress *string) (models.InvestmentDB, error) {
	return send[models.InvestmentDB](ctx, c, http.MethodPut, "/investments/"+id.String(),
		handlers.UpdateInvestmentRequest{Status: status, WalletAddress: walletAddress})
}

// Withdraw creates a pending withdrawal request.
func (c *Client) Withdraw(ctx context.Context, amount float64, method, address string, isSos bool) (models.WithdrawalDB, error) {
	return send[models.WithdrawalDB](ctx, c, http.MethodPost, "/transactions/withdraw",
		handlers.WithdrawRequest{Amount: amount, Method: method, Address: address, IsSos: isSos})
}

// MyWithdrawals lists the caller's withdrawals, newest first.
func (c *Client) MyWithdrawals(ctx context.Context) ([]models.WithdrawalDB, error) {
	return send[[]models.WithdrawalDB](ctx, c, http.MethodGet, "/transactions", nil)
}

// SearchWithdrawals lists withdrawals matching search. Admin only.
func (c *Client) SearchWithdrawals(ctx context.Context, search string) ([]models.WithdrawalView, error) {
	path := "/transactions/admin"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	return send[[]models.WithdrawalView](ctx, c, http.MethodGet, path, nil)
}

// DecideWithdrawal approves or rejects a pending withdrawal.
func (c *Client) DecideWithdrawal(ctx context.Context, id uuid.UUID, status, txID string) (models.WithdrawalDB, error) {
	return send[models.WithdrawalDB](ctx, c, http.MethodPut, "/transactions/"+id.String(),
		handlers.DecideWithdrawalRequest{Status: status, TxID: txID})
}

// Rates returns the rate table.
func (c *Client) Rates(ctx context.Context) ([]models.Rate, error) {
	return send[[]models.Rate](ctx, c, http.MethodGet, "/rates", nil)
}

// UpdateRate sets the daily rate and period of an asset. Admin only.
func (c *Client) UpdateRate(ctx context.Context, symbol string, rate float64, period string) (models.Rate, error) {
	return send[models.Rate](ctx, c, http.MethodPut, "/rates/"+url.PathEscape(symbol),
		handlers.UpdateRateRequest{Rate: rate, Period: period})
}

// Dashboard returns the admin summary. Admin only.
func (c *Client) Dashboard(ctx context.Context) (dashboard.Summary, error) {
	return send[dashboard.Summary](ctx, c, http.MethodGet, "/admin/dashboard", nil)
}

// Calculate projects returns for an amount at a daily rate.
func (c *Client) Calculate(ctx context.Context, amount, dailyROI, duration float64) (yield.Result, error) {
	return send[yield.Result](ctx, c, http.MethodPost, "/calculator",
		handlers.CalculatorRequest{Amount: amount, DailyROI: dailyROI, Duration: duration})
}
