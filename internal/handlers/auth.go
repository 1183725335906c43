package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Registerer creates accounts.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (string, error)
}

// Loginer authenticates users.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// ProfileReader reads the caller's account.
type ProfileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// FundsAdder credits test funds to a balance.
type FundsAdder interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
}

// UserLister lists every user.
type UserLister interface {
	ListUsers(ctx context.Context, actor models.Principal) ([]models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email, used as login
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// required: true
	// default: secret123
	Password string `json:"password"`
}

// TokenResponse carries an access token
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT access token
	Token string `json:"token"`
}

// AddFundsRequest is the body of a test-fund grant
// swagger:model AddFundsRequest
type AddFundsRequest struct {
	// Amount to credit
	// default: 1000
	Amount float64 `json:"amount"`
}

// BalanceResponse carries the balance after a mutation
// swagger:model BalanceResponse
type BalanceResponse struct {
	// New balance
	Balance float64 `json:"balance"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account with a unique email and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.TokenResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "User already exists / invalid request"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
	}
}

// RegisterRegisterHandler registers the registration route
func RegisterRegisterHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/auth/register", h)
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Login
// @Description Authenticates a user by email and password and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} handlers.TokenResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Token: token})
	}
}

// RegisterLoginHandler registers the login route
func RegisterLoginHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/auth/login", h)
}

// NewProfileHandler returns the caller's account.
// @Summary Get profile
// @Description Returns the caller's account with balance and cumulative totals.
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /auth/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), actor.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// RegisterProfileHandler registers the profile route
func RegisterProfileHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/auth/profile", h)
}

// NewAddFundsHandler credits test funds to the caller's balance.
// @Summary Add test funds
// @Description Credits the caller's balance. Intended for test accounts.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.AddFundsRequest true "Amount"
// @Success 200 {object} handlers.BalanceResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /auth/profile/funds [put]
// @Security BearerAuth
func NewAddFundsHandler(svc FundsAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		var req AddFundsRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		balance, err := svc.Credit(r.Context(), actor.UserID, req.Amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}

// RegisterAddFundsHandler registers the test-fund route
func RegisterAddFundsHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/auth/profile/funds", h)
}

// NewListUsersHandler lists every user.
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /auth/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := principal(w, r)
		if !ok {
			return
		}

		users, err := svc.ListUsers(r.Context(), actor)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// RegisterListUsersHandler registers the user listing route
func RegisterListUsersHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/auth/users", h)
}
