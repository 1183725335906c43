package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/jwt"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/sbilibin2017/gw-evault/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable error
	// default: Insufficient balance
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrAlreadyDecided):
		writeError(w, statusOf(err), err.Error())
	case errors.Is(err, services.ErrInsufficientBalance):
		writeError(w, http.StatusBadRequest, "Insufficient balance")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not authorized as an admin")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyDecided):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// principal returns the caller placed in the context by the auth middleware.
func principal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	claims := jwt.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Not authorized, no token")
		return models.Principal{}, false
	}
	return claims.Principal(), true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
