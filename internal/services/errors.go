package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/sbilibin2017/gw-evault/internal/models"
)

// Error variables
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("not authorized as an admin")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyDecided      = errors.New("request has already been decided")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

func requireAdmin(actor models.Principal) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	}
	return nil
}
