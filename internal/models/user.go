package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID         uuid.UUID `json:"id" db:"user_id"`                      // Primary key
	Name           string    `json:"name" db:"name"`                       // Display name
	Email          string    `json:"email" db:"email"`                     // Unique email, used as login
	PasswordHash   string    `json:"-" db:"password_hash"`                 // bcrypt hash
	IsAdmin        bool      `json:"isAdmin" db:"is_admin"`                // Admin capability flag
	Balance        float64   `json:"balance" db:"balance"`                 // Spendable amount, never negative
	TotalInvested  float64   `json:"totalInvested" db:"total_invested"`    // Cumulative invested amount
	TotalROI       float64   `json:"totalROI" db:"total_roi"`              // Cumulative earnings
	TotalWithdrawn float64   `json:"totalWithdrawn" db:"total_withdrawn"`  // Cumulative settled withdrawals
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`            // Creation timestamp
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`            // Last update timestamp
}

// Principal is the authenticated actor performing an operation.
type Principal struct {
	UserID  uuid.UUID
	IsAdmin bool
}
