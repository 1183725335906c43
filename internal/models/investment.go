package models

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentStatus is the lifecycle state of an investment request.
type InvestmentStatus string

// Investment statuses
const (
	InvestmentPending   InvestmentStatus = "Pending"
	InvestmentActive    InvestmentStatus = "Active"
	InvestmentCompleted InvestmentStatus = "Completed"
	InvestmentRejected  InvestmentStatus = "Rejected"
)

// CanTransitionTo reports whether moving from s to next is a forward transition.
func (s InvestmentStatus) CanTransitionTo(next InvestmentStatus) bool {
	switch s {
	case InvestmentPending:
		return next == InvestmentActive || next == InvestmentRejected
	case InvestmentActive:
		return next == InvestmentCompleted
	}
	return false
}

// InvestmentDecision is an admin decision on a pending investment.
type InvestmentDecision string

// Investment decisions
const (
	DecisionActivate InvestmentDecision = "Activate"
	DecisionReject   InvestmentDecision = "Reject"
)

// Status returns the status a decision leads to.
func (d InvestmentDecision) Status() (InvestmentStatus, bool) {
	switch d {
	case DecisionActivate:
		return InvestmentActive, true
	case DecisionReject:
		return InvestmentRejected, true
	}
	return "", false
}

// InvestmentUpdate is an admin change to an investment. Nil fields are left untouched.
type InvestmentUpdate struct {
	Decision      *InvestmentDecision
	WalletAddress *string
}

// InvestmentDB represents an investment request row
type InvestmentDB struct {
	ID            uuid.UUID        `json:"id" db:"id"`                       // Unique identifier
	UserID        uuid.UUID        `json:"userId" db:"user_id"`              // Owner
	Amount        float64          `json:"amount" db:"amount"`               // Deposited amount, immutable
	Method        string           `json:"method" db:"method"`               // Asset symbol, e.g. USDT
	Status        InvestmentStatus `json:"status" db:"status"`               // Lifecycle state
	Returns       float64          `json:"returns" db:"returns"`             // Accrued payout
	WalletAddress string           `json:"walletAddress" db:"wallet_address"` // Reference deposit address
	StartDate     time.Time        `json:"startDate" db:"start_date"`        // Creation date
}

// InvestmentView is an investment joined with its owner, as shown to admins.
type InvestmentView struct {
	InvestmentDB
	OwnerName  string `json:"ownerName" db:"owner_name"`
	OwnerEmail string `json:"ownerEmail" db:"owner_email"`
}
