package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types stored in the transactions table
const (
	TransactionDeposit    = "Deposit"
	TransactionWithdrawal = "Withdrawal"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request.
type WithdrawalStatus string

// Withdrawal statuses
const (
	WithdrawalPending  WithdrawalStatus = "Pending"
	WithdrawalApproved WithdrawalStatus = "Approved"
	WithdrawalRejected WithdrawalStatus = "Rejected"
)

// IsTerminal reports whether no further decision may be applied.
func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalApproved || s == WithdrawalRejected
}

// WithdrawalDecision is an admin decision on a pending withdrawal.
type WithdrawalDecision string

// Withdrawal decisions
const (
	DecisionApprove          WithdrawalDecision = "Approve"
	DecisionRejectWithdrawal WithdrawalDecision = "Reject"
)

// Status returns the status a decision leads to.
func (d WithdrawalDecision) Status() (WithdrawalStatus, bool) {
	switch d {
	case DecisionApprove:
		return WithdrawalApproved, true
	case DecisionRejectWithdrawal:
		return WithdrawalRejected, true
	}
	return "", false
}

// WithdrawalDB represents a withdrawal row of the transactions table
type WithdrawalDB struct {
	ID      uuid.UUID        `json:"id" db:"id"`           // Unique identifier
	UserID  uuid.UUID        `json:"userId" db:"user_id"`  // Owner
	Type    string           `json:"type" db:"type"`       // Always Withdrawal
	Amount  float64          `json:"amount" db:"amount"`   // Requested amount
	Method  string           `json:"method" db:"method"`   // Asset symbol
	Address string           `json:"address" db:"address"` // Destination address
	Status  WithdrawalStatus `json:"status" db:"status"`   // Lifecycle state
	TxID    string           `json:"txId" db:"tx_id"`      // External transfer reference, set on approval
	IsSos   bool             `json:"isSos" db:"is_sos"`    // Expedited flag
	Date    time.Time        `json:"date" db:"date"`       // Submission date
}

// WithdrawalView is a withdrawal joined with its owner, as shown to admins.
type WithdrawalView struct {
	WithdrawalDB
	OwnerName  string `json:"ownerName" db:"owner_name"`
	OwnerEmail string `json:"ownerEmail" db:"owner_email"`
}
