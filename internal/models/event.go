package models

// Lifecycle event kinds
const (
	EventInvestmentSubmitted     = "investment.submitted"
	EventInvestmentDecided       = "investment.decided"
	EventInvestmentWalletUpdated = "investment.wallet_updated"
	EventWithdrawalSubmitted     = "withdrawal.submitted"
	EventWithdrawalDecided       = "withdrawal.decided"
	EventLedgerCredited          = "ledger.credited"
)

// LifecycleEvent is published to the broker after every committed mutation.
type LifecycleEvent struct {
	EventID   string  `json:"eventId"`   // Unique event identifier
	Kind      string  `json:"kind"`      // One of the Event* kinds
	RecordID  string  `json:"recordId"`  // Investment, withdrawal or user id
	UserID    string  `json:"userId"`    // Owner of the record
	Amount    float64 `json:"amount"`    // Monetary value involved
	Status    string  `json:"status"`    // Status after the mutation, if any
	Timestamp int64   `json:"timestamp"` // Unix seconds
}
