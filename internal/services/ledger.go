package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

// LedgerStore persists balances and cumulative totals.
// Credit and Debit return sql.ErrNoRows when the update matched nothing.
type LedgerStore interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
	Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error)
	RecordWithdrawn(ctx context.Context, userID uuid.UUID, amount float64) error
}

// LedgerService owns every balance mutation.
type LedgerService struct {
	store     LedgerStore
	publisher EventPublisher
}

// NewLedgerService creates a new LedgerService. publisher may be nil.
func NewLedgerService(store LedgerStore, publisher EventPublisher) *LedgerService {
	return &LedgerService{
		store:     store,
		publisher: publisher,
	}
}

// Credit adds amount to the user's balance and returns the new balance.
func (s *LedgerService) Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	balance, err := s.store.Credit(ctx, userID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	if err != nil {
		logger.Log.Errorw("failed to credit balance", "userID", userID, "amount", amount, "error", err)
		return 0, err
	}

	publishEvent(ctx, s.publisher, newEvent(models.EventLedgerCredited, userID, userID, amount, ""))

	return balance, nil
}

// Debit subtracts amount from the user's balance and returns the new balance.
// The balance never goes negative.
func (s *LedgerService) Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	balance, err := s.store.Debit(ctx, userID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		user, getErr := s.store.GetByID(ctx, userID)
		if getErr != nil {
			return 0, getErr
		}
		if user == nil {
			return 0, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return 0, ErrInsufficientBalance
	}
	if err != nil {
		logger.Log.Errorw("failed to debit balance", "userID", userID, "amount", amount, "error", err)
		return 0, err
	}

	return balance, nil
}

// Settle debits amount and adds it to the user's withdrawn total.
// Callers run it inside the transaction that approves the withdrawal.
func (s *LedgerService) Settle(ctx context.Context, userID uuid.UUID, amount float64) error {
	if _, err := s.Debit(ctx, userID, amount); err != nil {
		return err
	}

	if err := s.store.RecordWithdrawn(ctx, userID, amount); err != nil {
		logger.Log.Errorw("failed to record withdrawn total", "userID", userID, "amount", amount, "error", err)
		return err
	}
	return nil
}

// Account returns the user's ledger snapshot.
func (s *LedgerService) Account(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get account", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, nil
}

// Balance returns the user's current balance.
func (s *LedgerService) Balance(ctx context.Context, userID uuid.UUID) (float64, error) {
	user, err := s.Account(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}
