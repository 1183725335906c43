package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=withdrawal.go -destination=withdrawal_mock.go -package=services

// WithdrawalStore persists withdrawal requests.
type WithdrawalStore interface {
	Save(ctx context.Context, w *models.WithdrawalDB) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WithdrawalDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error)
	Search(ctx context.Context, search string) ([]models.WithdrawalView, error)
	UpdateDecision(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, txID string) (bool, error)
}

// Ledger is the part of the account ledger used by withdrawals.
type Ledger interface {
	Balance(ctx context.Context, userID uuid.UUID) (float64, error)
	Settle(ctx context.Context, userID uuid.UUID, amount float64) error
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WithdrawalService runs the withdrawal request lifecycle.
type WithdrawalService struct {
	store     WithdrawalStore
	ledger    Ledger
	tx        Transactor
	publisher EventPublisher
	now       func() time.Time
}

// NewWithdrawalService creates a new WithdrawalService. publisher may be nil.
func NewWithdrawalService(store WithdrawalStore, ledger Ledger, tx Transactor, publisher EventPublisher) *WithdrawalService {
	return &WithdrawalService{
		store:     store,
		ledger:    ledger,
		tx:        tx,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submit records a pending withdrawal. The balance is checked but not reserved.
func (s *WithdrawalService) Submit(ctx context.Context, userID uuid.UUID, amount float64, method, address string, isSos bool) (*models.WithdrawalDB, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, fmt.Errorf("%w: method is required", ErrValidation)
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > balance {
		logger.Log.Infow("withdrawal exceeds balance", "userID", userID, "amount", amount, "balance", balance)
		return nil, ErrInsufficientBalance
	}

	w := &models.WithdrawalDB{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    models.TransactionWithdrawal,
		Amount:  amount,
		Method:  method,
		Address: strings.TrimSpace(address),
		Status:  models.WithdrawalPending,
		IsSos:   isSos,
		Date:    s.now().UTC(),
	}
	if err := s.store.Save(ctx, w); err != nil {
		logger.Log.Errorw("failed to save withdrawal", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.publisher, newEvent(models.EventWithdrawalSubmitted, w.ID, userID, amount, string(w.Status)))

	return w, nil
}

// Decide approves or rejects a pending withdrawal.
// Approval flips the status and settles the ledger in one transaction, so a
// withdrawal is settled at most once and never overdraws the balance.
func (s *WithdrawalService) Decide(ctx context.Context, actor models.Principal, id uuid.UUID, decision models.WithdrawalDecision, txID string) (*models.WithdrawalDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	to, ok := decision.Status()
	if !ok {
		return nil, fmt.Errorf("%w: unknown decision %q", ErrValidation, decision)
	}
	txID = strings.TrimSpace(txID)
	if to != models.WithdrawalApproved {
		txID = ""
	}

	var w *models.WithdrawalDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: withdrawal %s", ErrNotFound, id)
		}
		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: withdrawal is %s", ErrAlreadyDecided, current.Status)
		}

		updated, err := s.store.UpdateDecision(ctx, id, to, txID)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("%w: withdrawal changed concurrently", ErrAlreadyDecided)
		}

		if to == models.WithdrawalApproved {
			if err := s.ledger.Settle(ctx, current.UserID, current.Amount); err != nil {
				return err
			}
		}

		current.Status, current.TxID = to, txID
		w = current
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to decide withdrawal", "id", id, "decision", decision, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.publisher, newEvent(models.EventWithdrawalDecided, w.ID, w.UserID, w.Amount, string(w.Status)))

	return w, nil
}

// ListMine returns the user's withdrawals, newest first.
func (s *WithdrawalService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error) {
	list, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list withdrawals", "userID", userID, "error", err)
		return nil, err
	}
	return list, nil
}

// ListAll returns withdrawals matching search, or all of them when search is blank. Admin only.
func (s *WithdrawalService) ListAll(ctx context.Context, actor models.Principal, search string) ([]models.WithdrawalView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	list, err := s.store.Search(ctx, strings.TrimSpace(search))
	if err != nil {
		logger.Log.Errorw("failed to search withdrawals", "search", search, "error", err)
		return nil, err
	}
	return list, nil
}
