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

//go:generate mockgen -source=investment.go -destination=investment_mock.go -package=services

// InvestmentStore persists investment requests.
type InvestmentStore interface {
	Save(ctx context.Context, inv *models.InvestmentDB) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InvestmentDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error)
	ListAll(ctx context.Context) ([]models.InvestmentView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.InvestmentStatus) (bool, error)
	UpdateWalletAddress(ctx context.Context, id uuid.UUID, address string) (bool, error)
}

// InvestmentService runs the investment request lifecycle.
type InvestmentService struct {
	store     InvestmentStore
	tx        Transactor
	publisher EventPublisher
	now       func() time.Time
}

// NewInvestmentService creates a new InvestmentService. publisher may be nil.
func NewInvestmentService(store InvestmentStore, tx Transactor, publisher EventPublisher) *InvestmentService {
	return &InvestmentService{
		store:     store,
		tx:        tx,
		publisher: publisher,
		now:       time.Now,
	}
}

// Submit records a new pending investment. Balances are not touched.
func (s *InvestmentService) Submit(ctx context.Context, userID uuid.UUID, amount float64, method, walletAddress string) (*models.InvestmentDB, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, fmt.Errorf("%w: method is required", ErrValidation)
	}

	inv := &models.InvestmentDB{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Method:        method,
		Status:        models.InvestmentPending,
		WalletAddress: strings.TrimSpace(walletAddress),
		StartDate:     s.now().UTC(),
	}
	if err := s.store.Save(ctx, inv); err != nil {
		logger.Log.Errorw("failed to save investment", "userID", userID, "amount", amount, "method", method, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.publisher, newEvent(models.EventInvestmentSubmitted, inv.ID, userID, amount, string(inv.Status)))

	return inv, nil
}

// Decide applies an admin decision to a pending investment.
// A request that already left Pending yields ErrAlreadyDecided.
func (s *InvestmentService) Decide(ctx context.Context, actor models.Principal, id uuid.UUID, decision models.InvestmentDecision) (*models.InvestmentDB, error) {
	return s.Update(ctx, actor, id, models.InvestmentUpdate{Decision: &decision})
}

// UpdateReferenceWallet rewrites the reference address of any investment.
func (s *InvestmentService) UpdateReferenceWallet(ctx context.Context, actor models.Principal, id uuid.UUID, address string) (*models.InvestmentDB, error) {
	return s.Update(ctx, actor, id, models.InvestmentUpdate{WalletAddress: &address})
}

// Update applies a decision and/or a new reference wallet in one transaction.
// Nothing is written unless every part of the update succeeds.
func (s *InvestmentService) Update(ctx context.Context, actor models.Principal, id uuid.UUID, upd models.InvestmentUpdate) (*models.InvestmentDB, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if upd.Decision == nil && upd.WalletAddress == nil {
		return nil, fmt.Errorf("%w: status or walletAddress is required", ErrValidation)
	}

	var to models.InvestmentStatus
	if upd.Decision != nil {
		var ok bool
		if to, ok = upd.Decision.Status(); !ok {
			return nil, fmt.Errorf("%w: unknown decision %q", ErrValidation, *upd.Decision)
		}
	}

	var inv *models.InvestmentDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.get(ctx, id)
		if err != nil {
			return err
		}

		if upd.Decision != nil {
			if !current.Status.CanTransitionTo(to) {
				return fmt.Errorf("%w: investment is %s", ErrAlreadyDecided, current.Status)
			}
			updated, err := s.store.UpdateStatus(ctx, id, current.Status, to)
			if err != nil {
				logger.Log.Errorw("failed to update investment status", "id", id, "status", to, "error", err)
				return err
			}
			if !updated {
				return fmt.Errorf("%w: investment changed concurrently", ErrAlreadyDecided)
			}
			current.Status = to
		}

		if upd.WalletAddress != nil {
			updated, err := s.store.UpdateWalletAddress(ctx, id, *upd.WalletAddress)
			if err != nil {
				logger.Log.Errorw("failed to update wallet address", "id", id, "error", err)
				return err
			}
			if !updated {
				return fmt.Errorf("%w: investment %s", ErrNotFound, id)
			}
			current.WalletAddress = *upd.WalletAddress
		}

		inv = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	if upd.Decision != nil {
		publishEvent(ctx, s.publisher, newEvent(models.EventInvestmentDecided, inv.ID, inv.UserID, inv.Amount, string(to)))
	}
	if upd.WalletAddress != nil {
		publishEvent(ctx, s.publisher, newEvent(models.EventInvestmentWalletUpdated, inv.ID, inv.UserID, inv.Amount, string(inv.Status)))
	}

	return inv, nil
}

func (s *InvestmentService) get(ctx context.Context, id uuid.UUID) (*models.InvestmentDB, error) {
	inv, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get investment", "id", id, "error", err)
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: investment %s", ErrNotFound, id)
	}
	return inv, nil
}

// ListMine returns the user's investments, newest first.
func (s *InvestmentService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error) {
	list, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list investments", "userID", userID, "error", err)
		return nil, err
	}
	return list, nil
}

// ListAll returns every investment with its owner. Admin only.
func (s *InvestmentService) ListAll(ctx context.Context, actor models.Principal) ([]models.InvestmentView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	list, err := s.store.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all investments", "error", err)
		return nil, err
	}
	return list, nil
}
