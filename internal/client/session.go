package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"golang.org/x/sync/errgroup"
)

// Session drives a Store from API calls. Submissions are applied
// optimistically and reconciled with the server answer.
type Session struct {
	api   *Client
	store *Store
	newID func() string
	now   func() time.Time
}

// NewSession creates a session over api that dispatches into store.
func NewSession(api *Client, store *Store) *Session {
	return &Session{
		api:   api,
		store: store,
		newID: func() string { return "tmp-" + uuid.NewString() },
		now:   time.Now,
	}
}

// Login authenticates, loads the profile and the caller's records.
func (s *Session) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.api.SetToken(token)

	profile, err := s.api.Profile(ctx)
	if err != nil {
		s.api.SetToken("")
		return err
	}
	s.store.Dispatch(SessionStarted{Token: token, Profile: profile})

	return s.Refresh(ctx)
}

// Logout forgets the token and every per-user record.
func (s *Session) Logout() {
	s.api.SetToken("")
	s.store.Dispatch(SessionEnded{})
}

// Refresh reloads the caller's investments, withdrawals and the rate table.
func (s *Session) Refresh(ctx context.Context) error {
	var (
		investments []models.InvestmentDB
		withdrawals []models.WithdrawalDB
		rates       []models.Rate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		investments, err = s.api.MyInvestments(gctx)
		return err
	})
	g.Go(func() (err error) {
		withdrawals, err = s.api.MyWithdrawals(gctx)
		return err
	})
	g.Go(func() (err error) {
		rates, err = s.api.Rates(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.store.Dispatch(InvestmentsLoaded{Items: investments})
	s.store.Dispatch(WithdrawalsLoaded{Items: withdrawals})
	s.store.Dispatch(RatesLoaded{Rates: rates})
	return nil
}

// RefreshAdmin reloads the admin decision queues.
func (s *Session) RefreshAdmin(ctx context.Context, search string) error {
	var (
		investments []models.InvestmentView
		withdrawals []models.WithdrawalView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		investments, err = s.api.AllInvestments(gctx)
		return err
	})
	g.Go(func() (err error) {
		withdrawals, err = s.api.SearchWithdrawals(gctx, search)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.store.Dispatch(AdminQueuesLoaded{Investments: investments, Withdrawals: withdrawals})
	return nil
}

// SubmitInvestment shows a pending entry at once and swaps it for the server record.
func (s *Session) SubmitInvestment(ctx context.Context, amount float64, method, walletAddress string) (models.InvestmentDB, error) {
	tempID := s.newID()
	s.store.Dispatch(InvestmentSubmitted{TempID: tempID, Draft: models.InvestmentDB{
		Amount:        amount,
		Method:        method,
		WalletAddress: walletAddress,
		Status:        models.InvestmentPending,
		StartDate:     s.now(),
	}})

	inv, err := s.api.SubmitInvestment(ctx, amount, method, walletAddress)
	if err != nil {
		s.store.Dispatch(InvestmentFailed{TempID: tempID, Err: err.Error()})
		return inv, err
	}

	s.store.Dispatch(InvestmentConfirmed{TempID: tempID, Record: inv})
	return inv, nil
}

// Withdraw shows a pending entry at once and swaps it for the server record.
func (s *Session) Withdraw(ctx context.Context, amount float64, method, address string, isSos bool) (models.WithdrawalDB, error) {
	tempID := s.newID()
	s.store.Dispatch(WithdrawalSubmitted{TempID: tempID, Draft: models.WithdrawalDB{
		Type:    models.TransactionWithdrawal,
		Amount:  amount,
		Method:  method,
		Address: address,
		IsSos:   isSos,
		Status:  models.WithdrawalPending,
		Date:    s.now(),
	}})

	wd, err := s.api.Withdraw(ctx, amount, method, address, isSos)
	if err != nil {
		s.store.Dispatch(WithdrawalFailed{TempID: tempID, Err: err.Error()})
		return wd, err
	}

	s.store.Dispatch(WithdrawalConfirmed{TempID: tempID, Record: wd})
	return wd, nil
}

// AddFunds grants test funds and updates the profile balance.
func (s *Session) AddFunds(ctx context.Context, amount float64) error {
	balance, err := s.api.AddFunds(ctx, amount)
	if err != nil {
		return err
	}
	s.store.Dispatch(BalanceChanged{Balance: balance})
	return nil
}

// DecideInvestment applies an admin decision, e.g. "Active" or "Rejected".
func (s *Session) DecideInvestment(ctx context.Context, id uuid.UUID, status string) error {
	inv, err := s.api.UpdateInvestment(ctx, id, &status, nil)
	if err != nil {
		return err
	}
	s.store.Dispatch(InvestmentDecided{Record: inv})
	return nil
}

// ChangeRequestWallet rewrites the reference wallet of an investment.
func (s *Session) ChangeRequestWallet(ctx context.Context, id uuid.UUID, address string) error {
	inv, err := s.api.UpdateInvestment(ctx, id, nil, &address)
	if err != nil {
		return err
	}
	s.store.Dispatch(RequestWalletChanged{ID: inv.ID, Address: inv.WalletAddress})
	return nil
}

// DecideWithdrawal applies an admin decision, e.g. "Approved" or "Rejected".
func (s *Session) DecideWithdrawal(ctx context.Context, id uuid.UUID, status, txID string) error {
	wd, err := s.api.DecideWithdrawal(ctx, id, status, txID)
	if err != nil {
		return err
	}
	s.store.Dispatch(WithdrawalDecided{Record: wd})
	return nil
}
