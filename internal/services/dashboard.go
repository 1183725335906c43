package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-evault/internal/dashboard"
	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

// UserCounter counts registered users.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

// InvestmentLister lists every investment.
type InvestmentLister interface {
	ListAll(ctx context.Context) ([]models.InvestmentView, error)
}

// WithdrawalSearcher lists withdrawals, all of them for an empty search.
type WithdrawalSearcher interface {
	Search(ctx context.Context, search string) ([]models.WithdrawalView, error)
}

// DashboardService assembles the admin dashboard from current records.
type DashboardService struct {
	users       UserCounter
	investments InvestmentLister
	withdrawals WithdrawalSearcher
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(users UserCounter, investments InvestmentLister, withdrawals WithdrawalSearcher) *DashboardService {
	return &DashboardService{
		users:       users,
		investments: investments,
		withdrawals: withdrawals,
		now:         time.Now,
	}
}

// Summary loads users, investments and withdrawals concurrently and aggregates them. Admin only.
func (s *DashboardService) Summary(ctx context.Context, actor models.Principal) (dashboard.Summary, error) {
	if err := requireAdmin(actor); err != nil {
		return dashboard.Summary{}, err
	}

	var (
		userCount   int
		investments []models.InvestmentView
		withdrawals []models.WithdrawalView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		userCount, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		investments, err = s.investments.ListAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		withdrawals, err = s.withdrawals.Search(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to load dashboard data", "error", err)
		return dashboard.Summary{}, err
	}

	invs := make([]models.InvestmentDB, len(investments))
	for i, v := range investments {
		invs[i] = v.InvestmentDB
	}
	ws := make([]models.WithdrawalDB, len(withdrawals))
	for i, v := range withdrawals {
		ws[i] = v.WithdrawalDB
	}

	return dashboard.Build(userCount, invs, ws, s.now()), nil
}
