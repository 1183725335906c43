package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-evault/internal/logger"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

//go:generate mockgen -source=rate.go -destination=rate_mock.go -package=services

// RateStore keeps admin rate overrides.
type RateStore interface {
	GetAll(ctx context.Context) (map[string]models.Rate, error)
	Set(ctx context.Context, rate models.Rate) error
}

// RateService serves the rate table: built-in defaults overlaid with stored overrides.
type RateService struct {
	store RateStore
}

// NewRateService creates a new RateService.
func NewRateService(store RateStore) *RateService {
	return &RateService{store: store}
}

// List returns the effective rate table sorted by symbol.
// When overrides cannot be read the defaults are served.
func (s *RateService) List(ctx context.Context) []models.Rate {
	table := s.table(ctx)

	rates := make([]models.Rate, 0, len(table))
	for _, r := range table {
		rates = append(rates, r)
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Symbol < rates[j].Symbol })
	return rates
}

func (s *RateService) table(ctx context.Context) map[string]models.Rate {
	table := models.DefaultRates()

	overrides, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read rate overrides, serving defaults", "error", err)
		return table
	}
	for symbol, r := range overrides {
		table[symbol] = r
	}
	return table
}

// Update stores an override for symbol. An empty period keeps the current one. Admin only.
func (s *RateService) Update(ctx context.Context, actor models.Principal, symbol string, rate float64, period string) (models.Rate, error) {
	if err := requireAdmin(actor); err != nil {
		return models.Rate{}, err
	}

	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return models.Rate{}, fmt.Errorf("%w: symbol is required", ErrValidation)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return models.Rate{}, fmt.Errorf("%w: rate must be a non-negative number", ErrValidation)
	}

	switch period {
	case models.PeriodDaily, models.PeriodMonthly:
	case "":
		period = models.PeriodMonthly
		if current, ok := s.table(ctx)[symbol]; ok {
			period = current.Period
		}
	default:
		return models.Rate{}, fmt.Errorf("%w: period must be %s or %s", ErrValidation, models.PeriodDaily, models.PeriodMonthly)
	}

	r := models.Rate{Symbol: symbol, Rate: rate, Period: period}
	if err := s.store.Set(ctx, r); err != nil {
		logger.Log.Errorw("failed to store rate", "symbol", symbol, "error", err)
		return models.Rate{}, err
	}
	return r, nil
}
