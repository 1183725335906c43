// Package yield computes illustrative staking returns.
package yield

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned for negative or non-finite inputs.
var ErrInvalidInput = errors.New("principal, rate and duration must be finite non-negative numbers")

// Result is the projected return, each field rounded to cents.
type Result struct {
	DailyProfit float64 `json:"dailyProfit"`
	TotalProfit float64 `json:"totalProfit"`
	FinalReturn float64 `json:"finalReturn"`
}

// Calculate projects the return of principal at dailyRate percent per day over days.
func Calculate(principal, dailyRate, days float64) (Result, error) {
	for _, v := range []float64{principal, dailyRate, days} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Result{}, ErrInvalidInput
		}
	}

	daily := principal * dailyRate / 100
	total := daily * days

	return Result{
		DailyProfit: round2(daily),
		TotalProfit: round2(total),
		FinalReturn: round2(principal + total),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
