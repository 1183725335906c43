// Package dashboard derives the admin statistics from the current users,
// investments and withdrawals. It holds no state of its own.
package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-evault/internal/models"
)

// Months is the length of the trailing monthly series.
const Months = 6

// OtherAsset labels investments without a method.
const OtherAsset = "Other"

// Totals holds the headline counters.
type Totals struct {
	Users     int     `json:"users"`     // Registered users
	Invested  float64 `json:"invested"`  // Sum of all investment amounts, any status
	Withdrawn float64 `json:"withdrawn"` // Sum of approved withdrawal amounts
	Pending   int     `json:"pending"`   // Pending investments plus pending withdrawals
}

// MonthBucket is one calendar month of volume.
type MonthBucket struct {
	Label     string  `json:"label"` // e.g. "Jan 2026"
	Year      int     `json:"year"`
	Month     int     `json:"month"` // 1-12
	Invested  float64 `json:"invested"`
	Withdrawn float64 `json:"withdrawn"`
}

// AssetShare is the investment volume of one asset.
type AssetShare struct {
	Symbol     string  `json:"symbol"`
	Volume     float64 `json:"volume"`
	Percentage float64 `json:"percentage"` // Share of total volume, one decimal
}

// Summary is the full admin dashboard.
type Summary struct {
	Totals   Totals        `json:"totals"`
	Monthly  []MonthBucket `json:"monthly"`
	AssetMix []AssetShare  `json:"assetMix"`
}

// Build computes the dashboard as of now. Monthly buckets use now's location.
func Build(userCount int, investments []models.InvestmentDB, withdrawals []models.WithdrawalDB, now time.Time) Summary {
	return Summary{
		Totals:   totals(userCount, investments, withdrawals),
		Monthly:  monthly(investments, withdrawals, now),
		AssetMix: assetMix(investments),
	}
}

func totals(userCount int, investments []models.InvestmentDB, withdrawals []models.WithdrawalDB) Totals {
	t := Totals{Users: userCount}
	for _, inv := range investments {
		t.Invested += inv.Amount
		if inv.Status == models.InvestmentPending {
			t.Pending++
		}
	}
	for _, w := range withdrawals {
		switch w.Status {
		case models.WithdrawalApproved:
			t.Withdrawn += w.Amount
		case models.WithdrawalPending:
			t.Pending++
		}
	}
	return t
}

// monthIndex maps a date to a running month number so buckets compare by calendar month only.
func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func monthly(investments []models.InvestmentDB, withdrawals []models.WithdrawalDB, now time.Time) []MonthBucket {
	loc := now.Location()
	last := monthIndex(now)
	first := last - Months + 1

	buckets := make([]MonthBucket, Months)
	for i := range buckets {
		idx := first + i
		start := time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, loc)
		buckets[i] = MonthBucket{
			Label: start.Format("Jan 2006"),
			Year:  start.Year(),
			Month: int(start.Month()),
		}
	}

	for _, inv := range investments {
		if i := monthIndex(inv.StartDate.In(loc)) - first; i >= 0 && i < Months {
			buckets[i].Invested += inv.Amount
		}
	}
	for _, w := range withdrawals {
		if i := monthIndex(w.Date.In(loc)) - first; i >= 0 && i < Months {
			buckets[i].Withdrawn += w.Amount
		}
	}
	return buckets
}

func assetMix(investments []models.InvestmentDB) []AssetShare {
	volumes := make(map[string]float64)
	var total float64
	for _, inv := range investments {
		symbol := strings.TrimSpace(inv.Method)
		if symbol == "" {
			symbol = OtherAsset
		}
		volumes[symbol] += inv.Amount
		total += inv.Amount
	}

	mix := make([]AssetShare, 0, len(volumes))
	for symbol, volume := range volumes {
		share := AssetShare{Symbol: symbol, Volume: volume}
		if total > 0 {
			share.Percentage = math.Round(volume/total*1000) / 10
		}
		mix = append(mix, share)
	}

	sort.Slice(mix, func(i, j int) bool {
		if mix[i].Volume != mix[j].Volume {
			return mix[i].Volume > mix[j].Volume
		}
		return mix[i].Symbol < mix[j].Symbol
	})
	return mix
}
