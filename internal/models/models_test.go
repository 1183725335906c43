package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvestmentStatus_CanTransitionTo(t *testing.T) {
	all := []InvestmentStatus{InvestmentPending, InvestmentActive, InvestmentCompleted, InvestmentRejected}
	allowed := map[[2]InvestmentStatus]bool{
		{InvestmentPending, InvestmentActive}:   true,
		{InvestmentPending, InvestmentRejected}: true,
		{InvestmentActive, InvestmentCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]InvestmentStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestInvestmentDecision_Status(t *testing.T) {
	s, ok := DecisionActivate.Status()
	assert.True(t, ok)
	assert.Equal(t, InvestmentActive, s)

	s, ok = DecisionReject.Status()
	assert.True(t, ok)
	assert.Equal(t, InvestmentRejected, s)

	_, ok = InvestmentDecision("Complete").Status()
	assert.False(t, ok)
}

func TestWithdrawalDecision_Status(t *testing.T) {
	s, ok := DecisionApprove.Status()
	assert.True(t, ok)
	assert.Equal(t, WithdrawalApproved, s)
	assert.True(t, s.IsTerminal())

	s, ok = DecisionRejectWithdrawal.Status()
	assert.True(t, ok)
	assert.Equal(t, WithdrawalRejected, s)
	assert.True(t, s.IsTerminal())

	_, ok = WithdrawalDecision("").Status()
	assert.False(t, ok)
	assert.False(t, WithdrawalPending.IsTerminal())
}

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates()
	assert.Len(t, rates, 7)
	assert.Equal(t, Rate{Symbol: "USDT", Rate: 3.5, Period: PeriodDaily}, rates["USDT"])

	rates["BTC"] = Rate{Symbol: "BTC", Rate: 99}
	assert.Equal(t, 1.0, DefaultRates()["BTC"].Rate)
}
