package models

// Rate periods
const (
	PeriodDaily   = "Daily"
	PeriodMonthly = "Monthly"
)

// Rate is the advertised yield of an asset.
type Rate struct {
	Symbol string  `json:"symbol"` // Asset symbol, upper case
	Rate   float64 `json:"rate"`   // Yield in percent per period
	Period string  `json:"period"` // Daily or Monthly
}

// DefaultRates returns the built-in rate table.
func DefaultRates() map[string]Rate {
	return map[string]Rate{
		"USDT":  {Symbol: "USDT", Rate: 3.5, Period: PeriodDaily},
		"DODGE": {Symbol: "DODGE", Rate: 0.66, Period: PeriodMonthly},
		"XRP":   {Symbol: "XRP", Rate: 0.66, Period: PeriodMonthly},
		"ETH":   {Symbol: "ETH", Rate: 0.66, Period: PeriodMonthly},
		"SOL":   {Symbol: "SOL", Rate: 0.83, Period: PeriodMonthly},
		"BNB":   {Symbol: "BNB", Rate: 0.83, Period: PeriodMonthly},
		"BTC":   {Symbol: "BTC", Rate: 1.0, Period: PeriodMonthly},
	}
}
