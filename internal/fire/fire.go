// Package fire provides financial-independence projection math: the FI
// number, savings rate, and a compound-growth projection of net worth.
// All functions are pure; monetary amounts are in cents.
package fire

import "math"

// Input holds the parameters for a FIRE projection.
type Input struct {
	NetWorth          int64   `json:"net_worth"`
	AnnualExpenses    int64   `json:"annual_expenses"`
	AnnualSavings     int64   `json:"annual_savings"`
	ExpectedReturnPct float64 `json:"expected_return_pct"`
	WithdrawalRatePct float64 `json:"withdrawal_rate_pct"`
}

// YearPoint is one year of a projection series.
type YearPoint struct {
	Year     int   `json:"year"`
	NetWorth int64 `json:"net_worth"`
	Reached  bool  `json:"reached"`
}

// Number returns the net worth at which annual expenses are covered by
// the safe withdrawal rate (expenses / rate). A non-positive rate yields
// 0, meaning no meaningful target.
func Number(annualExpenses int64, withdrawalRatePct float64) int64 {
	if withdrawalRatePct <= 0 || annualExpenses <= 0 {
		return 0
	}
	return int64(math.Round(float64(annualExpenses) / (withdrawalRatePct / 100)))
}

// SavingsRate returns savings as a percentage of income, 0 when income
// is not positive.
func SavingsRate(annualIncome, annualExpenses int64) float64 {
	if annualIncome <= 0 {
		return 0
	}
	saved := annualIncome - annualExpenses
	if saved < 0 {
		saved = 0
	}
	return float64(saved) / float64(annualIncome) * 100
}

// YearsToTarget returns the number of years of constant saving and
// compound growth until the FI number is reached. Returns 0 when the
// target is already met and +Inf when it is unreachable (no growth and
// no savings).
func YearsToTarget(in Input) float64 {
	target := Number(in.AnnualExpenses, in.WithdrawalRatePct)
	if target <= 0 || in.NetWorth >= target {
		return 0
	}

	r := in.ExpectedReturnPct / 100
	pv := float64(in.NetWorth)
	pmt := float64(in.AnnualSavings)
	ft := float64(target)

	if r == 0 {
		if pmt <= 0 {
			return math.Inf(1)
		}
		return (ft - pv) / pmt
	}

	// Future value of an annuity plus growing principal:
	// ft = pv*(1+r)^n + pmt*((1+r)^n - 1)/r, solved for n.
	numerator := ft + pmt/r
	denominator := pv + pmt/r
	if denominator <= 0 || numerator <= 0 {
		return math.Inf(1)
	}
	n := math.Log(numerator/denominator) / math.Log(1+r)
	if n < 0 || math.IsNaN(n) {
		return math.Inf(1)
	}
	return n
}

// Project returns a year-by-year net worth series for the given horizon,
// marking the year the FI number is first reached.
func Project(in Input, years int) []YearPoint {
	target := Number(in.AnnualExpenses, in.WithdrawalRatePct)
	r := in.ExpectedReturnPct / 100

	series := make([]YearPoint, 0, years+1)
	worth := float64(in.NetWorth)
	for year := 0; year <= years; year++ {
		point := YearPoint{
			Year:     year,
			NetWorth: int64(math.Round(worth)),
		}
		point.Reached = target > 0 && point.NetWorth >= target
		series = append(series, point)

		worth = worth*(1+r) + float64(in.AnnualSavings)
	}
	return series
}
