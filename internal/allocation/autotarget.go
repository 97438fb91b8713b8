package allocation

// AutoTarget derives a suggested equity target from the investor's age
// and the prevailing risk-free rate using the linear glide path
//
//	equity = 125 - age - riskFreeRate*5
//
// clamped to [0, 100]. The bond target is whatever remains after the
// equity suggestion and the percentages already assigned to other
// classes, never below 0. otherClassPercent is the sum of target
// percentages configured for classes other than equity and bonds.
func AutoTarget(age, riskFreeRate, otherClassPercent float64) (equityPercent, bondPercent float64) {
	equityPercent = 125 - age - riskFreeRate*5
	if equityPercent < 0 {
		equityPercent = 0
	}
	if equityPercent > 100 {
		equityPercent = 100
	}

	bondPercent = 100 - otherClassPercent - equityPercent
	if bondPercent < 0 {
		bondPercent = 0
	}
	return equityPercent, bondPercent
}
