package loanengine

import "github.com/shopspring/decimal"

var thirty = decimal.NewFromInt(30)

// DailyPenaltyRate derives a flat daily rate from a monthly penalty rate
// over a 30-day month. Known simplification: not calendar-accurate.
func DailyPenaltyRate(monthlyPenaltyRatePercent decimal.Decimal) decimal.Decimal {
	if monthlyPenaltyRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return monthlyPenaltyRatePercent.Div(hundred).Div(thirty)
}

// Penalty accrues simple daily interest on the overdue installment amount.
// Callers pass DefaultMonthlyPenaltyRatePercent unless the product
// overrides it.
func Penalty(daysOverdue int, baseInstallment, monthlyPenaltyRatePercent decimal.Decimal) decimal.Decimal {
	if daysOverdue <= 0 || baseInstallment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	rate := DailyPenaltyRate(monthlyPenaltyRatePercent)
	return Money(baseInstallment.Mul(rate).Mul(decimal.NewFromInt(int64(daysOverdue))))
}
