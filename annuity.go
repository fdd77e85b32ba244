package loanengine

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortizationRow is one installment of a fixed-payment schedule. FeePortion
// and TotalPaymentWithFee stay equal to zero / TotalPayment until ApplyFee
// stamps a distributed origination fee onto the schedule.
type AmortizationRow struct {
	Installment         int
	DueDate             time.Time // zero when no start date was supplied
	StartingBalance     decimal.Decimal
	InterestAmount      decimal.Decimal
	PrincipalAmount     decimal.Decimal
	FeePortion          decimal.Decimal
	TotalPayment        decimal.Decimal
	TotalPaymentWithFee decimal.Decimal
	EndingBalance       decimal.Decimal
}

// MonthlyPayment computes the fixed annuity payment
// P * r(1+r)^n / ((1+r)^n - 1), straight-line when the rate is zero.
// Unusable inputs yield 0 so display layers can render pending states.
func MonthlyPayment(principal, monthlyRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	r := monthlyRatePercent.Div(hundred)
	if r.LessThanOrEqual(decimal.Zero) {
		return Money(principal.Div(n))
	}
	base1rn := one.Add(r).Pow(n)
	return Money(principal.Mul(r).Mul(base1rn).Div(base1rn.Sub(one)))
}

// GenerateSchedule iterates installments 1..termMonths tracking the running
// balance. The last installment repays the balance exactly, absorbing the
// accumulated rounding, so the final EndingBalance is always zero. Unusable
// inputs yield an empty schedule.
func GenerateSchedule(principal, monthlyRatePercent decimal.Decimal, termMonths int, startDate time.Time) []AmortizationRow {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	payment := MonthlyPayment(principal, monthlyRatePercent, termMonths)
	r := monthlyRatePercent.Div(hundred)
	if r.IsNegative() {
		r = decimal.Zero
	}
	balance := Money(principal)
	rows := make([]AmortizationRow, 0, termMonths)
	for i := 1; i <= termMonths; i++ {
		interest := Money(balance.Mul(r))
		var principalPart, total decimal.Decimal
		if i == termMonths {
			principalPart = balance
			total = Money(principalPart.Add(interest))
		} else {
			principalPart = Money(payment.Sub(interest))
			if principalPart.GreaterThan(balance) {
				principalPart = balance
			}
			total = payment
		}
		ending := Money(decimal.Max(decimal.Zero, balance.Sub(principalPart)))
		row := AmortizationRow{
			Installment:         i,
			StartingBalance:     balance,
			InterestAmount:      interest,
			PrincipalAmount:     principalPart,
			TotalPayment:        total,
			TotalPaymentWithFee: total,
			EndingBalance:       ending,
		}
		if !startDate.IsZero() {
			row.DueDate = startDate.AddDate(0, i, 0)
		}
		rows = append(rows, row)
		balance = ending
	}
	return rows
}

// TotalInterest is the interest paid over the whole term at the fixed
// payment, i.e. payment*n - principal.
func TotalInterest(principal, monthlyRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	payment := MonthlyPayment(principal, monthlyRatePercent, termMonths)
	if payment.IsZero() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	return Money(decimal.Max(decimal.Zero, payment.Mul(n).Sub(principal)))
}

// RemainingBalance is the closed-form outstanding principal after
// paymentsMade installments: P * ((1+r)^n - (1+r)^p) / ((1+r)^n - 1).
func RemainingBalance(principal, monthlyRatePercent decimal.Decimal, termMonths, paymentsMade int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if paymentsMade >= termMonths {
		return decimal.Zero
	}
	if paymentsMade <= 0 {
		return Money(principal)
	}
	n := decimal.NewFromInt(int64(termMonths))
	r := monthlyRatePercent.Div(hundred)
	if r.LessThanOrEqual(decimal.Zero) {
		perPeriod := principal.Div(n)
		paid := perPeriod.Mul(decimal.NewFromInt(int64(paymentsMade)))
		return Money(decimal.Max(decimal.Zero, principal.Sub(paid)))
	}
	base1rn := one.Add(r).Pow(n)
	base1rp := one.Add(r).Pow(decimal.NewFromInt(int64(paymentsMade)))
	rem := principal.Mul(base1rn.Sub(base1rp)).Div(base1rn.Sub(one))
	return Money(decimal.Max(decimal.Zero, rem))
}

// EarlyPaymentSavings is the interest a borrower avoids by settling the
// remaining principal today instead of paying out the remaining term.
func EarlyPaymentSavings(remainingPrincipal, monthlyRatePercent decimal.Decimal, remainingMonths int) decimal.Decimal {
	return TotalInterest(remainingPrincipal, monthlyRatePercent, remainingMonths)
}
