package loanengine

import "github.com/shopspring/decimal"

// LoanBalances is the caller-supplied loan state at payment time.
// RemainingWithFees is the fee-inclusive schedule total still owed
// (mensualité + frais × term, minus everything already paid).
type LoanBalances struct {
	PrincipalBalance  decimal.Decimal
	RemainingWithFees decimal.Decimal
	PenaltyDue        decimal.Decimal
	InterestDue       decimal.Decimal
}

// PaymentBreakdown reports how a received amount was applied.
// PenaltyPaid + InterestPaid + PrincipalPaid == TotalPaid; ExcessAmount is
// whatever exceeded the principal balance.
type PaymentBreakdown struct {
	PenaltyPaid                 decimal.Decimal
	InterestPaid                decimal.Decimal
	PrincipalPaid               decimal.Decimal
	TotalPaid                   decimal.Decimal
	ExcessAmount                decimal.Decimal
	NewRemainingBalanceWithFees decimal.Decimal
}

// AllocatePayment applies a received amount strictly penalty -> interest ->
// principal. The excess beyond the principal balance is reported, never
// auto-applied; whether it becomes a credit balance is the caller's call.
// Penalties sit outside the amortization schedule, so only the non-penalty
// portion reduces the fee-inclusive remaining total.
func AllocatePayment(amount decimal.Decimal, bal LoanBalances) PaymentBreakdown {
	var b PaymentBreakdown
	b.NewRemainingBalanceWithFees = Money(decimal.Max(decimal.Zero, bal.RemainingWithFees))
	if amount.LessThanOrEqual(decimal.Zero) {
		return b
	}

	remaining := amount
	b.PenaltyPaid = decimal.Min(remaining, decimal.Max(decimal.Zero, bal.PenaltyDue))
	remaining = remaining.Sub(b.PenaltyPaid)
	b.InterestPaid = decimal.Min(remaining, decimal.Max(decimal.Zero, bal.InterestDue))
	remaining = remaining.Sub(b.InterestPaid)
	b.PrincipalPaid = decimal.Min(remaining, decimal.Max(decimal.Zero, bal.PrincipalBalance))
	b.ExcessAmount = remaining.Sub(b.PrincipalPaid)
	b.TotalPaid = Money(b.PenaltyPaid.Add(b.InterestPaid).Add(b.PrincipalPaid))

	core := amount.Sub(b.PenaltyPaid)
	b.NewRemainingBalanceWithFees = Money(decimal.Max(decimal.Zero, bal.RemainingWithFees.Sub(core)))
	return b
}

// InstallmentStatus reports whether a core (non-penalty) payment covered the
// next scheduled installment.
type InstallmentStatus struct {
	Partial          bool
	RemainingPortion decimal.Decimal
}

// AssessInstallment flags a partial installment: the core payment fell short
// of the expected fee-inclusive installment total and the loan still carries
// a balance afterwards.
func AssessInstallment(corePaid, expectedWithFee, remainingWithFeesAfter decimal.Decimal) InstallmentStatus {
	return InstallmentStatus{
		Partial:          corePaid.LessThan(expectedWithFee) && remainingWithFeesAfter.IsPositive(),
		RemainingPortion: Money(decimal.Max(decimal.Zero, expectedWithFee.Sub(corePaid))),
	}
}
