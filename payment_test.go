package loanengine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllocatePaymentWaterfall(t *testing.T) {
	b := AllocatePayment(dec("100"), LoanBalances{
		PrincipalBalance:  dec("1000"),
		RemainingWithFees: dec("1100"),
		PenaltyDue:        dec("20"),
		InterestDue:       dec("30"),
	})
	assertDec(t, "20", b.PenaltyPaid)
	assertDec(t, "30", b.InterestPaid)
	assertDec(t, "50", b.PrincipalPaid)
	assertDec(t, "100", b.TotalPaid)
	assert.True(t, b.ExcessAmount.IsZero())
	// Penalty is outside the schedule: only the 80 core reduces the
	// fee-inclusive total.
	assertDec(t, "1020", b.NewRemainingBalanceWithFees)
}

func TestAllocatePaymentInvariant(t *testing.T) {
	cases := []struct {
		amount, principal, penalty, interest string
	}{
		{"100", "1000", "20", "30"},
		{"15", "1000", "20", "30"},
		{"45", "1000", "20", "30"},
		{"500.55", "320.10", "0", "12.45"},
		{"10", "0", "0", "0"},
	}
	for _, tc := range cases {
		b := AllocatePayment(dec(tc.amount), LoanBalances{
			PrincipalBalance: dec(tc.principal),
			PenaltyDue:       dec(tc.penalty),
			InterestDue:      dec(tc.interest),
		})
		sum := b.PenaltyPaid.Add(b.InterestPaid).Add(b.PrincipalPaid)
		assert.True(t, sum.Equal(b.TotalPaid), "amount %s: parts %s != total %s", tc.amount, sum, b.TotalPaid)
		assert.True(t, b.PrincipalPaid.LessThanOrEqual(dec(tc.principal)))
	}
}

func TestAllocatePaymentShortOfPenalty(t *testing.T) {
	b := AllocatePayment(dec("15"), LoanBalances{
		PrincipalBalance:  dec("1000"),
		RemainingWithFees: dec("1100"),
		PenaltyDue:        dec("20"),
		InterestDue:       dec("30"),
	})
	assertDec(t, "15", b.PenaltyPaid)
	assert.True(t, b.InterestPaid.IsZero())
	assert.True(t, b.PrincipalPaid.IsZero())
	assertDec(t, "1100", b.NewRemainingBalanceWithFees)
}

func TestAllocatePaymentOverpayment(t *testing.T) {
	b := AllocatePayment(dec("1200"), LoanBalances{
		PrincipalBalance:  dec("1000"),
		RemainingWithFees: dec("1050"),
		PenaltyDue:        dec("20"),
		InterestDue:       dec("30"),
	})
	assertDec(t, "20", b.PenaltyPaid)
	assertDec(t, "30", b.InterestPaid)
	assertDec(t, "1000", b.PrincipalPaid)
	assertDec(t, "1050", b.TotalPaid)
	// Surplus is reported, never auto-applied.
	assertDec(t, "150", b.ExcessAmount)
	assert.True(t, b.NewRemainingBalanceWithFees.IsZero())
}

func TestAllocatePaymentNonPositiveAmount(t *testing.T) {
	b := AllocatePayment(decimal.Zero, LoanBalances{
		PrincipalBalance:  dec("1000"),
		RemainingWithFees: dec("1100"),
		PenaltyDue:        dec("20"),
	})
	assert.True(t, b.TotalPaid.IsZero())
	assertDec(t, "1100", b.NewRemainingBalanceWithFees)
}

func TestAssessInstallment(t *testing.T) {
	st := AssessInstallment(dec("80"), dec("208.34"), dec("1020"))
	assert.True(t, st.Partial)
	assertDec(t, "128.34", st.RemainingPortion)

	// Fully covered installment.
	st = AssessInstallment(dec("208.34"), dec("208.34"), dec("811.66"))
	assert.False(t, st.Partial)
	assert.True(t, st.RemainingPortion.IsZero())

	// Short payment that settles the loan anyway is not partial.
	st = AssessInstallment(dec("100"), dec("208.34"), decimal.Zero)
	assert.False(t, st.Partial)
	assertDec(t, "108.34", st.RemainingPortion)
}
