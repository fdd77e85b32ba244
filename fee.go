package loanengine

import "github.com/shopspring/decimal"

// ComputeFee returns the flat origination fee on the approved amount.
// Callers pass DefaultFeeRatePercent unless the product overrides it.
func ComputeFee(approvedAmount, feeRatePercent decimal.Decimal) decimal.Decimal {
	if approvedAmount.LessThanOrEqual(decimal.Zero) || feeRatePercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return Money(approvedAmount.Mul(feeRatePercent).Div(hundred))
}

// DistributeFee splits totalFee into installmentCount portions that sum to
// totalFee exactly. The split works in cents: every installment gets the
// floored base and the first residual installments carry one extra cent, so
// no cent is over- or under-allocated. A non-positive installmentCount is a
// caller bug and fails fast.
func DistributeFee(totalFee decimal.Decimal, installmentCount int) ([]decimal.Decimal, error) {
	if installmentCount <= 0 {
		return nil, ErrInvalidInstallmentCount
	}
	if totalFee.IsNegative() {
		return nil, ErrNegativeFee
	}
	cents := totalFee.Round(2).Mul(hundred).IntPart()
	n := int64(installmentCount)
	base := cents / n
	residual := cents - base*n
	portions := make([]decimal.Decimal, installmentCount)
	for i := range portions {
		c := base
		if int64(i) < residual {
			c++
		}
		portions[i] = decimal.New(c, -2)
	}
	return portions, nil
}

// ApplyFee stamps a distributed fee onto a schedule, returning a copy with
// FeePortion and TotalPaymentWithFee filled in. An empty schedule passes
// through untouched.
func ApplyFee(rows []AmortizationRow, totalFee decimal.Decimal) ([]AmortizationRow, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	portions, err := DistributeFee(totalFee, len(rows))
	if err != nil {
		return nil, err
	}
	out := make([]AmortizationRow, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].FeePortion = portions[i]
		out[i].TotalPaymentWithFee = Money(out[i].TotalPayment.Add(portions[i]))
	}
	return out, nil
}
