package loanengine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFee(t *testing.T) {
	assertDec(t, "2500", ComputeFee(dec("50000"), DefaultFeeRatePercent))
	assertDec(t, "61.73", ComputeFee(dec("1234.56"), DefaultFeeRatePercent))
	assert.True(t, ComputeFee(decimal.Zero, DefaultFeeRatePercent).IsZero())
	assert.True(t, ComputeFee(dec("50000"), decimal.Zero).IsZero())
}

func TestDistributeFeeExactness(t *testing.T) {
	cases := []struct {
		fee   string
		count int
	}{
		{"2500", 12},
		{"2500", 6},
		{"61.73", 7},
		{"0.05", 12},
		{"0", 4},
		{"100", 3},
	}
	for _, tc := range cases {
		portions, err := DistributeFee(dec(tc.fee), tc.count)
		require.NoError(t, err)
		require.Len(t, portions, tc.count)

		sum := decimal.Zero
		for _, p := range portions {
			assert.False(t, p.IsNegative())
			sum = sum.Add(p)
		}
		assert.True(t, sum.Equal(dec(tc.fee)), "fee %s over %d: sum %s", tc.fee, tc.count, sum)
	}
}

func TestDistributeFeeResidualGoesFirst(t *testing.T) {
	portions, err := DistributeFee(dec("100"), 3)
	require.NoError(t, err)
	assertDec(t, "33.34", portions[0])
	assertDec(t, "33.33", portions[1])
	assertDec(t, "33.33", portions[2])

	portions, err = DistributeFee(dec("2500"), 12)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assertDec(t, "208.34", portions[i])
	}
	for i := 4; i < 12; i++ {
		assertDec(t, "208.33", portions[i])
	}
}

func TestDistributeFeeContractViolations(t *testing.T) {
	_, err := DistributeFee(dec("100"), 0)
	assert.ErrorIs(t, err, ErrInvalidInstallmentCount)
	_, err = DistributeFee(dec("100"), -3)
	assert.ErrorIs(t, err, ErrInvalidInstallmentCount)
	_, err = DistributeFee(dec("-1"), 3)
	assert.ErrorIs(t, err, ErrNegativeFee)
}

func TestApplyFee(t *testing.T) {
	rows := GenerateSchedule(dec("50000"), dec("3.5"), 6, time.Time{})
	fee := ComputeFee(dec("50000"), DefaultFeeRatePercent)
	withFee, err := ApplyFee(rows, fee)
	require.NoError(t, err)
	require.Len(t, withFee, 6)

	feeSum := decimal.Zero
	for i, row := range withFee {
		assert.True(t, row.TotalPaymentWithFee.Equal(row.TotalPayment.Add(row.FeePortion)))
		feeSum = feeSum.Add(row.FeePortion)
		// Original schedule untouched.
		assert.True(t, rows[i].FeePortion.IsZero())
	}
	assert.True(t, feeSum.Equal(fee), "fee portions sum %s != %s", feeSum, fee)
}

func TestApplyFeeEmptySchedule(t *testing.T) {
	out, err := ApplyFee(nil, dec("2500"))
	assert.NoError(t, err)
	assert.Empty(t, out)
}
