package loanengine

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Percent is an unambiguous percentage. Stored loan fields conflate 0.035
// and 3.5 as "the same rate"; constructing a Percent forces the caller to
// say which representation it holds.
type Percent struct {
	v decimal.Decimal
}

// PercentFromPercent wraps a value already expressed as a percentage (3.5).
func PercentFromPercent(v decimal.Decimal) Percent { return Percent{v: v} }

// PercentFromFraction wraps a value expressed as a fraction (0.035).
func PercentFromFraction(v decimal.Decimal) Percent { return Percent{v: v.Mul(hundred)} }

func (p Percent) Value() decimal.Decimal    { return p.v }
func (p Percent) Fraction() decimal.Decimal { return p.v.Div(hundred) }
func (p Percent) IsZero() bool              { return p.v.IsZero() }

// NormalizePercent is a compatibility shim for legacy stored rates with an
// unknown representation. Loan rates in this domain are never below 1% when
// expressed as a percentage, so anything in (0,1) is read as a fraction.
// Absent, zero or negative values normalize to 0. New code should construct
// a Percent instead.
func NormalizePercent(v decimal.Decimal) decimal.Decimal {
	if v.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if v.LessThan(one) {
		return v.Mul(hundred)
	}
	return v
}

// ResolveMonthlyRatePercent prefers a usable stored monthly rate, then
// annual/12, then def.
func ResolveMonthlyRatePercent(monthlyRate, annualRate, def decimal.Decimal) decimal.Decimal {
	if m := NormalizePercent(monthlyRate); m.IsPositive() {
		return m
	}
	if a := NormalizePercent(annualRate); a.IsPositive() {
		return a.Div(twelve)
	}
	return def
}

// ResolveAnnualRatePercent returns the stored annual rate only when it
// exceeds 12; a normalized annual value at or below 12 is indistinguishable
// from a monthly rate, so in that band a monthly-derived annual wins. The
// asymmetry is kept for parity with existing loan records.
func ResolveAnnualRatePercent(monthlyRate, annualRate, def decimal.Decimal) decimal.Decimal {
	a := NormalizePercent(annualRate)
	if a.GreaterThan(twelve) {
		return a
	}
	if m := NormalizePercent(monthlyRate); m.IsPositive() {
		return m.Mul(twelve)
	}
	if a.IsPositive() {
		return a
	}
	return def
}
