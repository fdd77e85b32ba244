package loanengine

import (
	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

// RoundStrategy rounds a monetary amount to its stored precision.
type RoundStrategy = func(d decimal.Decimal) decimal.Decimal

// CreditHistoryBand classifies an external bureau score.
type CreditHistoryBand string

const (
	HistoryExcellent CreditHistoryBand = "EXCELLENT"
	HistoryGood      CreditHistoryBand = "GOOD"
	HistoryFair      CreditHistoryBand = "FAIR"
	HistoryPoor      CreditHistoryBand = "POOR"
	HistoryUnknown   CreditHistoryBand = "UNKNOWN"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

const (
	RecommendApprove               = "APPROVE"
	RecommendApproveWithConditions = "APPROVE WITH CONDITIONS"
	RecommendApproveWithCollateral = "APPROVE WITH ADDITIONAL COLLATERAL"
	RecommendReject                = "REJECT"
)

// Call-site defaults. The engine never applies these on its own; callers
// (and the Engine facade) pass them explicitly.
var (
	DefaultMonthlyRatePercent        = decimal.NewFromFloat(3.5)
	DefaultFeeRatePercent            = decimal.NewFromInt(5)
	DefaultMonthlyPenaltyRatePercent = decimal.NewFromInt(1)
)

// HalfUp rounds half away from zero to 2 decimals. Amounts in this package
// are non-negative, so this is round-half-up.
var HalfUp = func(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// Money applies the configured rounding strategy. Rounding happens at each
// computation step, never deferred to the end of a schedule.
func Money(d decimal.Decimal) decimal.Decimal {
	return cfg.RoundStrategy(d)
}

// LoanTerms is the stored-loan snapshot callers feed into the engine.
// A zero rate field means the value is unknown upstream.
type LoanTerms struct {
	Principal          decimal.Decimal
	MonthlyRatePercent decimal.Decimal
	AnnualRatePercent  decimal.Decimal
	TermMonths         int
}

// MonthlyRate resolves the usable monthly rate for these terms, falling back
// to def when neither stored rate is usable.
func (t LoanTerms) MonthlyRate(def decimal.Decimal) decimal.Decimal {
	return ResolveMonthlyRatePercent(t.MonthlyRatePercent, t.AnnualRatePercent, def)
}
