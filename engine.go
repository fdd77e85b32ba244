package loanengine

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Quote is the full repayment picture for one set of terms: resolved rate,
// fixed payment, fee-inclusive schedule and totals.
type Quote struct {
	Terms              LoanTerms
	MonthlyRatePercent decimal.Decimal
	MonthlyPayment     decimal.Decimal
	TotalFee           decimal.Decimal
	TotalInterest      decimal.Decimal
	TotalWithFees      decimal.Decimal
	Schedule           []AmortizationRow
}

// BorrowerProfile is the borrower-store snapshot feeding a solvency
// assessment.
type BorrowerProfile struct {
	MonthlyIncome              decimal.Decimal
	CollateralValue            decimal.Decimal
	CollateralIsBlockedSavings bool
	ExternalCreditScore        int
	AdverseCreditFlag          bool
	Occupation                 string
	Dependents                 int
}

// Assessment pairs a quote with the solvency score computed from its
// monthly payment.
type Assessment struct {
	Quote    Quote
	Solvency SolvencyResult
}

// Engine is a stateless facade tying the calculators together with the
// configured clock and logger. Safe for concurrent use; every call computes
// a fresh result and owns nothing afterwards.
type Engine struct {
	cfg Config
}

func NewEngine(c Config) (*Engine, error) {
	if err := Start(c); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Quote builds the fee-inclusive schedule for the given terms. The monthly
// rate resolves from the stored fields, falling back to
// DefaultMonthlyRatePercent. A zero startDate anchors due dates at
// Clock.Now(); a non-positive feeRatePercent means no origination fee.
// Unusable terms produce an empty quote rather than an error so display
// layers can render pending states.
func (e *Engine) Quote(terms LoanTerms, startDate time.Time, feeRatePercent decimal.Decimal) (*Quote, error) {
	rate := terms.MonthlyRate(DefaultMonthlyRatePercent)
	q := &Quote{
		Terms:              terms,
		MonthlyRatePercent: rate,
		MonthlyPayment:     decimal.Zero,
		TotalFee:           decimal.Zero,
		TotalInterest:      decimal.Zero,
		TotalWithFees:      decimal.Zero,
	}
	if terms.TermMonths <= 0 || terms.Principal.LessThanOrEqual(decimal.Zero) {
		e.cfg.Logger.Debug("quote skipped, unusable terms",
			zap.String("principal", terms.Principal.String()),
			zap.Int("term_months", terms.TermMonths))
		return q, nil
	}
	if startDate.IsZero() {
		startDate = e.cfg.Clock.Now()
	}

	q.MonthlyPayment = MonthlyPayment(terms.Principal, rate, terms.TermMonths)
	q.TotalFee = ComputeFee(terms.Principal, feeRatePercent)
	rows, err := ApplyFee(GenerateSchedule(terms.Principal, rate, terms.TermMonths, startDate), q.TotalFee)
	if err != nil {
		return nil, err
	}
	q.Schedule = rows
	for _, row := range rows {
		q.TotalInterest = q.TotalInterest.Add(row.InterestAmount)
		q.TotalWithFees = q.TotalWithFees.Add(row.TotalPaymentWithFee)
	}
	q.TotalInterest = Money(q.TotalInterest)
	q.TotalWithFees = Money(q.TotalWithFees)
	return q, nil
}

// Assess quotes the terms and scores the borrower against the resulting
// monthly payment.
func (e *Engine) Assess(terms LoanTerms, borrower BorrowerProfile, startDate time.Time, feeRatePercent decimal.Decimal) (*Assessment, error) {
	q, err := e.Quote(terms, startDate, feeRatePercent)
	if err != nil {
		return nil, err
	}
	sol := ScoreSolvency(SolvencyInputs{
		MonthlyPayment:             q.MonthlyPayment,
		MonthlyIncome:              borrower.MonthlyIncome,
		CollateralValue:            borrower.CollateralValue,
		RequestedAmount:            terms.Principal,
		CollateralIsBlockedSavings: borrower.CollateralIsBlockedSavings,
		ExternalCreditScore:        borrower.ExternalCreditScore,
		AdverseCreditFlag:          borrower.AdverseCreditFlag,
		Occupation:                 borrower.Occupation,
		Dependents:                 borrower.Dependents,
	})
	e.cfg.Logger.Debug("solvency assessed",
		zap.Int("total_score", sol.TotalScore),
		zap.String("risk_level", string(sol.RiskLevel)))
	return &Assessment{Quote: *q, Solvency: sol}, nil
}
