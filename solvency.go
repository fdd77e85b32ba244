package loanengine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SolvencyInputs feeds the 100-point heuristic scorer. MonthlyPayment is
// expected to come from MonthlyPayment / a Quote for the requested terms.
type SolvencyInputs struct {
	MonthlyPayment             decimal.Decimal
	MonthlyIncome              decimal.Decimal
	CollateralValue            decimal.Decimal
	RequestedAmount            decimal.Decimal
	CollateralIsBlockedSavings bool
	ExternalCreditScore        int  // 0 when no bureau score is available
	AdverseCreditFlag          bool // explicit default/fraud signal from the bureau
	Occupation                 string
	Dependents                 int
}

type SolvencyResult struct {
	DebtToIncomeRatioPercent       decimal.Decimal
	NoVerifiableIncome             bool
	CollateralCoverageRatioPercent decimal.Decimal
	CreditHistoryBand              CreditHistoryBand
	PaymentCapacityScore           int // 0-30
	CollateralScore                int // 0-30
	CreditHistoryScore             int // 0-25
	StabilityScore                 int // 0-15
	TotalScore                     int // 0-100
	RiskLevel                      RiskLevel
	Recommendation                 string
}

// StableOccupations is the allow-list feeding the stability score. Matching
// is case-insensitive substring, so stems cover gendered and accented
// variants ("Infirmière diplômée" matches "infirmi"). Borrower records are
// French; the English terms cover migrated data.
var StableOccupations = []string{
	"enseignant", "professeur", "infirmi", "médecin", "medecin",
	"fonctionnaire", "comptable", "ingénieur", "ingenieur", "agronome",
	"teacher", "professor", "nurse", "doctor", "civil servant",
	"accountant", "engineer",
}

func isStableOccupation(occupation string) bool {
	o := strings.ToLower(occupation)
	if o == "" {
		return false
	}
	for _, s := range StableOccupations {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

// ScoreSolvency computes the heuristic credit score and maps it to a risk
// tier and recommendation. Pure function; every call scores a fresh
// snapshot.
func ScoreSolvency(in SolvencyInputs) SolvencyResult {
	var res SolvencyResult

	// Payment capacity, 30 points. Band bounds are inclusive: a ratio of
	// exactly 25.00 still scores 30.
	if in.MonthlyIncome.IsPositive() {
		ratio := in.MonthlyPayment.Div(in.MonthlyIncome).Mul(hundred).Round(2)
		res.DebtToIncomeRatioPercent = ratio
		switch {
		case ratio.LessThanOrEqual(decimal.NewFromInt(25)):
			res.PaymentCapacityScore = 30
		case ratio.LessThanOrEqual(decimal.NewFromInt(35)):
			res.PaymentCapacityScore = 25
		case ratio.LessThanOrEqual(decimal.NewFromInt(45)):
			res.PaymentCapacityScore = 15
		case ratio.LessThanOrEqual(decimal.NewFromInt(55)):
			res.PaymentCapacityScore = 5
		}
	} else {
		// The ratio is unbounded without income; decimal has no infinity, so
		// the flag carries that state and capacity scores zero.
		res.NoVerifiableIncome = true
		res.DebtToIncomeRatioPercent = decimal.Zero
	}

	// Collateral coverage, 30 points. Blocked savings is liquid and already
	// held by the institution, so its thresholds sit roughly an order of
	// magnitude below physical collateral.
	if in.RequestedAmount.IsPositive() {
		cov := in.CollateralValue.Div(in.RequestedAmount).Mul(hundred).Round(2)
		res.CollateralCoverageRatioPercent = cov
		if in.CollateralIsBlockedSavings {
			switch {
			case cov.GreaterThanOrEqual(decimal.NewFromInt(25)):
				res.CollateralScore = 30
			case cov.GreaterThanOrEqual(decimal.NewFromInt(20)):
				res.CollateralScore = 25
			case cov.GreaterThanOrEqual(decimal.NewFromInt(15)):
				res.CollateralScore = 20
			case cov.GreaterThanOrEqual(decimal.NewFromInt(10)):
				res.CollateralScore = 10
			}
		} else {
			switch {
			case cov.GreaterThanOrEqual(decimal.NewFromInt(200)):
				res.CollateralScore = 30
			case cov.GreaterThanOrEqual(decimal.NewFromInt(150)):
				res.CollateralScore = 25
			case cov.GreaterThanOrEqual(decimal.NewFromInt(120)):
				res.CollateralScore = 20
			case cov.GreaterThanOrEqual(decimal.NewFromInt(100)):
				res.CollateralScore = 10
			}
		}
	} else {
		res.CollateralCoverageRatioPercent = decimal.Zero
	}

	// Credit history, 25 points. POOR is never derived from the score
	// ranges; it takes the explicit adverse signal.
	switch {
	case in.AdverseCreditFlag:
		res.CreditHistoryBand = HistoryPoor
		res.CreditHistoryScore = 5
	case in.ExternalCreditScore >= 800:
		res.CreditHistoryBand = HistoryExcellent
		res.CreditHistoryScore = 25
	case in.ExternalCreditScore >= 700:
		res.CreditHistoryBand = HistoryGood
		res.CreditHistoryScore = 20
	case in.ExternalCreditScore >= 600:
		res.CreditHistoryBand = HistoryFair
		res.CreditHistoryScore = 15
	default:
		res.CreditHistoryBand = HistoryUnknown
		res.CreditHistoryScore = 10
	}

	// Stability, 15 points: base 10, +3 stable occupation, +2 small
	// household.
	res.StabilityScore = 10
	if isStableOccupation(in.Occupation) {
		res.StabilityScore += 3
	}
	if in.Dependents <= 3 {
		res.StabilityScore += 2
	}

	res.TotalScore = res.PaymentCapacityScore + res.CollateralScore +
		res.CreditHistoryScore + res.StabilityScore

	switch {
	case res.TotalScore >= 80:
		res.RiskLevel = RiskLow
		res.Recommendation = RecommendApprove
	case res.TotalScore >= 60:
		res.RiskLevel = RiskMedium
		res.Recommendation = RecommendApproveWithConditions
	case res.TotalScore >= 40:
		res.RiskLevel = RiskMedium
		res.Recommendation = RecommendApproveWithCollateral
	default:
		res.RiskLevel = RiskHigh
		res.Recommendation = RecommendReject
	}
	return res
}
