package domain

// CalculationMode selects how a KPI computation treats its record set.
type CalculationMode string

const (
	// ModeCurrent computes cumulative (year-to-date) KPIs from one snapshot.
	ModeCurrent CalculationMode = "current"
	// ModeIncrement computes week-over-week KPIs from two cumulative snapshots.
	ModeIncrement CalculationMode = "increment"
)

// KPIResult holds the derived metrics for one record set.
//
// Pointer fields are nil when their denominator was zero or the required
// target was not supplied; they are never NaN or Inf. Monetary totals are
// reported in ten-thousand yuan, rounded to the nearest integer.
type KPIResult struct {
	// Rate metrics, percentages unless noted.
	LossRatio               *float64 `json:"loss_ratio"`
	ExpenseRatio            *float64 `json:"expense_ratio"`
	MaturityRatio           *float64 `json:"maturity_ratio"`
	ContributionMarginRatio *float64 `json:"contribution_margin_ratio"`
	VariableCostRatio       *float64 `json:"variable_cost_ratio"`
	CombinedCostRatio       *float64 `json:"combined_cost_ratio"`
	MaturedClaimRatio       *float64 `json:"matured_claim_ratio"`
	// AutonomyCoefficient is a raw ratio, not a percentage.
	AutonomyCoefficient *float64 `json:"autonomy_coefficient"`

	// Absolute totals. Monetary fields in ten-thousand yuan.
	SignedPremium10k        float64 `json:"signed_premium_10k"`
	MaturedPremium10k       float64 `json:"matured_premium_10k"`
	ReportedClaimPayment10k float64 `json:"reported_claim_payment_10k"`
	ExpenseAmount10k        float64 `json:"expense_amount_10k"`
	MarginalContribution10k float64 `json:"marginal_contribution_10k"`
	PolicyCount             float64 `json:"policy_count"`
	ClaimCaseCount          float64 `json:"claim_case_count"`

	// Average metrics, absolute yuan per policy or per case.
	AveragePremium      *float64 `json:"average_premium"`
	AverageClaim        *float64 `json:"average_claim"`
	AverageExpense      *float64 `json:"average_expense"`
	AverageContribution *float64 `json:"average_contribution"`

	// Target progress, present only when a target was supplied.
	PremiumProgress            *float64 `json:"premium_progress"`
	PremiumAchievementRate     *float64 `json:"premium_achievement_rate"`
	PolicyCountProgress        *float64 `json:"policy_count_progress"`
	PolicyCountAchievementRate *float64 `json:"policy_count_achievement_rate"`
	YearProgress               *float64 `json:"year_progress"`

	RecordCount int             `json:"record_count"`
	Mode        CalculationMode `json:"mode"`
}

// IsEmpty reports whether the result was computed over zero records.
func (k KPIResult) IsEmpty() bool {
	return k.RecordCount == 0
}
