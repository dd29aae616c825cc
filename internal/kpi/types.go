package kpi

import (
	"time"

	"weekpi/pkg/contracts/domain"
)

// WorkingWeeksPerYear is the business-calendar week count used for time
// progress. Holidays take roughly two weeks out of the calendar year, so
// plans are spread over 50 weeks, not 52.
const WorkingWeeksPerYear = 50

// TenThousand converts raw yuan to the ten-thousand-yuan display unit.
const TenThousand = 10000

// Clock supplies wall-clock time for the year-progress fallback. Injected
// so computations stay reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() time.Time { return time.Now() }

// fixedClock is the test clock.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a Clock frozen at t.
func FixedClock(t time.Time) Clock { return fixedClock{t: t} }

// Options parameterizes one KPI computation.
type Options struct {
	// PremiumTarget is the annual signed-premium target in yuan.
	PremiumTarget *float64 `json:"premium_target,omitempty" validate:"omitempty,gt=0"`
	// PolicyCountTarget is the annual policy-count target.
	PolicyCountTarget *float64 `json:"policy_count_target,omitempty" validate:"omitempty,gt=0"`
	// CurrentWeekNumber drives year progress; when nil the Clock fallback
	// estimates it from the day of year.
	CurrentWeekNumber *int `json:"current_week_number,omitempty" validate:"omitempty,min=1,max=105"`
	// Mode defaults to domain.ModeCurrent.
	Mode domain.CalculationMode `json:"mode,omitempty" validate:"omitempty,oneof=current increment"`
	// Clock overrides the wall-clock fallback. Nil means SystemClock.
	Clock Clock `json:"-"`
}

func (o Options) mode() domain.CalculationMode {
	if o.Mode == "" {
		return domain.ModeCurrent
	}
	return o.Mode
}

func (o Options) clock() Clock {
	if o.Clock == nil {
		return SystemClock{}
	}
	return o.Clock
}

// AggregatedData is the field-wise sum of a record set. It exists only for
// the duration of one computation.
type AggregatedData struct {
	SignedPremium                   float64 `json:"signed_premium_yuan"`
	MaturedPremium                  float64 `json:"matured_premium_yuan"`
	PolicyCount                     float64 `json:"policy_count"`
	ClaimCaseCount                  float64 `json:"claim_case_count"`
	ReportedClaimPayment            float64 `json:"reported_claim_payment_yuan"`
	ExpenseAmount                   float64 `json:"expense_amount_yuan"`
	CommercialPremiumBeforeDiscount float64 `json:"commercial_premium_before_discount_yuan"`
	MarginalContribution            float64 `json:"marginal_contribution_amount_yuan"`
	PremiumPlan                     float64 `json:"premium_plan_yuan"`
	RecordCount                     int     `json:"record_count"`
}

// Sub returns the field-wise difference a - b. Claim payments and
// contribution may legitimately go negative between snapshots.
func (a AggregatedData) Sub(b AggregatedData) AggregatedData {
	return AggregatedData{
		SignedPremium:                   a.SignedPremium - b.SignedPremium,
		MaturedPremium:                  a.MaturedPremium - b.MaturedPremium,
		PolicyCount:                     a.PolicyCount - b.PolicyCount,
		ClaimCaseCount:                  a.ClaimCaseCount - b.ClaimCaseCount,
		ReportedClaimPayment:            a.ReportedClaimPayment - b.ReportedClaimPayment,
		ExpenseAmount:                   a.ExpenseAmount - b.ExpenseAmount,
		CommercialPremiumBeforeDiscount: a.CommercialPremiumBeforeDiscount - b.CommercialPremiumBeforeDiscount,
		MarginalContribution:            a.MarginalContribution - b.MarginalContribution,
		PremiumPlan:                     a.PremiumPlan - b.PremiumPlan,
		RecordCount:                     a.RecordCount - b.RecordCount,
	}
}

// IncrementResult is the outcome of a week-over-week computation.
type IncrementResult struct {
	// Merged carries rate metrics from the cumulative snapshot and
	// absolute/average/progress metrics from the increment.
	Merged domain.KPIResult `json:"merged"`
	// Current is the cumulative result as of the current week.
	Current domain.KPIResult `json:"current"`
	// Previous and Increment are nil when the previous snapshot was empty.
	Previous  *domain.KPIResult `json:"previous,omitempty"`
	Increment *domain.KPIResult `json:"increment,omitempty"`
	// Message explains degenerate cases such as a missing previous week.
	Message string `json:"message,omitempty"`
}
