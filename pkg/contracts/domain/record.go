package domain

import (
	"fmt"
	"strconv"
)

// Branch represents the issuing branch of a record
type Branch string

const (
	BranchChengdu Branch = "成都"
	BranchSubCo   Branch = "中支"
)

// InsuranceType represents the statutory class of the policy
type InsuranceType string

const (
	InsuranceCommercial InsuranceType = "商业险"
	InsuranceCompulsory InsuranceType = "交强险"
)

// CoverageType represents the coverage bundle sold with the policy
type CoverageType string

const (
	CoverageFull           CoverageType = "主全"
	CoverageCompulsoryPlus CoverageType = "交三"
	CoverageCompulsoryOnly CoverageType = "单交"
)

// RenewalStatus represents how the policy relates to a prior term
type RenewalStatus string

const (
	RenewalNew         RenewalStatus = "新保"
	RenewalRenewed     RenewalStatus = "续保"
	RenewalTransferred RenewalStatus = "转保"
)

// ParseBranch validates a branch value
func ParseBranch(s string) (Branch, error) {
	switch Branch(s) {
	case BranchChengdu, BranchSubCo:
		return Branch(s), nil
	}
	return "", fmt.Errorf("unknown branch: %q", s)
}

// ParseInsuranceType validates an insurance type value
func ParseInsuranceType(s string) (InsuranceType, error) {
	switch InsuranceType(s) {
	case InsuranceCommercial, InsuranceCompulsory:
		return InsuranceType(s), nil
	}
	return "", fmt.Errorf("unknown insurance type: %q", s)
}

// ParseCoverageType validates a coverage type value
func ParseCoverageType(s string) (CoverageType, error) {
	switch CoverageType(s) {
	case CoverageFull, CoverageCompulsoryPlus, CoverageCompulsoryOnly:
		return CoverageType(s), nil
	}
	return "", fmt.Errorf("unknown coverage type: %q", s)
}

// ParseRenewalStatus validates a renewal status value
func ParseRenewalStatus(s string) (RenewalStatus, error) {
	switch RenewalStatus(s) {
	case RenewalNew, RenewalRenewed, RenewalTransferred:
		return RenewalStatus(s), nil
	}
	return "", fmt.Errorf("unknown renewal status: %q", s)
}

// Week number bounds. Weeks count from the start of the plan year and may
// run into the following year, hence the 105 ceiling.
const (
	MinWeekNumber = 1
	MaxWeekNumber = 105

	MinPolicyStartYear = 2000
	MaxPolicyStartYear = 2100
)

// InsuranceRecord is one weekly snapshot row of vehicle-insurance business.
// Records are immutable after construction; build them through
// NewInsuranceRecord so the invariants below always hold:
//
//   - MinWeekNumber <= WeekNumber <= MaxWeekNumber
//   - MinPolicyStartYear <= PolicyStartYear <= MaxPolicyStartYear
//   - monetary and count measures are non-negative, except
//     ReportedClaimPayment (claim recoveries) and MarginalContribution
//     (loss-making business) which may be negative
//
// All monetary amounts are in yuan.
type InsuranceRecord struct {
	SnapshotDate    string `json:"snapshot_date"`
	PolicyStartYear int    `json:"policy_start_year"`
	WeekNumber      int    `json:"week_number"`

	Branch               Branch        `json:"chengdu_branch"`
	ThirdLevelOrg        string        `json:"third_level_organization"`
	CustomerCategory     string        `json:"customer_category_3"`
	InsuranceType        InsuranceType `json:"insurance_type"`
	BusinessTypeCategory string        `json:"business_type_category"`
	CoverageType         CoverageType  `json:"coverage_type"`
	RenewalStatus        RenewalStatus `json:"renewal_status"`

	VehicleInsuranceGrade string `json:"vehicle_insurance_grade,omitempty"`
	HighwayRiskGrade      string `json:"highway_risk_grade,omitempty"`
	LargeTruckScore       string `json:"large_truck_score,omitempty"`
	SmallTruckScore       string `json:"small_truck_score,omitempty"`

	IsNewEnergyVehicle   bool   `json:"is_new_energy_vehicle"`
	IsTransferredVehicle bool   `json:"is_transferred_vehicle"`
	TerminalSource       string `json:"terminal_source"`

	SignedPremium                   float64  `json:"signed_premium_yuan"`
	MaturedPremium                  float64  `json:"matured_premium_yuan"`
	PolicyCount                     float64  `json:"policy_count"`
	ClaimCaseCount                  float64  `json:"claim_case_count"`
	ReportedClaimPayment            float64  `json:"reported_claim_payment_yuan"`
	ExpenseAmount                   float64  `json:"expense_amount_yuan"`
	CommercialPremiumBeforeDiscount float64  `json:"commercial_premium_before_discount_yuan"`
	MarginalContribution            float64  `json:"marginal_contribution_amount_yuan"`
	PremiumPlan                     *float64 `json:"premium_plan_yuan,omitempty"`
}

// InvariantError reports a construction-time invariant violation. It is a
// hard failure for the offending record: callers must skip the record and
// report, never coerce the value.
type InvariantError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation on %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate checks the record invariants without constructing a new value.
func (r InsuranceRecord) Validate() error {
	if r.WeekNumber < MinWeekNumber || r.WeekNumber > MaxWeekNumber {
		return &InvariantError{Field: "week_number", Value: r.WeekNumber,
			Message: fmt.Sprintf("must be between %d and %d", MinWeekNumber, MaxWeekNumber)}
	}
	if r.PolicyStartYear < MinPolicyStartYear || r.PolicyStartYear > MaxPolicyStartYear {
		return &InvariantError{Field: "policy_start_year", Value: r.PolicyStartYear,
			Message: fmt.Sprintf("must be between %d and %d", MinPolicyStartYear, MaxPolicyStartYear)}
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"signed_premium_yuan", r.SignedPremium},
		{"matured_premium_yuan", r.MaturedPremium},
		{"policy_count", r.PolicyCount},
		{"claim_case_count", r.ClaimCaseCount},
		{"expense_amount_yuan", r.ExpenseAmount},
		{"commercial_premium_before_discount_yuan", r.CommercialPremiumBeforeDiscount},
	}
	for _, m := range nonNegative {
		if m.value < 0 {
			return &InvariantError{Field: m.field, Value: m.value, Message: "must not be negative"}
		}
	}
	return nil
}

// ToRaw renders the record back into the raw export row shape, keyed by the
// canonical column names. Normalizing the result yields an equal record.
func (r InsuranceRecord) ToRaw() map[string]string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	boolean := func(v bool) string {
		if v {
			return "是"
		}
		return "否"
	}

	raw := map[string]string{
		ColSnapshotDate:         r.SnapshotDate,
		ColPolicyStartYear:      strconv.Itoa(r.PolicyStartYear),
		ColWeekNumber:           strconv.Itoa(r.WeekNumber),
		ColBranch:               string(r.Branch),
		ColThirdLevelOrg:        r.ThirdLevelOrg,
		ColCustomerCategory:     r.CustomerCategory,
		ColInsuranceType:        string(r.InsuranceType),
		ColBusinessTypeCategory: r.BusinessTypeCategory,
		ColCoverageType:         string(r.CoverageType),
		ColRenewalStatus:        string(r.RenewalStatus),

		ColVehicleInsuranceGrade: r.VehicleInsuranceGrade,
		ColHighwayRiskGrade:      r.HighwayRiskGrade,
		ColLargeTruckScore:       r.LargeTruckScore,
		ColSmallTruckScore:       r.SmallTruckScore,

		ColIsNewEnergyVehicle:   boolean(r.IsNewEnergyVehicle),
		ColIsTransferredVehicle: boolean(r.IsTransferredVehicle),
		ColTerminalSource:       r.TerminalSource,

		ColSignedPremium:        num(r.SignedPremium),
		ColMaturedPremium:       num(r.MaturedPremium),
		ColPolicyCount:          num(r.PolicyCount),
		ColClaimCaseCount:       num(r.ClaimCaseCount),
		ColReportedClaimPayment: num(r.ReportedClaimPayment),
		ColExpenseAmount:        num(r.ExpenseAmount),
		ColCommercialPremium:    num(r.CommercialPremiumBeforeDiscount),
		ColMarginalContribution: num(r.MarginalContribution),
	}
	if r.PremiumPlan != nil {
		raw[ColPremiumPlan] = num(*r.PremiumPlan)
	} else {
		raw[ColPremiumPlan] = ""
	}
	return raw
}

// NewInsuranceRecord constructs a validated record. It is the only supported
// way to obtain an InsuranceRecord from untrusted data.
func NewInsuranceRecord(r InsuranceRecord) (InsuranceRecord, error) {
	if err := r.Validate(); err != nil {
		return InsuranceRecord{}, err
	}
	if r.PremiumPlan != nil {
		// Copy the pointee so the caller cannot mutate the record later.
		plan := *r.PremiumPlan
		r.PremiumPlan = &plan
	}
	return r, nil
}
