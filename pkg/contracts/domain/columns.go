package domain

// Canonical column names of the weekly detail export. These are the keys of
// the raw rows handed to validation and normalization.
const (
	ColSnapshotDate          = "snapshot_date"
	ColPolicyStartYear       = "policy_start_year"
	ColWeekNumber            = "week_number"
	ColBranch                = "chengdu_branch"
	ColThirdLevelOrg         = "third_level_organization"
	ColCustomerCategory      = "customer_category_3"
	ColInsuranceType         = "insurance_type"
	ColBusinessTypeCategory  = "business_type_category"
	ColCoverageType          = "coverage_type"
	ColRenewalStatus         = "renewal_status"
	ColVehicleInsuranceGrade = "vehicle_insurance_grade"
	ColHighwayRiskGrade      = "highway_risk_grade"
	ColLargeTruckScore       = "large_truck_score"
	ColSmallTruckScore       = "small_truck_score"
	ColIsNewEnergyVehicle    = "is_new_energy_vehicle"
	ColIsTransferredVehicle  = "is_transferred_vehicle"
	ColTerminalSource        = "terminal_source"
	ColSignedPremium         = "signed_premium_yuan"
	ColMaturedPremium        = "matured_premium_yuan"
	ColPolicyCount           = "policy_count"
	ColClaimCaseCount        = "claim_case_count"
	ColReportedClaimPayment  = "reported_claim_payment_yuan"
	ColExpenseAmount         = "expense_amount_yuan"
	ColCommercialPremium     = "commercial_premium_before_discount_yuan"
	ColPremiumPlan           = "premium_plan_yuan"
	ColMarginalContribution  = "marginal_contribution_amount_yuan"
)

// Columns lists the full 26-column schema in export order.
var Columns = []string{
	ColSnapshotDate,
	ColPolicyStartYear,
	ColBusinessTypeCategory,
	ColBranch,
	ColThirdLevelOrg,
	ColCustomerCategory,
	ColInsuranceType,
	ColIsNewEnergyVehicle,
	ColCoverageType,
	ColIsTransferredVehicle,
	ColRenewalStatus,
	ColVehicleInsuranceGrade,
	ColHighwayRiskGrade,
	ColLargeTruckScore,
	ColSmallTruckScore,
	ColTerminalSource,
	ColSignedPremium,
	ColMaturedPremium,
	ColPolicyCount,
	ColClaimCaseCount,
	ColReportedClaimPayment,
	ColExpenseAmount,
	ColCommercialPremium,
	ColPremiumPlan,
	ColMarginalContribution,
	ColWeekNumber,
}

// OptionalColumns may be blank or absent; blank values normalize to empty
// or nil rather than producing a validation error.
var OptionalColumns = map[string]struct{}{
	ColVehicleInsuranceGrade: {},
	ColHighwayRiskGrade:      {},
	ColLargeTruckScore:       {},
	ColSmallTruckScore:       {},
	ColPremiumPlan:           {},
}
