package validation

import (
	"weekpi/pkg/contracts/domain"
)

// FieldType is the declared type of a schema column.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeDate    FieldType = "date"
)

// CustomValidator inspects a cleaned value and returns ok, or ok=false with
// a human-readable message.
type CustomValidator func(value string) (ok bool, message string)

// FieldSpec declares validation rules for one column.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Required    bool // a required column must be present AND non-blank per row
	Enum        []string
	NonNegative bool
	Custom      CustomValidator
}

// Enum sets from the data dictionary. Grade fields include the empty string
// because blank grades are legitimate.
var (
	branchEnum        = []string{string(domain.BranchChengdu), string(domain.BranchSubCo)}
	insuranceTypeEnum = []string{string(domain.InsuranceCommercial), string(domain.InsuranceCompulsory)}
	coverageTypeEnum  = []string{string(domain.CoverageFull), string(domain.CoverageCompulsoryPlus), string(domain.CoverageCompulsoryOnly)}
	renewalStatusEnum = []string{string(domain.RenewalNew), string(domain.RenewalRenewed), string(domain.RenewalTransferred)}

	vehicleGradeEnum = []string{"A", "B", "C", "D", "E", "F", "G", "X", ""}
	highwayGradeEnum = []string{"A", "B", "C", "D", "E", "F", "X", ""}
	truckScoreEnum   = []string{"A", "B", "C", "D", "E", "X", ""}
)

// Typical ranges checked as business-rule warnings, not errors.
const (
	typicalWeekMin = 28
	typicalWeekMax = 105
	typicalYearMin = 2024
	typicalYearMax = 2025
)

// Schema returns the 26-column weekly detail schema in export order.
func Schema() []FieldSpec {
	return []FieldSpec{
		{Name: domain.ColSnapshotDate, Type: TypeDate, Required: true},
		{Name: domain.ColPolicyStartYear, Type: TypeNumber, Required: true},
		{Name: domain.ColBusinessTypeCategory, Type: TypeString, Required: true},
		{Name: domain.ColBranch, Type: TypeString, Required: true, Enum: branchEnum},
		{Name: domain.ColThirdLevelOrg, Type: TypeString, Required: true},
		{Name: domain.ColCustomerCategory, Type: TypeString, Required: true},
		{Name: domain.ColInsuranceType, Type: TypeString, Required: true, Enum: insuranceTypeEnum},
		{Name: domain.ColIsNewEnergyVehicle, Type: TypeBoolean, Required: true},
		{Name: domain.ColCoverageType, Type: TypeString, Required: true, Enum: coverageTypeEnum},
		{Name: domain.ColIsTransferredVehicle, Type: TypeBoolean, Required: true},
		{Name: domain.ColRenewalStatus, Type: TypeString, Required: true, Enum: renewalStatusEnum},
		{Name: domain.ColVehicleInsuranceGrade, Type: TypeString, Enum: vehicleGradeEnum},
		{Name: domain.ColHighwayRiskGrade, Type: TypeString, Enum: highwayGradeEnum},
		{Name: domain.ColLargeTruckScore, Type: TypeString, Enum: truckScoreEnum},
		{Name: domain.ColSmallTruckScore, Type: TypeString, Enum: truckScoreEnum},
		{Name: domain.ColTerminalSource, Type: TypeString, Required: true},
		{Name: domain.ColSignedPremium, Type: TypeNumber, Required: true, NonNegative: true},
		{Name: domain.ColMaturedPremium, Type: TypeNumber, Required: true, NonNegative: true},
		{Name: domain.ColPolicyCount, Type: TypeNumber, Required: true, NonNegative: true},
		{Name: domain.ColClaimCaseCount, Type: TypeNumber, Required: true, NonNegative: true},
		{Name: domain.ColReportedClaimPayment, Type: TypeNumber, Required: true},
		{Name: domain.ColExpenseAmount, Type: TypeNumber, Required: true, NonNegative: true},
		{Name: domain.ColCommercialPremium, Type: TypeNumber, Required: true, NonNegative: true},
		{Name: domain.ColPremiumPlan, Type: TypeNumber},
		{Name: domain.ColMarginalContribution, Type: TypeNumber, Required: true},
		{Name: domain.ColWeekNumber, Type: TypeNumber, Required: true},
	}
}
