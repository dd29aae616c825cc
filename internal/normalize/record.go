package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"weekpi/pkg/contracts/domain"
)

// RowError pairs a failed row with its index in the input slice.
type RowError struct {
	Index int   `json:"index"`
	Err   error `json:"error"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

// NormalizeRecord builds a validated InsuranceRecord from one raw row.
// Classification enums and required numerics fail the record; optional
// grades and flags fall back to cleaned defaults.
func NormalizeRecord(raw map[string]string) (domain.InsuranceRecord, error) {
	var rec domain.InsuranceRecord

	date := Date(raw[domain.ColSnapshotDate])
	if !date.OK {
		return rec, fmt.Errorf("%s: %s", domain.ColSnapshotDate, date.Err)
	}
	rec.SnapshotDate = date.Value

	year, err := requiredInt(raw, domain.ColPolicyStartYear)
	if err != nil {
		return rec, err
	}
	rec.PolicyStartYear = year

	week, err := requiredInt(raw, domain.ColWeekNumber)
	if err != nil {
		return rec, err
	}
	rec.WeekNumber = week

	if rec.Branch, err = domain.ParseBranch(Text(raw[domain.ColBranch]).Value); err != nil {
		return rec, err
	}
	if rec.InsuranceType, err = domain.ParseInsuranceType(Text(raw[domain.ColInsuranceType]).Value); err != nil {
		return rec, err
	}
	if rec.CoverageType, err = domain.ParseCoverageType(Text(raw[domain.ColCoverageType]).Value); err != nil {
		return rec, err
	}
	if rec.RenewalStatus, err = domain.ParseRenewalStatus(Text(raw[domain.ColRenewalStatus]).Value); err != nil {
		return rec, err
	}

	rec.ThirdLevelOrg = Text(raw[domain.ColThirdLevelOrg]).Value
	rec.CustomerCategory = Text(raw[domain.ColCustomerCategory]).Value
	rec.BusinessTypeCategory = Text(raw[domain.ColBusinessTypeCategory]).Value
	rec.TerminalSource = Text(raw[domain.ColTerminalSource]).Value

	rec.VehicleInsuranceGrade = Text(raw[domain.ColVehicleInsuranceGrade]).Value
	rec.HighwayRiskGrade = Text(raw[domain.ColHighwayRiskGrade]).Value
	rec.LargeTruckScore = Text(raw[domain.ColLargeTruckScore]).Value
	rec.SmallTruckScore = Text(raw[domain.ColSmallTruckScore]).Value

	rec.IsNewEnergyVehicle = Boolean(raw[domain.ColIsNewEnergyVehicle], false).Value
	rec.IsTransferredVehicle = Boolean(raw[domain.ColIsTransferredVehicle], false).Value

	measures := []struct {
		col string
		dst *float64
	}{
		{domain.ColSignedPremium, &rec.SignedPremium},
		{domain.ColMaturedPremium, &rec.MaturedPremium},
		{domain.ColPolicyCount, &rec.PolicyCount},
		{domain.ColClaimCaseCount, &rec.ClaimCaseCount},
		{domain.ColReportedClaimPayment, &rec.ReportedClaimPayment},
		{domain.ColExpenseAmount, &rec.ExpenseAmount},
		{domain.ColCommercialPremium, &rec.CommercialPremiumBeforeDiscount},
		{domain.ColMarginalContribution, &rec.MarginalContribution},
	}
	for _, m := range measures {
		n := Number(raw[m.col], NumberOptions{})
		if !n.OK && strings.TrimSpace(raw[m.col]) != "" {
			return rec, fmt.Errorf("%s: %s", m.col, n.Err)
		}
		*m.dst = n.Value
	}

	if plan := Number(raw[domain.ColPremiumPlan], NumberOptions{}); plan.OK {
		v := plan.Value
		rec.PremiumPlan = &v
	}

	return domain.NewInsuranceRecord(rec)
}

// NormalizeBatch normalizes every row, collecting per-row failures and
// continuing. The returned records are in input order.
func NormalizeBatch(rows []map[string]string) ([]domain.InsuranceRecord, []RowError) {
	records := make([]domain.InsuranceRecord, 0, len(rows))
	var failures []RowError
	for i, row := range rows {
		rec, err := NormalizeRecord(row)
		if err != nil {
			failures = append(failures, RowError{Index: i, Err: err})
			continue
		}
		records = append(records, rec)
	}
	return records, failures
}

func requiredInt(raw map[string]string, col string) (int, error) {
	trimmed := strings.TrimSpace(raw[col])
	if trimmed == "" {
		return 0, fmt.Errorf("%s: required value is empty", col)
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%s: not an integer: %q", col, trimmed)
	}
	return v, nil
}
