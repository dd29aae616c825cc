package testutil

import (
	"fmt"
	"strings"

	"weekpi/pkg/contracts/domain"
)

// SampleRecord returns a valid record with typical values. Use the option
// funcs to vary individual fields per test case.
func SampleRecord(opts ...func(*domain.InsuranceRecord)) domain.InsuranceRecord {
	r := domain.InsuranceRecord{
		SnapshotDate:         "2025-07-14",
		PolicyStartYear:      2025,
		WeekNumber:           29,
		Branch:               domain.BranchChengdu,
		ThirdLevelOrg:        "本部",
		CustomerCategory:     "个人客户",
		InsuranceType:        domain.InsuranceCommercial,
		BusinessTypeCategory: "家用车",
		CoverageType:         domain.CoverageFull,
		RenewalStatus:        domain.RenewalNew,
		TerminalSource:       "柜面",
		SignedPremium:        5000,
		MaturedPremium:       4000,
		PolicyCount:          2,
		ClaimCaseCount:       1,
		ReportedClaimPayment: 1200,
		ExpenseAmount:        600,

		CommercialPremiumBeforeDiscount: 5500,
		MarginalContribution:            800,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithWeek sets the week number.
func WithWeek(week int) func(*domain.InsuranceRecord) {
	return func(r *domain.InsuranceRecord) { r.WeekNumber = week }
}

// WithSignedPremium sets the signed premium in yuan.
func WithSignedPremium(yuan float64) func(*domain.InsuranceRecord) {
	return func(r *domain.InsuranceRecord) { r.SignedPremium = yuan }
}

// WithNEV marks the record as new-energy-vehicle business.
func WithNEV() func(*domain.InsuranceRecord) {
	return func(r *domain.InsuranceRecord) { r.IsNewEnergyVehicle = true }
}

// SampleRow returns one raw CSV row as the validator produces it, keyed by
// canonical column names. Override individual cells via the overrides map;
// an empty-string override blanks the cell.
func SampleRow(overrides map[string]string) map[string]string {
	row := map[string]string{
		domain.ColSnapshotDate:          "2025-07-14",
		domain.ColPolicyStartYear:       "2025",
		domain.ColWeekNumber:            "29",
		domain.ColBranch:                "成都",
		domain.ColThirdLevelOrg:         "本部",
		domain.ColCustomerCategory:      "个人客户",
		domain.ColInsuranceType:         "商业险",
		domain.ColBusinessTypeCategory:  "家用车",
		domain.ColCoverageType:          "主全",
		domain.ColRenewalStatus:         "新保",
		domain.ColVehicleInsuranceGrade: "A",
		domain.ColHighwayRiskGrade:      "A",
		domain.ColLargeTruckScore:       "",
		domain.ColSmallTruckScore:       "",
		domain.ColIsNewEnergyVehicle:    "否",
		domain.ColIsTransferredVehicle:  "否",
		domain.ColTerminalSource:        "柜面",
		domain.ColSignedPremium:         "5000",
		domain.ColMaturedPremium:        "4000",
		domain.ColPolicyCount:           "2",
		domain.ColClaimCaseCount:        "1",
		domain.ColReportedClaimPayment:  "1200",
		domain.ColExpenseAmount:         "600",
		domain.ColCommercialPremium:     "5500",
		domain.ColPremiumPlan:           "",
		domain.ColMarginalContribution:  "800",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

// CSVDocument renders rows into a CSV document with the full header, in
// export column order. Cells containing commas are not supported; fixture
// values never need quoting.
func CSVDocument(rows ...map[string]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(domain.Columns, ","))
	b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(domain.Columns))
		for i, col := range domain.Columns {
			cells[i] = row[col]
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// Records builds n valid records with distinct premiums so aggregation
// tests can tell them apart.
func Records(n int) []domain.InsuranceRecord {
	out := make([]domain.InsuranceRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SampleRecord(
			WithSignedPremium(float64(1000*(i+1))),
			func(r *domain.InsuranceRecord) {
				r.ThirdLevelOrg = fmt.Sprintf("机构%d", i%3+1)
			},
		))
	}
	return out
}
