package kpi

import (
	"weekpi/pkg/contracts/domain"
)

// Aggregate sums every measure field across the record set. Plain linear
// reduction; only addition is involved, so the result is independent of
// record order.
func Aggregate(records []domain.InsuranceRecord) AggregatedData {
	var agg AggregatedData
	for _, r := range records {
		agg.SignedPremium += r.SignedPremium
		agg.MaturedPremium += r.MaturedPremium
		agg.PolicyCount += r.PolicyCount
		agg.ClaimCaseCount += r.ClaimCaseCount
		agg.ReportedClaimPayment += r.ReportedClaimPayment
		agg.ExpenseAmount += r.ExpenseAmount
		agg.CommercialPremiumBeforeDiscount += r.CommercialPremiumBeforeDiscount
		agg.MarginalContribution += r.MarginalContribution
		if r.PremiumPlan != nil {
			agg.PremiumPlan += *r.PremiumPlan
		}
	}
	agg.RecordCount = len(records)
	return agg
}
