package kpi

import (
	"weekpi/pkg/contracts/domain"
)

// Calculate reduces a record set into a KPIResult according to the options.
// It is total over well-typed input: an empty set yields zero totals and
// nil rates, and no data condition makes it return an error.
func Calculate(records []domain.InsuranceRecord, opts Options) domain.KPIResult {
	agg := Aggregate(records)
	return computeFromAggregate(agg, opts, opts.mode())
}

// computeFromAggregate derives every KPI from pre-summed totals. Increment
// computations reuse it with delta aggregates.
func computeFromAggregate(agg AggregatedData, opts Options, mode domain.CalculationMode) domain.KPIResult {
	res := domain.KPIResult{
		SignedPremium10k:        toTenThousand(agg.SignedPremium),
		MaturedPremium10k:       toTenThousand(agg.MaturedPremium),
		ReportedClaimPayment10k: toTenThousand(agg.ReportedClaimPayment),
		ExpenseAmount10k:        toTenThousand(agg.ExpenseAmount),
		MarginalContribution10k: toTenThousand(agg.MarginalContribution),
		PolicyCount:             agg.PolicyCount,
		ClaimCaseCount:          agg.ClaimCaseCount,
		RecordCount:             agg.RecordCount,
		Mode:                    mode,
	}

	res.LossRatio = safePercent(agg.ReportedClaimPayment, agg.MaturedPremium)
	res.ExpenseRatio = safePercent(agg.ExpenseAmount, agg.SignedPremium)
	res.MaturityRatio = safePercent(agg.MaturedPremium, agg.SignedPremium)
	res.ContributionMarginRatio = safePercent(agg.MarginalContribution, agg.MaturedPremium)
	res.VariableCostRatio = safePercent(agg.ReportedClaimPayment+agg.ExpenseAmount, agg.SignedPremium)
	res.CombinedCostRatio = addPtr(res.LossRatio, res.ExpenseRatio)
	res.MaturedClaimRatio = safePercent(agg.ClaimCaseCount, agg.PolicyCount)
	res.AutonomyCoefficient = safeDivide(agg.SignedPremium, agg.CommercialPremiumBeforeDiscount)

	res.AveragePremium = safeDivide(agg.SignedPremium, agg.PolicyCount)
	res.AverageClaim = safeDivide(agg.ReportedClaimPayment, agg.ClaimCaseCount)
	res.AverageExpense = safeDivide(agg.ExpenseAmount, agg.PolicyCount)
	res.AverageContribution = safeDivide(agg.MarginalContribution, agg.PolicyCount)

	applyTargetProgress(&res, agg, opts, mode)

	return res
}
