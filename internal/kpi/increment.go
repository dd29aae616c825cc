package kpi

import (
	"weekpi/pkg/contracts/domain"
)

// MessageNoPreviousWeek explains a degenerate increment computation.
const MessageNoPreviousWeek = "previous week snapshot is empty; returning cumulative values only"

// CalculateIncrement computes week-over-week KPIs from two cumulative
// snapshots. Both inputs are year-to-date record sets as of their week.
//
// Absolute and average metrics in the merged result come from the
// current-minus-previous delta ("this week's new activity"); rate metrics
// come from the current cumulative totals so they reflect year-to-date
// quality. An empty previous set degrades gracefully: the merged block is
// the current cumulative result and Previous/Increment stay nil.
func CalculateIncrement(current, previous []domain.InsuranceRecord, opts Options) IncrementResult {
	currentAgg := Aggregate(current)

	if len(previous) == 0 {
		cumulative := computeFromAggregate(currentAgg, opts, domain.ModeCurrent)
		return IncrementResult{
			Merged:  cumulative,
			Current: cumulative,
			Message: MessageNoPreviousWeek,
		}
	}

	previousAgg := Aggregate(previous)
	incrementAgg := currentAgg.Sub(previousAgg)

	cumulative := computeFromAggregate(currentAgg, opts, domain.ModeCurrent)
	previousRes := computeFromAggregate(previousAgg, opts, domain.ModeCurrent)
	incrementRes := computeFromAggregate(incrementAgg, opts, domain.ModeIncrement)

	merged := incrementRes
	merged.LossRatio = cumulative.LossRatio
	merged.ExpenseRatio = cumulative.ExpenseRatio
	merged.MaturityRatio = cumulative.MaturityRatio
	merged.ContributionMarginRatio = cumulative.ContributionMarginRatio
	merged.VariableCostRatio = cumulative.VariableCostRatio
	merged.CombinedCostRatio = cumulative.CombinedCostRatio
	merged.MaturedClaimRatio = cumulative.MaturedClaimRatio
	merged.AutonomyCoefficient = cumulative.AutonomyCoefficient
	merged.Mode = domain.ModeIncrement

	return IncrementResult{
		Merged:    merged,
		Current:   cumulative,
		Previous:  &previousRes,
		Increment: &incrementRes,
	}
}
