package kpi

import (
	"math"

	"weekpi/pkg/contracts/domain"
)

// YearProgress returns the elapsed fraction of the business year, capped
// at 1. When the week number is unknown it is estimated from the clock's
// day of year divided by 7.
func YearProgress(currentWeek *int, clock Clock) float64 {
	var week float64
	if currentWeek != nil && *currentWeek > 0 {
		week = float64(*currentWeek)
	} else {
		week = float64(clock.Now().YearDay()) / 7
	}
	return math.Min(week/WorkingWeeksPerYear, 1.0)
}

// applyTargetProgress fills the target-progress block of a result. The
// premium target comes from the options override, falling back to the
// summed per-record plan when present.
func applyTargetProgress(res *domain.KPIResult, agg AggregatedData, opts Options, mode domain.CalculationMode) {
	yearProgress := YearProgress(opts.CurrentWeekNumber, opts.clock())
	res.YearProgress = &yearProgress

	premiumTarget := effectiveTarget(opts.PremiumTarget, agg.PremiumPlan)
	if premiumTarget != nil {
		res.PremiumProgress = safePercent(agg.SignedPremium, *premiumTarget)
		res.PremiumAchievementRate = achievementRate(agg.SignedPremium, *premiumTarget, yearProgress, mode)
	}

	if opts.PolicyCountTarget != nil {
		res.PolicyCountProgress = safePercent(agg.PolicyCount, *opts.PolicyCountTarget)
		res.PolicyCountAchievementRate = achievementRate(agg.PolicyCount, *opts.PolicyCountTarget, yearProgress, mode)
	}
}

// achievementRate compares actual progress against expected progress.
//
// Cumulative mode measures the year-to-date completion ratio against the
// elapsed fraction of the business year. Increment mode compares one
// week's activity against the per-week plan share directly, with no year
// progress division.
func achievementRate(actual, target, yearProgress float64, mode domain.CalculationMode) *float64 {
	if mode == domain.ModeIncrement {
		weeklyShare := target / WorkingWeeksPerYear
		return safePercent(actual, weeklyShare)
	}

	completion := safeDivide(actual, target)
	if completion == nil || yearProgress <= 0 {
		return nil
	}
	v := *completion / yearProgress * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func effectiveTarget(override *float64, planSum float64) *float64 {
	if override != nil && *override > 0 {
		return override
	}
	if planSum > 0 {
		return &planSum
	}
	return nil
}
