package exporter

import (
	"fmt"

	"weekpi/internal/kpi"
	"weekpi/internal/radar"
	"weekpi/pkg/contracts/domain"
)

// WriteKPISummary exports one KPI result as a two-column metric/value CSV.
func (w *CSVWriter) WriteKPISummary(fileName string, res domain.KPIResult) error {
	records := [][]string{
		{"mode", string(res.Mode)},
		{"record_count", fmt.Sprintf("%d", res.RecordCount)},
		{"signed_premium_10k", formatFloat(res.SignedPremium10k)},
		{"matured_premium_10k", formatFloat(res.MaturedPremium10k)},
		{"reported_claim_payment_10k", formatFloat(res.ReportedClaimPayment10k)},
		{"expense_amount_10k", formatFloat(res.ExpenseAmount10k)},
		{"marginal_contribution_10k", formatFloat(res.MarginalContribution10k)},
		{"policy_count", formatFloat(res.PolicyCount)},
		{"claim_case_count", formatFloat(res.ClaimCaseCount)},
		{"loss_ratio", formatOptional(res.LossRatio)},
		{"expense_ratio", formatOptional(res.ExpenseRatio)},
		{"maturity_ratio", formatOptional(res.MaturityRatio)},
		{"contribution_margin_ratio", formatOptional(res.ContributionMarginRatio)},
		{"variable_cost_ratio", formatOptional(res.VariableCostRatio)},
		{"combined_cost_ratio", formatOptional(res.CombinedCostRatio)},
		{"matured_claim_ratio", formatOptional(res.MaturedClaimRatio)},
		{"autonomy_coefficient", formatOptional(res.AutonomyCoefficient)},
		{"average_premium", formatOptional(res.AveragePremium)},
		{"average_claim", formatOptional(res.AverageClaim)},
		{"average_expense", formatOptional(res.AverageExpense)},
		{"average_contribution", formatOptional(res.AverageContribution)},
		{"premium_progress", formatOptional(res.PremiumProgress)},
		{"premium_achievement_rate", formatOptional(res.PremiumAchievementRate)},
		{"policy_count_progress", formatOptional(res.PolicyCountProgress)},
		{"policy_count_achievement_rate", formatOptional(res.PolicyCountAchievementRate)},
		{"year_progress", formatOptional(res.YearProgress)},
	}
	return w.WriteCSV(fileName, WriteOptions{
		Headers:   []string{"metric", "value"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteRadarScores exports a radar score map in display order.
func (w *CSVWriter) WriteRadarScores(fileName string, scores map[radar.Dimension]*radar.ScoreResult) error {
	var records [][]string
	for _, dim := range radar.Dimensions {
		sc := scores[dim]
		if sc == nil {
			records = append(records, []string{string(dim), "", "", "", "", ""})
			continue
		}
		records = append(records, []string{
			string(dim),
			formatFloat(sc.Value),
			formatFloat(sc.Score),
			string(sc.Level),
			sc.Label,
			sc.Recommendation,
		})
	}
	return w.WriteCSV(fileName, WriteOptions{
		Headers:   []string{"dimension", "value", "score", "level", "label", "recommendation"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteGroupBreakdown exports a per-bucket breakdown with the headline
// metrics of each group.
func (w *CSVWriter) WriteGroupBreakdown(fileName string, dim kpi.GroupDimension, groups []kpi.GroupResult) error {
	records := make([][]string, 0, len(groups))
	for _, g := range groups {
		records = append(records, []string{
			g.Key,
			formatFloat(g.Result.SignedPremium10k),
			formatFloat(g.Result.MaturedPremium10k),
			formatFloat(g.Result.PolicyCount),
			formatOptional(g.Result.LossRatio),
			formatOptional(g.Result.ExpenseRatio),
			formatOptional(g.Result.VariableCostRatio),
			formatOptional(g.Result.ContributionMarginRatio),
		})
	}
	return w.WriteCSV(fileName, WriteOptions{
		Headers: []string{
			string(dim), "signed_premium_10k", "matured_premium_10k", "policy_count",
			"loss_ratio", "expense_ratio", "variable_cost_ratio", "contribution_margin_ratio",
		},
		Records:   records,
		BOMPrefix: true,
	})
}
