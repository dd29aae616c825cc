package radar

import (
	"fmt"

	"weekpi/internal/kpi"
	"weekpi/pkg/contracts/domain"
)

// Thresholds configures the advisory rules of the weekly board report.
type Thresholds struct {
	// CombinedCostLimit is the combined cost ratio above which underwriting
	// should tighten; CombinedCostDanger is the break-even danger line.
	CombinedCostLimit  float64 `json:"combined_cost_limit"`
	CombinedCostDanger float64 `json:"combined_cost_danger"`
	// NEVLossGap is the tolerated NEV-vs-traditional loss ratio gap in
	// percentage points.
	NEVLossGap float64 `json:"nev_loss_gap"`
	// ClaimFrequencyLimit is the tolerated claim frequency percent.
	ClaimFrequencyLimit float64 `json:"claim_frequency_limit"`
	// RenewalRateFloor is the renewal rate percent below which customer
	// retention needs attention.
	RenewalRateFloor float64 `json:"renewal_rate_floor"`
}

// DefaultThresholds returns the board-report defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CombinedCostLimit:   95,
		CombinedCostDanger:  100,
		NEVLossGap:          10,
		ClaimFrequencyLimit: 25,
		RenewalRateFloor:    45,
	}
}

// steadyMessage is emitted when no advisory rule fires.
const steadyMessage = "本周业务指标运行平稳"

// ActionItems derives advisory strings from a KPI result and its
// supporting analyses. When every metric is within limits it returns a
// single all-clear entry.
func ActionItems(res domain.KPIResult, nev kpi.NEVBreakdown, renewalRate *float64, th Thresholds) []string {
	var actions []string

	if res.CombinedCostRatio != nil {
		switch ratio := *res.CombinedCostRatio; {
		case ratio > th.CombinedCostDanger:
			actions = append(actions, fmt.Sprintf("综合成本率达%.2f%%，超过危险线，建议立即收紧承保", ratio))
		case ratio > th.CombinedCostLimit:
			actions = append(actions, fmt.Sprintf("综合成本率达%.2f%%，建议收紧高成本业务承保", ratio))
		}
	}

	if nev.LossRatioGap != nil && *nev.LossRatioGap > th.NEVLossGap {
		actions = append(actions, fmt.Sprintf("新能源车赔付率较传统车高%.1f个百分点，建议优化定价模型", *nev.LossRatioGap))
	}

	if res.MaturedClaimRatio != nil && *res.MaturedClaimRatio > th.ClaimFrequencyLimit {
		actions = append(actions, fmt.Sprintf("平均出险频度%.2f%%偏高，建议加强风险筛查", *res.MaturedClaimRatio))
	}

	if renewalRate != nil && *renewalRate < th.RenewalRateFloor {
		actions = append(actions, fmt.Sprintf("续保率%.2f%%偏低，建议强化客户维护", *renewalRate))
	}

	if len(actions) == 0 {
		return []string{steadyMessage}
	}
	return actions
}
