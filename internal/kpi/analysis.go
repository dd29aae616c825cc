package kpi

import (
	"weekpi/pkg/contracts/domain"
)

// NEVBreakdown compares new-energy vehicles against traditional vehicles.
type NEVBreakdown struct {
	// PenetrationRate is the NEV share of policies, percent; nil without policies.
	PenetrationRate *float64 `json:"penetration_rate"`
	NEVPolicyCount  float64  `json:"nev_policy_count"`
	// Loss ratios per segment, percent.
	NEVLossRatio         *float64 `json:"nev_loss_ratio"`
	TraditionalLossRatio *float64 `json:"traditional_loss_ratio"`
	// LossRatioGap is NEV minus traditional, percentage points.
	LossRatioGap *float64 `json:"loss_ratio_gap"`
}

// AnalyzeNEV splits the record set on the new-energy flag and compares
// loss ratios between the two segments.
func AnalyzeNEV(records []domain.InsuranceRecord) NEVBreakdown {
	var nev, traditional []domain.InsuranceRecord
	for _, r := range records {
		if r.IsNewEnergyVehicle {
			nev = append(nev, r)
		} else {
			traditional = append(traditional, r)
		}
	}

	nevAgg := Aggregate(nev)
	tradAgg := Aggregate(traditional)

	out := NEVBreakdown{NEVPolicyCount: nevAgg.PolicyCount}
	out.PenetrationRate = safePercent(nevAgg.PolicyCount, nevAgg.PolicyCount+tradAgg.PolicyCount)
	out.NEVLossRatio = safePercent(nevAgg.ReportedClaimPayment, nevAgg.MaturedPremium)
	out.TraditionalLossRatio = safePercent(tradAgg.ReportedClaimPayment, tradAgg.MaturedPremium)
	if out.NEVLossRatio != nil && out.TraditionalLossRatio != nil {
		gap := *out.NEVLossRatio - *out.TraditionalLossRatio
		out.LossRatioGap = &gap
	}
	return out
}

// RenewalRate returns the renewed share of policies, percent; nil when the
// set has no policies.
func RenewalRate(records []domain.InsuranceRecord) *float64 {
	var renewed, total float64
	for _, r := range records {
		total += r.PolicyCount
		if r.RenewalStatus == domain.RenewalRenewed {
			renewed += r.PolicyCount
		}
	}
	return safePercent(renewed, total)
}
