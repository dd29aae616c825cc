package kpi

import (
	"sort"

	"weekpi/pkg/contracts/domain"
)

// GroupDimension selects the record field used for a breakdown.
type GroupDimension string

const (
	GroupByThirdLevelOrg    GroupDimension = "third_level_organization"
	GroupByCustomerCategory GroupDimension = "customer_category_3"
	GroupByBusinessType     GroupDimension = "business_type_category"
	GroupByRenewalStatus    GroupDimension = "renewal_status"
)

// GroupResult is the KPI result for one breakdown bucket.
type GroupResult struct {
	Key    string           `json:"key"`
	Result domain.KPIResult `json:"result"`
}

// GroupBy splits the record set along one dimension and computes KPIs per
// bucket, sorted by signed premium descending to match report order.
func GroupBy(records []domain.InsuranceRecord, dim GroupDimension, opts Options) []GroupResult {
	buckets := make(map[string][]domain.InsuranceRecord)
	for _, r := range records {
		key := groupKey(r, dim)
		buckets[key] = append(buckets[key], r)
	}

	results := make([]GroupResult, 0, len(buckets))
	for key, group := range buckets {
		results = append(results, GroupResult{Key: key, Result: Calculate(group, opts)})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Result.SignedPremium10k != results[j].Result.SignedPremium10k {
			return results[i].Result.SignedPremium10k > results[j].Result.SignedPremium10k
		}
		return results[i].Key < results[j].Key
	})
	return results
}

// TopN truncates a breakdown to its n largest buckets.
func TopN(groups []GroupResult, n int) []GroupResult {
	if n <= 0 || n >= len(groups) {
		return groups
	}
	return groups[:n]
}

func groupKey(r domain.InsuranceRecord, dim GroupDimension) string {
	switch dim {
	case GroupByThirdLevelOrg:
		return r.ThirdLevelOrg
	case GroupByCustomerCategory:
		return r.CustomerCategory
	case GroupByBusinessType:
		return r.BusinessTypeCategory
	case GroupByRenewalStatus:
		return string(r.RenewalStatus)
	default:
		return ""
	}
}
