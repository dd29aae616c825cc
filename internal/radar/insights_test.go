package radar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekpi/internal/kpi"
	"weekpi/pkg/contracts/domain"
)

func TestActionItems(t *testing.T) {
	th := DefaultThresholds()

	t.Run("all clear", func(t *testing.T) {
		res := domain.KPIResult{
			CombinedCostRatio: ptr(92.0),
			MaturedClaimRatio: ptr(18.0),
		}

		actions := ActionItems(res, kpi.NEVBreakdown{}, ptr(60.0), th)

		require.Len(t, actions, 1)
		assert.Equal(t, "本周业务指标运行平稳", actions[0])
	})

	t.Run("combined cost over limit", func(t *testing.T) {
		actions := ActionItems(domain.KPIResult{CombinedCostRatio: ptr(97.5)}, kpi.NEVBreakdown{}, nil, th)

		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "综合成本率达97.50%")
		assert.Contains(t, actions[0], "收紧高成本业务承保")
	})

	t.Run("combined cost over danger line", func(t *testing.T) {
		actions := ActionItems(domain.KPIResult{CombinedCostRatio: ptr(103.2)}, kpi.NEVBreakdown{}, nil, th)

		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "超过危险线")
		assert.Contains(t, actions[0], "立即收紧承保")
	})

	t.Run("nev loss gap", func(t *testing.T) {
		nev := kpi.NEVBreakdown{LossRatioGap: ptr(12.5)}

		actions := ActionItems(domain.KPIResult{}, nev, nil, th)

		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "新能源车赔付率较传统车高12.5个百分点")
	})

	t.Run("claim frequency high", func(t *testing.T) {
		actions := ActionItems(domain.KPIResult{MaturedClaimRatio: ptr(28.0)}, kpi.NEVBreakdown{}, nil, th)

		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "出险频度28.00%偏高")
	})

	t.Run("renewal rate low", func(t *testing.T) {
		actions := ActionItems(domain.KPIResult{}, kpi.NEVBreakdown{}, ptr(40.0), th)

		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "续保率40.00%偏低")
	})

	t.Run("multiple findings stack", func(t *testing.T) {
		res := domain.KPIResult{
			CombinedCostRatio: ptr(105.0),
			MaturedClaimRatio: ptr(30.0),
		}

		actions := ActionItems(res, kpi.NEVBreakdown{LossRatioGap: ptr(15.0)}, ptr(30.0), th)

		assert.Len(t, actions, 4)
		assert.NotContains(t, actions, "本周业务指标运行平稳")
	})

	t.Run("nil metrics fire nothing", func(t *testing.T) {
		actions := ActionItems(domain.KPIResult{}, kpi.NEVBreakdown{}, nil, th)

		require.Len(t, actions, 1)
		assert.Equal(t, "本周业务指标运行平稳", actions[0])
	})

	t.Run("custom thresholds", func(t *testing.T) {
		tight := Thresholds{CombinedCostLimit: 80, CombinedCostDanger: 90, NEVLossGap: 5, ClaimFrequencyLimit: 15, RenewalRateFloor: 70}

		actions := ActionItems(domain.KPIResult{CombinedCostRatio: ptr(85.0)}, kpi.NEVBreakdown{}, nil, tight)

		require.Len(t, actions, 1)
		assert.Contains(t, actions[0], "综合成本率达85.00%")
	})
}

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, 95.0, th.CombinedCostLimit)
	assert.Equal(t, 100.0, th.CombinedCostDanger)
	assert.Equal(t, 10.0, th.NEVLossGap)
	assert.Equal(t, 25.0, th.ClaimFrequencyLimit)
	assert.Equal(t, 45.0, th.RenewalRateFloor)
}
