package radar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekpi/pkg/contracts/domain"
)

func ptr[T any](v T) *T { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		dim       Dimension
		value     float64
		wantScore float64
		wantLevel Level
	}{
		{"loss ratio band start", DimLossRatio, 0, 100, LevelExcellent},
		{"loss ratio inside first band", DimLossRatio, 25, 97.5, LevelExcellent},
		{"loss ratio band edge", DimLossRatio, 50, 95, LevelGood},
		{"loss ratio danger edge", DimLossRatio, 90, 39, LevelDanger},
		{"loss ratio danger interior", DimLossRatio, 110, 19.5, LevelDanger},
		{"loss ratio clamps above table", DimLossRatio, 200, 0, LevelDanger},
		{"loss ratio clamps below table", DimLossRatio, -5, 100, LevelExcellent},
		{"expense ratio good", DimExpenseRatio, 14, 87.5, LevelGood},
		{"claim frequency warning start", DimMaturedClaimRatio, 25, 60, LevelWarning},
		{"contribution margin negative", DimContributionMargin, -15, 20, LevelDanger},
		{"contribution margin clamps below", DimContributionMargin, -50, 0, LevelDanger},
		{"time progress on plan", DimTimeProgress, 100, 85, LevelGood},
		{"time progress clamps above", DimTimeProgress, 300, 100, LevelExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.dim, &tt.value)
			require.NotNil(t, got)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.dim, got.Dimension)
			assert.Equal(t, tt.value, got.Value)
			assert.NotEmpty(t, got.Label)
		})
	}

	t.Run("nil metric scores nil", func(t *testing.T) {
		assert.Nil(t, Score(DimLossRatio, nil))
	})

	t.Run("non-finite metric scores nil", func(t *testing.T) {
		assert.Nil(t, Score(DimLossRatio, ptr(math.NaN())))
		assert.Nil(t, Score(DimLossRatio, ptr(math.Inf(1))))
	})

	t.Run("unknown dimension scores nil", func(t *testing.T) {
		assert.Nil(t, Score(Dimension("velocity"), ptr(10.0)))
	})

	t.Run("danger carries intervention advice", func(t *testing.T) {
		got := Score(DimLossRatio, ptr(95.0))
		require.NotNil(t, got)
		assert.Equal(t, "表现不佳，需要紧急干预和调整策略", got.Recommendation)
	})
}

func TestScoreAll(t *testing.T) {
	res := domain.KPIResult{
		LossRatio:               ptr(60.0),
		ExpenseRatio:            ptr(14.0),
		MaturedClaimRatio:       ptr(10.0),
		ContributionMarginRatio: ptr(25.0),
		// PremiumAchievementRate absent: no target was configured.
	}

	scores := ScoreAll(res)

	assert.Len(t, scores, len(Dimensions))
	require.NotNil(t, scores[DimLossRatio])
	assert.InDelta(t, 87.5, scores[DimLossRatio].Score, 1e-9)
	require.NotNil(t, scores[DimExpenseRatio])
	require.NotNil(t, scores[DimMaturedClaimRatio])
	require.NotNil(t, scores[DimContributionMargin])
	assert.Nil(t, scores[DimTimeProgress])
}

func TestSummarize(t *testing.T) {
	scores := ScoreAll(domain.KPIResult{
		LossRatio:    ptr(60.0), // good, 87.5
		ExpenseRatio: ptr(30.0), // danger, 26.666...
	})

	s := Summarize(scores)

	assert.Equal(t, 2, s.Scored)
	require.NotNil(t, s.MeanScore)
	assert.InDelta(t, (87.5+80.0/3)/2, *s.MeanScore, 1e-6)
	assert.Equal(t, 1, s.Levels[LevelGood])
	assert.Equal(t, 1, s.Levels[LevelDanger])

	t.Run("all nil", func(t *testing.T) {
		empty := Summarize(ScoreAll(domain.KPIResult{}))
		assert.Equal(t, 0, empty.Scored)
		assert.Nil(t, empty.MeanScore)
	})
}
