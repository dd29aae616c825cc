package radar

import (
	"math"

	"weekpi/pkg/contracts/domain"
)

// ScoreResult is the bounded health score of one dimension.
type ScoreResult struct {
	Dimension      Dimension `json:"dimension"`
	Value          float64   `json:"value"`
	Score          float64   `json:"score"`
	Level          Level     `json:"level"`
	Label          string    `json:"label"`
	Recommendation string    `json:"recommendation"`
}

// Score maps a raw KPI value onto the dimension's 0-100 scale. A nil value
// yields nil: a missing metric is not a zero score. Scores interpolate
// linearly inside the matched band and clamp to the outermost band scores
// beyond the table's range.
func Score(dim Dimension, value *float64) *ScoreResult {
	if value == nil {
		return nil
	}
	bands, ok := bandTables[dim]
	if !ok {
		return nil
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	first, last := bands[0], bands[len(bands)-1]
	if v < first.Min {
		return result(dim, v, first, first.MinScore)
	}
	if v >= last.Max {
		return result(dim, v, last, last.MaxScore)
	}

	for _, band := range bands {
		if v >= band.Min && v < band.Max {
			pos := (v - band.Min) / (band.Max - band.Min)
			score := band.MinScore + pos*(band.MaxScore-band.MinScore)
			return result(dim, v, band, score)
		}
	}
	return nil
}

func result(dim Dimension, value float64, band Band, score float64) *ScoreResult {
	score = math.Max(0, math.Min(100, score))
	return &ScoreResult{
		Dimension:      dim,
		Value:          value,
		Score:          score,
		Level:          band.Level,
		Label:          band.Label,
		Recommendation: Recommendation(band.Level),
	}
}

// ScoreAll computes scores for all five dimensions from one KPI result.
// Dimensions whose source metric is nil map to a nil entry.
func ScoreAll(res domain.KPIResult) map[Dimension]*ScoreResult {
	return map[Dimension]*ScoreResult{
		DimContributionMargin: Score(DimContributionMargin, res.ContributionMarginRatio),
		DimTimeProgress:       Score(DimTimeProgress, res.PremiumAchievementRate),
		DimLossRatio:          Score(DimLossRatio, res.LossRatio),
		DimMaturedClaimRatio:  Score(DimMaturedClaimRatio, res.MaturedClaimRatio),
		DimExpenseRatio:       Score(DimExpenseRatio, res.ExpenseRatio),
	}
}

// Summary aggregates a score map: non-nil count, mean score and the level
// distribution histogram.
type Summary struct {
	Scored    int           `json:"scored"`
	MeanScore *float64      `json:"mean_score"`
	Levels    map[Level]int `json:"levels"`
}

// Summarize computes summary statistics over a score map.
func Summarize(scores map[Dimension]*ScoreResult) Summary {
	s := Summary{Levels: make(map[Level]int)}
	var total float64
	for _, sc := range scores {
		if sc == nil {
			continue
		}
		s.Scored++
		total += sc.Score
		s.Levels[sc.Level]++
	}
	if s.Scored > 0 {
		mean := total / float64(s.Scored)
		s.MeanScore = &mean
	}
	return s
}
