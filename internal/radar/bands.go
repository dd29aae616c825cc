package radar

// Dimension identifies one radar axis.
type Dimension string

const (
	DimContributionMargin Dimension = "contribution_margin"
	DimTimeProgress       Dimension = "time_progress"
	DimLossRatio          Dimension = "loss_ratio"
	DimMaturedClaimRatio  Dimension = "matured_claim_ratio"
	DimExpenseRatio       Dimension = "expense_ratio"
)

// Dimensions lists the five canonical axes in display order.
var Dimensions = []Dimension{
	DimContributionMargin,
	DimTimeProgress,
	DimLossRatio,
	DimMaturedClaimRatio,
	DimExpenseRatio,
}

// Level is the qualitative health tag of a band.
type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelMedium    Level = "medium"
	LevelWarning   Level = "warning"
	LevelDanger    Level = "danger"
)

// Band maps the half-open raw-value range [Min,Max) onto a score range.
// MinScore is the score at Min and MaxScore the score at Max; for
// lower-is-better dimensions MinScore > MaxScore, so larger raw values
// interpolate to lower scores.
type Band struct {
	Min      float64
	Max      float64
	MinScore float64
	MaxScore float64
	Level    Level
	Label    string
}

// bandTables holds the per-dimension band definitions, ordered by Min
// ascending and contiguous in both value and score so interpolation is
// monotonic across band edges. Values below the first Min or at or above
// the last Max clamp to the outermost scores.
var bandTables = map[Dimension][]Band{
	// Percent of matured premium retained as contribution; higher is better.
	DimContributionMargin: {
		{Min: -30, Max: 0, MinScore: 0, MaxScore: 40, Level: LevelDanger, Label: "边际贡献为负"},
		{Min: 0, Max: 5, MinScore: 40, MaxScore: 60, Level: LevelWarning, Label: "边际贡献偏低"},
		{Min: 5, Max: 10, MinScore: 60, MaxScore: 80, Level: LevelMedium, Label: "边际贡献中等"},
		{Min: 10, Max: 20, MinScore: 80, MaxScore: 95, Level: LevelGood, Label: "边际贡献良好"},
		{Min: 20, Max: 40, MinScore: 95, MaxScore: 100, Level: LevelExcellent, Label: "边际贡献优秀"},
	},
	// Time-progress achievement; 100 means exactly on plan, higher is better.
	DimTimeProgress: {
		{Min: 0, Max: 70, MinScore: 0, MaxScore: 40, Level: LevelDanger, Label: "进度严重滞后"},
		{Min: 70, Max: 85, MinScore: 40, MaxScore: 60, Level: LevelWarning, Label: "进度滞后"},
		{Min: 85, Max: 95, MinScore: 60, MaxScore: 80, Level: LevelMedium, Label: "进度基本达标"},
		{Min: 95, Max: 110, MinScore: 80, MaxScore: 95, Level: LevelGood, Label: "进度达标"},
		{Min: 110, Max: 150, MinScore: 95, MaxScore: 100, Level: LevelExcellent, Label: "进度超额"},
	},
	// Loss ratio percent; lower is better.
	DimLossRatio: {
		{Min: 0, Max: 50, MinScore: 100, MaxScore: 95, Level: LevelExcellent, Label: "赔付率优秀"},
		{Min: 50, Max: 70, MinScore: 95, MaxScore: 80, Level: LevelGood, Label: "赔付率良好"},
		{Min: 70, Max: 85, MinScore: 80, MaxScore: 60, Level: LevelMedium, Label: "赔付率中等"},
		{Min: 85, Max: 90, MinScore: 60, MaxScore: 39, Level: LevelWarning, Label: "赔付率偏高"},
		{Min: 90, Max: 130, MinScore: 39, MaxScore: 0, Level: LevelDanger, Label: "赔付率过高"},
	},
	// Claim frequency percent; lower is better.
	DimMaturedClaimRatio: {
		{Min: 0, Max: 15, MinScore: 100, MaxScore: 95, Level: LevelExcellent, Label: "出险频度优秀"},
		{Min: 15, Max: 20, MinScore: 95, MaxScore: 80, Level: LevelGood, Label: "出险频度良好"},
		{Min: 20, Max: 25, MinScore: 80, MaxScore: 60, Level: LevelMedium, Label: "出险频度中等"},
		{Min: 25, Max: 30, MinScore: 60, MaxScore: 40, Level: LevelWarning, Label: "出险频度偏高"},
		{Min: 30, Max: 60, MinScore: 40, MaxScore: 0, Level: LevelDanger, Label: "出险频度过高"},
	},
	// Expense ratio percent; lower is better.
	DimExpenseRatio: {
		{Min: 0, Max: 12, MinScore: 100, MaxScore: 95, Level: LevelExcellent, Label: "费用率优秀"},
		{Min: 12, Max: 16, MinScore: 95, MaxScore: 80, Level: LevelGood, Label: "费用率良好"},
		{Min: 16, Max: 20, MinScore: 80, MaxScore: 60, Level: LevelMedium, Label: "费用率中等"},
		{Min: 20, Max: 25, MinScore: 60, MaxScore: 40, Level: LevelWarning, Label: "费用率偏高"},
		{Min: 25, Max: 40, MinScore: 40, MaxScore: 0, Level: LevelDanger, Label: "费用率过高"},
	},
}

// recommendations holds one canned advisory string per level. The text is
// a function of the level alone.
var recommendations = map[Level]string{
	LevelExcellent: "表现优秀，继续保持当前经营策略",
	LevelGood:      "表现良好，可进一步优化业务结构",
	LevelMedium:    "表现中等，建议关注关键指标走势",
	LevelWarning:   "存在风险，建议制定针对性改进计划",
	LevelDanger:    "表现不佳，需要紧急干预和调整策略",
}

// Recommendation returns the canned advisory text for a level.
func Recommendation(level Level) string {
	return recommendations[level]
}
