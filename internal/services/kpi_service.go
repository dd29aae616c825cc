package services

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"weekpi/internal/config"
	"weekpi/internal/kpi"
	"weekpi/internal/radar"
	"weekpi/pkg/contracts/domain"
)

// ErrDatasetNotFound is returned when a referenced dataset ID is unknown.
var ErrDatasetNotFound = fmt.Errorf("dataset not found")

// KPIReport bundles one cumulative computation with its derived analyses.
type KPIReport struct {
	DatasetID    string                                 `json:"dataset_id"`
	WeekNumber   int                                    `json:"week_number"`
	KPI          domain.KPIResult                       `json:"kpi"`
	Radar        map[radar.Dimension]*radar.ScoreResult `json:"radar"`
	RadarSummary radar.Summary                          `json:"radar_summary"`
	ActionItems  []string                               `json:"action_items"`
	NEV          kpi.NEVBreakdown                       `json:"nev"`
	RenewalRate  *float64                               `json:"renewal_rate,omitempty"`
}

// IncrementReport bundles a week-over-week computation. Radar scores and
// action items are derived from the merged result so rates stay cumulative.
type IncrementReport struct {
	CurrentID    string                                 `json:"current_id"`
	PreviousID   string                                 `json:"previous_id"`
	Result       kpi.IncrementResult                    `json:"result"`
	Radar        map[radar.Dimension]*radar.ScoreResult `json:"radar"`
	RadarSummary radar.Summary                          `json:"radar_summary"`
	ActionItems  []string                               `json:"action_items"`
}

// KPIService computes weekly KPIs over imported datasets. Results are
// memoized per record set and option combination.
type KPIService struct {
	datasets   *DatasetService
	cache      *kpi.Cache
	targets    config.TargetsConfig
	thresholds radar.Thresholds
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewKPIService creates a KPI service over the given dataset store.
func NewKPIService(datasets *DatasetService, cfg *config.Config, logger *slog.Logger) *KPIService {
	if logger == nil {
		logger = slog.Default()
	}
	th := radar.DefaultThresholds()
	targets := config.TargetsConfig{}
	if cfg != nil {
		targets = cfg.Targets
		th = radar.Thresholds{
			CombinedCostLimit:   cfg.Alerts.CombinedCostLimit,
			CombinedCostDanger:  cfg.Alerts.CombinedCostDanger,
			NEVLossGap:          cfg.Alerts.NEVLossGap,
			ClaimFrequencyLimit: cfg.Alerts.ClaimFrequencyLimit,
			RenewalRateFloor:    cfg.Alerts.RenewalRateFloor,
		}
	}
	return &KPIService{
		datasets:   datasets,
		cache:      kpi.NewCache(),
		targets:    targets,
		thresholds: th,
		validate:   validator.New(),
		logger:     logger.With(slog.String("component", "kpi_service")),
	}
}

// Compute runs a cumulative KPI computation over one dataset and derives
// radar scores and action items from it.
func (s *KPIService) Compute(datasetID string, opts kpi.Options) (*KPIReport, error) {
	ds, ok := s.datasets.Get(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", datasetID, ErrDatasetNotFound)
	}

	opts = s.applyDefaults(ds, opts)
	opts.Mode = domain.ModeCurrent
	if err := s.validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid computation options: %w", err)
	}

	hitsBefore, _, _ := s.cache.Stats()
	res := s.cache.Calculate(ds.Records, opts)
	if hitsAfter, _, _ := s.cache.Stats(); hitsAfter > hitsBefore {
		kpiCacheHitsTotal.Inc()
	}
	kpiComputationsTotal.WithLabelValues(string(domain.ModeCurrent)).Inc()

	return s.buildReport(ds, res), nil
}

// ComputeIncrement runs a week-over-week computation between two datasets.
// previousID may be empty, in which case the result degrades to cumulative
// values with an explanatory message.
func (s *KPIService) ComputeIncrement(currentID, previousID string, opts kpi.Options) (*IncrementReport, error) {
	cur, ok := s.datasets.Get(currentID)
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", currentID, ErrDatasetNotFound)
	}
	var previous []domain.InsuranceRecord
	if previousID != "" {
		prev, ok := s.datasets.Get(previousID)
		if !ok {
			return nil, fmt.Errorf("dataset %s: %w", previousID, ErrDatasetNotFound)
		}
		previous = prev.Records
	}

	opts = s.applyDefaults(cur, opts)
	opts.Mode = domain.ModeIncrement
	if err := s.validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid computation options: %w", err)
	}

	res := kpi.CalculateIncrement(cur.Records, previous, opts)
	kpiComputationsTotal.WithLabelValues(string(domain.ModeIncrement)).Inc()

	scores := radar.ScoreAll(res.Merged)
	nev := kpi.AnalyzeNEV(cur.Records)
	return &IncrementReport{
		CurrentID:    currentID,
		PreviousID:   previousID,
		Result:       res,
		Radar:        scores,
		RadarSummary: radar.Summarize(scores),
		ActionItems:  radar.ActionItems(res.Merged, nev, kpi.RenewalRate(cur.Records), s.thresholds),
	}, nil
}

// Groups computes per-group KPI breakdowns for one dataset, keeping the
// topN largest groups by signed premium. topN <= 0 keeps every group.
func (s *KPIService) Groups(datasetID string, dim kpi.GroupDimension, topN int, opts kpi.Options) ([]kpi.GroupResult, error) {
	ds, ok := s.datasets.Get(datasetID)
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", datasetID, ErrDatasetNotFound)
	}
	opts = s.applyDefaults(ds, opts)
	groups := kpi.GroupBy(ds.Records, dim, opts)
	if topN > 0 {
		groups = kpi.TopN(groups, topN)
	}
	return groups, nil
}

// InvalidateCache drops memoized results, typically after a delete.
func (s *KPIService) InvalidateCache() {
	s.cache.Invalidate()
}

// CacheStats reports memoization effectiveness.
func (s *KPIService) CacheStats() (hits, misses uint64, size int) {
	hits, misses, size = s.cache.Stats()
	return
}

// applyDefaults fills unset options from the dataset and the configured
// annual targets.
func (s *KPIService) applyDefaults(ds *Dataset, opts kpi.Options) kpi.Options {
	if opts.CurrentWeekNumber == nil && ds.WeekNumber > 0 {
		week := ds.WeekNumber
		opts.CurrentWeekNumber = &week
	}
	if opts.PremiumTarget == nil && s.targets.AnnualPremiumYuan > 0 {
		target := s.targets.AnnualPremiumYuan
		opts.PremiumTarget = &target
	}
	if opts.PolicyCountTarget == nil && s.targets.AnnualPolicyCount > 0 {
		target := s.targets.AnnualPolicyCount
		opts.PolicyCountTarget = &target
	}
	return opts
}

func (s *KPIService) buildReport(ds *Dataset, res domain.KPIResult) *KPIReport {
	scores := radar.ScoreAll(res)
	nev := kpi.AnalyzeNEV(ds.Records)
	renewal := kpi.RenewalRate(ds.Records)
	return &KPIReport{
		DatasetID:    ds.ID,
		WeekNumber:   ds.WeekNumber,
		KPI:          res,
		Radar:        scores,
		RadarSummary: radar.Summarize(scores),
		ActionItems:  radar.ActionItems(res, nev, renewal, s.thresholds),
		NEV:          nev,
		RenewalRate:  renewal,
	}
}
