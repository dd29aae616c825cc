package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"weekpi/internal/config"
	"weekpi/internal/exporter"
	"weekpi/internal/infrastructure"
	"weekpi/internal/kpi"
	"weekpi/internal/normalize"
	"weekpi/internal/radar"
	"weekpi/internal/validation"
	"weekpi/pkg/contracts/domain"
)

func main() {
	currentPath := flag.String("current", "", "current week CSV snapshot (required)")
	previousPath := flag.String("previous", "", "previous week CSV snapshot for increment mode")
	outputDir := flag.String("out", "reports", "output directory for report CSVs")
	week := flag.Int("week", 0, "current week number override (1-105)")
	premiumTarget := flag.Float64("premium-target", 0, "annual signed premium target in yuan")
	policyTarget := flag.Float64("policy-target", 0, "annual policy count target")
	groupDim := flag.String("group", string(kpi.GroupByThirdLevelOrg), "breakdown dimension")
	topN := flag.Int("top", 0, "keep only the N largest breakdown groups")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := infrastructure.InitializeLogger(cfg.Logging)

	if *currentPath == "" {
		logger.Error("missing required -current flag")
		flag.Usage()
		os.Exit(1)
	}

	// Load both snapshots concurrently; each pass validates and normalizes
	// independently.
	var current, previous []domain.InsuranceRecord
	var g errgroup.Group
	g.Go(func() error {
		var err error
		current, err = loadSnapshot(*currentPath, cfg.Import.MaxErrorRows, logger)
		return err
	})
	if *previousPath != "" {
		g.Go(func() error {
			var err error
			previous, err = loadSnapshot(*previousPath, cfg.Import.MaxErrorRows, logger)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("failed to load snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := buildOptions(cfg, *week, *premiumTarget, *policyTarget)

	var result domain.KPIResult
	if *previousPath != "" {
		opts.Mode = domain.ModeIncrement
		inc := kpi.CalculateIncrement(current, previous, opts)
		if inc.Message != "" {
			logger.Warn("increment degraded", slog.String("message", inc.Message))
		}
		result = inc.Merged
	} else {
		result = kpi.Calculate(current, opts)
	}

	scores := radar.ScoreAll(result)
	nev := kpi.AnalyzeNEV(current)
	actions := radar.ActionItems(result, nev, kpi.RenewalRate(current), radar.Thresholds{
		CombinedCostLimit:   cfg.Alerts.CombinedCostLimit,
		CombinedCostDanger:  cfg.Alerts.CombinedCostDanger,
		NEVLossGap:          cfg.Alerts.NEVLossGap,
		ClaimFrequencyLimit: cfg.Alerts.ClaimFrequencyLimit,
		RenewalRateFloor:    cfg.Alerts.RenewalRateFloor,
	})
	groups := kpi.GroupBy(current, kpi.GroupDimension(*groupDim), opts)
	if *topN > 0 {
		groups = kpi.TopN(groups, *topN)
	}

	writer := exporter.NewCSVWriter(*outputDir, logger)
	if err := writer.WriteKPISummary("kpi_summary.csv", result); err != nil {
		logger.Error("failed to write kpi summary", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := writer.WriteRadarScores("radar_scores.csv", scores); err != nil {
		logger.Error("failed to write radar scores", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := writer.WriteGroupBreakdown("group_breakdown.csv", kpi.GroupDimension(*groupDim), groups); err != nil {
		logger.Error("failed to write group breakdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("report complete",
		slog.Int("records", len(current)),
		slog.String("output_dir", *outputDir))
	for _, action := range actions {
		fmt.Println(action)
	}
}

// loadSnapshot validates and normalizes one CSV snapshot.
func loadSnapshot(path string, maxErrorRows int, logger *slog.Logger) ([]domain.InsuranceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res := validation.NewValidator(logger).ValidateCSV(f, validation.Config{MaxErrorRows: maxErrorRows})
	if !res.Success {
		return nil, fmt.Errorf("%s: %d rows failed validation", path, res.Statistics.ErrorRows)
	}

	records, failures := normalize.NormalizeBatch(res.Data)
	for _, failure := range failures {
		logger.Warn("row dropped during normalization",
			slog.String("path", path),
			slog.String("error", failure.Error()))
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no usable rows", path)
	}
	return records, nil
}

func buildOptions(cfg *config.Config, week int, premiumTarget, policyTarget float64) kpi.Options {
	var opts kpi.Options
	if week > 0 {
		opts.CurrentWeekNumber = &week
	}
	if premiumTarget <= 0 {
		premiumTarget = cfg.Targets.AnnualPremiumYuan
	}
	if premiumTarget > 0 {
		opts.PremiumTarget = &premiumTarget
	}
	if policyTarget <= 0 {
		policyTarget = cfg.Targets.AnnualPolicyCount
	}
	if policyTarget > 0 {
		opts.PolicyCountTarget = &policyTarget
	}
	return opts
}
