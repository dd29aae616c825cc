package services

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"weekpi/internal/dataprocessing"
	"weekpi/internal/normalize"
	"weekpi/internal/validation"
	"weekpi/pkg/contracts/domain"
)

// ImportFormat selects the decoder for an uploaded file.
type ImportFormat string

const (
	FormatCSV  ImportFormat = "csv"
	FormatXLSX ImportFormat = "xlsx"
)

// Dataset is one imported weekly snapshot held in memory.
type Dataset struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	WeekNumber int                      `json:"week_number"`
	ImportedAt time.Time                `json:"imported_at"`
	Records    []domain.InsuranceRecord `json:"-"`
	Summary    ImportSummary            `json:"summary"`
}

// ImportSummary reports the outcome of one import.
type ImportSummary struct {
	DatasetID      string                `json:"dataset_id"`
	ImportedRows   int                   `json:"imported_rows"`
	SkippedRows    int                   `json:"skipped_rows"`
	Validation     validation.Statistics `json:"validation"`
	Errors         []validation.Issue    `json:"errors,omitempty"`
	Warnings       []validation.Issue    `json:"warnings,omitempty"`
	RowFailures    []string              `json:"row_failures,omitempty"`
}

// ErrNoValidRows is returned when every row of an upload failed
// validation or normalization.
var ErrNoValidRows = fmt.Errorf("no valid rows in upload")

// DatasetService validates, normalizes and retains uploaded snapshots.
// Persistence is out of scope; the store is a mutex-guarded map that lives
// for the process lifetime.
type DatasetService struct {
	mu           sync.RWMutex
	datasets     map[string]*Dataset
	validator    *validation.Validator
	maxErrorRows int
	logger       *slog.Logger
}

// NewDatasetService creates a dataset service.
func NewDatasetService(maxErrorRows int, logger *slog.Logger) *DatasetService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetService{
		datasets:     make(map[string]*Dataset),
		validator:    validation.NewValidator(logger),
		maxErrorRows: maxErrorRows,
		logger:       logger.With(slog.String("component", "dataset_service")),
	}
}

// Import validates and normalizes an uploaded file, keeping the valid
// subset of rows as a new dataset. A file with some bad rows still imports;
// a file with no good rows (or a fatally invalid file) is rejected.
func (s *DatasetService) Import(r io.Reader, format ImportFormat, name string) (*ImportSummary, error) {
	var res *validation.Result
	switch format {
	case FormatXLSX:
		rows, err := dataprocessing.ParseWorkbook(r, s.logger)
		if err != nil {
			return nil, fmt.Errorf("workbook parse failed: %w", err)
		}
		res = s.validator.ValidateRows(rows, validation.Config{MaxErrorRows: s.maxErrorRows})
	default:
		res = s.validator.ValidateCSV(r, validation.Config{MaxErrorRows: s.maxErrorRows})
	}

	summary := &ImportSummary{
		Validation: res.Statistics,
		Errors:     res.Errors,
		Warnings:   res.Warnings,
	}
	if !res.Success {
		importRejectionsTotal.Inc()
		return summary, ErrNoValidRows
	}

	records, failures := normalize.NormalizeBatch(res.Data)
	for _, f := range failures {
		summary.RowFailures = append(summary.RowFailures, f.Error())
	}
	if len(records) == 0 {
		importRejectionsTotal.Inc()
		return summary, ErrNoValidRows
	}

	ds := &Dataset{
		ID:         uuid.NewString(),
		Name:       name,
		WeekNumber: dominantWeek(records),
		ImportedAt: time.Now(),
		Records:    records,
	}
	summary.DatasetID = ds.ID
	summary.ImportedRows = len(records)
	summary.SkippedRows = res.Statistics.ErrorRows + len(failures)
	ds.Summary = *summary

	s.mu.Lock()
	s.datasets[ds.ID] = ds
	s.mu.Unlock()

	importsTotal.Inc()
	importedRowsTotal.Add(float64(len(records)))

	s.logger.Info("dataset imported",
		slog.String("dataset_id", ds.ID),
		slog.String("name", name),
		slog.Int("week_number", ds.WeekNumber),
		slog.Int("imported_rows", summary.ImportedRows),
		slog.Int("skipped_rows", summary.SkippedRows))

	return summary, nil
}

// Get returns a dataset by ID.
func (s *DatasetService) Get(id string) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	return ds, ok
}

// List returns dataset metadata sorted by week number ascending.
func (s *DatasetService) List() []*Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeekNumber != out[j].WeekNumber {
			return out[i].WeekNumber < out[j].WeekNumber
		}
		return out[i].ImportedAt.Before(out[j].ImportedAt)
	})
	return out
}

// Delete removes a dataset. Returns false when the ID is unknown.
func (s *DatasetService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.datasets[id]; !ok {
		return false
	}
	delete(s.datasets, id)
	return true
}

// dominantWeek picks the most frequent week number of the record set.
func dominantWeek(records []domain.InsuranceRecord) int {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.WeekNumber]++
	}
	best, bestCount := 0, 0
	for week, count := range counts {
		if count > bestCount || (count == bestCount && week > best) {
			best, bestCount = week, count
		}
	}
	return best
}
