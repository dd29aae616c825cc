package validation

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"weekpi/internal/normalize"
	"weekpi/pkg/contracts/domain"
)

// DefaultMaxErrorRows is the error-row threshold after which row processing
// halts with a ROW_LIMIT_REACHED warning.
const DefaultMaxErrorRows = 100

// Config tunes one validation pass.
type Config struct {
	// MaxErrorRows halts row processing once this many rows have errors.
	// Zero means DefaultMaxErrorRows.
	MaxErrorRows int
	// CustomValidators overrides or adds a per-field validator by column name.
	CustomValidators map[string]CustomValidator
	// Schema overrides the default 26-column schema (mainly for tests).
	Schema []FieldSpec
}

// Validator gates raw CSV input before it reaches normalization.
type Validator struct {
	logger *slog.Logger
}

// NewValidator creates a CSV validator.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{logger: logger.With(slog.String("component", "csv_validator"))}
}

// ValidateCSV reads and validates an entire CSV document. An empty document
// or missing header is fatal; row-level findings accumulate and the valid
// subset of rows is still returned.
func (v *Validator) ValidateCSV(r io.Reader, cfg Config) *Result {
	start := time.Now()
	res := &Result{}

	maxErrorRows := cfg.MaxErrorRows
	if maxErrorRows <= 0 {
		maxErrorRows = DefaultMaxErrorRows
	}
	schema := cfg.Schema
	if schema == nil {
		schema = Schema()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width checked per field below

	header, err := reader.Read()
	if err == io.EOF {
		res.addError(0, "", CodeEmptyFile, "file is empty", "")
		res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()
		return res
	}
	if err != nil {
		res.addError(0, "", CodeMissingHeader, fmt.Sprintf("cannot read header: %v", err), "")
		res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()
		return res
	}

	colIndex := indexHeader(header)
	if len(colIndex) == 0 {
		res.addError(0, "", CodeMissingHeader, "header row has no usable columns", "")
		res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()
		return res
	}

	// File-level column completeness. Optional columns may be absent.
	for _, spec := range schema {
		if _, ok := colIndex[spec.Name]; ok {
			continue
		}
		if _, optional := domain.OptionalColumns[spec.Name]; optional {
			continue
		}
		res.addError(0, spec.Name, CodeMissingRequiredField,
			fmt.Sprintf("required column %q is missing from the header", spec.Name), "")
	}
	if len(res.Errors) > 0 {
		res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()
		v.logger.Warn("header validation failed",
			slog.Int("missing_columns", len(res.Errors)))
		return res
	}

	errorRows := 0
	rowNum := 1 // header occupies spreadsheet row 1
	for {
		raw, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			res.addError(rowNum, "", CodeTypeMismatch, fmt.Sprintf("malformed CSV row: %v", err), "")
			errorRows++
			res.Statistics.TotalRows++
			res.Statistics.ErrorRows++
			continue
		}

		res.Statistics.TotalRows++

		if isBlankRow(raw) {
			res.Statistics.EmptyRows++
			continue
		}

		row := projectRow(raw, colIndex)
		if v.validateRow(rowNum, row, schema, cfg.CustomValidators, res) {
			res.Statistics.SuccessRows++
			res.Data = append(res.Data, row)
		} else {
			res.Statistics.ErrorRows++
			errorRows++
			if errorRows >= maxErrorRows {
				res.addWarning(rowNum, "", CodeRowLimitReached,
					fmt.Sprintf("stopped after %d error rows", errorRows), "")
				break
			}
		}
	}

	res.Success = len(res.Errors) == 0 || res.Statistics.SuccessRows > 0
	res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()

	v.logger.Info("csv validation finished",
		slog.Int("total_rows", res.Statistics.TotalRows),
		slog.Int("success_rows", res.Statistics.SuccessRows),
		slog.Int("error_rows", res.Statistics.ErrorRows),
		slog.Int("warnings", len(res.Warnings)),
		slog.Bool("success", res.Success))
	return res
}

// validateRow applies the schema to one projected row. Returns true when
// the row produced no errors (warnings do not count).
func (v *Validator) validateRow(rowNum int, row map[string]string, schema []FieldSpec, custom map[string]CustomValidator, res *Result) bool {
	ok := true

	for _, spec := range schema {
		value := row[spec.Name]
		cleaned := normalize.Text(value).Value

		if cleaned == "" {
			if spec.Required {
				if _, optional := domain.OptionalColumns[spec.Name]; !optional {
					res.addError(rowNum, spec.Name, CodeMissingRequiredValue, "required value is empty", "")
					ok = false
				}
			}
			continue
		}

		switch spec.Type {
		case TypeNumber:
			n := normalize.Number(cleaned, normalize.NumberOptions{})
			if !n.OK {
				res.addError(rowNum, spec.Name, CodeTypeMismatch, n.Err, value)
				ok = false
				continue
			}
			if spec.NonNegative && n.Value < 0 {
				res.addError(rowNum, spec.Name, CodeNegativeAmount,
					fmt.Sprintf("amount must not be negative: %v", n.Value), value)
				ok = false
				continue
			}
		case TypeBoolean:
			if b := normalize.Boolean(cleaned, false); !b.OK {
				res.addError(rowNum, spec.Name, CodeTypeMismatch, b.Err, value)
				ok = false
				continue
			}
		case TypeDate:
			d := normalize.Date(cleaned)
			if !d.OK {
				res.addError(rowNum, spec.Name, CodeTypeMismatch, d.Err, value)
				ok = false
				continue
			}
			if d.Corrected {
				res.addWarning(rowNum, spec.Name, CodeAutoCorrected,
					fmt.Sprintf("date separator corrected to %q", d.Value), value)
			}
		}

		if len(spec.Enum) > 0 && !contains(spec.Enum, cleaned) {
			res.addError(rowNum, spec.Name, CodeEnumViolation,
				fmt.Sprintf("value %q is not in the allowed set", cleaned), value)
			ok = false
			continue
		}

		if fn := customFor(spec, custom); fn != nil {
			if passed, msg := fn(cleaned); !passed {
				if msg == "" {
					msg = "custom validation failed"
				}
				res.addError(rowNum, spec.Name, CodeCustomValidation, msg, value)
				ok = false
				continue
			}
		}
	}

	// Business-rule checks: suspicious but acceptable, warn only.
	v.checkTypicalRanges(rowNum, row, res)

	return ok
}

func (v *Validator) checkTypicalRanges(rowNum int, row map[string]string, res *Result) {
	if n := normalize.Number(row[domain.ColWeekNumber], normalize.NumberOptions{}); n.OK {
		if n.Value < typicalWeekMin || n.Value > typicalWeekMax {
			res.addWarning(rowNum, domain.ColWeekNumber, CodeValueOutOfRange,
				fmt.Sprintf("week number %v outside typical range %d-%d", n.Value, typicalWeekMin, typicalWeekMax),
				row[domain.ColWeekNumber])
		}
	}
	if n := normalize.Number(row[domain.ColPolicyStartYear], normalize.NumberOptions{}); n.OK {
		if n.Value < typicalYearMin || n.Value > typicalYearMax {
			res.addWarning(rowNum, domain.ColPolicyStartYear, CodeValueOutOfRange,
				fmt.Sprintf("policy start year %v outside typical range %d-%d", n.Value, typicalYearMin, typicalYearMax),
				row[domain.ColPolicyStartYear])
		}
	}
}

func customFor(spec FieldSpec, overrides map[string]CustomValidator) CustomValidator {
	if overrides != nil {
		if fn, ok := overrides[spec.Name]; ok {
			return fn
		}
	}
	return spec.Custom
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		cleaned := normalize.Text(name).Value
		if cleaned != "" {
			idx[cleaned] = i
		}
	}
	return idx
}

func projectRow(raw []string, colIndex map[string]int) map[string]string {
	row := make(map[string]string, len(colIndex))
	for name, i := range colIndex {
		if i < len(raw) {
			row[name] = raw[i]
		}
	}
	return row
}

func isBlankRow(raw []string) bool {
	for _, cell := range raw {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
