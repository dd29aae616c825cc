package validation

import (
	"fmt"
	"log/slog"
	"time"

	"weekpi/pkg/contracts/domain"
)

// ValidateRows validates rows that were already projected onto column
// names, such as the output of the workbook parser. The schema checks are
// identical to ValidateCSV; column completeness is judged against the keys
// of the first row.
func (v *Validator) ValidateRows(rows []map[string]string, cfg Config) *Result {
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

	if len(rows) == 0 {
		res.addError(0, "", CodeEmptyFile, "no data rows", "")
		res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()
		return res
	}

	for _, spec := range schema {
		if _, ok := rows[0][spec.Name]; ok {
			continue
		}
		if _, optional := domain.OptionalColumns[spec.Name]; optional {
			continue
		}
		res.addError(0, spec.Name, CodeMissingRequiredField,
			fmt.Sprintf("required column %q is missing", spec.Name), "")
	}
	if len(res.Errors) > 0 {
		res.Statistics.ParseTimeMs = time.Since(start).Milliseconds()
		return res
	}

	errorRows := 0
	for i, row := range rows {
		rowNum := i + 2 // header occupies row 1 in the source sheet
		res.Statistics.TotalRows++

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

	v.logger.Info("row validation finished",
		slog.Int("total_rows", res.Statistics.TotalRows),
		slog.Int("success_rows", res.Statistics.SuccessRows),
		slog.Int("error_rows", res.Statistics.ErrorRows),
		slog.Bool("success", res.Success))
	return res
}
