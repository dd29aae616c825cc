package dataprocessing

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"weekpi/internal/normalize"
	"weekpi/pkg/contracts/domain"
)

// ParseWorkbook extracts raw rows from a weekly detail workbook. It scans
// the sheets for a header row containing the canonical column names and
// returns every following data row keyed by column name, ready for the CSV
// validator. Blank rows are skipped.
func ParseWorkbook(r io.Reader, logger *slog.Logger) ([]map[string]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		headerIdx, colIndex := findHeader(rows)
		if headerIdx < 0 {
			continue
		}

		logger.Info("found detail sheet",
			slog.String("sheet", sheet),
			slog.Int("header_row", headerIdx+1),
			slog.Int("columns", len(colIndex)))

		return projectRows(rows[headerIdx+1:], colIndex), nil
	}

	return nil, fmt.Errorf("no sheet contains the weekly detail header")
}

// findHeader locates the first row carrying at least the core measure
// columns and maps canonical column names to cell positions.
func findHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		colIndex := make(map[string]int)
		for j, cell := range row {
			name := normalize.Text(cell).Value
			for _, col := range domain.Columns {
				if name == col {
					colIndex[col] = j
					break
				}
			}
		}
		if _, ok := colIndex[domain.ColSignedPremium]; !ok {
			continue
		}
		if _, ok := colIndex[domain.ColWeekNumber]; !ok {
			continue
		}
		if len(colIndex) >= 10 {
			return i, colIndex
		}
	}
	return -1, nil
}

func projectRows(rows [][]string, colIndex map[string]int) []map[string]string {
	var out []map[string]string
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		projected := make(map[string]string, len(colIndex))
		for col, j := range colIndex {
			if j < len(row) {
				projected[col] = row[j]
			}
		}
		out = append(out, projected)
	}
	return out
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
