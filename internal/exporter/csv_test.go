package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekpi/internal/kpi"
	"weekpi/internal/radar"
	"weekpi/internal/shared/testutil"
	"weekpi/pkg/contracts/domain"
)

func readExport(t *testing.T, path string) (hadBOM bool, rows [][]string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	hadBOM = bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	rows, err = csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	return hadBOM, rows
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	t.Run("bom and contents", func(t *testing.T) {
		err := w.WriteCSV("out.csv", WriteOptions{
			Headers:   []string{"a", "b"},
			Records:   [][]string{{"1", "2"}, {"3", "4"}},
			BOMPrefix: true,
		})
		require.NoError(t, err)

		hadBOM, rows := readExport(t, filepath.Join(dir, "out.csv"))
		assert.True(t, hadBOM)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"a", "b"}, rows[0])
		assert.Equal(t, []string{"3", "4"}, rows[2])
	})

	t.Run("no bom when disabled", func(t *testing.T) {
		err := w.WriteCSV("plain.csv", WriteOptions{Records: [][]string{{"x"}}})
		require.NoError(t, err)

		hadBOM, rows := readExport(t, filepath.Join(dir, "plain.csv"))
		assert.False(t, hadBOM)
		require.Len(t, rows, 1)
	})

	t.Run("creates nested directories", func(t *testing.T) {
		err := w.WriteCSV(filepath.Join("week29", "out.csv"), WriteOptions{Records: [][]string{{"x"}}})
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "week29", "out.csv"))
		assert.NoError(t, err)
	})
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "", formatOptional(nil))

	v := 13.4
	assert.Equal(t, "13.40", formatOptional(&v))
}

func TestWriteKPISummary(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	res := kpi.Calculate([]domain.InsuranceRecord{testutil.SampleRecord()}, kpi.Options{
		CurrentWeekNumber: intPtr(29),
	})

	require.NoError(t, w.WriteKPISummary("kpi_summary.csv", res))

	hadBOM, rows := readExport(t, filepath.Join(dir, "kpi_summary.csv"))
	assert.True(t, hadBOM)

	byMetric := make(map[string]string, len(rows))
	for _, row := range rows[1:] {
		byMetric[row[0]] = row[1]
	}
	assert.Equal(t, "current", byMetric["mode"])
	assert.Equal(t, "1", byMetric["record_count"])
	assert.Equal(t, "30.00", byMetric["loss_ratio"])
	assert.Equal(t, "42.00", byMetric["combined_cost_ratio"])
	assert.Equal(t, "", byMetric["premium_progress"]) // no target configured
}

func TestWriteRadarScores(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	loss := 60.0
	scores := radar.ScoreAll(domain.KPIResult{LossRatio: &loss})

	require.NoError(t, w.WriteRadarScores("radar_scores.csv", scores))

	_, rows := readExport(t, filepath.Join(dir, "radar_scores.csv"))
	require.Len(t, rows, 1+len(radar.Dimensions))

	byDim := make(map[string][]string, len(rows))
	for _, row := range rows[1:] {
		byDim[row[0]] = row
	}
	lossRow := byDim[string(radar.DimLossRatio)]
	require.NotNil(t, lossRow)
	assert.Equal(t, "60.00", lossRow[1])
	assert.Equal(t, "87.50", lossRow[2])
	assert.Equal(t, "good", lossRow[3])

	// Unscored dimensions export as blank cells.
	timeRow := byDim[string(radar.DimTimeProgress)]
	require.NotNil(t, timeRow)
	assert.Equal(t, "", timeRow[2])
}

func TestWriteGroupBreakdown(t *testing.T) {
	dir := t.TempDir()
	w := NewCSVWriter(dir, nil)

	records := []domain.InsuranceRecord{
		testutil.SampleRecord(testutil.WithSignedPremium(500000)),
		testutil.SampleRecord(func(r *domain.InsuranceRecord) {
			r.ThirdLevelOrg = "东区"
			r.SignedPremium = 200000
		}),
	}
	groups := kpi.GroupBy(records, kpi.GroupByThirdLevelOrg, kpi.Options{})

	require.NoError(t, w.WriteGroupBreakdown("group_breakdown.csv", kpi.GroupByThirdLevelOrg, groups))

	_, rows := readExport(t, filepath.Join(dir, "group_breakdown.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, string(kpi.GroupByThirdLevelOrg), rows[0][0])
	assert.Equal(t, "本部", rows[1][0]) // largest premium first
	assert.True(t, strings.HasPrefix(rows[1][1], "50."))
}

func intPtr(v int) *int { return &v }
