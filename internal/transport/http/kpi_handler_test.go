package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "weekpi/internal/errors"
	"weekpi/internal/services"
	"weekpi/internal/shared/testutil"
	"weekpi/pkg/contracts/domain"
)

func newKPIFixture(t *testing.T, rows ...map[string]string) (chi.Router, string) {
	t.Helper()
	if len(rows) == 0 {
		rows = []map[string]string{testutil.SampleRow(nil)}
	}
	logger, _ := testutil.NewTestLogger()
	datasets := services.NewDatasetService(0, logger)
	summary, err := datasets.Import(strings.NewReader(testutil.CSVDocument(rows...)), services.FormatCSV, "weekly.csv")
	require.NoError(t, err)

	kpiService := services.NewKPIService(datasets, nil, logger)
	h := NewKPIHandler(kpiService, logger, apierrors.NewErrorHandler(logger))
	return h.Routes(), summary.DatasetID
}

func TestKPIHandlerCompute(t *testing.T) {
	t.Run("cumulative report", func(t *testing.T) {
		router, id := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/"+id, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]any)
		assert.Equal(t, id, data["dataset_id"])
		kpiBlock := data["kpi"].(map[string]any)
		assert.Equal(t, "current", kpiBlock["mode"])
		assert.InDelta(t, 30.0, kpiBlock["loss_ratio"].(float64), 1e-9)
		assert.NotEmpty(t, data["action_items"])
	})

	t.Run("query overrides applied", func(t *testing.T) {
		router, id := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"?week=25&premium_target=500000", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		kpiBlock := decodeBody(t, rec)["data"].(map[string]any)["kpi"].(map[string]any)
		assert.InDelta(t, 0.5, kpiBlock["year_progress"].(float64), 1e-9)
		assert.InDelta(t, 1.0, kpiBlock["premium_progress"].(float64), 1e-9)
	})

	t.Run("unknown dataset", func(t *testing.T) {
		router, _ := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DATASET_NOT_FOUND", decodeBody(t, rec)["error_code"])
	})

	t.Run("bad week parameter", func(t *testing.T) {
		router, id := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"?week=abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeBody(t, rec)["error_code"])
	})

	t.Run("non-positive target rejected", func(t *testing.T) {
		router, id := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"?premium_target=-5", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestKPIHandlerIncrement(t *testing.T) {
	t.Run("with previous dataset", func(t *testing.T) {
		logger, _ := testutil.NewTestLogger()
		datasets := services.NewDatasetService(0, logger)
		prev, err := datasets.Import(strings.NewReader(testutil.CSVDocument(
			testutil.SampleRow(map[string]string{domain.ColWeekNumber: "28", domain.ColSignedPremium: "3000"}),
		)), services.FormatCSV, "week28.csv")
		require.NoError(t, err)
		cur, err := datasets.Import(strings.NewReader(testutil.CSVDocument(testutil.SampleRow(nil))), services.FormatCSV, "week29.csv")
		require.NoError(t, err)

		kpiService := services.NewKPIService(datasets, nil, logger)
		router := NewKPIHandler(kpiService, logger, apierrors.NewErrorHandler(logger)).Routes()

		body := `{"current_id":"` + cur.DatasetID + `","previous_id":"` + prev.DatasetID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/increment", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeBody(t, rec)["data"].(map[string]any)
		result := data["result"].(map[string]any)
		merged := result["merged"].(map[string]any)
		assert.Equal(t, "increment", merged["mode"])
		assert.NotNil(t, result["increment"])
	})

	t.Run("previous omitted", func(t *testing.T) {
		router, id := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/increment", strings.NewReader(`{"current_id":"`+id+`"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		result := decodeBody(t, rec)["data"].(map[string]any)["result"].(map[string]any)
		assert.NotEmpty(t, result["message"])
	})

	t.Run("missing current_id", func(t *testing.T) {
		router, _ := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/increment", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newKPIFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/increment", strings.NewReader(`{"current_id":`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_REQUEST", decodeBody(t, rec)["error_code"])
	})
}

func TestKPIHandlerGroups(t *testing.T) {
	rows := []map[string]string{
		testutil.SampleRow(map[string]string{domain.ColThirdLevelOrg: "东区", domain.ColSignedPremium: "200000"}),
		testutil.SampleRow(map[string]string{domain.ColThirdLevelOrg: "西区", domain.ColSignedPremium: "500000"}),
	}

	t.Run("default dimension", func(t *testing.T) {
		router, id := newKPIFixture(t, rows...)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"/groups", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody(t, rec)
		assert.Equal(t, "third_level_organization", resp["dim"])
		assert.Equal(t, float64(2), resp["count"])
		groups := resp["data"].([]any)
		first := groups[0].(map[string]any)
		assert.Equal(t, "西区", first["key"])
	})

	t.Run("top n truncates", func(t *testing.T) {
		router, id := newKPIFixture(t, rows...)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"/groups?top=1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
	})

	t.Run("renewal status dimension", func(t *testing.T) {
		router, id := newKPIFixture(t, rows...)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"/groups?dim=renewal_status", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "renewal_status", decodeBody(t, rec)["dim"])
	})

	t.Run("unknown dimension", func(t *testing.T) {
		router, id := newKPIFixture(t, rows...)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"/groups?dim=vehicle_color", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid top", func(t *testing.T) {
		router, id := newKPIFixture(t, rows...)
		req := httptest.NewRequest(http.MethodGet, "/"+id+"/groups?top=0", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
