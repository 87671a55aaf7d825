package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawam-hr/attendance-engine-go/internal/domain/overtime"
	"github.com/dawam-hr/attendance-engine-go/internal/engine"
	"github.com/dawam-hr/attendance-engine-go/internal/fixtures"
	overtimeService "github.com/dawam-hr/attendance-engine-go/internal/service/overtime"
)

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter() http.Handler {
	svc := overtimeService.NewOvertimeService(engine.Config{}, engine.TiebreakFirstMatch)
	handler := NewOvertimeHandler(svc)
	return NewRouter(handler, "test", []string{"*"})
}

func postJSON(t *testing.T, router http.Handler, path string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestOvertimeHandler_MonthlyReport(t *testing.T) {
	t.Parallel()
	router := newTestRouter()

	req := overtime.MonthlyReportRequest{
		Month: 6,
		Year:  2025,
		Data:  fixtures.BuildDemoDataset([]string{"2025-06-01", "2025-06-02", "2025-06-03"}),
	}

	rec, envelope := postJSON(t, router, "/api/v1/reports/overtime/monthly", req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	var report overtime.MonthlyReport
	require.NoError(t, json.Unmarshal(envelope.Data, &report))
	assert.Equal(t, 6, report.PeriodMonth)
	assert.Equal(t, 3, report.TotalEmployees)
	for _, row := range report.Rows {
		assert.Equal(t, 21.0, row.TotalActualHours) // 3 x 7h day shift
	}
}

func TestOvertimeHandler_MonthlyReport_ValidationError(t *testing.T) {
	t.Parallel()
	router := newTestRouter()

	req := overtime.MonthlyReportRequest{Month: 13, Year: 2025}
	rec, envelope := postJSON(t, router, "/api/v1/reports/overtime/monthly", req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "month")
}

func TestOvertimeHandler_MonthlyReport_BadBody(t *testing.T) {
	t.Parallel()
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/overtime/monthly", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOvertimeHandler_DepartmentReport_NotFound(t *testing.T) {
	t.Parallel()
	router := newTestRouter()

	req := overtime.DepartmentReportRequest{
		Month:      6,
		Year:       2025,
		Department: "Facilities",
		Data:       fixtures.BuildDemoDataset([]string{"2025-06-01"}),
	}

	rec, envelope := postJSON(t, router, "/api/v1/reports/overtime/departments", req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
}

func TestOvertimeHandler_YearlyReport(t *testing.T) {
	t.Parallel()
	router := newTestRouter()

	req := overtime.YearlyReportRequest{
		Year: 2025,
		Data: fixtures.BuildDemoDataset([]string{"2025-06-01", "2025-06-02"}),
	}

	rec, envelope := postJSON(t, router, "/api/v1/reports/overtime/yearly", req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, envelope.Success)

	var report overtime.YearlyReport
	require.NoError(t, json.Unmarshal(envelope.Data, &report))
	assert.Equal(t, 2025, report.Year)
	assert.Len(t, report.Rows, 3)
}
