package generate_report

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tracker-golang/internal/report"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, p report.Params) (report.Summary, int, error) {
	args := m.Called(ctx, p)
	summary := report.Summary{}
	if args.Get(0) != nil {
		summary = args.Get(0).(report.Summary)
	}
	return summary, args.Int(1), args.Error(2)
}

func TestGenerateReport_Success(t *testing.T) {
	mockGen := new(MockGenerator)
	mockGen.On("Generate", mock.Anything, mock.MatchedBy(func(p report.Params) bool {
		return p.Employee == "Jamie Cruz" && p.CutoffDays == 7 && p.HourlyRate == 10.0
	})).Return(report.Summary{
		TotalHours: 8.0,
		HourlyRate: 10.0,
		TotalCost:  80.0,
		CutoffDays: 7,
		DateRange:  "2024-01-01 to 2024-01-10",
	}, 2, nil)

	handler := GenerateReport(slog.Default(), mockGen)

	reqBody := `{
		"start_date": "2024-01-01",
		"end_date": "2024-01-10",
		"cutoff_days": 7,
		"hourly_rate": 10.0,
		"employee_name": "Jamie Cruz"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/report/generate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp generateResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Sheets)
	assert.InDelta(t, 8.0, resp.Summary.TotalHours, 1e-9)
	assert.InDelta(t, 80.0, resp.Summary.TotalCost, 1e-9)

	mockGen.AssertExpectations(t)
}

func TestGenerateReport_InvalidJSON(t *testing.T) {
	mockGen := new(MockGenerator)
	handler := GenerateReport(slog.Default(), mockGen)

	req := httptest.NewRequest(http.MethodPost, "/api/report/generate", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockGen.AssertNotCalled(t, "Generate")
}

func TestGenerateReport_BadDate(t *testing.T) {
	mockGen := new(MockGenerator)
	handler := GenerateReport(slog.Default(), mockGen)

	req := httptest.NewRequest(http.MethodPost, "/api/report/generate",
		strings.NewReader(`{"start_date": "01/01/2024", "end_date": "2024-01-10"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid start_date")
	mockGen.AssertNotCalled(t, "Generate")
}

func TestGenerateReport_ValidationErrorsMapToBadRequest(t *testing.T) {
	mockGen := new(MockGenerator)
	mockGen.On("Generate", mock.Anything, mock.Anything).
		Return(report.Summary{}, 0, report.ErrEmptyEmployee)

	handler := GenerateReport(slog.Default(), mockGen)

	reqBody := `{
		"start_date": "2024-01-01",
		"end_date": "2024-01-10",
		"cutoff_days": 7,
		"hourly_rate": 10.0
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/report/generate", strings.NewReader(reqBody))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "employee name is required")
}
