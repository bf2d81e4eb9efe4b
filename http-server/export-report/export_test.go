package export_report

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tracker-golang/internal/report"
)

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) ExportExcel(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.String(1), args.Error(2)
}

func (m *MockExporter) ExportPDF(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.String(1), args.Error(2)
}

func (m *MockExporter) ExportCSV(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.String(1), args.Error(2)
}

func (m *MockExporter) ExportAll(ctx context.Context, dir string) (map[string]string, error) {
	args := m.Called(ctx, dir)
	var paths map[string]string
	if args.Get(0) != nil {
		paths = args.Get(0).(map[string]string)
	}
	return paths, args.Error(1)
}

func TestExportExcel_StreamsAttachment(t *testing.T) {
	mockExp := new(MockExporter)
	mockExp.On("ExportExcel", mock.Anything).Return([]byte("xlsx-bytes"), "Tracker_Report_x.xlsx", nil)

	handler := ExportExcel(slog.Default(), mockExp)
	req := httptest.NewRequest(http.MethodGet, "/api/export/excel", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "Tracker_Report_x.xlsx")
	assert.Equal(t, "xlsx-bytes", rr.Body.String())
}

func TestExportPDF_NoReportIsConflict(t *testing.T) {
	mockExp := new(MockExporter)
	mockExp.On("ExportPDF", mock.Anything).Return(nil, "", report.ErrNoReport)

	handler := ExportPDF(slog.Default(), mockExp)
	req := httptest.NewRequest(http.MethodGet, "/api/export/pdf", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "no report has been generated")
}

func TestExportAll_RequiresDir(t *testing.T) {
	mockExp := new(MockExporter)
	handler := ExportAll(slog.Default(), mockExp)

	req := httptest.NewRequest(http.MethodPost, "/api/export/all", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockExp.AssertNotCalled(t, "ExportAll")
}
