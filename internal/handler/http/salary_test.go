package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSalaryService struct {
	finalizeErr  error
	finalizeResp payroll.FinalizeResponse
	payslip      []byte
	payslipErr   error
}

func (s *stubSalaryService) CalculateGross(context.Context) ([]payroll.GrossBatch, error) {
	return []payroll.GrossBatch{}, nil
}

func (s *stubSalaryService) CalculateNet(context.Context) ([]payroll.NetBatch, error) {
	return []payroll.NetBatch{}, nil
}

func (s *stubSalaryService) Finalize(_ context.Context, req payroll.FinalizeRequest) (payroll.FinalizeResponse, error) {
	if s.finalizeErr != nil {
		return payroll.FinalizeResponse{}, s.finalizeErr
	}
	return s.finalizeResp, nil
}

func (s *stubSalaryService) AllHistory(context.Context) ([]payroll.HistoryBatchGroup, error) {
	return nil, nil
}

func (s *stubSalaryService) EmployeeHistory(context.Context, string) ([]payroll.HistoryResponse, error) {
	return nil, nil
}

func (s *stubSalaryService) EmployeeHistoryByBatch(context.Context, string) ([]payroll.HistoryBatchGroup, error) {
	return nil, nil
}

func (s *stubSalaryService) ThirteenthMonth(context.Context, int) ([]payroll.ThirteenthMonthResponse, error) {
	return nil, nil
}

func (s *stubSalaryService) PayslipPDF(context.Context, string, string) ([]byte, error) {
	if s.payslipErr != nil {
		return nil, s.payslipErr
	}
	return s.payslip, nil
}

func TestFinalizeHandler_MissingBatchID(t *testing.T) {
	h := NewSalaryHandler(&stubSalaryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/salaryRequest/finalize-payroll", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Finalize(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "batch_id is required")
}

func TestFinalizeHandler_InvalidBody(t *testing.T) {
	h := NewSalaryHandler(&stubSalaryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/salaryRequest/finalize-payroll", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	h.Finalize(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinalizeHandler_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown batch", payroll.ErrBatchNotFound, http.StatusNotFound},
		{"replayed batch", payroll.ErrBatchAlreadyFinalized, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSalaryHandler(&stubSalaryService{finalizeErr: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/salaryRequest/finalize-payroll", strings.NewReader(`{"batch_id":"batch-1"}`))
			rec := httptest.NewRecorder()
			h.Finalize(rec, req)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestFinalizeHandler_Success(t *testing.T) {
	h := NewSalaryHandler(&stubSalaryService{finalizeResp: payroll.FinalizeResponse{
		NewBatchID:         "batch-1717171717171",
		TotalPayrollAmount: decimal.RequireFromString("2100.00"),
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/salaryRequest/finalize-payroll", strings.NewReader(`{"batch_id":"batch-1"}`))
	rec := httptest.NewRecorder()
	h.Finalize(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"new_batch_id":"batch-1717171717171"`)
	assert.Contains(t, rec.Body.String(), `"totalPayrollAmount":"2100"`)
}

func TestPayslipHandler_ServesPDF(t *testing.T) {
	h := NewSalaryHandler(&stubSalaryService{payslip: []byte("%PDF-1.3 test")})

	r := chi.NewRouter()
	r.Get("/api/salaryRequest/payslip/{batchId}/{employeeId}", h.Payslip)

	req := httptest.NewRequest(http.MethodGet, "/api/salaryRequest/payslip/batch-1/emp-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payslip-batch-1-emp-1.pdf")
}

func TestPayslipHandler_NotFound(t *testing.T) {
	h := NewSalaryHandler(&stubSalaryService{payslipErr: payroll.ErrHistoryNotFound})

	r := chi.NewRouter()
	r.Get("/api/salaryRequest/payslip/{batchId}/{employeeId}", h.Payslip)

	req := httptest.NewRequest(http.MethodGet, "/api/salaryRequest/payslip/batch-1/emp-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
