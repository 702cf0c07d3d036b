package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// SalaryHandler exposes the payroll computation pipeline
type SalaryHandler interface {
	CalculateGross(w http.ResponseWriter, r *http.Request)
	CalculateNet(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	AllHistory(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	ThirteenthMonth(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService payroll.Service
}

func NewSalaryHandler(salaryService payroll.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

func (h *salaryHandlerImpl) CalculateGross(w http.ResponseWriter, r *http.Request) {
	batches, err := h.salaryService.CalculateGross(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}

func (h *salaryHandlerImpl) CalculateNet(w http.ResponseWriter, r *http.Request) {
	batches, err := h.salaryService.CalculateNet(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, batches)
}

func (h *salaryHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var req payroll.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if req.BatchID == "" {
		response.BadRequest(w, "batch_id is required", nil)
		return
	}

	result, err := h.salaryService.Finalize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll finalized", result)
}

func (h *salaryHandlerImpl) AllHistory(w http.ResponseWriter, r *http.Request) {
	groups, err := h.salaryService.AllHistory(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

func (h *salaryHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	groups, err := h.salaryService.EmployeeHistoryByBatch(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, groups)
}

func (h *salaryHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	employeeID := chi.URLParam(r, "employeeId")
	if batchID == "" || employeeID == "" {
		response.BadRequest(w, "batchId and employeeId are required", nil)
		return
	}

	pdf, err := h.salaryService.PayslipPDF(r.Context(), batchID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s-%s.pdf"`, batchID, employeeID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *salaryHandlerImpl) ThirteenthMonth(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.salaryService.ThirteenthMonth(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
