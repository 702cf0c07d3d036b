package http

import (
	"encoding/json"
	"net/http"

	domain "github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/response"
	"github.com/JL1365/hr3-backoffice-go/internal/service/adjustment"
)

// AdjustmentHandler covers the three adjustment sources: benefit
// deductions, incentives and employee compensations.
type AdjustmentHandler interface {
	AddDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	AddIncentive(w http.ResponseWriter, r *http.Request)
	ListIncentives(w http.ResponseWriter, r *http.Request)
	AddCompensation(w http.ResponseWriter, r *http.Request)
	ListCompensations(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService *adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService *adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

func (h *adjustmentHandlerImpl) AddDeduction(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.adjustmentService.AddDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Benefit deduction created", created)
}

func (h *adjustmentHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	deductions, err := h.adjustmentService.ListDeductions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, deductions)
}

func (h *adjustmentHandlerImpl) AddIncentive(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateIncentiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.adjustmentService.AddIncentive(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incentive created", created)
}

func (h *adjustmentHandlerImpl) ListIncentives(w http.ResponseWriter, r *http.Request) {
	incentives, err := h.adjustmentService.ListIncentives(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, incentives)
}

func (h *adjustmentHandlerImpl) AddCompensation(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.adjustmentService.AddCompensation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee compensation created", created)
}

func (h *adjustmentHandlerImpl) ListCompensations(w http.ResponseWriter, r *http.Request) {
	compensations, err := h.adjustmentService.ListCompensations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, compensations)
}
