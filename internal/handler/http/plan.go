package http

import (
	"encoding/json"
	"net/http"

	domain "github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/response"
	"github.com/JL1365/hr3-backoffice-go/internal/service/plan"
	"github.com/go-chi/chi/v5"
)

type PlanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByPosition(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type planHandlerImpl struct {
	planService *plan.PlanService
}

func NewPlanHandler(planService *plan.PlanService) PlanHandler {
	return &planHandlerImpl{planService: planService}
}

func (h *planHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.planService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation plan created", created)
}

func (h *planHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, plans)
}

func (h *planHandlerImpl) GetByPosition(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	if position == "" {
		response.BadRequest(w, "position is required", nil)
		return
	}

	p, err := h.planService.GetByPosition(r.Context(), position)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *planHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.planService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation plan updated", updated)
}
