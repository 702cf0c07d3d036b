package http

import (
	"encoding/json"
	"net/http"

	domain "github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/response"
	"github.com/JL1365/hr3-backoffice-go/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
	ListOpen(w http.ResponseWriter, r *http.Request)
	ListByBatch(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService *attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.attendanceService.Ingest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", created)
}

func (h *attendanceHandlerImpl) ListOpen(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListOpen(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func (h *attendanceHandlerImpl) ListByBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchId")
	if batchID == "" {
		response.BadRequest(w, "batchId is required", nil)
		return
	}

	records, err := h.attendanceService.ListByBatch(r.Context(), batchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
