package response

import (
	"errors"
	"net/http"

	"github.com/JL1365/hr3-backoffice-go/internal/domain/account"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/adjustment"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/attendance"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/auth"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/notification"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/payroll"
	"github.com/JL1365/hr3-backoffice-go/internal/domain/plan"
	"github.com/JL1365/hr3-backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrInvalidBenefitType):
		BadRequest(w, "Invalid benefit type", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrBatchNotFound):
		NotFound(w, "Batch not found")
	case errors.Is(err, payroll.ErrBatchAlreadyFinalized):
		Conflict(w, "Batch already finalized")
	case errors.Is(err, payroll.ErrHistoryNotFound):
		NotFound(w, "Payroll history not found")

	// Compensation plan domain errors
	case errors.Is(err, plan.ErrPlanNotFound):
		NotFound(w, "Compensation plan not found")
	case errors.Is(err, plan.ErrPlanPositionExists):
		Conflict(w, "Compensation plan for this position already exists")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Accounts directory errors; the upstream failure message is kept
	case errors.Is(err, account.ErrDirectoryUnavailable):
		InternalServerError(w, err.Error())
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
