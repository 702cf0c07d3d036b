package http

import (
	"net/http"

	"github.com/JL1365/hr3-backoffice-go/internal/handler/http/response"
	"github.com/JL1365/hr3-backoffice-go/internal/service/notification"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	My(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService *notification.NotificationService
}

func NewNotificationHandler(notificationService *notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

func (h *notificationHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	notifications, err := h.notificationService.MyNotifications(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.notificationService.MarkAsRead(r.Context(), userID, notificationID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}
