// Package notifications, as part of the notifications module.
// This file, `handlers.go`, handles HTTP requests for the notification list
// and serves the live SSE stream.
package notifications

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
)

// NotificationHandlers provides HTTP handlers for notifications.
type NotificationHandlers struct {
	service     *NotificationService
	broadcaster *Broadcaster
}

// NewNotificationHandlers creates new NotificationHandlers.
func NewNotificationHandlers(service *NotificationService, broadcaster *Broadcaster) *NotificationHandlers {
	return &NotificationHandlers{service: service, broadcaster: broadcaster}
}

// RegisterRoutes registers the notification routes. The group is mounted
// behind the JWT middleware.
func (h *NotificationHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.listNotifications)
	router.Get("/stream", h.stream)
	router.Delete("/{notificationID}", h.dismissNotification)
}

// NotificationsResponse wraps the notification collection.
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

// listNotifications godoc
// @Summary List notifications
// @Description Returns the notification list, newest first.
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} notifications.NotificationsResponse "The notification list"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/notifications [get]
func (h *NotificationHandlers) listNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List()
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(NotificationsResponse{Notifications: list})
}

// dismissNotification godoc
// @Summary Dismiss a notification
// @Description Removes the notification with the given id.
// @Tags Notifications
// @Security BearerAuth
// @Param notificationID path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not Found - Notification not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/notifications/{notificationID} [delete]
func (h *NotificationHandlers) dismissNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Dismiss(chi.URLParam(r, "notificationID")); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// stream godoc
// @Summary Subscribe to the notification stream
// @Description Server-Sent Events stream of notifications as they are published. The connection stays open until the client disconnects.
// @Tags Notifications
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Router /api/v1/notifications/stream [get]
func (h *NotificationHandlers) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		auth.WriteError(w, r, apperror.NewInternalError("streaming not supported by this connection", nil))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	id, events := h.broadcaster.Subscribe()
	defer h.broadcaster.Unsubscribe(id)

	// An initial comment line commits the response headers and lets the
	// client know the stream is live.
	fmt.Fprintf(w, ": connected %s\n\n", id)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			// The client went away; Unsubscribe closes our channel.
			return
		case event, open := <-events:
			if !open {
				return
			}
			if event.Event != "" {
				fmt.Fprintf(w, "event: %s\n", event.Event)
			}
			fmt.Fprintf(w, "data: %s\n\n", event.Data)
			flusher.Flush()
		}
	}
}
