package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetNotificationsHandler godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationsResult
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)

	notifications, err := inventoryRepo.ListNotifications(r.Context(), tenantID)
	if err != nil {
		writeRepoError(w, err, "notification not found")
		return
	}

	result := NotificationsResult{Notifications: make([]NotificationResponse, len(notifications))}
	for i, n := range notifications {
		result.Notifications[i] = toNotificationResponse(n)
	}
	writeJSON(w, http.StatusOK, result)
}

// MarkNotificationReadHandler godoc
// @Summary Mark a notification as read
// @Description Idempotent; marking an already-read notification succeeds.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationResult
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [put]
func MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantID(r)
	notificationID := chi.URLParam(r, "id")

	notification, err := inventoryRepo.MarkNotificationRead(r.Context(), tenantID, notificationID)
	if err != nil {
		writeRepoError(w, err, "Notification not found")
		return
	}
	writeJSON(w, http.StatusOK, NotificationResult{Success: true, Notification: toNotificationResponse(notification)})
}
