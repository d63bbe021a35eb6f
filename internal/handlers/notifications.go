package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/services"
)

// NotificationLister defines the interface for reading the inbox.
type NotificationLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NotificationMarker defines the interface for marking notifications read.
type NotificationMarker interface {
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// NotificationsResponse represents the user's inbox
// swagger:model NotificationsResponse
type NotificationsResponse struct {
	// Notifications, newest first
	Notifications []models.NotificationDB `json:"notifications"`
}

// NewListNotificationsHandler returns an HTTP handler listing the caller's
// notifications.
// @Summary List notifications
// @Description Returns the authenticated user's notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.NotificationsResponse "Notifications"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /notifications [get]
// @Security BearerAuth
func NewListNotificationsHandler(svc NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		notifications, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NotificationsResponse{Notifications: notifications})
	}
}

// MarkReadResponse represents a successful read marking
// swagger:model MarkReadResponse
type MarkReadResponse struct {
	// Success message
	// default: Notification marked as read
	Message string `json:"message"`
}

// NewMarkNotificationReadHandler returns an HTTP handler marking one
// notification as read. Users can only touch their own inbox.
// @Summary Mark notification read
// @Description Marks a single notification of the authenticated user as read
// @Tags notifications
// @Produce json
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} handlers.MarkReadResponse "Notification marked as read"
// @Failure 404 {object} handlers.ErrorResponse "Notification not found"
// @Router /notifications/{notificationID}/read [post]
// @Security BearerAuth
func NewMarkNotificationReadHandler(svc NotificationMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		notificationID, err := uuidParam(r, "notificationID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid notification id"})
			return
		}

		err = svc.MarkRead(r.Context(), notificationID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotificationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Notification not found"})
			default:
				logger.Log.Errorw("failed to mark notification read", "notificationID", notificationID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MarkReadResponse{Message: "Notification marked as read"})
	}
}

// NewMarkAllNotificationsReadHandler returns an HTTP handler marking the
// caller's whole inbox as read.
// @Summary Mark all notifications read
// @Description Marks every notification of the authenticated user as read
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.MarkReadResponse "Notifications marked as read"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /notifications/read-all [post]
// @Security BearerAuth
func NewMarkAllNotificationsReadHandler(svc NotificationMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.MarkAllRead(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("failed to mark notifications read", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MarkReadResponse{Message: "Notifications marked as read"})
	}
}
