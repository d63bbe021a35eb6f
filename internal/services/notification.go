package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// ErrNotificationNotFound is returned when a notification id does not exist
// in the caller's inbox.
var ErrNotificationNotFound = errors.New("notification does not exist")

// NotificationReader lists inbox rows.
type NotificationReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error)
}

// NotificationMarker flips read flags.
type NotificationMarker interface {
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

// NotificationService handles the per-user inbox.
type NotificationService struct {
	reader NotificationReader
	marker NotificationMarker
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(reader NotificationReader, marker NotificationMarker) *NotificationService {
	return &NotificationService{reader: reader, marker: marker}
}

// List returns the caller's inbox, newest first.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	return s.reader.ListByUserID(ctx, userID)
}

// MarkRead marks a single notification as read. Marking another user's
// notification reads as not found.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	err := s.marker.MarkRead(ctx, notificationID, userID)
	if isNoRows(err) {
		return ErrNotificationNotFound
	}
	return err
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.marker.MarkAllRead(ctx, userID)
}
