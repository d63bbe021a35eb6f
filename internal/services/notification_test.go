package services_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestNotificationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockNotificationReader(ctrl)
	mockMarker := services.NewMockNotificationMarker(ctrl)

	svc := services.NewNotificationService(mockReader, mockMarker)

	userID := uuid.New()
	rows := []models.NotificationDB{
		{NotificationID: uuid.New(), UserID: userID, Type: models.NotificationEndorsement},
		{NotificationID: uuid.New(), UserID: userID, Type: models.NotificationLevelUp, IsRead: true},
	}

	mockReader.EXPECT().
		ListByUserID(gomock.Any(), userID).
		Return(rows, nil)

	got, err := svc.List(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockNotificationReader(ctrl)
	mockMarker := services.NewMockNotificationMarker(ctrl)

	svc := services.NewNotificationService(mockReader, mockMarker)

	userID := uuid.New()

	t.Run("marks own notification", func(t *testing.T) {
		notificationID := uuid.New()

		mockMarker.EXPECT().
			MarkRead(gomock.Any(), notificationID, userID).
			Return(nil)

		assert.NoError(t, svc.MarkRead(context.Background(), notificationID, userID))
	})

	t.Run("someone else's notification reads as missing", func(t *testing.T) {
		notificationID := uuid.New()

		mockMarker.EXPECT().
			MarkRead(gomock.Any(), notificationID, userID).
			Return(sql.ErrNoRows)

		err := svc.MarkRead(context.Background(), notificationID, userID)
		assert.ErrorIs(t, err, services.ErrNotificationNotFound)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockNotificationReader(ctrl)
	mockMarker := services.NewMockNotificationMarker(ctrl)

	svc := services.NewNotificationService(mockReader, mockMarker)

	userID := uuid.New()

	mockMarker.EXPECT().
		MarkAllRead(gomock.Any(), userID).
		Return(nil)

	assert.NoError(t, svc.MarkAllRead(context.Background(), userID))
}
