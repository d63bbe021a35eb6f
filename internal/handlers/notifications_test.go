package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListNotificationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("lists inbox", func(t *testing.T) {
		mockSvc := NewMockNotificationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return([]models.NotificationDB{
				{NotificationID: uuid.New(), UserID: userID, Type: models.NotificationEndorsement, Message: "Alice endorsed your Go skill"},
				{NotificationID: uuid.New(), UserID: userID, Type: models.NotificationLevelUp, Message: "Your Go skill is now expert", IsRead: true},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/notifications", nil, userID, false)
		rr := httptest.NewRecorder()
		authed(NewListNotificationsHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp NotificationsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Notifications, 2)
		assert.False(t, resp.Notifications[0].IsRead)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockNotificationLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(nil, errors.New("db down"))

		req := newAuthedRequest(t, http.MethodGet, "/notifications", nil, userID, false)
		rr := httptest.NewRecorder()
		authed(NewListNotificationsHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		mockSvc := NewMockNotificationLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		rr := httptest.NewRecorder()
		authed(NewListNotificationsHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestMarkNotificationReadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	notificationID := uuid.New()

	newRouter := func(svc NotificationMarker) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodPost, "/notifications/{notificationID}/read", authed(NewMarkNotificationReadHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockNotificationMarker(ctrl)
		mockSvc.EXPECT().
			MarkRead(gomock.Any(), notificationID, userID).
			Return(nil)

		req := newAuthedRequest(t, http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp MarkReadResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Notification marked as read", resp.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockNotificationMarker(ctrl)
		mockSvc.EXPECT().
			MarkRead(gomock.Any(), notificationID, userID).
			Return(services.ErrNotificationNotFound)

		req := newAuthedRequest(t, http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed notification id", func(t *testing.T) {
		mockSvc := NewMockNotificationMarker(ctrl)

		req := newAuthedRequest(t, http.MethodPost, "/notifications/not-a-uuid/read", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMarkAllNotificationsReadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockNotificationMarker(ctrl)
		mockSvc.EXPECT().
			MarkAllRead(gomock.Any(), userID).
			Return(nil)

		req := newAuthedRequest(t, http.MethodPost, "/notifications/read-all", nil, userID, false)
		rr := httptest.NewRecorder()
		authed(NewMarkAllNotificationsReadHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp MarkReadResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Notifications marked as read", resp.Message)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockNotificationMarker(ctrl)
		mockSvc.EXPECT().
			MarkAllRead(gomock.Any(), userID).
			Return(errors.New("db down"))

		req := newAuthedRequest(t, http.MethodPost, "/notifications/read-all", nil, userID, false)
		rr := httptest.NewRecorder()
		authed(NewMarkAllNotificationsReadHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
