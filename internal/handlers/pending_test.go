package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSubmitSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("new skill proposal", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)
		pendingID := uuid.New()
		mockSvc.EXPECT().
			Submit(gomock.Any(), userID, (*uuid.UUID)(nil), "Kubernetes", "DevOps", models.LevelBeginner, gomock.Any(), false).
			Return(pendingID, nil)

		body, _ := json.Marshal(SubmitSkillRequest{
			Name:     "Kubernetes",
			Category: "DevOps",
			Level:    models.LevelBeginner,
		})
		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp SubmitSkillResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, pendingID, resp.PendingID)
		assert.Equal(t, models.StatusPending, resp.Status)
	})

	t.Run("edit proposal carries the target skill", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)
		skillID := uuid.New()
		mockSvc.EXPECT().
			Submit(gomock.Any(), userID, &skillID, "Kubernetes", "DevOps", models.LevelExpert, gomock.Any(), true).
			Return(uuid.New(), nil)

		body, _ := json.Marshal(SubmitSkillRequest{
			IsUpdate: true,
			SkillID:  &skillID,
			Name:     "Kubernetes",
			Category: "DevOps",
			Level:    models.LevelExpert,
		})
		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("update flag without target skill", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)
		mockSvc.EXPECT().
			Submit(gomock.Any(), userID, (*uuid.UUID)(nil), "Kubernetes", "DevOps", models.LevelExpert, gomock.Any(), true).
			Return(uuid.Nil, services.ErrInvalidSubmission)

		body, _ := json.Marshal(SubmitSkillRequest{
			IsUpdate: true,
			Name:     "Kubernetes",
			Category: "DevOps",
			Level:    models.LevelExpert,
		})
		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("skill id without update flag proposes a new skill", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)
		skillID := uuid.New()
		mockSvc.EXPECT().
			Submit(gomock.Any(), userID, (*uuid.UUID)(nil), "Kubernetes", "DevOps", models.LevelBeginner, gomock.Any(), false).
			Return(uuid.New(), nil)

		body, _ := json.Marshal(SubmitSkillRequest{
			SkillID:  &skillID,
			Name:     "Kubernetes",
			Category: "DevOps",
			Level:    models.LevelBeginner,
		})
		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("invalid proposal", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)
		mockSvc.EXPECT().
			Submit(gomock.Any(), userID, (*uuid.UUID)(nil), "", "DevOps", "guru", gomock.Any(), false).
			Return(uuid.Nil, services.ErrInvalidSubmission)

		body, _ := json.Marshal(SubmitSkillRequest{Category: "DevOps", Level: "guru"})
		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("target skill gone", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)
		skillID := uuid.New()
		mockSvc.EXPECT().
			Submit(gomock.Any(), userID, &skillID, "Kubernetes", "DevOps", models.LevelExpert, gomock.Any(), true).
			Return(uuid.Nil, services.ErrSkillNotFound)

		body, _ := json.Marshal(SubmitSkillRequest{
			IsUpdate: true,
			SkillID:  &skillID,
			Name:     "Kubernetes",
			Category: "DevOps",
			Level:    models.LevelExpert,
		})
		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockSkillSubmitter(ctrl)

		req := newAuthedRequest(t, http.MethodPost, "/skills/pending", bytes.NewBufferString("{invalid"), userID, false)
		rr := httptest.NewRecorder()
		authed(NewSubmitSkillHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListOwnPendingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("lists proposals in every status", func(t *testing.T) {
		mockSvc := NewMockOwnPendingLister(ctrl)
		mockSvc.EXPECT().
			ListOwn(gomock.Any(), userID).
			Return([]models.PendingSkillUpdateDB{
				{PendingID: uuid.New(), UserID: userID, Status: models.StatusPending},
				{PendingID: uuid.New(), UserID: userID, Status: models.StatusRejected},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/skills/pending", nil, userID, false)
		rr := httptest.NewRecorder()
		authed(NewListOwnPendingHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp PendingResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Pending, 2)
	})

	t.Run("missing token", func(t *testing.T) {
		mockSvc := NewMockOwnPendingLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/skills/pending", nil)
		rr := httptest.NewRecorder()
		authed(NewListOwnPendingHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
