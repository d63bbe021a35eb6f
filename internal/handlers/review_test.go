package handlers

import (
	"bytes"
	"encoding/json"
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

func TestListReviewQueueHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()

	t.Run("defaults to pending", func(t *testing.T) {
		mockSvc := NewMockPendingLister(ctrl)
		mockSvc.EXPECT().
			ListByStatus(gomock.Any(), models.StatusPending).
			Return([]models.PendingSkillUpdateDB{
				{PendingID: uuid.New(), Name: "Go", Level: models.LevelExpert, Status: models.StatusPending},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/admin/pending-skills", nil, adminID, true)
		rr := httptest.NewRecorder()
		authed(NewListReviewQueueHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp PendingResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Pending, 1)
		assert.Equal(t, "Go", resp.Pending[0].Name)
	})

	t.Run("explicit status", func(t *testing.T) {
		mockSvc := NewMockPendingLister(ctrl)
		mockSvc.EXPECT().
			ListByStatus(gomock.Any(), models.StatusRejected).
			Return([]models.PendingSkillUpdateDB{}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/admin/pending-skills?status=rejected", nil, adminID, true)
		rr := httptest.NewRecorder()
		authed(NewListReviewQueueHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockSvc := NewMockPendingLister(ctrl)

		req := newAuthedRequest(t, http.MethodGet, "/admin/pending-skills?status=archived", nil, adminID, true)
		rr := httptest.NewRecorder()
		authed(NewListReviewQueueHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid status", resp.Error)
	})
}

func TestApproveSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	pendingID := uuid.New()

	newRouter := func(svc Approver) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodPost, "/admin/pending-skills/{pendingID}/approve", authed(NewApproveSkillHandler(svc)))
		return r
	}

	t.Run("success with notes", func(t *testing.T) {
		mockSvc := NewMockApprover(ctrl)
		notes := "verified with the team lead"
		skill := &models.SkillDB{SkillID: uuid.New(), Name: "Go", Level: models.LevelExpert}
		mockSvc.EXPECT().
			Approve(gomock.Any(), pendingID, adminID, &notes).
			Return(skill, nil)

		body, _ := json.Marshal(ReviewRequest{Notes: &notes})
		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/approve", bytes.NewBuffer(body), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ApproveResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Skill approved", resp.Message)
		assert.Equal(t, skill.SkillID, resp.Skill.SkillID)
	})

	t.Run("empty body means no notes", func(t *testing.T) {
		mockSvc := NewMockApprover(ctrl)
		mockSvc.EXPECT().
			Approve(gomock.Any(), pendingID, adminID, (*string)(nil)).
			Return(&models.SkillDB{SkillID: uuid.New()}, nil)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/approve", nil, adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("proposal not found", func(t *testing.T) {
		mockSvc := NewMockApprover(ctrl)
		mockSvc.EXPECT().
			Approve(gomock.Any(), pendingID, adminID, gomock.Any()).
			Return(nil, services.ErrPendingNotFound)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/approve", bytes.NewBufferString("{}"), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("already reviewed", func(t *testing.T) {
		mockSvc := NewMockApprover(ctrl)
		mockSvc.EXPECT().
			Approve(gomock.Any(), pendingID, adminID, gomock.Any()).
			Return(nil, services.ErrAlreadyReviewed)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/approve", bytes.NewBufferString("{}"), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Proposal already reviewed", resp.Error)
	})

	t.Run("target skill gone", func(t *testing.T) {
		mockSvc := NewMockApprover(ctrl)
		mockSvc.EXPECT().
			Approve(gomock.Any(), pendingID, adminID, gomock.Any()).
			Return(nil, services.ErrTargetSkillGone)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/approve", bytes.NewBufferString("{}"), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("malformed pending id", func(t *testing.T) {
		mockSvc := NewMockApprover(ctrl)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/not-a-uuid/approve", nil, adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRejectSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	pendingID := uuid.New()

	newRouter := func(svc Rejecter) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodPost, "/admin/pending-skills/{pendingID}/reject", authed(NewRejectSkillHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockRejecter(ctrl)
		notes := "needs more evidence"
		mockSvc.EXPECT().
			Reject(gomock.Any(), pendingID, adminID, &notes).
			Return(nil)

		body, _ := json.Marshal(ReviewRequest{Notes: &notes})
		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/reject", bytes.NewBuffer(body), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp RejectResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Skill proposal rejected", resp.Message)
	})

	t.Run("proposal not found", func(t *testing.T) {
		mockSvc := NewMockRejecter(ctrl)
		mockSvc.EXPECT().
			Reject(gomock.Any(), pendingID, adminID, gomock.Any()).
			Return(services.ErrPendingNotFound)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/reject", bytes.NewBufferString("{}"), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("already reviewed", func(t *testing.T) {
		mockSvc := NewMockRejecter(ctrl)
		mockSvc.EXPECT().
			Reject(gomock.Any(), pendingID, adminID, gomock.Any()).
			Return(services.ErrAlreadyReviewed)

		req := newAuthedRequest(t, http.MethodPost, "/admin/pending-skills/"+pendingID.String()+"/reject", bytes.NewBufferString("{}"), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
