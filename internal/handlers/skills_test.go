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

func TestListSkillsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("lists own skills", func(t *testing.T) {
		mockSvc := NewMockSkillLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return([]models.SkillDB{
				{SkillID: uuid.New(), UserID: userID, Name: "Go", Level: models.LevelExpert},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/skills", nil, userID, false)
		rr := httptest.NewRecorder()
		authed(NewListSkillsHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SkillsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Skills, 1)
		assert.Equal(t, "Go", resp.Skills[0].Name)
	})

	t.Run("missing token", func(t *testing.T) {
		mockSvc := NewMockSkillLister(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/skills", nil)
		rr := httptest.NewRecorder()
		authed(NewListSkillsHandler(mockSvc)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	skillID := uuid.New()

	newRouter := func(svc SkillUpdater) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodPatch, "/skills/{skillID}", authed(NewUpdateSkillHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockSkillUpdater(ctrl)
		level := models.LevelExpert
		mockSvc.EXPECT().
			Update(gomock.Any(), skillID, userID, false, gomock.Any(), gomock.Any(), &level, gomock.Any(), gomock.Any()).
			Return(&models.SkillDB{SkillID: skillID, UserID: userID, Level: level}, nil)

		body, _ := json.Marshal(UpdateSkillRequest{Level: &level})
		req := newAuthedRequest(t, http.MethodPatch, "/skills/"+skillID.String(), bytes.NewBuffer(body), userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp UpdateSkillResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, level, resp.Skill.Level)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockSvc := NewMockSkillUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), skillID, userID, false, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrNotSkillOwner)

		req := newAuthedRequest(t, http.MethodPatch, "/skills/"+skillID.String(), bytes.NewBufferString("{}"), userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockSvc := NewMockSkillUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), skillID, userID, false, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrSkillNotFound)

		req := newAuthedRequest(t, http.MethodPatch, "/skills/"+skillID.String(), bytes.NewBufferString("{}"), userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid level", func(t *testing.T) {
		mockSvc := NewMockSkillUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), skillID, userID, false, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidLevel)

		req := newAuthedRequest(t, http.MethodPatch, "/skills/"+skillID.String(), bytes.NewBufferString(`{"level":"guru"}`), userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed skill id", func(t *testing.T) {
		mockSvc := NewMockSkillUpdater(ctrl)

		req := newAuthedRequest(t, http.MethodPatch, "/skills/not-a-uuid", bytes.NewBufferString("{}"), userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	skillID := uuid.New()

	newRouter := func(svc SkillDeleter) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodDelete, "/skills/{skillID}", authed(NewDeleteSkillHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockSkillDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), skillID, userID, false).
			Return(nil)

		req := newAuthedRequest(t, http.MethodDelete, "/skills/"+skillID.String(), nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not the owner", func(t *testing.T) {
		mockSvc := NewMockSkillDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), skillID, userID, false).
			Return(services.ErrNotSkillOwner)

		req := newAuthedRequest(t, http.MethodDelete, "/skills/"+skillID.String(), nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestSkillHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	skillID := uuid.New()

	newRouter := func(svc SkillHistorian) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodGet, "/skills/{skillID}/history", authed(NewSkillHistoryHandler(svc)))
		return r
	}

	t.Run("returns history", func(t *testing.T) {
		mockSvc := NewMockSkillHistorian(ctrl)
		mockSvc.EXPECT().
			History(gomock.Any(), skillID).
			Return([]models.SkillHistoryDB{
				{HistoryID: uuid.New(), SkillID: skillID, NewLevel: models.LevelExpert},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/skills/"+skillID.String()+"/history", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SkillHistoryResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.History, 1)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockSvc := NewMockSkillHistorian(ctrl)
		mockSvc.EXPECT().
			History(gomock.Any(), skillID).
			Return(nil, services.ErrSkillNotFound)

		req := newAuthedRequest(t, http.MethodGet, "/skills/"+skillID.String()+"/history", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
