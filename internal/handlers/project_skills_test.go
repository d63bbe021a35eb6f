package handlers

import (
	"bytes"
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

func TestListProjectSkillsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	projectID := uuid.New()

	newRouter := func(svc ProjectSkillLister) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodGet, "/projects/{projectID}/skills", authed(NewListProjectSkillsHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProjectSkillLister(ctrl)
		mockSvc.EXPECT().
			ListProjectSkills(gomock.Any(), projectID).
			Return([]models.ProjectSkillDB{
				{ProjectID: projectID, Name: "Go", Category: "Backend"},
				{ProjectID: projectID, Name: "Terraform", Category: "DevOps"},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/projects/"+projectID.String()+"/skills", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ProjectSkillsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Skills, 2)
		assert.Equal(t, "Go", resp.Skills[0].Name)
	})

	t.Run("project not found", func(t *testing.T) {
		mockSvc := NewMockProjectSkillLister(ctrl)
		mockSvc.EXPECT().
			ListProjectSkills(gomock.Any(), projectID).
			Return(nil, services.ErrProjectNotFound)

		req := newAuthedRequest(t, http.MethodGet, "/projects/"+projectID.String()+"/skills", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Project not found", resp.Error)
	})

	t.Run("malformed project id", func(t *testing.T) {
		mockSvc := NewMockProjectSkillLister(ctrl)

		req := newAuthedRequest(t, http.MethodGet, "/projects/not-a-uuid/skills", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockProjectSkillLister(ctrl)
		mockSvc.EXPECT().
			ListProjectSkills(gomock.Any(), projectID).
			Return(nil, errors.New("db down"))

		req := newAuthedRequest(t, http.MethodGet, "/projects/"+projectID.String()+"/skills", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSetProjectSkillsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()
	projectID := uuid.New()

	newRouter := func(svc ProjectSkillSetter) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodPut, "/admin/projects/{projectID}/skills", authed(NewSetProjectSkillsHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockProjectSkillSetter(ctrl)
		mockSvc.EXPECT().
			SetProjectSkills(gomock.Any(), projectID, []models.ProjectSkillDB{
				{ProjectID: projectID, Name: "Go", Category: "Backend"},
			}).
			Return(nil)

		body, _ := json.Marshal(SetProjectSkillsRequest{
			Skills: []ProjectSkillEntry{{Name: "Go", Category: "Backend"}},
		})
		req := newAuthedRequest(t, http.MethodPut, "/admin/projects/"+projectID.String()+"/skills", bytes.NewBuffer(body), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp SetProjectSkillsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Project skills updated", resp.Message)
	})

	t.Run("empty set clears requirements", func(t *testing.T) {
		mockSvc := NewMockProjectSkillSetter(ctrl)
		mockSvc.EXPECT().
			SetProjectSkills(gomock.Any(), projectID, []models.ProjectSkillDB{}).
			Return(nil)

		req := newAuthedRequest(t, http.MethodPut, "/admin/projects/"+projectID.String()+"/skills", bytes.NewBufferString(`{"skills": []}`), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("blank entry rejected", func(t *testing.T) {
		mockSvc := NewMockProjectSkillSetter(ctrl)
		mockSvc.EXPECT().
			SetProjectSkills(gomock.Any(), projectID, gomock.Any()).
			Return(services.ErrInvalidProjectSkill)

		body, _ := json.Marshal(SetProjectSkillsRequest{
			Skills: []ProjectSkillEntry{{Name: "", Category: "Backend"}},
		})
		req := newAuthedRequest(t, http.MethodPut, "/admin/projects/"+projectID.String()+"/skills", bytes.NewBuffer(body), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Skill name and category are required", resp.Error)
	})

	t.Run("project not found", func(t *testing.T) {
		mockSvc := NewMockProjectSkillSetter(ctrl)
		mockSvc.EXPECT().
			SetProjectSkills(gomock.Any(), projectID, gomock.Any()).
			Return(services.ErrProjectNotFound)

		req := newAuthedRequest(t, http.MethodPut, "/admin/projects/"+projectID.String()+"/skills", bytes.NewBufferString(`{"skills": []}`), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockProjectSkillSetter(ctrl)

		req := newAuthedRequest(t, http.MethodPut, "/admin/projects/"+projectID.String()+"/skills", bytes.NewBufferString("{not json"), adminID, true)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
