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

func TestEndorseSkillHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	endorserID := uuid.New()
	skillID := uuid.New()

	newRouter := func(svc Endorser) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodPost, "/skills/{skillID}/endorse", authed(NewEndorseSkillHandler(svc)))
		return r
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockEndorser(ctrl)
		mockSvc.EXPECT().
			Endorse(gomock.Any(), skillID, endorserID, "great pair programmer").
			Return(nil)

		body, _ := json.Marshal(EndorseRequest{Comment: "great pair programmer"})
		req := newAuthedRequest(t, http.MethodPost, "/skills/"+skillID.String()+"/endorse", bytes.NewBuffer(body), endorserID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp EndorseResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Skill endorsed", resp.Message)
	})

	t.Run("own skill", func(t *testing.T) {
		mockSvc := NewMockEndorser(ctrl)
		mockSvc.EXPECT().
			Endorse(gomock.Any(), skillID, endorserID, "").
			Return(services.ErrCannotEndorseOwnSkill)

		req := newAuthedRequest(t, http.MethodPost, "/skills/"+skillID.String()+"/endorse", bytes.NewBufferString("{}"), endorserID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Cannot endorse your own skill", resp.Error)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockSvc := NewMockEndorser(ctrl)
		mockSvc.EXPECT().
			Endorse(gomock.Any(), skillID, endorserID, "").
			Return(services.ErrSkillNotFound)

		req := newAuthedRequest(t, http.MethodPost, "/skills/"+skillID.String()+"/endorse", bytes.NewBufferString("{}"), endorserID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed skill id", func(t *testing.T) {
		mockSvc := NewMockEndorser(ctrl)

		req := newAuthedRequest(t, http.MethodPost, "/skills/not-a-uuid/endorse", bytes.NewBufferString("{}"), endorserID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockSvc := NewMockEndorser(ctrl)

		req := newAuthedRequest(t, http.MethodPost, "/skills/"+skillID.String()+"/endorse", bytes.NewBufferString("{invalid"), endorserID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListEndorsementsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	skillID := uuid.New()

	newRouter := func(svc EndorsementLister) chi.Router {
		r := chi.NewRouter()
		r.Method(http.MethodGet, "/skills/{skillID}/endorsements", authed(NewListEndorsementsHandler(svc)))
		return r
	}

	t.Run("lists endorsements", func(t *testing.T) {
		mockSvc := NewMockEndorsementLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), skillID).
			Return([]models.EndorsementDB{
				{EndorsementID: uuid.New(), SkillID: skillID, EndorserID: uuid.New(), Comment: "solid"},
				{EndorsementID: uuid.New(), SkillID: skillID, EndorserID: uuid.New(), Comment: "ships fast"},
			}, nil)

		req := newAuthedRequest(t, http.MethodGet, "/skills/"+skillID.String()+"/endorsements", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp EndorsementsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Endorsements, 2)
		assert.Equal(t, "solid", resp.Endorsements[0].Comment)
	})

	t.Run("skill not found", func(t *testing.T) {
		mockSvc := NewMockEndorsementLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), skillID).
			Return(nil, services.ErrSkillNotFound)

		req := newAuthedRequest(t, http.MethodGet, "/skills/"+skillID.String()+"/endorsements", nil, userID, false)
		rr := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
