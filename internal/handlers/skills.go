package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/services"
)

// SkillLister defines the interface for listing a user's skills.
type SkillLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error)
}

// SkillUpdater defines the interface for direct skill edits.
type SkillUpdater interface {
	Update(ctx context.Context, skillID, callerID uuid.UUID, callerIsAdmin bool, name, category, level, certification *string, certificationDate *time.Time) (*models.SkillDB, error)
}

// SkillDeleter defines the interface for removing skills.
type SkillDeleter interface {
	Delete(ctx context.Context, skillID, callerID uuid.UUID, callerIsAdmin bool) error
}

// SkillHistorian defines the interface for reading a skill's level history.
type SkillHistorian interface {
	History(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error)
}

// SkillsResponse represents a list of skills
// swagger:model SkillsResponse
type SkillsResponse struct {
	// Approved skills of the user
	Skills []models.SkillDB `json:"skills"`
}

// NewListSkillsHandler returns an HTTP handler listing the caller's skills.
// @Summary List own skills
// @Description Returns the authenticated user's approved skills
// @Tags skills
// @Produce json
// @Success 200 {object} handlers.SkillsResponse "User skills"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /skills [get]
// @Security BearerAuth
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		skills, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list skills", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SkillsResponse{Skills: skills})
	}
}

// UpdateSkillRequest represents the JSON body for a direct skill edit
// swagger:model UpdateSkillRequest
type UpdateSkillRequest struct {
	// New skill name
	Name *string `json:"name,omitempty"`

	// New category
	Category *string `json:"category,omitempty"`

	// New proficiency level
	// enum: beginner,intermediate,expert
	Level *string `json:"level,omitempty"`

	// New certification name
	Certification *string `json:"certification,omitempty"`

	// New certification date
	CertificationDate *time.Time `json:"certification_date,omitempty"`
}

// UpdateSkillResponse represents the updated skill
// swagger:model UpdateSkillResponse
type UpdateSkillResponse struct {
	// Updated skill
	Skill *models.SkillDB `json:"skill"`
}

// NewUpdateSkillHandler returns an HTTP handler for direct skill edits.
// Level changes are recorded in the skill's history.
// @Summary Update a skill
// @Description Edits an approved skill. Only the owner or an administrator may edit.
// @Tags skills
// @Accept json
// @Produce json
// @Param skillID path string true "Skill ID"
// @Param updateSkillRequest body handlers.UpdateSkillRequest true "Fields to change"
// @Success 200 {object} handlers.UpdateSkillResponse "Updated skill"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not the skill owner"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{skillID} [patch]
// @Security BearerAuth
func NewUpdateSkillHandler(svc SkillUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		skillID, err := uuidParam(r, "skillID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid skill id"})
			return
		}

		var req UpdateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		skill, err := svc.Update(r.Context(), skillID, claims.UserID, claims.IsAdmin,
			req.Name, req.Category, req.Level, req.Certification, req.CertificationDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			case errors.Is(err, services.ErrNotSkillOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not the skill owner"})
			case errors.Is(err, services.ErrInvalidLevel):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid proficiency level"})
			default:
				logger.Log.Errorw("failed to update skill", "skillID", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateSkillResponse{Skill: skill})
	}
}

// NewDeleteSkillHandler returns an HTTP handler removing a skill.
// @Summary Delete a skill
// @Description Removes an approved skill with its history and endorsements. Only the owner or an administrator may delete.
// @Tags skills
// @Produce json
// @Param skillID path string true "Skill ID"
// @Success 204 "Skill removed"
// @Failure 403 {object} handlers.ErrorResponse "Not the skill owner"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{skillID} [delete]
// @Security BearerAuth
func NewDeleteSkillHandler(svc SkillDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		skillID, err := uuidParam(r, "skillID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid skill id"})
			return
		}

		err = svc.Delete(r.Context(), skillID, claims.UserID, claims.IsAdmin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			case errors.Is(err, services.ErrNotSkillOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not the skill owner"})
			default:
				logger.Log.Errorw("failed to delete skill", "skillID", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SkillHistoryResponse represents a skill's level history
// swagger:model SkillHistoryResponse
type SkillHistoryResponse struct {
	// Level changes, newest first
	History []models.SkillHistoryDB `json:"history"`
}

// NewSkillHistoryHandler returns an HTTP handler listing a skill's level changes.
// @Summary Skill history
// @Description Returns the recorded level changes of a skill
// @Tags skills
// @Produce json
// @Param skillID path string true "Skill ID"
// @Success 200 {object} handlers.SkillHistoryResponse "Level history"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{skillID}/history [get]
// @Security BearerAuth
func NewSkillHistoryHandler(svc SkillHistorian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuidParam(r, "skillID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid skill id"})
			return
		}

		history, err := svc.History(r.Context(), skillID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			default:
				logger.Log.Errorw("failed to list skill history", "skillID", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SkillHistoryResponse{History: history})
	}
}
