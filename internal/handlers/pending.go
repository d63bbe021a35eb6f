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

// SkillSubmitter defines the interface for submitting proposals.
type SkillSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, skillID *uuid.UUID, name, category, level string, certification *string, isUpdate bool) (uuid.UUID, error)
}

// OwnPendingLister defines the interface for listing the caller's proposals.
type OwnPendingLister interface {
	ListOwn(ctx context.Context, userID uuid.UUID) ([]models.PendingSkillUpdateDB, error)
}

// SubmitSkillRequest represents the JSON body for a skill proposal
// swagger:model SubmitSkillRequest
type SubmitSkillRequest struct {
	// True when proposing an edit of an existing skill
	IsUpdate bool `json:"is_update"`

	// Target skill, required when is_update is true
	SkillID *uuid.UUID `json:"skill_id,omitempty"`

	// Skill name
	// required: true
	// default: Kubernetes
	Name string `json:"name"`

	// Skill category
	// required: true
	// default: DevOps
	Category string `json:"category"`

	// Proficiency level
	// required: true
	// enum: beginner,intermediate,expert
	Level string `json:"level"`

	// Optional certification name
	Certification *string `json:"certification,omitempty"`
}

// SubmitSkillResponse represents a successful submission
// swagger:model SubmitSkillResponse
type SubmitSkillResponse struct {
	// Identifier of the created proposal
	PendingID uuid.UUID `json:"pending_id"`

	// Proposal status
	// default: pending
	Status string `json:"status"`
}

// NewSubmitSkillHandler returns an HTTP handler for submitting a skill for
// review. A body with is_update set proposes an edit of the skill named by
// skill_id; otherwise a new skill is proposed. Nothing changes until an
// administrator approves.
// @Summary Submit a skill for review
// @Description Creates a pending proposal for a new skill or a skill edit
// @Tags skills
// @Accept json
// @Produce json
// @Param submitSkillRequest body handlers.SubmitSkillRequest true "Skill proposal"
// @Success 201 {object} handlers.SubmitSkillResponse "Proposal created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Not the skill owner"
// @Failure 404 {object} handlers.ErrorResponse "Target skill not found"
// @Router /skills/pending [post]
// @Security BearerAuth
func NewSubmitSkillHandler(svc SkillSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SubmitSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		skillID := req.SkillID
		if !req.IsUpdate {
			// skill_id only means something for edit proposals.
			skillID = nil
		}

		pendingID, err := svc.Submit(r.Context(), claims.UserID, skillID,
			req.Name, req.Category, req.Level, req.Certification, req.IsUpdate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidSubmission), errors.Is(err, services.ErrInvalidLevel):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid skill proposal"})
			case errors.Is(err, services.ErrNotSkillOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not the skill owner"})
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			default:
				logger.Log.Errorw("failed to submit skill", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubmitSkillResponse{
			PendingID: pendingID,
			Status:    models.StatusPending,
		})
	}
}

// PendingResponse represents a list of skill proposals
// swagger:model PendingResponse
type PendingResponse struct {
	// Skill proposals
	Pending []models.PendingSkillUpdateDB `json:"pending"`
}

// NewListOwnPendingHandler returns an HTTP handler listing the caller's
// proposals with their review outcomes.
// @Summary List own skill proposals
// @Description Returns the authenticated user's proposals in every status
// @Tags skills
// @Produce json
// @Success 200 {object} handlers.PendingResponse "Skill proposals"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /skills/pending [get]
// @Security BearerAuth
func NewListOwnPendingHandler(svc OwnPendingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		pending, err := svc.ListOwn(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list pending updates", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PendingResponse{Pending: pending})
	}
}
