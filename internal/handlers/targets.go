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

// TargetLister defines the interface for reading skill targets.
type TargetLister interface {
	ListTargets(ctx context.Context) ([]models.SkillTargetDB, error)
}

// TargetManager defines the interface for target maintenance.
type TargetManager interface {
	CreateTarget(ctx context.Context, name, category, targetLevel string, headcount int) (uuid.UUID, error)
	UpdateTarget(ctx context.Context, targetID uuid.UUID, name, category, targetLevel *string, headcount *int) error
	DeleteTarget(ctx context.Context, targetID uuid.UUID) error
}

// TargetsResponse represents the organisational skill targets
// swagger:model TargetsResponse
type TargetsResponse struct {
	// Skill targets
	Targets []models.SkillTargetDB `json:"targets"`
}

// NewListTargetsHandler returns an HTTP handler listing skill targets.
// @Summary List skill targets
// @Description Returns the organisational skill targets feeding the gap report
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.TargetsResponse "Skill targets"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/skill-targets [get]
// @Security BearerAuth
func NewListTargetsHandler(svc TargetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targets, err := svc.ListTargets(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list targets", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TargetsResponse{Targets: targets})
	}
}

// CreateTargetRequest represents the JSON body for a skill target
// swagger:model CreateTargetRequest
type CreateTargetRequest struct {
	// Skill name
	// required: true
	// default: Kubernetes
	Name string `json:"name"`

	// Category
	// required: true
	// default: DevOps
	Category string `json:"category"`

	// Desired proficiency level
	// required: true
	// enum: beginner,intermediate,expert
	TargetLevel string `json:"target_level"`

	// Desired number of people at that level
	// required: true
	// default: 5
	Headcount int `json:"headcount"`
}

// CreateTargetResponse represents a created skill target
// swagger:model CreateTargetResponse
type CreateTargetResponse struct {
	// Identifier of the created target
	TargetID uuid.UUID `json:"target_id"`
}

// NewCreateTargetHandler returns an HTTP handler adding a skill target.
// @Summary Create skill target
// @Description Adds an organisational skill target
// @Tags admin
// @Accept json
// @Produce json
// @Param createTargetRequest body handlers.CreateTargetRequest true "Skill target"
// @Success 201 {object} handlers.CreateTargetResponse "Target created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/skill-targets [post]
// @Security BearerAuth
func NewCreateTargetHandler(svc TargetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Name == "" || req.Category == "" || req.Headcount < 1 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Name, category and a positive headcount are required"})
			return
		}

		targetID, err := svc.CreateTarget(r.Context(), req.Name, req.Category, req.TargetLevel, req.Headcount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidLevel):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid proficiency level"})
			default:
				logger.Log.Errorw("failed to create target", "name", req.Name, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTargetResponse{TargetID: targetID})
	}
}

// UpdateTargetRequest represents the JSON body for a target edit
// swagger:model UpdateTargetRequest
type UpdateTargetRequest struct {
	// New skill name
	Name *string `json:"name,omitempty"`

	// New category
	Category *string `json:"category,omitempty"`

	// New desired level
	TargetLevel *string `json:"target_level,omitempty"`

	// New desired headcount
	Headcount *int `json:"headcount,omitempty"`
}

// NewUpdateTargetHandler returns an HTTP handler editing a skill target.
// @Summary Update skill target
// @Description Applies a partial edit to a skill target
// @Tags admin
// @Accept json
// @Produce json
// @Param targetID path string true "Target ID"
// @Param updateTargetRequest body handlers.UpdateTargetRequest true "Fields to change"
// @Success 204 "Target updated"
// @Failure 404 {object} handlers.ErrorResponse "Target not found"
// @Router /admin/skill-targets/{targetID} [patch]
// @Security BearerAuth
func NewUpdateTargetHandler(svc TargetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := uuidParam(r, "targetID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid target id"})
			return
		}

		var req UpdateTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err = svc.UpdateTarget(r.Context(), targetID, req.Name, req.Category, req.TargetLevel, req.Headcount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTargetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Target not found"})
			case errors.Is(err, services.ErrInvalidLevel):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid proficiency level"})
			default:
				logger.Log.Errorw("failed to update target", "targetID", targetID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteTargetHandler returns an HTTP handler removing a skill target.
// @Summary Delete skill target
// @Description Removes an organisational skill target
// @Tags admin
// @Produce json
// @Param targetID path string true "Target ID"
// @Success 204 "Target removed"
// @Failure 404 {object} handlers.ErrorResponse "Target not found"
// @Router /admin/skill-targets/{targetID} [delete]
// @Security BearerAuth
func NewDeleteTargetHandler(svc TargetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := uuidParam(r, "targetID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid target id"})
			return
		}

		err = svc.DeleteTarget(r.Context(), targetID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTargetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Target not found"})
			default:
				logger.Log.Errorw("failed to delete target", "targetID", targetID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
