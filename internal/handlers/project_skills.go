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

// ProjectSkillLister defines the interface for reading a project's
// required skills.
type ProjectSkillLister interface {
	ListProjectSkills(ctx context.Context, projectID uuid.UUID) ([]models.ProjectSkillDB, error)
}

// ProjectSkillSetter defines the interface for replacing a project's
// required-skill set.
type ProjectSkillSetter interface {
	SetProjectSkills(ctx context.Context, projectID uuid.UUID, skills []models.ProjectSkillDB) error
}

// ProjectSkillsResponse represents a project's required skills
// swagger:model ProjectSkillsResponse
type ProjectSkillsResponse struct {
	// Required skills, grouped by category
	Skills []models.ProjectSkillDB `json:"skills"`
}

// NewListProjectSkillsHandler returns an HTTP handler listing the skills a
// project requires.
// @Summary List project required skills
// @Description Returns the skills a project requires from its staffing
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} handlers.ProjectSkillsResponse "Required skills"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/skills [get]
// @Security BearerAuth
func NewListProjectSkillsHandler(svc ProjectSkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		skills, err := svc.ListProjectSkills(r.Context(), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to list project skills", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProjectSkillsResponse{Skills: skills})
	}
}

// SetProjectSkillsRequest represents the JSON body replacing a project's
// required-skill set
// swagger:model SetProjectSkillsRequest
type SetProjectSkillsRequest struct {
	// Required skills; replaces the current set, empty clears it
	Skills []ProjectSkillEntry `json:"skills"`
}

// ProjectSkillEntry represents one required skill
// swagger:model ProjectSkillEntry
type ProjectSkillEntry struct {
	// Skill name
	// required: true
	// default: Kubernetes
	Name string `json:"name"`

	// Skill category
	// required: true
	// default: DevOps
	Category string `json:"category"`
}

// SetProjectSkillsResponse represents a successful replacement
// swagger:model SetProjectSkillsResponse
type SetProjectSkillsResponse struct {
	// Success message
	// default: Project skills updated
	Message string `json:"message"`
}

// NewSetProjectSkillsHandler returns an HTTP handler replacing the skills a
// project requires. The whole set is swapped in one transaction.
// @Summary Set project required skills
// @Description Replaces the project's required-skill set
// @Tags admin
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param setProjectSkillsRequest body handlers.SetProjectSkillsRequest true "Required skills"
// @Success 200 {object} handlers.SetProjectSkillsResponse "Project skills updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /admin/projects/{projectID}/skills [put]
// @Security BearerAuth
func NewSetProjectSkillsHandler(svc ProjectSkillSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		var req SetProjectSkillsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		skills := make([]models.ProjectSkillDB, 0, len(req.Skills))
		for _, entry := range req.Skills {
			skills = append(skills, models.ProjectSkillDB{
				ProjectID: projectID,
				Name:      entry.Name,
				Category:  entry.Category,
			})
		}

		err = svc.SetProjectSkills(r.Context(), projectID, skills)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidProjectSkill):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill name and category are required"})
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to set project skills", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SetProjectSkillsResponse{Message: "Project skills updated"})
	}
}
