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

// ProjectLister defines the interface for listing and reading projects.
type ProjectLister interface {
	ListProjects(ctx context.Context, clientID *uuid.UUID) ([]models.ProjectDB, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
}

// ProjectManager defines the interface for project maintenance.
type ProjectManager interface {
	CreateProject(ctx context.Context, callerID, clientID uuid.UUID, name, description, status string, startDate time.Time, endDate *time.Time, leadID, deliveryLeadID *uuid.UUID) (uuid.UUID, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, name, description, status *string, endDate *time.Time) error
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

// ProjectsResponse represents a list of projects
// swagger:model ProjectsResponse
type ProjectsResponse struct {
	// Projects
	Projects []models.ProjectDB `json:"projects"`
}

// NewListProjectsHandler returns an HTTP handler listing projects. The
// client_id query parameter narrows the listing to one client.
// @Summary List projects
// @Description Returns projects, optionally filtered by client
// @Tags projects
// @Produce json
// @Param client_id query string false "Client ID filter"
// @Success 200 {object} handlers.ProjectsResponse "Projects"
// @Failure 400 {object} handlers.ErrorResponse "Invalid client id"
// @Router /projects [get]
// @Security BearerAuth
func NewListProjectsHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var clientID *uuid.UUID
		if raw := r.URL.Query().Get("client_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid client id"})
				return
			}
			clientID = &id
		}

		projects, err := svc.ListProjects(r.Context(), clientID)
		if err != nil {
			logger.Log.Errorw("failed to list projects", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProjectsResponse{Projects: projects})
	}
}

// ProjectResponse represents a single project
// swagger:model ProjectResponse
type ProjectResponse struct {
	// Project
	Project *models.ProjectDB `json:"project"`
}

// NewGetProjectHandler returns an HTTP handler for a single project.
// @Summary Get project
// @Description Returns one project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} handlers.ProjectResponse "Project"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID} [get]
// @Security BearerAuth
func NewGetProjectHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		project, err := svc.GetProject(r.Context(), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to get project", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProjectResponse{Project: project})
	}
}

// CreateProjectRequest represents the JSON body for a project
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// Owning client
	// required: true
	ClientID uuid.UUID `json:"client_id"`

	// Project name
	// required: true
	// default: Platform Migration
	Name string `json:"name"`

	// Description
	Description string `json:"description"`

	// Project status
	// enum: active,on_hold,completed
	// default: active
	Status string `json:"status"`

	// Start date
	// required: true
	StartDate time.Time `json:"start_date"`

	// Optional end date
	EndDate *time.Time `json:"end_date,omitempty"`

	// Optional project lead, staffed automatically
	LeadID *uuid.UUID `json:"lead_id,omitempty"`

	// Optional delivery lead, staffed automatically
	DeliveryLeadID *uuid.UUID `json:"delivery_lead_id,omitempty"`
}

// CreateProjectResponse represents a created project
// swagger:model CreateProjectResponse
type CreateProjectResponse struct {
	// Identifier of the created project
	ProjectID uuid.UUID `json:"project_id"`
}

// NewCreateProjectHandler returns an HTTP handler creating a project. A lead
// or delivery lead named in the body is staffed onto the project at full
// allocation with a history entry.
// @Summary Create project
// @Description Creates a project under a client and staffs the named leads
// @Tags admin
// @Accept json
// @Produce json
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project"
// @Success 201 {object} handlers.CreateProjectResponse "Project created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Client not found"
// @Router /admin/projects [post]
// @Security BearerAuth
func NewCreateProjectHandler(svc ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Name == "" || req.ClientID == uuid.Nil || req.StartDate.IsZero() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Client, name and start date are required"})
			return
		}
		if req.Status == "" {
			req.Status = models.ProjectActive
		}
		switch req.Status {
		case models.ProjectActive, models.ProjectOnHold, models.ProjectCompleted:
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project status"})
			return
		}

		projectID, err := svc.CreateProject(r.Context(), claims.UserID, req.ClientID,
			req.Name, req.Description, req.Status, req.StartDate, req.EndDate, req.LeadID, req.DeliveryLeadID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrClientNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Client not found"})
			default:
				logger.Log.Errorw("failed to create project", "name", req.Name, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateProjectResponse{ProjectID: projectID})
	}
}

// UpdateProjectRequest represents the JSON body for a project edit
// swagger:model UpdateProjectRequest
type UpdateProjectRequest struct {
	// New project name
	Name *string `json:"name,omitempty"`

	// New description
	Description *string `json:"description,omitempty"`

	// New status
	Status *string `json:"status,omitempty"`

	// New end date
	EndDate *time.Time `json:"end_date,omitempty"`
}

// NewUpdateProjectHandler returns an HTTP handler editing a project.
// @Summary Update project
// @Description Applies a partial edit to a project
// @Tags admin
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param updateProjectRequest body handlers.UpdateProjectRequest true "Fields to change"
// @Success 204 "Project updated"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /admin/projects/{projectID} [patch]
// @Security BearerAuth
func NewUpdateProjectHandler(svc ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		var req UpdateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Status != nil {
			switch *req.Status {
			case models.ProjectActive, models.ProjectOnHold, models.ProjectCompleted:
			default:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project status"})
				return
			}
		}

		err = svc.UpdateProject(r.Context(), projectID, req.Name, req.Description, req.Status, req.EndDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to update project", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteProjectHandler returns an HTTP handler removing a project with its
// staffing records.
// @Summary Delete project
// @Description Removes a project together with its resources and history
// @Tags admin
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 204 "Project removed"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /admin/projects/{projectID} [delete]
// @Security BearerAuth
func NewDeleteProjectHandler(svc ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		err = svc.DeleteProject(r.Context(), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to delete project", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
