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

// ResourceLister defines the interface for reading project staffing.
type ResourceLister interface {
	ListResources(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceDB, error)
}

// ResourceManager defines the interface for staffing changes.
type ResourceManager interface {
	AddResource(ctx context.Context, callerID, projectID, userID uuid.UUID, role string, allocation int, startDate time.Time, endDate *time.Time) (uuid.UUID, error)
	UpdateResource(ctx context.Context, callerID, resourceID uuid.UUID, role *string, allocation *int, endDate *time.Time) error
	RemoveResource(ctx context.Context, callerID, resourceID uuid.UUID) error
}

// ResourceHistorian defines the interface for the staffing audit trail.
type ResourceHistorian interface {
	ResourceHistory(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceHistoryDB, error)
}

// ResourcesResponse represents a project's staffing
// swagger:model ResourcesResponse
type ResourcesResponse struct {
	// Staffed resources
	Resources []models.ProjectResourceDB `json:"resources"`
}

// NewListResourcesHandler returns an HTTP handler listing a project's
// staffing.
// @Summary List project resources
// @Description Returns the users staffed onto a project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} handlers.ResourcesResponse "Resources"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/resources [get]
// @Security BearerAuth
func NewListResourcesHandler(svc ResourceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		resources, err := svc.ListResources(r.Context(), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to list resources", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResourcesResponse{Resources: resources})
	}
}

// AddResourceRequest represents the JSON body for staffing a user
// swagger:model AddResourceRequest
type AddResourceRequest struct {
	// User to staff
	// required: true
	UserID uuid.UUID `json:"user_id"`

	// Role on the project
	// required: true
	// default: Backend Engineer
	Role string `json:"role"`

	// Allocation percentage, 0 to 100
	// required: true
	// default: 80
	Allocation int `json:"allocation"`

	// Staffing start date
	// required: true
	StartDate time.Time `json:"start_date"`

	// Optional staffing end date
	EndDate *time.Time `json:"end_date,omitempty"`
}

// AddResourceResponse represents a created staffing row
// swagger:model AddResourceResponse
type AddResourceResponse struct {
	// Identifier of the staffing row
	ResourceID uuid.UUID `json:"resource_id"`
}

// NewAddResourceHandler returns an HTTP handler staffing a user onto a
// project. The addition is recorded in the project's history.
// @Summary Add project resource
// @Description Staffs a user onto a project with a role and allocation
// @Tags admin
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param addResourceRequest body handlers.AddResourceRequest true "Staffing"
// @Success 201 {object} handlers.AddResourceResponse "Resource added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid allocation"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /admin/projects/{projectID}/resources [post]
// @Security BearerAuth
func NewAddResourceHandler(svc ResourceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		var req AddResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.UserID == uuid.Nil || req.Role == "" || req.StartDate.IsZero() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "User, role and start date are required"})
			return
		}

		resourceID, err := svc.AddResource(r.Context(), claims.UserID, projectID,
			req.UserID, req.Role, req.Allocation, req.StartDate, req.EndDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			case errors.Is(err, services.ErrInvalidAllocation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Allocation must be between 0 and 100"})
			default:
				logger.Log.Errorw("failed to add resource", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddResourceResponse{ResourceID: resourceID})
	}
}

// UpdateResourceRequest represents the JSON body for a staffing edit
// swagger:model UpdateResourceRequest
type UpdateResourceRequest struct {
	// New role
	Role *string `json:"role,omitempty"`

	// New allocation percentage
	Allocation *int `json:"allocation,omitempty"`

	// New staffing end date
	EndDate *time.Time `json:"end_date,omitempty"`
}

// NewUpdateResourceHandler returns an HTTP handler editing a staffing row.
// Role and allocation changes are recorded in the project's history with
// their previous values.
// @Summary Update project resource
// @Description Changes a staffing row's role, allocation or end date
// @Tags admin
// @Accept json
// @Produce json
// @Param resourceID path string true "Resource ID"
// @Param updateResourceRequest body handlers.UpdateResourceRequest true "Fields to change"
// @Success 204 "Resource updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid allocation"
// @Failure 404 {object} handlers.ErrorResponse "Resource not found"
// @Router /admin/projects/{projectID}/resources/{resourceID} [patch]
// @Security BearerAuth
func NewUpdateResourceHandler(svc ResourceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		resourceID, err := uuidParam(r, "resourceID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid resource id"})
			return
		}

		var req UpdateResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err = svc.UpdateResource(r.Context(), claims.UserID, resourceID, req.Role, req.Allocation, req.EndDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrResourceNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Resource not found"})
			case errors.Is(err, services.ErrInvalidAllocation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Allocation must be between 0 and 100"})
			default:
				logger.Log.Errorw("failed to update resource", "resourceID", resourceID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRemoveResourceHandler returns an HTTP handler taking a user off a
// project. The removal is recorded in the project's history.
// @Summary Remove project resource
// @Description Removes a staffing row and records the removal
// @Tags admin
// @Produce json
// @Param resourceID path string true "Resource ID"
// @Success 204 "Resource removed"
// @Failure 404 {object} handlers.ErrorResponse "Resource not found"
// @Router /admin/projects/{projectID}/resources/{resourceID} [delete]
// @Security BearerAuth
func NewRemoveResourceHandler(svc ResourceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		resourceID, err := uuidParam(r, "resourceID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid resource id"})
			return
		}

		err = svc.RemoveResource(r.Context(), claims.UserID, resourceID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrResourceNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Resource not found"})
			default:
				logger.Log.Errorw("failed to remove resource", "resourceID", resourceID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ResourceHistoryResponse represents a project's staffing audit trail
// swagger:model ResourceHistoryResponse
type ResourceHistoryResponse struct {
	// Staffing changes, newest first
	History []models.ProjectResourceHistoryDB `json:"history"`
}

// NewResourceHistoryHandler returns an HTTP handler listing a project's
// staffing changes.
// @Summary Project staffing history
// @Description Returns the audit trail of staffing changes on a project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} handlers.ResourceHistoryResponse "Staffing history"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/history [get]
// @Security BearerAuth
func NewResourceHistoryHandler(svc ResourceHistorian) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		history, err := svc.ResourceHistory(r.Context(), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("failed to list resource history", "projectID", projectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResourceHistoryResponse{History: history})
	}
}
