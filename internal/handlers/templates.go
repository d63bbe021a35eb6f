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

// TemplateLister defines the interface for reading the skill catalog.
type TemplateLister interface {
	ListTemplates(ctx context.Context) ([]models.SkillTemplateDB, error)
}

// TemplateManager defines the interface for catalog maintenance.
type TemplateManager interface {
	CreateTemplate(ctx context.Context, name, category, description string) (uuid.UUID, error)
	UpdateTemplate(ctx context.Context, templateID uuid.UUID, name, category, description *string) error
	DeleteTemplate(ctx context.Context, templateID uuid.UUID) error
}

// TemplatesResponse represents the skill catalog
// swagger:model TemplatesResponse
type TemplatesResponse struct {
	// Catalog entries
	Templates []models.SkillTemplateDB `json:"templates"`
}

// NewListTemplatesHandler returns an HTTP handler listing the skill catalog.
// The catalog is readable by every authenticated user.
// @Summary List skill templates
// @Description Returns the curated skill catalog
// @Tags taxonomy
// @Produce json
// @Success 200 {object} handlers.TemplatesResponse "Skill templates"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /templates [get]
// @Security BearerAuth
func NewListTemplatesHandler(svc TemplateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := svc.ListTemplates(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list templates", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TemplatesResponse{Templates: templates})
	}
}

// CreateTemplateRequest represents the JSON body for a catalog entry
// swagger:model CreateTemplateRequest
type CreateTemplateRequest struct {
	// Skill name
	// required: true
	// default: Terraform
	Name string `json:"name"`

	// Category
	// required: true
	// default: Infrastructure
	Category string `json:"category"`

	// Description
	Description string `json:"description"`
}

// CreateTemplateResponse represents a created catalog entry
// swagger:model CreateTemplateResponse
type CreateTemplateResponse struct {
	// Identifier of the created template
	TemplateID uuid.UUID `json:"template_id"`
}

// NewCreateTemplateHandler returns an HTTP handler adding a catalog entry.
// @Summary Create skill template
// @Description Adds an entry to the skill catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param createTemplateRequest body handlers.CreateTemplateRequest true "Catalog entry"
// @Success 201 {object} handlers.CreateTemplateResponse "Template created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/skill-templates [post]
// @Security BearerAuth
func NewCreateTemplateHandler(svc TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Name == "" || req.Category == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Name and category are required"})
			return
		}

		templateID, err := svc.CreateTemplate(r.Context(), req.Name, req.Category, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to create template", "name", req.Name, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateTemplateResponse{TemplateID: templateID})
	}
}

// UpdateTemplateRequest represents the JSON body for a catalog edit
// swagger:model UpdateTemplateRequest
type UpdateTemplateRequest struct {
	// New skill name
	Name *string `json:"name,omitempty"`

	// New category
	Category *string `json:"category,omitempty"`

	// New description
	Description *string `json:"description,omitempty"`
}

// NewUpdateTemplateHandler returns an HTTP handler editing a catalog entry.
// @Summary Update skill template
// @Description Applies a partial edit to a catalog entry
// @Tags admin
// @Accept json
// @Produce json
// @Param templateID path string true "Template ID"
// @Param updateTemplateRequest body handlers.UpdateTemplateRequest true "Fields to change"
// @Success 204 "Template updated"
// @Failure 404 {object} handlers.ErrorResponse "Template not found"
// @Router /admin/skill-templates/{templateID} [patch]
// @Security BearerAuth
func NewUpdateTemplateHandler(svc TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID, err := uuidParam(r, "templateID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid template id"})
			return
		}

		var req UpdateTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err = svc.UpdateTemplate(r.Context(), templateID, req.Name, req.Category, req.Description)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Template not found"})
			default:
				logger.Log.Errorw("failed to update template", "templateID", templateID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteTemplateHandler returns an HTTP handler removing a catalog entry.
// @Summary Delete skill template
// @Description Removes a catalog entry. Recorded skills are untouched.
// @Tags admin
// @Produce json
// @Param templateID path string true "Template ID"
// @Success 204 "Template removed"
// @Failure 404 {object} handlers.ErrorResponse "Template not found"
// @Router /admin/skill-templates/{templateID} [delete]
// @Security BearerAuth
func NewDeleteTemplateHandler(svc TemplateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID, err := uuidParam(r, "templateID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid template id"})
			return
		}

		err = svc.DeleteTemplate(r.Context(), templateID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTemplateNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Template not found"})
			default:
				logger.Log.Errorw("failed to delete template", "templateID", templateID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
