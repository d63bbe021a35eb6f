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

// ClientLister defines the interface for listing clients.
type ClientLister interface {
	ListClients(ctx context.Context) ([]models.ClientDB, error)
}

// ClientManager defines the interface for client maintenance.
type ClientManager interface {
	CreateClient(ctx context.Context, name, industry, contactEmail string) (uuid.UUID, error)
	UpdateClient(ctx context.Context, clientID uuid.UUID, name, industry, contactEmail *string) error
	DeleteClient(ctx context.Context, clientID uuid.UUID) error
}

// ClientsResponse represents all clients
// swagger:model ClientsResponse
type ClientsResponse struct {
	// Client companies
	Clients []models.ClientDB `json:"clients"`
}

// NewListClientsHandler returns an HTTP handler listing client companies.
// @Summary List clients
// @Description Returns every client company
// @Tags projects
// @Produce json
// @Success 200 {object} handlers.ClientsResponse "Clients"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /clients [get]
// @Security BearerAuth
func NewListClientsHandler(svc ClientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.ListClients(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list clients", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClientsResponse{Clients: clients})
	}
}

// CreateClientRequest represents the JSON body for a client
// swagger:model CreateClientRequest
type CreateClientRequest struct {
	// Client name
	// required: true
	// default: Acme Corp
	Name string `json:"name"`

	// Industry
	// default: Manufacturing
	Industry string `json:"industry"`

	// Contact email
	// default: it@acme.example.com
	ContactEmail string `json:"contact_email"`
}

// CreateClientResponse represents a created client
// swagger:model CreateClientResponse
type CreateClientResponse struct {
	// Identifier of the created client
	ClientID uuid.UUID `json:"client_id"`
}

// NewCreateClientHandler returns an HTTP handler registering a client.
// @Summary Create client
// @Description Registers a new client company
// @Tags admin
// @Accept json
// @Produce json
// @Param createClientRequest body handlers.CreateClientRequest true "Client"
// @Success 201 {object} handlers.CreateClientResponse "Client created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/clients [post]
// @Security BearerAuth
func NewCreateClientHandler(svc ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Name is required"})
			return
		}

		clientID, err := svc.CreateClient(r.Context(), req.Name, req.Industry, req.ContactEmail)
		if err != nil {
			logger.Log.Errorw("failed to create client", "name", req.Name, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateClientResponse{ClientID: clientID})
	}
}

// UpdateClientRequest represents the JSON body for a client edit
// swagger:model UpdateClientRequest
type UpdateClientRequest struct {
	// New client name
	Name *string `json:"name,omitempty"`

	// New industry
	Industry *string `json:"industry,omitempty"`

	// New contact email
	ContactEmail *string `json:"contact_email,omitempty"`
}

// NewUpdateClientHandler returns an HTTP handler editing a client.
// @Summary Update client
// @Description Applies a partial edit to a client company
// @Tags admin
// @Accept json
// @Produce json
// @Param clientID path string true "Client ID"
// @Param updateClientRequest body handlers.UpdateClientRequest true "Fields to change"
// @Success 204 "Client updated"
// @Failure 404 {object} handlers.ErrorResponse "Client not found"
// @Router /admin/clients/{clientID} [patch]
// @Security BearerAuth
func NewUpdateClientHandler(svc ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := uuidParam(r, "clientID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid client id"})
			return
		}

		var req UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err = svc.UpdateClient(r.Context(), clientID, req.Name, req.Industry, req.ContactEmail)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrClientNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Client not found"})
			default:
				logger.Log.Errorw("failed to update client", "clientID", clientID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewDeleteClientHandler returns an HTTP handler removing a client and all
// its projects.
// @Summary Delete client
// @Description Removes a client company with every project under it
// @Tags admin
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 204 "Client removed"
// @Failure 404 {object} handlers.ErrorResponse "Client not found"
// @Router /admin/clients/{clientID} [delete]
// @Security BearerAuth
func NewDeleteClientHandler(svc ClientManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := uuidParam(r, "clientID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid client id"})
			return
		}

		err = svc.DeleteClient(r.Context(), clientID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrClientNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Client not found"})
			default:
				logger.Log.Errorw("failed to delete client", "clientID", clientID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
