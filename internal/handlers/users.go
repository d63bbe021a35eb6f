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

// UserLister defines the interface for listing all accounts.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserDeleter defines the interface for removing accounts.
type UserDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UsersResponse represents all user accounts
// swagger:model UsersResponse
type UsersResponse struct {
	// User accounts
	Users []models.UserDB `json:"users"`
}

// NewListUsersHandler returns an HTTP handler listing all accounts.
// @Summary List users
// @Description Returns every user account
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.UsersResponse "User accounts"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UsersResponse{Users: users})
	}
}

// NewDeleteUserHandler returns an HTTP handler removing an account together
// with its skills, endorsements and notifications.
// @Summary Delete user
// @Description Removes a user account and everything recorded against it
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "User removed"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{userID} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuidParam(r, "userID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid user id"})
			return
		}

		err = svc.Delete(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
