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

// ProfileGetter defines the interface for reading a user account.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileUpdater defines the interface for profile edits.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, jobRole, location *string) error
}

// ProfileResponse represents the caller's account
// swagger:model ProfileResponse
type ProfileResponse struct {
	// User account
	User *models.UserDB `json:"user"`
}

// NewGetProfileHandler returns an HTTP handler for the caller's own profile.
// @Summary Get own profile
// @Description Returns the authenticated user's account
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to get profile", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{User: user})
	}
}

// UpdateProfileRequest represents the JSON body for a profile edit
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// First name
	FirstName *string `json:"first_name,omitempty"`

	// Last name
	LastName *string `json:"last_name,omitempty"`

	// Job role, e.g. "Backend Engineer"
	JobRole *string `json:"job_role,omitempty"`

	// Office location
	Location *string `json:"location,omitempty"`
}

// UpdateProfileResponse represents a successful profile edit
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Success message
	// default: Profile updated
	Message string `json:"message"`
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile edits.
// Omitted fields keep their current values.
// @Summary Update own profile
// @Description Applies a partial edit to the authenticated user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} handlers.UpdateProfileResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [patch]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.UpdateProfile(r.Context(), claims.UserID, req.FirstName, req.LastName, req.JobRole, req.Location)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to update profile", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProfileResponse{Message: "Profile updated"})
	}
}
