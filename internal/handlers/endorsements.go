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

// Endorser defines the interface for endorsing skills.
type Endorser interface {
	Endorse(ctx context.Context, skillID, endorserID uuid.UUID, comment string) error
}

// EndorsementLister defines the interface for listing a skill's endorsements.
type EndorsementLister interface {
	List(ctx context.Context, skillID uuid.UUID) ([]models.EndorsementDB, error)
}

// EndorseRequest represents the JSON body for an endorsement
// swagger:model EndorseRequest
type EndorseRequest struct {
	// Optional comment
	// default: Great work on the cluster migration
	Comment string `json:"comment"`
}

// EndorseResponse represents a successful endorsement
// swagger:model EndorseResponse
type EndorseResponse struct {
	// Success message
	// default: Skill endorsed
	Message string `json:"message"`
}

// NewEndorseSkillHandler returns an HTTP handler for endorsing a colleague's
// skill. Endorsing the same skill again replaces the previous comment.
// @Summary Endorse a skill
// @Description Records a peer endorsement of another user's skill and notifies the owner
// @Tags endorsements
// @Accept json
// @Produce json
// @Param skillID path string true "Skill ID"
// @Param endorseRequest body handlers.EndorseRequest true "Endorsement"
// @Success 201 {object} handlers.EndorseResponse "Skill endorsed"
// @Failure 400 {object} handlers.ErrorResponse "Cannot endorse own skill"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{skillID}/endorse [post]
// @Security BearerAuth
func NewEndorseSkillHandler(svc Endorser) http.HandlerFunc {
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

		var req EndorseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		err = svc.Endorse(r.Context(), skillID, claims.UserID, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			case errors.Is(err, services.ErrCannotEndorseOwnSkill):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Cannot endorse your own skill"})
			default:
				logger.Log.Errorw("failed to endorse skill", "skillID", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(EndorseResponse{Message: "Skill endorsed"})
	}
}

// EndorsementsResponse represents a skill's endorsements
// swagger:model EndorsementsResponse
type EndorsementsResponse struct {
	// Endorsements, newest first
	Endorsements []models.EndorsementDB `json:"endorsements"`
}

// NewListEndorsementsHandler returns an HTTP handler listing a skill's
// endorsements.
// @Summary List endorsements
// @Description Returns the endorsements recorded against a skill
// @Tags endorsements
// @Produce json
// @Param skillID path string true "Skill ID"
// @Success 200 {object} handlers.EndorsementsResponse "Endorsements"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Router /skills/{skillID}/endorsements [get]
// @Security BearerAuth
func NewListEndorsementsHandler(svc EndorsementLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuidParam(r, "skillID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid skill id"})
			return
		}

		endorsements, err := svc.List(r.Context(), skillID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSkillNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Skill not found"})
			default:
				logger.Log.Errorw("failed to list endorsements", "skillID", skillID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EndorsementsResponse{Endorsements: endorsements})
	}
}
