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

// PendingLister defines the interface for the admin review queue.
type PendingLister interface {
	ListByStatus(ctx context.Context, status string) ([]models.PendingSkillUpdateDB, error)
}

// Approver defines the interface for approving proposals.
type Approver interface {
	Approve(ctx context.Context, pendingID, reviewerID uuid.UUID, notes *string) (*models.SkillDB, error)
}

// Rejecter defines the interface for rejecting proposals.
type Rejecter interface {
	Reject(ctx context.Context, pendingID, reviewerID uuid.UUID, notes *string) error
}

// NewListReviewQueueHandler returns an HTTP handler for the admin review
// queue. The status query parameter defaults to pending.
// @Summary List skill proposals for review
// @Description Returns proposals in the given status, oldest first
// @Tags admin
// @Produce json
// @Param status query string false "Proposal status" Enums(pending, approved, rejected) default(pending)
// @Success 200 {object} handlers.PendingResponse "Skill proposals"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/pending-skills [get]
// @Security BearerAuth
func NewListReviewQueueHandler(svc PendingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.StatusPending
		}
		switch status {
		case models.StatusPending, models.StatusApproved, models.StatusRejected:
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid status"})
			return
		}

		pending, err := svc.ListByStatus(r.Context(), status)
		if err != nil {
			logger.Log.Errorw("failed to list review queue", "status", status, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PendingResponse{Pending: pending})
	}
}

// ReviewRequest represents the JSON body for a review decision
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Optional reviewer notes
	Notes *string `json:"notes,omitempty"`
}

// ApproveResponse represents a successful approval
// swagger:model ApproveResponse
type ApproveResponse struct {
	// Success message
	// default: Skill approved
	Message string `json:"message"`

	// The resulting approved skill
	Skill *models.SkillDB `json:"skill"`
}

// NewApproveSkillHandler returns an HTTP handler for approving a proposal.
// Approval applies the proposed values to the skills table, records history
// for level changes and notifies the submitter. A proposal can be decided
// only once.
// @Summary Approve a skill proposal
// @Description Applies a pending proposal and notifies the submitter
// @Tags admin
// @Accept json
// @Produce json
// @Param pendingID path string true "Pending proposal ID"
// @Param reviewRequest body handlers.ReviewRequest false "Review decision"
// @Success 200 {object} handlers.ApproveResponse "Skill approved"
// @Failure 404 {object} handlers.ErrorResponse "Proposal not found"
// @Failure 409 {object} handlers.ErrorResponse "Proposal already reviewed"
// @Router /admin/pending-skills/{pendingID}/approve [post]
// @Security BearerAuth
func NewApproveSkillHandler(svc Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		pendingID, err := uuidParam(r, "pendingID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid pending id"})
			return
		}

		var req ReviewRequest
		if r.Body != nil {
			// An empty body means a decision without notes.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		skill, err := svc.Approve(r.Context(), pendingID, claims.UserID, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPendingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Proposal not found"})
			case errors.Is(err, services.ErrAlreadyReviewed):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Proposal already reviewed"})
			case errors.Is(err, services.ErrTargetSkillGone):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Target skill no longer exists"})
			default:
				logger.Log.Errorw("failed to approve proposal", "pendingID", pendingID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ApproveResponse{
			Message: "Skill approved",
			Skill:   skill,
		})
	}
}

// RejectResponse represents a successful rejection
// swagger:model RejectResponse
type RejectResponse struct {
	// Success message
	// default: Skill proposal rejected
	Message string `json:"message"`
}

// NewRejectSkillHandler returns an HTTP handler for rejecting a proposal.
// The skills table stays untouched; the submitter is notified.
// @Summary Reject a skill proposal
// @Description Rejects a pending proposal and notifies the submitter
// @Tags admin
// @Accept json
// @Produce json
// @Param pendingID path string true "Pending proposal ID"
// @Param reviewRequest body handlers.ReviewRequest false "Review decision"
// @Success 200 {object} handlers.RejectResponse "Proposal rejected"
// @Failure 404 {object} handlers.ErrorResponse "Proposal not found"
// @Failure 409 {object} handlers.ErrorResponse "Proposal already reviewed"
// @Router /admin/pending-skills/{pendingID}/reject [post]
// @Security BearerAuth
func NewRejectSkillHandler(svc Rejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := requestClaims(r)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		pendingID, err := uuidParam(r, "pendingID")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid pending id"})
			return
		}

		var req ReviewRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		err = svc.Reject(r.Context(), pendingID, claims.UserID, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPendingNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Proposal not found"})
			case errors.Is(err, services.ErrAlreadyReviewed):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Proposal already reviewed"})
			default:
				logger.Log.Errorw("failed to reject proposal", "pendingID", pendingID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RejectResponse{Message: "Skill proposal rejected"})
	}
}
