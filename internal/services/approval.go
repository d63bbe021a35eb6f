package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// Error variables
var (
	ErrPendingNotFound   = errors.New("pending skill update does not exist")
	ErrAlreadyReviewed   = errors.New("pending skill update already reviewed")
	ErrInvalidSubmission = errors.New("invalid skill submission")
	ErrTargetSkillGone   = errors.New("target skill does not exist")
)

// PendingReader defines read operations for pending skill updates.
type PendingReader interface {
	GetByID(ctx context.Context, pendingID uuid.UUID) (*models.PendingSkillUpdateDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PendingSkillUpdateDB, error)
	ListByStatus(ctx context.Context, status string) ([]models.PendingSkillUpdateDB, error)
}

// PendingWriter defines write operations for pending skill updates.
type PendingWriter interface {
	Save(ctx context.Context, userID uuid.UUID, skillID *uuid.UUID, name, category, level string, certification *string, isUpdate bool) (uuid.UUID, error)
	ClaimReview(ctx context.Context, pendingID, reviewerID uuid.UUID, status string, notes *string) (*models.PendingSkillUpdateDB, error)
}

// ApprovalSkillReader defines the skill reads the workflow needs. Reads run on
// the request transaction when one is present.
type ApprovalSkillReader interface {
	GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error)
}

// ApprovalSkillWriter defines the skill writes the workflow needs.
type ApprovalSkillWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name, category, level string, certification *string, certificationDate *time.Time) (uuid.UUID, error)
	Update(ctx context.Context, skillID uuid.UUID, name, category, level, certification *string, certificationDate *time.Time) error
}

// HistoryWriter appends skill audit rows.
type HistoryWriter interface {
	Save(ctx context.Context, skillID uuid.UUID, previousLevel *string, newLevel, changeNote string) error
}

// NotificationSaver inserts inbox rows.
type NotificationSaver interface {
	Save(ctx context.Context, userID uuid.UUID, notifType, message string, skillID, relatedUserID *uuid.UUID) error
}

// EventPublisher publishes best-effort fan-out events.
type EventPublisher interface {
	Publish(ctx context.Context, kind string, userID uuid.UUID, skillID *uuid.UUID, message string)
}

// ApprovalService mediates user-submitted skill changes through an
// administrator gate. A submission never touches the skills table until
// approved; approve and reject run on the request transaction, and Kafka
// events fire only after commit via the onCommit hook.
type ApprovalService struct {
	pendingRead  PendingReader
	pendingWrite PendingWriter
	skillRead    ApprovalSkillReader
	skillWrite   ApprovalSkillWriter
	historyWrite HistoryWriter
	notifWrite   NotificationSaver
	events       EventPublisher
	onCommit     func(ctx context.Context, fn func())
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(
	pendingRead PendingReader,
	pendingWrite PendingWriter,
	skillRead ApprovalSkillReader,
	skillWrite ApprovalSkillWriter,
	historyWrite HistoryWriter,
	notifWrite NotificationSaver,
	events EventPublisher,
	onCommit func(ctx context.Context, fn func()),
) *ApprovalService {
	return &ApprovalService{
		pendingRead:  pendingRead,
		pendingWrite: pendingWrite,
		skillRead:    skillRead,
		skillWrite:   skillWrite,
		historyWrite: historyWrite,
		notifWrite:   notifWrite,
		events:       events,
		onCommit:     onCommit,
	}
}

// Submit validates and stores a proposed skill creation or edit with
// status=pending. The skills table is not touched.
func (s *ApprovalService) Submit(ctx context.Context, userID uuid.UUID, skillID *uuid.UUID, name, category, level string, certification *string, isUpdate bool) (uuid.UUID, error) {
	if name == "" || category == "" || !models.ValidLevel(level) {
		logger.Log.Warnw("invalid skill submission", "userID", userID, "name", name, "category", category, "level", level)
		return uuid.Nil, ErrInvalidSubmission
	}
	if isUpdate {
		if skillID == nil {
			return uuid.Nil, ErrInvalidSubmission
		}
		skill, err := s.skillRead.GetByID(ctx, *skillID)
		if err != nil {
			if isNoRows(err) {
				return uuid.Nil, ErrTargetSkillGone
			}
			return uuid.Nil, err
		}
		if skill.UserID != userID {
			return uuid.Nil, ErrInvalidSubmission
		}
	}

	pendingID, err := s.pendingWrite.Save(ctx, userID, skillID, name, category, level, certification, isUpdate)
	if err != nil {
		logger.Log.Errorw("failed to save pending skill update", "userID", userID, "error", err)
		return uuid.Nil, err
	}

	return pendingID, nil
}

// Approve moves a pending update to its approved terminal state and applies
// the proposed fields to the skills table. All writes share the request
// transaction; the claim runs first so a concurrent reviewer loses cleanly.
func (s *ApprovalService) Approve(ctx context.Context, pendingID, reviewerID uuid.UUID, notes *string) (*models.SkillDB, error) {
	row, err := s.pendingWrite.ClaimReview(ctx, pendingID, reviewerID, models.StatusApproved, notes)
	if err != nil {
		if isNoRows(err) {
			return nil, s.classifyMissing(ctx, pendingID)
		}
		logger.Log.Errorw("failed to claim pending update", "pendingID", pendingID, "error", err)
		return nil, err
	}

	var (
		skillID       uuid.UUID
		previousLevel *string
		notifType     = models.NotificationAchievement
	)

	if row.IsUpdate {
		if row.SkillID == nil {
			return nil, ErrTargetSkillGone
		}
		skill, err := s.skillRead.GetByID(ctx, *row.SkillID)
		if err != nil {
			if isNoRows(err) {
				return nil, ErrTargetSkillGone
			}
			return nil, err
		}

		prev := skill.Level
		previousLevel = &prev
		skillID = skill.SkillID
		notifType = models.NotificationLevelUp

		if err := s.skillWrite.Update(ctx, skillID, &row.Name, &row.Category, &row.Level, row.Certification, nil); err != nil {
			logger.Log.Errorw("failed to apply approved fields", "skillID", skillID, "error", err)
			return nil, err
		}
	} else {
		skillID, err = s.skillWrite.Save(ctx, row.UserID, row.Name, row.Category, row.Level, row.Certification, nil)
		if err != nil {
			logger.Log.Errorw("failed to create approved skill", "userID", row.UserID, "error", err)
			return nil, err
		}
	}

	changeNote := fmt.Sprintf("approved by %s", reviewerID)
	if notes != nil && *notes != "" {
		changeNote = fmt.Sprintf("approved by %s: %s", reviewerID, *notes)
	}
	if err := s.historyWrite.Save(ctx, skillID, previousLevel, row.Level, changeNote); err != nil {
		logger.Log.Errorw("failed to append skill history", "skillID", skillID, "error", err)
		return nil, err
	}

	message := fmt.Sprintf("Your skill %q was approved at level %s", row.Name, row.Level)
	if err := s.notifWrite.Save(ctx, row.UserID, notifType, message, &skillID, &reviewerID); err != nil {
		logger.Log.Errorw("failed to save approval notification", "userID", row.UserID, "error", err)
		return nil, err
	}

	skill, err := s.skillRead.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}

	s.onCommit(ctx, func() {
		s.events.Publish(context.WithoutCancel(ctx), models.EventSkillApproved, row.UserID, &skillID, message)
	})

	return skill, nil
}

// Reject moves a pending update to its rejected terminal state. No skill or
// history row is touched.
func (s *ApprovalService) Reject(ctx context.Context, pendingID, reviewerID uuid.UUID, notes *string) error {
	row, err := s.pendingWrite.ClaimReview(ctx, pendingID, reviewerID, models.StatusRejected, notes)
	if err != nil {
		if isNoRows(err) {
			return s.classifyMissing(ctx, pendingID)
		}
		logger.Log.Errorw("failed to claim pending update", "pendingID", pendingID, "error", err)
		return err
	}

	message := fmt.Sprintf("Your skill submission %q was rejected", row.Name)
	if notes != nil && *notes != "" {
		message = fmt.Sprintf("Your skill submission %q was rejected: %s", row.Name, *notes)
	}
	if err := s.notifWrite.Save(ctx, row.UserID, models.NotificationLevelUp, message, row.SkillID, &reviewerID); err != nil {
		logger.Log.Errorw("failed to save rejection notification", "userID", row.UserID, "error", err)
		return err
	}

	s.onCommit(ctx, func() {
		s.events.Publish(context.WithoutCancel(ctx), models.EventSkillRejected, row.UserID, row.SkillID, message)
	})

	return nil
}

// ListOwn returns the caller's submissions, newest first.
func (s *ApprovalService) ListOwn(ctx context.Context, userID uuid.UUID) ([]models.PendingSkillUpdateDB, error) {
	return s.pendingRead.ListByUserID(ctx, userID)
}

// ListByStatus returns submissions with the given status, oldest first.
func (s *ApprovalService) ListByStatus(ctx context.Context, status string) ([]models.PendingSkillUpdateDB, error) {
	return s.pendingRead.ListByStatus(ctx, status)
}

// classifyMissing tells a vanished row apart from an already-reviewed one
// after a failed claim.
func (s *ApprovalService) classifyMissing(ctx context.Context, pendingID uuid.UUID) error {
	row, err := s.pendingRead.GetByID(ctx, pendingID)
	if err != nil {
		if isNoRows(err) {
			return ErrPendingNotFound
		}
		return err
	}
	if row.Status != models.StatusPending {
		return ErrAlreadyReviewed
	}
	return ErrPendingNotFound
}
