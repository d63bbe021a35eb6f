package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// ErrCannotEndorseOwnSkill is returned when a user endorses their own skill.
var ErrCannotEndorseOwnSkill = errors.New("cannot endorse own skill")

// EndorsementReader lists endorsements.
type EndorsementReader interface {
	ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.EndorsementDB, error)
}

// EndorsementWriter upserts endorsements.
type EndorsementWriter interface {
	Upsert(ctx context.Context, skillID, endorserID uuid.UUID, comment string) (uuid.UUID, error)
}

// EndorsementCounter bumps the denormalised endorsement counter.
type EndorsementCounter interface {
	IncrementEndorsementCount(ctx context.Context, skillID uuid.UUID) error
}

// EndorsementService handles peer attestations of skills.
type EndorsementService struct {
	skillRead  ApprovalSkillReader
	reader     EndorsementReader
	writer     EndorsementWriter
	counter    EndorsementCounter
	notifWrite NotificationSaver
	events     EventPublisher
	onCommit   func(ctx context.Context, fn func())
}

// NewEndorsementService creates a new EndorsementService.
func NewEndorsementService(
	skillRead ApprovalSkillReader,
	reader EndorsementReader,
	writer EndorsementWriter,
	counter EndorsementCounter,
	notifWrite NotificationSaver,
	events EventPublisher,
	onCommit func(ctx context.Context, fn func()),
) *EndorsementService {
	return &EndorsementService{
		skillRead:  skillRead,
		reader:     reader,
		writer:     writer,
		counter:    counter,
		notifWrite: notifWrite,
		events:     events,
		onCommit:   onCommit,
	}
}

// Endorse records a peer attestation. Re-endorsing the same skill replaces
// the endorser's comment instead of duplicating the row.
func (s *EndorsementService) Endorse(ctx context.Context, skillID, endorserID uuid.UUID, comment string) error {
	skill, err := s.skillRead.GetByID(ctx, skillID)
	if err != nil {
		if isNoRows(err) {
			return ErrSkillNotFound
		}
		return err
	}
	if skill.UserID == endorserID {
		return ErrCannotEndorseOwnSkill
	}

	if _, err := s.writer.Upsert(ctx, skillID, endorserID, comment); err != nil {
		logger.Log.Errorw("failed to upsert endorsement", "skillID", skillID, "endorserID", endorserID, "error", err)
		return err
	}

	// TODO: the counter bumps on re-endorse as well, so a repeat endorsement
	// inflates endorsement_count; confirm intended behaviour before changing.
	if err := s.counter.IncrementEndorsementCount(ctx, skillID); err != nil {
		logger.Log.Errorw("failed to increment endorsement count", "skillID", skillID, "error", err)
		return err
	}

	message := fmt.Sprintf("Your skill %q received an endorsement", skill.Name)
	if err := s.notifWrite.Save(ctx, skill.UserID, models.NotificationEndorsement, message, &skillID, &endorserID); err != nil {
		logger.Log.Errorw("failed to save endorsement notification", "userID", skill.UserID, "error", err)
		return err
	}

	s.onCommit(ctx, func() {
		s.events.Publish(context.WithoutCancel(ctx), models.EventEndorsement, skill.UserID, &skillID, message)
	})

	return nil
}

// List returns all endorsements of a skill, newest first.
func (s *EndorsementService) List(ctx context.Context, skillID uuid.UUID) ([]models.EndorsementDB, error) {
	if _, err := s.skillRead.GetByID(ctx, skillID); err != nil {
		if isNoRows(err) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return s.reader.ListBySkillID(ctx, skillID)
}
