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
	ErrSkillNotFound = errors.New("skill does not exist")
	ErrNotSkillOwner = errors.New("caller does not own the skill")
	ErrInvalidLevel  = errors.New("invalid proficiency level")
)

// SkillReader defines read operations for skills.
type SkillReader interface {
	GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error)
}

// SkillWriter defines write operations for skills.
type SkillWriter interface {
	Update(ctx context.Context, skillID uuid.UUID, name, category, level, certification *string, certificationDate *time.Time) error
	Delete(ctx context.Context, skillID uuid.UUID) error
}

// HistoryReader lists skill audit rows.
type HistoryReader interface {
	ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error)
}

// SkillService handles the owner-scoped skill directory: listing, direct
// edits and deletion. Direct edits bypass the approval gate; each level
// change still appends an audit row.
type SkillService struct {
	reader       SkillReader
	writer       SkillWriter
	historyRead  HistoryReader
	historyWrite HistoryWriter
}

// NewSkillService creates a new SkillService.
func NewSkillService(reader SkillReader, writer SkillWriter, historyRead HistoryReader, historyWrite HistoryWriter) *SkillService {
	return &SkillService{
		reader:       reader,
		writer:       writer,
		historyRead:  historyRead,
		historyWrite: historyWrite,
	}
}

// List returns all skills owned by userID.
func (s *SkillService) List(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	return s.reader.ListByUserID(ctx, userID)
}

// Update applies a direct edit on behalf of the caller. Only the owner or an
// administrator may edit; a level change appends a skill history row with the
// prior level captured before the write.
func (s *SkillService) Update(ctx context.Context, skillID, callerID uuid.UUID, callerIsAdmin bool, name, category, level, certification *string, certificationDate *time.Time) (*models.SkillDB, error) {
	skill, err := s.reader.GetByID(ctx, skillID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	if skill.UserID != callerID && !callerIsAdmin {
		logger.Log.Warnw("skill edit denied", "skillID", skillID, "callerID", callerID)
		return nil, ErrNotSkillOwner
	}
	if level != nil && !models.ValidLevel(*level) {
		return nil, ErrInvalidLevel
	}

	previousLevel := skill.Level

	if err := s.writer.Update(ctx, skillID, name, category, level, certification, certificationDate); err != nil {
		logger.Log.Errorw("failed to update skill", "skillID", skillID, "error", err)
		return nil, err
	}

	if level != nil && *level != previousLevel {
		note := fmt.Sprintf("edited by %s", callerID)
		if err := s.historyWrite.Save(ctx, skillID, &previousLevel, *level, note); err != nil {
			logger.Log.Errorw("failed to append skill history", "skillID", skillID, "error", err)
			return nil, err
		}
	}

	return s.reader.GetByID(ctx, skillID)
}

// Delete removes a skill on behalf of the caller. Only the owner or an
// administrator may delete; history and endorsements cascade.
func (s *SkillService) Delete(ctx context.Context, skillID, callerID uuid.UUID, callerIsAdmin bool) error {
	skill, err := s.reader.GetByID(ctx, skillID)
	if err != nil {
		if isNoRows(err) {
			return ErrSkillNotFound
		}
		return err
	}
	if skill.UserID != callerID && !callerIsAdmin {
		logger.Log.Warnw("skill delete denied", "skillID", skillID, "callerID", callerID)
		return ErrNotSkillOwner
	}

	if err := s.writer.Delete(ctx, skillID); err != nil {
		logger.Log.Errorw("failed to delete skill", "skillID", skillID, "error", err)
		return err
	}
	return nil
}

// History returns the audit trail for a skill, newest first.
func (s *SkillService) History(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error) {
	if _, err := s.reader.GetByID(ctx, skillID); err != nil {
		if isNoRows(err) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return s.historyRead.ListBySkillID(ctx, skillID)
}
