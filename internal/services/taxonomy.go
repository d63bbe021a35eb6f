package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// Error variables
var (
	ErrTemplateNotFound = errors.New("skill template does not exist")
	ErrTargetNotFound   = errors.New("skill target does not exist")
)

// TemplateReader lists catalog templates.
type TemplateReader interface {
	List(ctx context.Context) ([]models.SkillTemplateDB, error)
}

// TemplateWriter defines write operations for catalog templates.
type TemplateWriter interface {
	Save(ctx context.Context, name, category, description string) (uuid.UUID, error)
	Update(ctx context.Context, templateID uuid.UUID, name, category, description *string) error
	Delete(ctx context.Context, templateID uuid.UUID) error
}

// TargetReader lists organisational skill targets.
type TargetReader interface {
	List(ctx context.Context) ([]models.SkillTargetDB, error)
}

// TargetWriter defines write operations for skill targets.
type TargetWriter interface {
	Save(ctx context.Context, name, category, targetLevel string, headcount int) (uuid.UUID, error)
	Update(ctx context.Context, targetID uuid.UUID, name, category, targetLevel *string, headcount *int) error
	Delete(ctx context.Context, targetID uuid.UUID) error
}

// TaxonomyService manages the skill catalog and the organisational targets
// that feed the gap report.
type TaxonomyService struct {
	tplRead  TemplateReader
	tplWrite TemplateWriter
	tgtRead  TargetReader
	tgtWrite TargetWriter
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(
	tplRead TemplateReader,
	tplWrite TemplateWriter,
	tgtRead TargetReader,
	tgtWrite TargetWriter,
) *TaxonomyService {
	return &TaxonomyService{
		tplRead:  tplRead,
		tplWrite: tplWrite,
		tgtRead:  tgtRead,
		tgtWrite: tgtWrite,
	}
}

// ListTemplates returns the skill catalog.
func (s *TaxonomyService) ListTemplates(ctx context.Context) ([]models.SkillTemplateDB, error) {
	return s.tplRead.List(ctx)
}

// CreateTemplate adds a catalog entry.
func (s *TaxonomyService) CreateTemplate(ctx context.Context, name, category, description string) (uuid.UUID, error) {
	return s.tplWrite.Save(ctx, name, category, description)
}

// UpdateTemplate applies a partial catalog edit.
func (s *TaxonomyService) UpdateTemplate(ctx context.Context, templateID uuid.UUID, name, category, description *string) error {
	err := s.tplWrite.Update(ctx, templateID, name, category, description)
	if isNoRows(err) {
		return ErrTemplateNotFound
	}
	return err
}

// DeleteTemplate removes a catalog entry. Skills already recorded against it
// are untouched.
func (s *TaxonomyService) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	err := s.tplWrite.Delete(ctx, templateID)
	if isNoRows(err) {
		return ErrTemplateNotFound
	}
	return err
}

// ListTargets returns the organisational skill targets.
func (s *TaxonomyService) ListTargets(ctx context.Context) ([]models.SkillTargetDB, error) {
	return s.tgtRead.List(ctx)
}

// CreateTarget adds a skill target.
func (s *TaxonomyService) CreateTarget(ctx context.Context, name, category, targetLevel string, headcount int) (uuid.UUID, error) {
	if !models.ValidLevel(targetLevel) {
		return uuid.Nil, ErrInvalidLevel
	}
	return s.tgtWrite.Save(ctx, name, category, targetLevel, headcount)
}

// UpdateTarget applies a partial target edit.
func (s *TaxonomyService) UpdateTarget(ctx context.Context, targetID uuid.UUID, name, category, targetLevel *string, headcount *int) error {
	if targetLevel != nil && !models.ValidLevel(*targetLevel) {
		return ErrInvalidLevel
	}
	err := s.tgtWrite.Update(ctx, targetID, name, category, targetLevel, headcount)
	if isNoRows(err) {
		return ErrTargetNotFound
	}
	return err
}

// DeleteTarget removes a skill target.
func (s *TaxonomyService) DeleteTarget(ctx context.Context, targetID uuid.UUID) error {
	err := s.tgtWrite.Delete(ctx, targetID)
	if isNoRows(err) {
		return ErrTargetNotFound
	}
	return err
}
