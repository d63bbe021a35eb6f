package services

import (
	"context"

	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/repositories"
)

// AnalyticsReader aggregates skill data for reports.
type AnalyticsReader interface {
	SkillGaps(ctx context.Context) ([]repositories.SkillGapRow, error)
	Certifications(ctx context.Context) ([]models.SkillDB, error)
}

// ReportCache caches marshalled reports.
type ReportCache interface {
	GetReport(ctx context.Context, name string, dest any) error
	SetReport(ctx context.Context, name string, report any) error
}

// AnalyticsService serves admin reports with a read-through cache. A cache
// failure falls back to the database so reports stay available without Redis.
type AnalyticsService struct {
	reader AnalyticsReader
	cache  ReportCache
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(reader AnalyticsReader, cache ReportCache) *AnalyticsService {
	return &AnalyticsService{reader: reader, cache: cache}
}

// SkillGaps compares approved skill counts against organisational targets.
func (s *AnalyticsService) SkillGaps(ctx context.Context) ([]repositories.SkillGapRow, error) {
	var cached []repositories.SkillGapRow
	if err := s.cache.GetReport(ctx, "skill_gaps", &cached); err == nil {
		return cached, nil
	}

	rows, err := s.reader.SkillGaps(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetReport(ctx, "skill_gaps", rows); err != nil {
		logger.Log.Errorw("failed to cache skill gap report", "error", err)
	}

	return rows, nil
}

// Certifications lists approved skills carrying a certification.
func (s *AnalyticsService) Certifications(ctx context.Context) ([]models.SkillDB, error) {
	var cached []models.SkillDB
	if err := s.cache.GetReport(ctx, "certifications", &cached); err == nil {
		return cached, nil
	}

	skills, err := s.reader.Certifications(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetReport(ctx, "certifications", skills); err != nil {
		logger.Log.Errorw("failed to cache certification report", "error", err)
	}

	return skills, nil
}
