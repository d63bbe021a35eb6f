package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
	"github.com/sbilibin2017/skilltrack/internal/repositories"
)

// GapReporter defines the interface for the skill gap report.
type GapReporter interface {
	SkillGaps(ctx context.Context) ([]repositories.SkillGapRow, error)
}

// CertificationReporter defines the interface for the certification report.
type CertificationReporter interface {
	Certifications(ctx context.Context) ([]models.SkillDB, error)
}

// SkillGapsResponse represents the gap report
// swagger:model SkillGapsResponse
type SkillGapsResponse struct {
	// Per-target comparison of desired and actual headcount
	Gaps []repositories.SkillGapRow `json:"gaps"`
}

// NewSkillGapsHandler returns an HTTP handler for the skill gap report.
// @Summary Skill gap report
// @Description Compares approved skill counts against organisational targets
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.SkillGapsResponse "Skill gaps"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/analytics/skill-gaps [get]
// @Security BearerAuth
func NewSkillGapsHandler(svc GapReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gaps, err := svc.SkillGaps(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build skill gap report", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SkillGapsResponse{Gaps: gaps})
	}
}

// CertificationsResponse represents the certification report
// swagger:model CertificationsResponse
type CertificationsResponse struct {
	// Approved skills carrying a certification
	Certifications []models.SkillDB `json:"certifications"`
}

// NewCertificationsHandler returns an HTTP handler for the certification
// report.
// @Summary Certification report
// @Description Lists approved skills carrying a certification
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.CertificationsResponse "Certifications"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/analytics/certifications [get]
// @Security BearerAuth
func NewCertificationsHandler(svc CertificationReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certs, err := svc.Certifications(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build certification report", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CertificationsResponse{Certifications: certs})
	}
}
