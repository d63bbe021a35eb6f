package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// SkillGapRow pairs a staffing target with the current headcount at or above
// the target level.
type SkillGapRow struct {
	Name         string `json:"name" db:"name"`
	Category     string `json:"category" db:"category"`
	TargetLevel  string `json:"target_level" db:"target_level"`
	Headcount    int    `json:"headcount" db:"headcount"`
	CurrentCount int    `json:"current_count" db:"current_count"`
}

// AnalyticsReadRepository runs the aggregate queries behind the admin dashboards.
type AnalyticsReadRepository struct {
	db *sqlx.DB
}

func NewAnalyticsReadRepository(db *sqlx.DB) *AnalyticsReadRepository {
	return &AnalyticsReadRepository{db: db}
}

// SkillGaps returns every staffing target joined with the number of users
// currently holding the skill at the target level or higher.
func (r *AnalyticsReadRepository) SkillGaps(ctx context.Context) ([]SkillGapRow, error) {
	const query = `
		SELECT t.name, t.category, t.target_level, t.headcount,
		       COUNT(s.skill_id) AS current_count
		FROM skill_targets t
		LEFT JOIN skills s
		  ON s.name = t.name
		 AND s.category = t.category
		 AND (CASE s.level WHEN 'beginner' THEN 1 WHEN 'intermediate' THEN 2 ELSE 3 END)
		     >= (CASE t.target_level WHEN 'beginner' THEN 1 WHEN 'intermediate' THEN 2 ELSE 3 END)
		GROUP BY t.target_id, t.name, t.category, t.target_level, t.headcount
		ORDER BY t.category, t.name
	`

	var rows []SkillGapRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// Certifications returns every skill carrying certification metadata.
func (r *AnalyticsReadRepository) Certifications(ctx context.Context) ([]models.SkillDB, error) {
	const query = `
		SELECT skill_id, user_id, name, category, level, certification,
		       certification_date, endorsement_count, created_at, updated_at
		FROM skills
		WHERE certification IS NOT NULL
		ORDER BY certification_date DESC NULLS LAST
	`

	var rows []models.SkillDB
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	return rows, err
}
