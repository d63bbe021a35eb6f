package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// ProjectSkillReadRepository handles required-skill reads
type ProjectSkillReadRepository struct {
	db *sqlx.DB
}

func NewProjectSkillReadRepository(db *sqlx.DB) *ProjectSkillReadRepository {
	return &ProjectSkillReadRepository{db: db}
}

func (r *ProjectSkillReadRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectSkillDB, error) {
	const query = `
		SELECT project_id, name, category
		FROM project_skills
		WHERE project_id = $1
		ORDER BY category, name
	`

	var rows []models.ProjectSkillDB
	err := r.db.SelectContext(ctx, &rows, query, projectID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// ProjectSkillWriteRepository handles required-skill writes
type ProjectSkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectSkillWriteRepository {
	return &ProjectSkillWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProjectSkillWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Replace swaps a project's required-skill set for the given one. Runs as
// delete-then-insert, so it must execute inside the request transaction.
func (r *ProjectSkillWriteRepository) Replace(ctx context.Context, projectID uuid.UUID, skills []models.ProjectSkillDB) error {
	executor := r.executor(ctx)

	deleteQuery := `DELETE FROM project_skills WHERE project_id = $1`
	if _, err := executor.ExecContext(ctx, deleteQuery, projectID); err != nil {
		logger.Log.Errorw("failed to clear project skills", "projectID", projectID, "error", err)
		return err
	}

	insertQuery := `INSERT INTO project_skills (project_id, name, category) VALUES ($1, $2, $3)`
	for _, skill := range skills {
		if _, err := executor.ExecContext(ctx, insertQuery, projectID, skill.Name, skill.Category); err != nil {
			logger.Log.Errorw("failed to insert project skill",
				"projectID", projectID, "name", skill.Name, "category", skill.Category, "error", err)
			return err
		}
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{projectID},
		"result", len(skills),
		"error", nil,
	)

	return nil
}
