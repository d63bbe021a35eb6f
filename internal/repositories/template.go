package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// TemplateReadRepository handles skill taxonomy reads
type TemplateReadRepository struct {
	db *sqlx.DB
}

func NewTemplateReadRepository(db *sqlx.DB) *TemplateReadRepository {
	return &TemplateReadRepository{db: db}
}

func (r *TemplateReadRepository) List(ctx context.Context) ([]models.SkillTemplateDB, error) {
	const query = `
		SELECT template_id, name, category, description, created_at, updated_at
		FROM skill_templates
		ORDER BY category, name
	`

	var templates []models.SkillTemplateDB
	err := r.db.SelectContext(ctx, &templates, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(templates),
		"error", err,
	)

	return templates, err
}

// TemplateWriteRepository handles skill taxonomy writes
type TemplateWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTemplateWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TemplateWriteRepository {
	return &TemplateWriteRepository{db: db, txGetter: txGetter}
}

func (r *TemplateWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *TemplateWriteRepository) Save(ctx context.Context, name, category, description string) (uuid.UUID, error) {
	query := `
		INSERT INTO skill_templates (template_id, name, category, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (name, category)
		DO UPDATE SET description = EXCLUDED.description, updated_at = NOW()
		RETURNING template_id
	`
	args := []any{uuid.New(), name, category, description}

	var templateID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &templateID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, category},
		"result", templateID,
		"error", err,
	)

	return templateID, err
}

func (r *TemplateWriteRepository) Update(ctx context.Context, templateID uuid.UUID, name, category, description *string) error {
	query := `
		UPDATE skill_templates
		SET name        = COALESCE($2, name),
		    category    = COALESCE($3, category),
		    description = COALESCE($4, description),
		    updated_at  = NOW()
		WHERE template_id = $1
	`
	args := []any{templateID, name, category, description}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TemplateWriteRepository) Delete(ctx context.Context, templateID uuid.UUID) error {
	query := `DELETE FROM skill_templates WHERE template_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, templateID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{templateID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TargetReadRepository handles staffing target reads
type TargetReadRepository struct {
	db *sqlx.DB
}

func NewTargetReadRepository(db *sqlx.DB) *TargetReadRepository {
	return &TargetReadRepository{db: db}
}

func (r *TargetReadRepository) List(ctx context.Context) ([]models.SkillTargetDB, error) {
	const query = `
		SELECT target_id, name, category, target_level, headcount, created_at, updated_at
		FROM skill_targets
		ORDER BY category, name
	`

	var targets []models.SkillTargetDB
	err := r.db.SelectContext(ctx, &targets, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(targets),
		"error", err,
	)

	return targets, err
}

// TargetWriteRepository handles staffing target writes
type TargetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTargetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TargetWriteRepository {
	return &TargetWriteRepository{db: db, txGetter: txGetter}
}

func (r *TargetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *TargetWriteRepository) Save(ctx context.Context, name, category, targetLevel string, headcount int) (uuid.UUID, error) {
	query := `
		INSERT INTO skill_targets (target_id, name, category, target_level, headcount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (name, target_level)
		DO UPDATE SET category = EXCLUDED.category, headcount = EXCLUDED.headcount, updated_at = NOW()
		RETURNING target_id
	`
	args := []any{uuid.New(), name, category, targetLevel, headcount}

	var targetID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &targetID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, targetLevel, headcount},
		"result", targetID,
		"error", err,
	)

	return targetID, err
}

func (r *TargetWriteRepository) Update(ctx context.Context, targetID uuid.UUID, name, category, targetLevel *string, headcount *int) error {
	query := `
		UPDATE skill_targets
		SET name         = COALESCE($2, name),
		    category     = COALESCE($3, category),
		    target_level = COALESCE($4, target_level),
		    headcount    = COALESCE($5, headcount),
		    updated_at   = NOW()
		WHERE target_id = $1
	`
	args := []any{targetID, name, category, targetLevel, headcount}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TargetWriteRepository) Delete(ctx context.Context, targetID uuid.UUID) error {
	query := `DELETE FROM skill_targets WHERE target_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, targetID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{targetID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
