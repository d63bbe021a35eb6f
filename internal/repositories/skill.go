package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// SkillReadRepository handles skill read operations
type SkillReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillReadRepository {
	return &SkillReadRepository{db: db, txGetter: txGetter}
}

func (r *SkillReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *SkillReadRepository) GetByID(ctx context.Context, skillID uuid.UUID) (*models.SkillDB, error) {
	const query = `
		SELECT skill_id, user_id, name, category, level, certification,
		       certification_date, endorsement_count, created_at, updated_at
		FROM skills
		WHERE skill_id = $1
	`

	var skill models.SkillDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &skill, query, skillID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &skill, nil
}

func (r *SkillReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SkillDB, error) {
	const query = `
		SELECT skill_id, user_id, name, category, level, certification,
		       certification_date, endorsement_count, created_at, updated_at
		FROM skills
		WHERE user_id = $1
		ORDER BY category, name
	`

	var skills []models.SkillDB
	err := r.db.SelectContext(ctx, &skills, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(skills),
		"error", err,
	)

	return skills, err
}

// SkillWriteRepository handles skill write operations
type SkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillWriteRepository {
	return &SkillWriteRepository{db: db, txGetter: txGetter}
}

func (r *SkillWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new skill row and returns its id.
func (r *SkillWriteRepository) Save(ctx context.Context, userID uuid.UUID, name, category, level string, certification *string, certificationDate *time.Time) (uuid.UUID, error) {
	query := `
		INSERT INTO skills (skill_id, user_id, name, category, level, certification, certification_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING skill_id
	`
	args := []any{uuid.New(), userID, name, category, level, certification, certificationDate}

	var skillID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &skillID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name, category, level},
		"result", skillID,
		"error", err,
	)

	return skillID, err
}

// Update applies the mutable skill columns. Nil arguments leave the column
// unchanged; every writable column is enumerated here.
func (r *SkillWriteRepository) Update(ctx context.Context, skillID uuid.UUID, name, category, level, certification *string, certificationDate *time.Time) error {
	query := `
		UPDATE skills
		SET name               = COALESCE($2, name),
		    category           = COALESCE($3, category),
		    level              = COALESCE($4, level),
		    certification      = COALESCE($5, certification),
		    certification_date = COALESCE($6, certification_date),
		    updated_at         = NOW()
		WHERE skill_id = $1
	`
	args := []any{skillID, name, category, level, certification, certificationDate}

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

// IncrementEndorsementCount bumps the endorsement counter by one.
func (r *SkillWriteRepository) IncrementEndorsementCount(ctx context.Context, skillID uuid.UUID) error {
	query := `
		UPDATE skills
		SET endorsement_count = endorsement_count + 1, updated_at = NOW()
		WHERE skill_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, skillID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
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

// Delete removes a skill; history and endorsements cascade with the row.
func (r *SkillWriteRepository) Delete(ctx context.Context, skillID uuid.UUID) error {
	query := `DELETE FROM skills WHERE skill_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, skillID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{skillID},
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
