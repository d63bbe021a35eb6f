package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

const pendingColumns = `
	pending_id, user_id, skill_id, name, category, level, certification,
	is_update, status, submitted_at, reviewed_at, reviewed_by, review_notes
`

// PendingUpdateReadRepository handles pending skill update reads
type PendingUpdateReadRepository struct {
	db *sqlx.DB
}

func NewPendingUpdateReadRepository(db *sqlx.DB) *PendingUpdateReadRepository {
	return &PendingUpdateReadRepository{db: db}
}

func (r *PendingUpdateReadRepository) GetByID(ctx context.Context, pendingID uuid.UUID) (*models.PendingSkillUpdateDB, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_skill_updates WHERE pending_id = $1`

	var row models.PendingSkillUpdateDB
	err := r.db.GetContext(ctx, &row, query, pendingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pendingID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &row, nil
}

func (r *PendingUpdateReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PendingSkillUpdateDB, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_skill_updates WHERE user_id = $1 ORDER BY submitted_at DESC`

	var rows []models.PendingSkillUpdateDB
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

func (r *PendingUpdateReadRepository) ListByStatus(ctx context.Context, status string) ([]models.PendingSkillUpdateDB, error) {
	query := `SELECT ` + pendingColumns + ` FROM pending_skill_updates WHERE status = $1 ORDER BY submitted_at`

	var rows []models.PendingSkillUpdateDB
	err := r.db.SelectContext(ctx, &rows, query, status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// PendingUpdateWriteRepository handles pending skill update writes
type PendingUpdateWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPendingUpdateWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PendingUpdateWriteRepository {
	return &PendingUpdateWriteRepository{db: db, txGetter: txGetter}
}

func (r *PendingUpdateWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a submission with status=pending and returns its id.
func (r *PendingUpdateWriteRepository) Save(ctx context.Context, userID uuid.UUID, skillID *uuid.UUID, name, category, level string, certification *string, isUpdate bool) (uuid.UUID, error) {
	query := `
		INSERT INTO pending_skill_updates
			(pending_id, user_id, skill_id, name, category, level, certification, is_update, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', NOW())
		RETURNING pending_id
	`
	args := []any{uuid.New(), userID, skillID, name, category, level, certification, isUpdate}

	var pendingID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &pendingID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, skillID, name, category, level, isUpdate},
		"result", pendingID,
		"error", err,
	)

	return pendingID, err
}

// ClaimReview atomically moves a pending row to a terminal status and returns
// the claimed row. The WHERE status = 'pending' condition makes concurrent
// reviews race for the row: the loser gets sql.ErrNoRows and must not apply
// any side effects.
func (r *PendingUpdateWriteRepository) ClaimReview(ctx context.Context, pendingID, reviewerID uuid.UUID, status string, notes *string) (*models.PendingSkillUpdateDB, error) {
	query := `
		UPDATE pending_skill_updates
		SET status = $2, reviewed_at = NOW(), reviewed_by = $3, review_notes = $4
		WHERE pending_id = $1 AND status = 'pending'
		RETURNING ` + pendingColumns

	args := []any{pendingID, status, reviewerID, notes}

	var row models.PendingSkillUpdateDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &row, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pendingID, status, reviewerID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &row, nil
}
