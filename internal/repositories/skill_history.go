package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// SkillHistoryReadRepository handles skill audit trail reads
type SkillHistoryReadRepository struct {
	db *sqlx.DB
}

func NewSkillHistoryReadRepository(db *sqlx.DB) *SkillHistoryReadRepository {
	return &SkillHistoryReadRepository{db: db}
}

func (r *SkillHistoryReadRepository) ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.SkillHistoryDB, error) {
	const query = `
		SELECT history_id, skill_id, previous_level, new_level, change_note, created_at
		FROM skill_history
		WHERE skill_id = $1
		ORDER BY created_at DESC
	`

	var rows []models.SkillHistoryDB
	err := r.db.SelectContext(ctx, &rows, query, skillID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// SkillHistoryWriteRepository appends skill audit trail rows
type SkillHistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillHistoryWriteRepository {
	return &SkillHistoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *SkillHistoryWriteRepository) Save(ctx context.Context, skillID uuid.UUID, previousLevel *string, newLevel, changeNote string) error {
	query := `
		INSERT INTO skill_history (history_id, skill_id, previous_level, new_level, change_note, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{uuid.New(), skillID, previousLevel, newLevel, changeNote}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
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

	return err
}
