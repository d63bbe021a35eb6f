package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// EndorsementReadRepository handles endorsement reads
type EndorsementReadRepository struct {
	db *sqlx.DB
}

func NewEndorsementReadRepository(db *sqlx.DB) *EndorsementReadRepository {
	return &EndorsementReadRepository{db: db}
}

func (r *EndorsementReadRepository) ListBySkillID(ctx context.Context, skillID uuid.UUID) ([]models.EndorsementDB, error) {
	const query = `
		SELECT endorsement_id, skill_id, endorser_id, comment, created_at, updated_at
		FROM endorsements
		WHERE skill_id = $1
		ORDER BY created_at DESC
	`

	var rows []models.EndorsementDB
	err := r.db.SelectContext(ctx, &rows, query, skillID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// EndorsementWriteRepository handles endorsement writes
type EndorsementWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEndorsementWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EndorsementWriteRepository {
	return &EndorsementWriteRepository{db: db, txGetter: txGetter}
}

// Upsert performs an UPSERT: creates the endorsement if the endorser has not
// endorsed the skill yet, otherwise replaces the comment.
func (r *EndorsementWriteRepository) Upsert(ctx context.Context, skillID, endorserID uuid.UUID, comment string) (uuid.UUID, error) {
	query := `
		INSERT INTO endorsements (endorsement_id, skill_id, endorser_id, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (skill_id, endorser_id)
		DO UPDATE SET comment = EXCLUDED.comment, updated_at = NOW()
		RETURNING endorsement_id
	`
	args := []any{uuid.New(), skillID, endorserID, comment}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var endorsementID uuid.UUID
	err := sqlx.GetContext(ctx, executor, &endorsementID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{skillID, endorserID},
		"result", endorsementID,
		"error", err,
	)

	return endorsementID, err
}
