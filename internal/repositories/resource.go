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

const resourceColumns = `
	resource_id, project_id, user_id, role, allocation, start_date, end_date,
	created_at, updated_at
`

// ResourceReadRepository handles project staffing reads
type ResourceReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewResourceReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ResourceReadRepository {
	return &ResourceReadRepository{db: db, txGetter: txGetter}
}

func (r *ResourceReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ResourceReadRepository) GetByID(ctx context.Context, resourceID uuid.UUID) (*models.ProjectResourceDB, error) {
	query := `SELECT ` + resourceColumns + ` FROM project_resources WHERE resource_id = $1`

	var resource models.ProjectResourceDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &resource, query, resourceID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{resourceID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &resource, nil
}

func (r *ResourceReadRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceDB, error) {
	query := `SELECT ` + resourceColumns + ` FROM project_resources WHERE project_id = $1 ORDER BY start_date`

	var resources []models.ProjectResourceDB
	err := r.db.SelectContext(ctx, &resources, query, projectID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"result", len(resources),
		"error", err,
	)

	return resources, err
}

// ResourceWriteRepository handles project staffing writes
type ResourceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewResourceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ResourceWriteRepository {
	return &ResourceWriteRepository{db: db, txGetter: txGetter}
}

func (r *ResourceWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ResourceWriteRepository) Save(ctx context.Context, projectID, userID uuid.UUID, role string, allocation int, startDate time.Time, endDate *time.Time) (uuid.UUID, error) {
	query := `
		INSERT INTO project_resources
			(resource_id, project_id, user_id, role, allocation, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING resource_id
	`
	args := []any{uuid.New(), projectID, userID, role, allocation, startDate, endDate}

	var resourceID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &resourceID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID, userID, role, allocation},
		"result", resourceID,
		"error", err,
	)

	return resourceID, err
}

func (r *ResourceWriteRepository) Update(ctx context.Context, resourceID uuid.UUID, role *string, allocation *int, endDate *time.Time) error {
	query := `
		UPDATE project_resources
		SET role       = COALESCE($2, role),
		    allocation = COALESCE($3, allocation),
		    end_date   = COALESCE($4, end_date),
		    updated_at = NOW()
		WHERE resource_id = $1
	`
	args := []any{resourceID, role, allocation, endDate}

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

func (r *ResourceWriteRepository) Delete(ctx context.Context, resourceID uuid.UUID) error {
	query := `DELETE FROM project_resources WHERE resource_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, resourceID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{resourceID},
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

// ResourceHistoryReadRepository handles staffing audit trail reads
type ResourceHistoryReadRepository struct {
	db *sqlx.DB
}

func NewResourceHistoryReadRepository(db *sqlx.DB) *ResourceHistoryReadRepository {
	return &ResourceHistoryReadRepository{db: db}
}

func (r *ResourceHistoryReadRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceHistoryDB, error) {
	const query = `
		SELECT history_id, project_id, user_id, action, previous_role, new_role,
		       previous_allocation, new_allocation, changed_by, created_at
		FROM project_resource_history
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	var rows []models.ProjectResourceHistoryDB
	err := r.db.SelectContext(ctx, &rows, query, projectID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// ResourceHistoryWriteRepository appends staffing audit trail rows
type ResourceHistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewResourceHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ResourceHistoryWriteRepository {
	return &ResourceHistoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *ResourceHistoryWriteRepository) Save(ctx context.Context, row models.ProjectResourceHistoryDB) error {
	query := `
		INSERT INTO project_resource_history
			(history_id, project_id, user_id, action, previous_role, new_role,
			 previous_allocation, new_allocation, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	args := []any{uuid.New(), row.ProjectID, row.UserID, row.Action, row.PreviousRole, row.NewRole,
		row.PreviousAllocation, row.NewAllocation, row.ChangedBy}

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
		"args", []any{row.ProjectID, row.UserID, row.Action},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
