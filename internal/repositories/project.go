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

const projectColumns = `
	project_id, client_id, name, description, status, start_date, end_date,
	lead_id, delivery_lead_id, created_at, updated_at
`

// ProjectReadRepository handles project reads
type ProjectReadRepository struct {
	db *sqlx.DB
}

func NewProjectReadRepository(db *sqlx.DB) *ProjectReadRepository {
	return &ProjectReadRepository{db: db}
}

func (r *ProjectReadRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1`

	var project models.ProjectDB
	err := r.db.GetContext(ctx, &project, query, projectID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectReadRepository) List(ctx context.Context, clientID *uuid.UUID) ([]models.ProjectDB, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ($1::UUID IS NULL OR client_id = $1)
		ORDER BY start_date DESC
	`

	var projects []models.ProjectDB
	err := r.db.SelectContext(ctx, &projects, query, clientID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID},
		"result", len(projects),
		"error", err,
	)

	return projects, err
}

// ProjectWriteRepository handles project writes
type ProjectWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProjectWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ProjectWriteRepository) Save(ctx context.Context, clientID uuid.UUID, name, description, status string, startDate time.Time, endDate *time.Time, leadID, deliveryLeadID *uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO projects
			(project_id, client_id, name, description, status, start_date, end_date, lead_id, delivery_lead_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING project_id
	`
	args := []any{uuid.New(), clientID, name, description, status, startDate, endDate, leadID, deliveryLeadID}

	var projectID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &projectID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID, name, status},
		"result", projectID,
		"error", err,
	)

	return projectID, err
}

func (r *ProjectWriteRepository) Update(ctx context.Context, projectID uuid.UUID, name, description, status *string, endDate *time.Time) error {
	query := `
		UPDATE projects
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    status      = COALESCE($4, status),
		    end_date    = COALESCE($5, end_date),
		    updated_at  = NOW()
		WHERE project_id = $1
	`
	args := []any{projectID, name, description, status, endDate}

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

// Delete removes a project. Resources, history and required-skill links
// cascade with the row; the caller wraps the call in a transaction.
func (r *ProjectWriteRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	query := `DELETE FROM projects WHERE project_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, projectID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{projectID},
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
