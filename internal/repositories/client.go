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

// ClientReadRepository handles client company reads
type ClientReadRepository struct {
	db *sqlx.DB
}

func NewClientReadRepository(db *sqlx.DB) *ClientReadRepository {
	return &ClientReadRepository{db: db}
}

func (r *ClientReadRepository) GetByID(ctx context.Context, clientID uuid.UUID) (*models.ClientDB, error) {
	const query = `
		SELECT client_id, name, industry, contact_email, created_at, updated_at
		FROM clients
		WHERE client_id = $1
	`

	var client models.ClientDB
	err := r.db.GetContext(ctx, &client, query, clientID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{clientID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *ClientReadRepository) List(ctx context.Context) ([]models.ClientDB, error) {
	const query = `
		SELECT client_id, name, industry, contact_email, created_at, updated_at
		FROM clients
		ORDER BY name
	`

	var clients []models.ClientDB
	err := r.db.SelectContext(ctx, &clients, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(clients),
		"error", err,
	)

	return clients, err
}

// ClientWriteRepository handles client company writes
type ClientWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewClientWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ClientWriteRepository {
	return &ClientWriteRepository{db: db, txGetter: txGetter}
}

func (r *ClientWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ClientWriteRepository) Save(ctx context.Context, name, industry, contactEmail string) (uuid.UUID, error) {
	query := `
		INSERT INTO clients (client_id, name, industry, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING client_id
	`
	args := []any{uuid.New(), name, industry, contactEmail}

	var clientID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &clientID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, industry},
		"result", clientID,
		"error", err,
	)

	return clientID, err
}

func (r *ClientWriteRepository) Update(ctx context.Context, clientID uuid.UUID, name, industry, contactEmail *string) error {
	query := `
		UPDATE clients
		SET name          = COALESCE($2, name),
		    industry      = COALESCE($3, industry),
		    contact_email = COALESCE($4, contact_email),
		    updated_at    = NOW()
		WHERE client_id = $1
	`
	args := []any{clientID, name, industry, contactEmail}

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

func (r *ClientWriteRepository) Delete(ctx context.Context, clientID uuid.UUID) error {
	query := `DELETE FROM clients WHERE client_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, clientID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{clientID},
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
