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

// NotificationReadRepository handles inbox reads
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

func (r *NotificationReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.NotificationDB, error) {
	const query = `
		SELECT notification_id, user_id, type, message, skill_id, related_user_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var rows []models.NotificationDB
	err := r.db.SelectContext(ctx, &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// NotificationWriteRepository handles inbox writes
type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *NotificationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *NotificationWriteRepository) Save(ctx context.Context, userID uuid.UUID, notifType, message string, skillID, relatedUserID *uuid.UUID) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, type, message, skill_id, related_user_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
	`
	args := []any{uuid.New(), userID, notifType, message, skillID, relatedUserID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, notifType, skillID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// MarkRead flips the read flag for a single notification owned by userID.
func (r *NotificationWriteRepository) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE notification_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, notificationID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{notificationID, userID},
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

// MarkAllRead flips the read flag on every unread notification of userID.
func (r *NotificationWriteRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
