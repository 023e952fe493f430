package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmit/placenet/internal/app/models"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO notifications (title, body, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		notification.Title, notification.Body, notification.CreatedBy).
		Scan(&notification.ID, &notification.CreatedAt)
}

// GetAll retrieves notifications newest first, with pagination
func (r *NotificationRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Notification, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting notifications: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, title, body, created_by, created_at
		FROM notifications
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var notification models.Notification
		err := rows.Scan(&notification.ID, &notification.Title, &notification.Body,
			&notification.CreatedBy, &notification.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// GetByID retrieves a notification by ID; nil when no row matches
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.QueryRow(ctx, `
		SELECT id, title, body, created_by, created_at
		FROM notifications WHERE id = $1`, id).
		Scan(&notification.ID, &notification.Title, &notification.Body,
			&notification.CreatedBy, &notification.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}

	return &notification, nil
}

// Update updates a notification and returns affected rows
func (r *NotificationRepository) Update(ctx context.Context, notification *models.Notification) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE notifications SET title = $1, body = $2 WHERE id = $3`,
		notification.Title, notification.Body, notification.ID)
	if err != nil {
		return 0, fmt.Errorf("error updating notification: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a notification and returns affected rows
func (r *NotificationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
