package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

type NotificationRepo struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewNotificationRepo(db *sql.DB, logger *zap.SugaredLogger) *NotificationRepo {
	return &NotificationRepo{db: db, logger: logger}
}

func (r *NotificationRepo) Create(ctx context.Context, n *blog.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, sender_id, notification_type, blog_post_id, comment_id, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		n.RecipientID,
		n.SenderID,
		n.Type,
		n.BlogPostID,
		n.CommentID,
		n.Message,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *NotificationRepo) ListByRecipient(ctx context.Context, recipientID int64) ([]*blog.Notification, error) {
	query := `
		SELECT id, recipient_id, sender_id, notification_type, blog_post_id, comment_id, message, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*blog.Notification
	for rows.Next() {
		var n blog.Notification
		err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.SenderID,
			&n.Type,
			&n.BlogPostID,
			&n.CommentID,
			&n.Message,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return notifications, nil
}

// MarkRead flips one notification, scoped to its recipient so a caller
// can never mark someone else's. Marking an already-read notification
// succeeds without effect.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, recipientID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if affected == 0 {
		// Distinguish "not yours / missing" from "already read".
		var exists bool
		check := `SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND recipient_id = $2)`
		if err := r.db.QueryRowContext(ctx, check, id, recipientID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check notification: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}

	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipientID int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`

	if _, err := r.db.ExecContext(ctx, query, recipientID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
