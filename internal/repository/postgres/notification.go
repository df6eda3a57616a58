package postgres

import (
	"context"
	"database/sql"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	now := time.Now()
	query := `INSERT INTO notifications (recipient_id, sender_id, type, message, link, is_read, related_entity_id, related_entity_type, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		n.RecipientID, n.SenderID, n.Type, n.Message, n.Link, n.IsRead,
		n.RelatedEntityID, n.RelatedEntityType, now,
	).Scan(&n.ID)
	if err != nil {
		logger.Error("Failed to insert notification", "recipient_id", n.RecipientID, "type", n.Type, "error", err)
		return err
	}
	n.CreatedOn = now
	return nil
}

func (r *notificationRepository) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE recipient_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, recipient_id, sender_id, type, message, link, is_read, related_entity_id, related_entity_type, created_on
	          FROM notifications WHERE recipient_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var senderID sql.NullInt32
		if err := rows.Scan(&n.ID, &n.RecipientID, &senderID, &n.Type, &n.Message, &n.Link,
			&n.IsRead, &n.RelatedEntityID, &n.RelatedEntityType, &n.CreatedOn); err != nil {
			return nil, 0, err
		}
		if senderID.Valid {
			n.SenderID = &senderID.Int32
		}
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`,
		id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`,
		userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
