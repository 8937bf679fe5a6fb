package notification

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles notification data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a notification for a participant
func (r *Repository) Create(ctx context.Context, participantID int64, kind Kind, message string) (*Notification, error) {
	query := `
		INSERT INTO notifications (participant_id, kind, message)
		VALUES ($1, $2, $3)
		RETURNING id, participant_id, kind, message, read, created_at
	`

	n := &Notification{}
	err := r.db.QueryRowContext(ctx, query, participantID, kind, message).Scan(
		&n.ID,
		&n.ParticipantID,
		&n.Kind,
		&n.Message,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// ListByParticipant retrieves notifications for a participant, newest first
func (r *Repository) ListByParticipant(ctx context.Context, participantID int64, limit, offset int) ([]*Notification, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM notifications WHERE participant_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, participantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, participant_id, kind, message, read, created_at
		FROM notifications
		WHERE participant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, participantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(&n.ID, &n.ParticipantID, &n.Kind, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}

// MarkRead flags a notification as read, scoped to its owner
func (r *Repository) MarkRead(ctx context.Context, id, participantID int64) (*Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND participant_id = $2
		RETURNING id, participant_id, kind, message, read, created_at
	`

	n := &Notification{}
	err := r.db.QueryRowContext(ctx, query, id, participantID).Scan(
		&n.ID,
		&n.ParticipantID,
		&n.Kind,
		&n.Message,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}

	return n, nil
}
