package settlement

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new settlement into the database
func (r *Repository) Create(ctx context.Context, tripID, fromID, toID int64, amount float64, note *string) (*Settlement, error) {
	query := `
		INSERT INTO settlements (trip_id, from_participant_id, to_participant_id, amount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, trip_id, from_participant_id, to_participant_id, amount, note, created_at
	`

	s := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, tripID, fromID, toID, amount, note).Scan(
		&s.ID,
		&s.TripID,
		&s.FromID,
		&s.ToID,
		&s.Amount,
		&s.Note,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return s, nil
}

// ListByTrip retrieves a page of settlements for a trip, newest first
func (r *Repository) ListByTrip(ctx context.Context, tripID int64, limit, offset int) ([]*Settlement, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM settlements WHERE trip_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, tripID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	query := `
		SELECT s.id, s.trip_id, s.from_participant_id, s.to_participant_id, s.amount, s.note, s.created_at,
		       f.username AS from_username, t.username AS to_username
		FROM settlements s
		JOIN participants f ON s.from_participant_id = f.id
		JOIN participants t ON s.to_participant_id = t.id
		WHERE s.trip_id = $1
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, tripID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(&s.ID, &s.TripID, &s.FromID, &s.ToID, &s.Amount, &s.Note, &s.CreatedAt, &s.FromUsername, &s.ToUsername); err != nil {
			return nil, 0, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, total, rows.Err()
}

// ListAllByTrip retrieves every settlement of a trip in creation order.
// Used as input for balance calculations.
func (r *Repository) ListAllByTrip(ctx context.Context, tripID int64) ([]*Settlement, error) {
	query := `
		SELECT id, trip_id, from_participant_id, to_participant_id, amount, note, created_at
		FROM settlements
		WHERE trip_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		if err := rows.Scan(&s.ID, &s.TripID, &s.FromID, &s.ToID, &s.Amount, &s.Note, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, rows.Err()
}
