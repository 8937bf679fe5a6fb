package trip

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles trip data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trip into the database
func (r *Repository) Create(ctx context.Context, req *CreateTripRequest) (*Trip, error) {
	query := `
		INSERT INTO trips (name, description, currency_code)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, currency_code, created_at
	`

	t := &Trip{}
	err := r.db.QueryRowContext(ctx, query, req.Name, req.Description, req.CurrencyCode).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CurrencyCode,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return t, nil
}

// GetByID retrieves a trip by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Trip, error) {
	query := `
		SELECT id, name, description, currency_code, created_at
		FROM trips
		WHERE id = $1
	`

	t := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.CurrencyCode,
		&t.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return t, nil
}

// GetMembers retrieves all members of a trip in join order
func (r *Repository) GetMembers(ctx context.Context, tripID int64) ([]*TripMember, error) {
	query := `
		SELECT m.id, m.trip_id, m.participant_id, m.joined_at, p.username
		FROM trip_members m
		JOIN participants p ON m.participant_id = p.id
		WHERE m.trip_id = $1
		ORDER BY m.id
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip members: %w", err)
	}
	defer rows.Close()

	var members []*TripMember
	for rows.Next() {
		m := &TripMember{}
		if err := rows.Scan(&m.ID, &m.TripID, &m.ParticipantID, &m.JoinedAt, &m.Username); err != nil {
			return nil, fmt.Errorf("failed to scan trip member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// AddMember inserts a new trip membership
func (r *Repository) AddMember(ctx context.Context, tripID, participantID int64) (*TripMember, error) {
	query := `
		INSERT INTO trip_members (trip_id, participant_id)
		VALUES ($1, $2)
		RETURNING id, trip_id, participant_id, joined_at
	`

	m := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, tripID, participantID).Scan(
		&m.ID,
		&m.TripID,
		&m.ParticipantID,
		&m.JoinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add trip member: %w", err)
	}

	return m, nil
}

// RemoveMember deletes a trip membership
func (r *Repository) RemoveMember(ctx context.Context, tripID, participantID int64) error {
	query := `DELETE FROM trip_members WHERE trip_id = $1 AND participant_id = $2`
	if _, err := r.db.ExecContext(ctx, query, tripID, participantID); err != nil {
		return fmt.Errorf("failed to remove trip member: %w", err)
	}
	return nil
}

// IsMember reports whether a participant belongs to a trip
func (r *Repository) IsMember(ctx context.Context, tripID, participantID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM trip_members WHERE trip_id = $1 AND participant_id = $2)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, tripID, participantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check trip membership: %w", err)
	}
	return exists, nil
}

// ListForParticipant retrieves all trips a participant belongs to
func (r *Repository) ListForParticipant(ctx context.Context, participantID int64) ([]*Trip, error) {
	query := `
		SELECT t.id, t.name, t.description, t.currency_code, t.created_at
		FROM trips t
		JOIN trip_members m ON m.trip_id = t.id
		WHERE m.participant_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		t := &Trip{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CurrencyCode, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}
