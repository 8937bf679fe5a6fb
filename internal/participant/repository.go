package participant

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles participant data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new participant repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new participant into the database
func (r *Repository) Create(ctx context.Context, req *CreateParticipantRequest) (*Participant, error) {
	query := `
		INSERT INTO participants (username, email, avatar_url)
		VALUES ($1, $2, $3)
		RETURNING id, username, email, avatar_url, created_at
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, req.Username, req.Email, req.AvatarURL).Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.AvatarURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return p, nil
}

// GetByID retrieves a participant by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Participant, error) {
	query := `
		SELECT id, username, email, avatar_url, created_at
		FROM participants
		WHERE id = $1
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.AvatarURL,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return p, nil
}

// GetByEmail retrieves a participant by their email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Participant, error) {
	query := `
		SELECT id, username, email, avatar_url, created_at
		FROM participants
		WHERE email = $1
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.AvatarURL,
		&p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant by email: %w", err)
	}

	return p, nil
}

// List retrieves participants with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Participant, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count participants: %w", err)
	}

	query := `
		SELECT id, username, email, avatar_url, created_at
		FROM participants
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(&p.ID, &p.Username, &p.Email, &p.AvatarURL, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, total, rows.Err()
}

// Update modifies an existing participant
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateParticipantRequest) (*Participant, error) {
	query := `
		UPDATE participants
		SET username = COALESCE($2, username),
		    avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING id, username, email, avatar_url, created_at
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id, req.Username, req.AvatarURL).Scan(
		&p.ID,
		&p.Username,
		&p.Email,
		&p.AvatarURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return p, nil
}

// Delete removes a participant
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return nil
}
