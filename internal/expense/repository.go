package expense

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles expense and share data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts a new expense into the database
func (r *Repository) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*Expense, error) {
	query := `
		INSERT INTO expenses (trip_id, payer_id, description, amount, split_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, trip_id, payer_id, description, amount, split_type, created_at
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query,
		req.TripID,
		payerID,
		req.Description,
		req.Amount,
		req.SplitType,
	).Scan(
		&e.ID,
		&e.TripID,
		&e.PayerID,
		&e.Description,
		&e.Amount,
		&e.SplitType,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

// CreateShare inserts a new expense share into the database
func (r *Repository) CreateShare(ctx context.Context, expenseID, participantID int64, amount float64, percentage *float64) (*ExpenseShare, error) {
	query := `
		INSERT INTO expense_shares (expense_id, participant_id, amount, percentage)
		VALUES ($1, $2, $3, $4)
		RETURNING id, expense_id, participant_id, amount, percentage
	`

	s := &ExpenseShare{}
	err := r.db.QueryRowContext(ctx, query, expenseID, participantID, amount, percentage).Scan(
		&s.ID,
		&s.ExpenseID,
		&s.ParticipantID,
		&s.Amount,
		&s.Percentage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense share: %w", err)
	}

	return s, nil
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.payer_id, e.description, e.amount, e.split_type, e.created_at, p.username
		FROM expenses e
		JOIN participants p ON e.payer_id = p.id
		WHERE e.id = $1
	`

	e := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.TripID,
		&e.PayerID,
		&e.Description,
		&e.Amount,
		&e.SplitType,
		&e.CreatedAt,
		&e.PayerUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// GetSharesByExpenseID retrieves all shares for an expense
func (r *Repository) GetSharesByExpenseID(ctx context.Context, expenseID int64) ([]*ExpenseShare, error) {
	query := `
		SELECT s.id, s.expense_id, s.participant_id, s.amount, s.percentage, p.username
		FROM expense_shares s
		JOIN participants p ON s.participant_id = p.id
		WHERE s.expense_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	var shares []*ExpenseShare
	for rows.Next() {
		s := &ExpenseShare{}
		if err := rows.Scan(&s.ID, &s.ExpenseID, &s.ParticipantID, &s.Amount, &s.Percentage, &s.Username); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		shares = append(shares, s)
	}

	return shares, rows.Err()
}

// ListByTripID retrieves a page of expenses for a trip, newest first
func (r *Repository) ListByTripID(ctx context.Context, tripID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE trip_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, tripID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.trip_id, e.payer_id, e.description, e.amount, e.split_type, e.created_at, p.username
		FROM expenses e
		JOIN participants p ON e.payer_id = p.id
		WHERE e.trip_id = $1
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, tripID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(&e.ID, &e.TripID, &e.PayerID, &e.Description, &e.Amount, &e.SplitType, &e.CreatedAt, &e.PayerUsername); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, total, rows.Err()
}

// ListWithSharesByTrip retrieves every expense of a trip with its shares,
// in creation order. Used as input for balance calculations.
func (r *Repository) ListWithSharesByTrip(ctx context.Context, tripID int64) ([]*ExpenseWithShares, error) {
	query := `
		SELECT id, trip_id, payer_id, description, amount, split_type, created_at
		FROM expenses
		WHERE trip_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*ExpenseWithShares)
	var result []*ExpenseWithShares
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(&e.ID, &e.TripID, &e.PayerID, &e.Description, &e.Amount, &e.SplitType, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		ews := &ExpenseWithShares{Expense: e}
		byID[e.ID] = ews
		result = append(result, ews)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	shareQuery := `
		SELECT s.id, s.expense_id, s.participant_id, s.amount, s.percentage
		FROM expense_shares s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.trip_id = $1
		ORDER BY s.id
	`

	shareRows, err := r.db.QueryContext(ctx, shareQuery, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		s := &ExpenseShare{}
		if err := shareRows.Scan(&s.ID, &s.ExpenseID, &s.ParticipantID, &s.Amount, &s.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan expense share: %w", err)
		}
		if ews, ok := byID[s.ExpenseID]; ok {
			ews.Shares = append(ews.Shares, s)
		}
	}

	return result, shareRows.Err()
}

// DeleteExpense removes an expense and its shares
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	// Shares cascade via FK constraint
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
