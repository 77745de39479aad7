package postgres

import (
	"context"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"
)

type returnHistoryRepository struct {
	db DBTX
}

func NewReturnHistoryRepository(db DBTX) repository.ReturnHistoryRepository {
	return &returnHistoryRepository{db: db}
}

func (r *returnHistoryRepository) Create(ctx context.Context, event *domain.ReturnEvent) error {
	query := `INSERT INTO return_history (loan_id, returned_quantity, returned_on, notes)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		event.LoanID, event.ReturnedQuantity, event.ReturnedOn, event.Notes).Scan(&event.ID)
}

func (r *returnHistoryRepository) ListByLoan(ctx context.Context, loanID string) ([]domain.ReturnEvent, error) {
	query := `SELECT id, loan_id, returned_quantity, returned_on, COALESCE(notes, '')
	          FROM return_history WHERE loan_id = $1 ORDER BY returned_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.ReturnEvent
	for rows.Next() {
		var ev domain.ReturnEvent
		if err := rows.Scan(&ev.ID, &ev.LoanID, &ev.ReturnedQuantity, &ev.ReturnedOn, &ev.Notes); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *returnHistoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM return_history`)
	return err
}
