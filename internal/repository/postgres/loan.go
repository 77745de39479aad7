package postgres

import (
	"context"
	"database/sql"
	"errors"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"
)

const loanColumns = `id, equipment_id, equipment_name, borrower_name, borrower_dept,
	quantity, returned_quantity, remaining_quantity, unit, issued_on, status, COALESCE(notes, ''), last_return_on`

type loanRepository struct {
	db DBTX
}

func NewLoanRepository(db DBTX) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `INSERT INTO loans (id, equipment_id, equipment_name, borrower_name, borrower_dept,
	          quantity, returned_quantity, remaining_quantity, unit, issued_on, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		loan.ID, loan.EquipmentID, loan.EquipmentName, loan.BorrowerName, loan.BorrowerDept,
		loan.Quantity, loan.ReturnedQuantity, loan.RemainingQuantity, loan.Unit, loan.IssuedOn,
		loan.Status, loan.Notes)
	return err
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *loanRepository) GetOpenByID(ctx context.Context, id string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 AND status <> $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id, domain.LoanStatusFullyReturned))
}

func (r *loanRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `UPDATE loans SET returned_quantity = $1, remaining_quantity = $2, status = $3, last_return_on = $4
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query,
		loan.ReturnedQuantity, loan.RemainingQuantity, loan.Status, loan.LastReturnOn, loan.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY issued_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var loan domain.Loan
		if err := rows.Scan(
			&loan.ID, &loan.EquipmentID, &loan.EquipmentName, &loan.BorrowerName, &loan.BorrowerDept,
			&loan.Quantity, &loan.ReturnedQuantity, &loan.RemainingQuantity, &loan.Unit, &loan.IssuedOn,
			&loan.Status, &loan.Notes, &loan.LastReturnOn); err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func (r *loanRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM loans`)
	return err
}

func (r *loanRepository) scanOne(row *sql.Row) (*domain.Loan, error) {
	loan := &domain.Loan{}
	err := row.Scan(
		&loan.ID, &loan.EquipmentID, &loan.EquipmentName, &loan.BorrowerName, &loan.BorrowerDept,
		&loan.Quantity, &loan.ReturnedQuantity, &loan.RemainingQuantity, &loan.Unit, &loan.IssuedOn,
		&loan.Status, &loan.Notes, &loan.LastReturnOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return loan, nil
}
