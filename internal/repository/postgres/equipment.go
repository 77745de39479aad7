package postgres

import (
	"context"
	"database/sql"
	"errors"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"

	"github.com/lib/pq"
)

type equipmentRepository struct {
	db DBTX
}

func NewEquipmentRepository(db DBTX) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, kind *domain.EquipmentKind) error {
	query := `INSERT INTO equipment (id, name, category, quantity, unit, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`
	_, err := r.db.ExecContext(ctx, query, kind.ID, kind.Name, kind.Category, kind.Quantity, kind.Unit)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateEquipment
	}
	return err
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.EquipmentKind, error) {
	kind := &domain.EquipmentKind{}
	query := `SELECT id, name, category, quantity, unit, created_on, updated_on FROM equipment WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&kind.ID, &kind.Name, &kind.Category, &kind.Quantity, &kind.Unit, &kind.CreatedOn, &kind.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return kind, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.EquipmentKind, error) {
	query := `SELECT id, name, category, quantity, unit, created_on, updated_on FROM equipment ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kinds []domain.EquipmentKind
	for rows.Next() {
		var kind domain.EquipmentKind
		if err := rows.Scan(&kind.ID, &kind.Name, &kind.Category, &kind.Quantity, &kind.Unit, &kind.CreatedOn, &kind.UpdatedOn); err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, rows.Err()
}

func (r *equipmentRepository) SetQuantity(ctx context.Context, id string, quantity int32) error {
	query := `UPDATE equipment SET quantity = $2, updated_on = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, quantity)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Decrement is the withdrawal side of the inventory invariant: the quantity
// check and the subtraction happen in one statement, so available never
// goes negative no matter how requests interleave.
func (r *equipmentRepository) Decrement(ctx context.Context, id string, amount int32) error {
	query := `UPDATE equipment SET quantity = quantity - $2, updated_on = NOW() WHERE id = $1 AND quantity >= $2`
	res, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *equipmentRepository) Increment(ctx context.Context, id string, amount int32) error {
	query := `UPDATE equipment SET quantity = quantity + $2, updated_on = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
