package postgres

import (
	"context"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"
)

type reportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetSummary(ctx context.Context) (*domain.LedgerSummary, error) {
	summary := &domain.LedgerSummary{
		StatusCount: make(map[string]int32),
	}

	// Ledger totals and per-status counts
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(quantity), 0),
		       COALESCE(SUM(returned_quantity), 0),
		       COALESCE(SUM(remaining_quantity), 0),
		       COUNT(*) FILTER (WHERE status = 'FULLY_RETURNED'),
		       COUNT(*) FILTER (WHERE status = 'PARTIALLY_RETURNED'),
		       COUNT(*) FILTER (WHERE status = 'ISSUED')
		FROM loans`).Scan(
		&summary.TotalLoans,
		&summary.IssuedTotal,
		&summary.ReturnedTotal,
		&summary.OutstandingTotal,
		&summary.FullyReturnedCount,
		&summary.PartiallyReturnedCount,
		&summary.NotReturnedCount,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM loans GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		summary.StatusCount[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Per-kind outstanding units on open loans next to shelf availability
	kindRows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.name, e.quantity, COALESCE(SUM(l.remaining_quantity), 0)
		FROM equipment e
		LEFT JOIN loans l ON l.equipment_id = e.id AND l.status <> 'FULLY_RETURNED'
		GROUP BY e.id, e.name, e.quantity
		ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer kindRows.Close()
	for kindRows.Next() {
		var ko domain.KindOutstanding
		if err := kindRows.Scan(&ko.EquipmentID, &ko.EquipmentName, &ko.Available, &ko.Outstanding); err != nil {
			return nil, err
		}
		summary.OutstandingByKind = append(summary.OutstandingByKind, ko)
	}
	return summary, kindRows.Err()
}
