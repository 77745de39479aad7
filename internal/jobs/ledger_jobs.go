package jobs

import (
	"context"
	"fmt"
	"time"

	"medequip-backend/internal/logger"
)

// AuditLedger cross-checks the ledger invariants that every transaction is
// supposed to preserve: issued = returned + remaining, status matches the
// remaining count, and the return history sums to the loan's returned
// counter. A violation means a write path bypassed the coordinator.
func (jr *JobRunner) AuditLedger() {
	jr.runWithRecovery("AuditLedger", func() {
		ctx := context.Background()

		query := `
			SELECT l.id,
			       l.quantity,
			       l.returned_quantity,
			       l.remaining_quantity,
			       l.status,
			       COALESCE(h.total_returned, 0)
			FROM loans l
			LEFT JOIN (
				SELECT loan_id, SUM(returned_quantity) AS total_returned
				FROM return_history
				GROUP BY loan_id
			) h ON h.loan_id = l.id
			WHERE l.quantity <> l.returned_quantity + l.remaining_quantity
			   OR (l.status = 'FULLY_RETURNED') <> (l.remaining_quantity = 0)
			   OR l.returned_quantity <> COALESCE(h.total_returned, 0)
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Ledger audit query failed", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, status string
			var issued, returned, remaining, historySum int32
			if err := rows.Scan(&id, &issued, &returned, &remaining, &status, &historySum); err != nil {
				logger.Error("Failed to scan audit row", "error", err)
				continue
			}
			count++
			logger.Error("Ledger invariant violated",
				"loan_id", id,
				"issued", issued,
				"returned", returned,
				"remaining", remaining,
				"status", status,
				"history_sum", historySum)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating audit rows", "error", err)
			return
		}

		if count == 0 {
			logger.Info("Ledger audit clean")
		} else {
			logger.Error("Ledger audit found violations", "count", count)
		}
	})
}

// ReportOutstandingLoans logs open loans older than the configured number
// of days so the ward staff can chase them.
func (jr *JobRunner) ReportOutstandingLoans() {
	jr.runWithRecovery("ReportOutstandingLoans", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -jr.config.Scheduler.StaleLoanDays)

		query := `
			SELECT id, equipment_name, borrower_name, borrower_dept, remaining_quantity, unit, issued_on
			FROM loans
			WHERE status <> 'FULLY_RETURNED'
			  AND issued_on < $1
			ORDER BY issued_on
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to query outstanding loans", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, equipment, borrower, dept, unit string
			var remaining int32
			var issuedOn time.Time
			if err := rows.Scan(&id, &equipment, &borrower, &dept, &remaining, &unit, &issuedOn); err != nil {
				logger.Error("Failed to scan outstanding loan", "error", err)
				continue
			}
			count++
			logger.Warn("Loan outstanding past threshold",
				"loan_id", id,
				"equipment", equipment,
				"borrower", fmt.Sprintf("%s (%s)", borrower, dept),
				"remaining", fmt.Sprintf("%d %s", remaining, unit),
				"issued_on", issuedOn.Format("2006-01-02"))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating outstanding loans", "error", err)
			return
		}

		logger.Info("Outstanding loan report finished", "stale_loans", count, "older_than_days", jr.config.Scheduler.StaleLoanDays)
	})
}
