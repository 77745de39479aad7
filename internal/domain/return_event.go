package domain

import "time"

// ReturnEvent is one act of returning some quantity against a loan.
// Append-only: events are never updated, and only a ledger purge removes
// them together with their parent loan.
type ReturnEvent struct {
	ID               int64     `json:"id"`
	LoanID           string    `json:"loan_id"`
	ReturnedQuantity int32     `json:"returned_quantity"`
	ReturnedOn       time.Time `json:"returned_on"`
	Notes            string    `json:"notes,omitempty"`
}
