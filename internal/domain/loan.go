package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type LoanStatus string

const (
	LoanStatusIssued            LoanStatus = "ISSUED"
	LoanStatusPartiallyReturned LoanStatus = "PARTIALLY_RETURNED"
	LoanStatusFullyReturned     LoanStatus = "FULLY_RETURNED"
)

// Loan records one withdrawal of equipment units by a borrower. Equipment
// name and unit are snapshots taken at issue time; the live kind may be
// renamed without rewriting history.
type Loan struct {
	ID                string     `json:"id"`
	EquipmentID       string     `json:"equipment_id"`
	EquipmentName     string     `json:"equipment_name"`
	BorrowerName      string     `json:"borrower_name"`
	BorrowerDept      string     `json:"borrower_dept"`
	Quantity          int32      `json:"quantity"`
	ReturnedQuantity  int32      `json:"returned_quantity"`
	RemainingQuantity int32      `json:"remaining_quantity"`
	Unit              string     `json:"unit"`
	IssuedOn          time.Time  `json:"issued_on"`
	Status            LoanStatus `json:"status"`
	Notes             string     `json:"notes,omitempty"`
	LastReturnOn      *time.Time `json:"last_return_on,omitempty"`
}

// Closed reports whether the loan can no longer accept returns.
func (l *Loan) Closed() bool {
	return l.Status == LoanStatusFullyReturned
}

// NewLoanID builds a loan identifier. The legacy ids were TX<yyyymmddhhmmss>,
// which collides when two loans are created within the same second; the uuid
// suffix disambiguates while keeping the ids recognizable on printed labels.
func NewLoanID(now time.Time) string {
	return fmt.Sprintf("TX%s-%s", now.Format("20060102150405"), uuid.NewString()[:8])
}
