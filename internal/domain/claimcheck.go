package domain

import (
	"encoding/json"
	"fmt"
)

// ClaimCheck is the portable payload embedded in the scannable code handed
// out at issue time. The JSON keys match the codes already in circulation,
// so labels printed by the previous system keep scanning correctly.
// Only the loan id is authoritative; the other fields are informational and
// are not re-validated against the ledger at decode time.
type ClaimCheck struct {
	LoanID      string `json:"transaction_id"`
	EquipmentID string `json:"equipment_id"`
	Quantity    int32  `json:"quantity"`
	Borrower    string `json:"borrower"`
}

// NewClaimCheck builds the payload for a freshly issued loan.
func NewClaimCheck(l *Loan) ClaimCheck {
	return ClaimCheck{
		LoanID:      l.ID,
		EquipmentID: l.EquipmentID,
		Quantity:    l.Quantity,
		Borrower:    l.BorrowerName,
	}
}

// Encode serializes the payload to the text form handed to the codec.
func (c ClaimCheck) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode claim check: %w", err)
	}
	return string(b), nil
}

// ParseClaimCheck parses scanned text back into a payload. A payload
// without a loan id is useless and rejected outright.
func ParseClaimCheck(text string) (*ClaimCheck, error) {
	var c ClaimCheck
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return nil, fmt.Errorf("malformed claim check: %w", err)
	}
	if c.LoanID == "" {
		return nil, fmt.Errorf("claim check has no transaction id")
	}
	return &c, nil
}
