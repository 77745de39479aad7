package domain

// LedgerSummary aggregates the ledger the way the reporting page consumes
// it. Computed fresh from the store on every call; nothing here is cached.
type LedgerSummary struct {
	TotalLoans             int32             `json:"total_loans"`
	FullyReturnedCount     int32             `json:"fully_returned_count"`
	PartiallyReturnedCount int32             `json:"partially_returned_count"`
	NotReturnedCount       int32             `json:"not_returned_count"`
	IssuedTotal            int32             `json:"issued_total"`
	ReturnedTotal          int32             `json:"returned_total"`
	OutstandingTotal       int32             `json:"outstanding_total"`
	StatusCount            map[string]int32  `json:"status_count"`
	OutstandingByKind      []KindOutstanding `json:"outstanding_by_kind"`
}

// KindOutstanding is the per-kind view: units still out on open loans, next
// to the units sitting on the shelf. Total owned is derived, not stored.
type KindOutstanding struct {
	EquipmentID   string `json:"equipment_id"`
	EquipmentName string `json:"equipment_name"`
	Available     int32  `json:"available"`
	Outstanding   int32  `json:"outstanding"`
}
