package service

import (
	"context"

	"medequip-backend/internal/domain"
)

type InventoryService interface {
	AddEquipment(ctx context.Context, kind *domain.EquipmentKind) error
	SetQuantity(ctx context.Context, id string, quantity int32) error
	GetEquipment(ctx context.Context, id string) (*domain.EquipmentKind, error)
	ListEquipment(ctx context.Context) ([]domain.EquipmentKind, error)
}

type LoanService interface {
	// Issue withdraws quantity units of a kind for a borrower. The loan
	// insert and the inventory decrement commit together or not at all.
	// The returned string is the claim-check payload for code generation.
	Issue(ctx context.Context, equipmentID, borrowerName, borrowerDept string, quantity int32, notes string) (*domain.Loan, string, error)
	// ApplyReturn applies one return event against an open loan. Calling
	// it twice with the same arguments applies the return twice; callers
	// own not resubmitting.
	ApplyReturn(ctx context.Context, loanID string, returnQuantity int32, notes string) (*domain.Loan, error)
	// Lookup resolves a loan among open loans first, then any status.
	Lookup(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	ListReturns(ctx context.Context, loanID string) ([]domain.ReturnEvent, error)
	// PurgeAll deletes every loan and return event. Equipment quantities
	// are left as they are; purging the ledger does not restock.
	PurgeAll(ctx context.Context) error
}

type ReportService interface {
	Summary(ctx context.Context) (*domain.LedgerSummary, error)
}

type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}
