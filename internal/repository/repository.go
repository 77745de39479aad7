package repository

import (
	"context"

	"medequip-backend/internal/domain"
)

type EquipmentRepository interface {
	Create(ctx context.Context, kind *domain.EquipmentKind) error
	GetByID(ctx context.Context, id string) (*domain.EquipmentKind, error)
	List(ctx context.Context) ([]domain.EquipmentKind, error)
	SetQuantity(ctx context.Context, id string, quantity int32) error
	// Decrement atomically subtracts amount from the available quantity,
	// failing with domain.ErrInsufficientStock when amount exceeds it.
	Decrement(ctx context.Context, id string, amount int32) error
	Increment(ctx context.Context, id string, amount int32) error
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	// GetOpenByID resolves the loan only among loans that still have
	// outstanding quantity; closed loans miss with domain.ErrNotFound.
	GetOpenByID(ctx context.Context, id string) (*domain.Loan, error)
	// GetByIDForUpdate locks the loan row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	DeleteAll(ctx context.Context) error
}

type ReturnHistoryRepository interface {
	Create(ctx context.Context, event *domain.ReturnEvent) error
	ListByLoan(ctx context.Context, loanID string) ([]domain.ReturnEvent, error)
	DeleteAll(ctx context.Context) error
}

type ReportRepository interface {
	GetSummary(ctx context.Context) (*domain.LedgerSummary, error)
}

// Repositories bundles the entity repositories scoped to one transaction.
type Repositories struct {
	Equipment EquipmentRepository
	Loans     LoanRepository
	Returns   ReturnHistoryRepository
}

// TxManager is the transaction coordinator. WithinTx runs fn against
// transaction-scoped repositories under serializable isolation: either
// every write fn performs commits, or none do. Domain errors returned by
// fn abort the transaction and pass through unchanged; contention beyond
// the retry budget surfaces as domain.ErrBusy and other store faults as
// domain.ErrStoreFailure.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
}
