package service

import (
	"context"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) Create(ctx context.Context, kind *domain.EquipmentKind) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id string) (*domain.EquipmentKind, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentKind), args.Error(1)
}

func (m *MockEquipmentRepo) List(ctx context.Context) ([]domain.EquipmentKind, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentKind), args.Error(1)
}

func (m *MockEquipmentRepo) SetQuantity(ctx context.Context, id string, quantity int32) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Decrement(ctx context.Context, id string, amount int32) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockEquipmentRepo) Increment(ctx context.Context, id string, amount int32) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) GetOpenByID(ctx context.Context, id string) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepo) List(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockReturnHistoryRepo struct {
	mock.Mock
}

func (m *MockReturnHistoryRepo) Create(ctx context.Context, event *domain.ReturnEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockReturnHistoryRepo) ListByLoan(ctx context.Context, loanID string) ([]domain.ReturnEvent, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnEvent), args.Error(1)
}

func (m *MockReturnHistoryRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) GetSummary(ctx context.Context) (*domain.LedgerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

// fakeTxManager hands fn the supplied repositories directly. The real
// coordinator's retry and classification behavior is covered by its own
// tests; here only the business logic inside fn is under test.
type fakeTxManager struct {
	repos repository.Repositories
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, r repository.Repositories) error) error {
	return fn(ctx, f.repos)
}
