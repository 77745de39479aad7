package service

import (
	"context"
	"errors"
	"time"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/logger"
	"medequip-backend/internal/repository"
)

type loanService struct {
	tx          repository.TxManager
	loanRepo    repository.LoanRepository
	returnsRepo repository.ReturnHistoryRepository
	now         func() time.Time
}

func NewLoanService(
	tx repository.TxManager,
	loanRepo repository.LoanRepository,
	returnsRepo repository.ReturnHistoryRepository,
) LoanService {
	return &loanService{
		tx:          tx,
		loanRepo:    loanRepo,
		returnsRepo: returnsRepo,
		now:         time.Now,
	}
}

func (s *loanService) Issue(ctx context.Context, equipmentID, borrowerName, borrowerDept string, quantity int32, notes string) (*domain.Loan, string, error) {
	if quantity < 1 {
		return nil, "", domain.ErrInvalidQuantity
	}

	var loan *domain.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r repository.Repositories) error {
		kind, err := r.Equipment.GetByID(ctx, equipmentID)
		if err != nil {
			return err
		}
		if err := r.Equipment.Decrement(ctx, equipmentID, quantity); err != nil {
			return err
		}

		now := s.now()
		loan = &domain.Loan{
			ID:                domain.NewLoanID(now),
			EquipmentID:       kind.ID,
			EquipmentName:     kind.Name,
			BorrowerName:      borrowerName,
			BorrowerDept:      borrowerDept,
			Quantity:          quantity,
			ReturnedQuantity:  0,
			RemainingQuantity: quantity,
			Unit:              kind.Unit,
			IssuedOn:          now,
			Status:            domain.LoanStatusIssued,
			Notes:             notes,
		}
		return r.Loans.Create(ctx, loan)
	})
	if err != nil {
		return nil, "", err
	}

	payload, err := domain.NewClaimCheck(loan).Encode()
	if err != nil {
		// The loan is committed; a payload can be rebuilt from Lookup.
		logger.Error("Failed to encode claim check", "loan_id", loan.ID, "error", err)
		return loan, "", nil
	}

	logger.Info("Loan issued",
		"loan_id", loan.ID,
		"equipment_id", loan.EquipmentID,
		"borrower", loan.BorrowerName,
		"quantity", loan.Quantity)
	return loan, payload, nil
}

func (s *loanService) ApplyReturn(ctx context.Context, loanID string, returnQuantity int32, notes string) (*domain.Loan, error) {
	var updated *domain.Loan
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r repository.Repositories) error {
		loan, err := r.Loans.GetByIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Closed() {
			return domain.ErrLoanClosed
		}
		if returnQuantity < 1 {
			return domain.ErrInvalidQuantity
		}
		if returnQuantity > loan.RemainingQuantity {
			return &domain.ExceedsRemainingError{Remaining: loan.RemainingQuantity}
		}

		now := s.now()
		loan.ReturnedQuantity += returnQuantity
		loan.RemainingQuantity -= returnQuantity
		if loan.RemainingQuantity == 0 {
			loan.Status = domain.LoanStatusFullyReturned
		} else {
			loan.Status = domain.LoanStatusPartiallyReturned
		}
		loan.LastReturnOn = &now

		if err := r.Loans.Update(ctx, loan); err != nil {
			return err
		}
		if err := r.Returns.Create(ctx, &domain.ReturnEvent{
			LoanID:           loan.ID,
			ReturnedQuantity: returnQuantity,
			ReturnedOn:       now,
			Notes:            notes,
		}); err != nil {
			return err
		}
		if err := r.Equipment.Increment(ctx, loan.EquipmentID, returnQuantity); err != nil {
			return err
		}
		updated = loan
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Return applied",
		"loan_id", updated.ID,
		"returned", returnQuantity,
		"remaining", updated.RemainingQuantity,
		"status", updated.Status)
	return updated, nil
}

// Lookup resolves among open loans first and falls back to any status, so
// callers can tell "still open" apart from "already fully returned" without
// a second query path of their own.
func (s *loanService) Lookup(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetOpenByID(ctx, loanID)
	if err == nil {
		return loan, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.loanRepo.GetByID(ctx, loanID)
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.List(ctx)
}

func (s *loanService) ListReturns(ctx context.Context, loanID string) ([]domain.ReturnEvent, error) {
	return s.returnsRepo.ListByLoan(ctx, loanID)
}

// PurgeAll wipes the ledger and its history in one transaction. Equipment
// quantities stay as they are: units still out on open loans are not
// restocked by deleting the records that tracked them.
func (s *loanService) PurgeAll(ctx context.Context) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context, r repository.Repositories) error {
		if err := r.Returns.DeleteAll(ctx); err != nil {
			return err
		}
		return r.Loans.DeleteAll(ctx)
	})
	if err != nil {
		return err
	}
	logger.Warn("Ledger purged: all loans and return history deleted")
	return nil
}
