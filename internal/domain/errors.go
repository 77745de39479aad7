package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers unknown equipment and loan ids alike.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEquipment is returned when adding a kind whose id exists.
	ErrDuplicateEquipment = errors.New("equipment id already exists")

	// ErrInsufficientStock is returned when a withdrawal exceeds the
	// available quantity of a kind.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned for non-positive requested quantities.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrLoanClosed is returned when a return is attempted against a loan
	// that is already fully returned.
	ErrLoanClosed = errors.New("loan is already fully returned")

	// ErrBusy is returned when the store could not commit within the
	// configured contention budget. The whole operation may be retried.
	ErrBusy = errors.New("store busy, try again")

	// ErrStoreFailure wraps unexpected persistence faults.
	ErrStoreFailure = errors.New("store failure")
)

// ExceedsRemainingError is returned when a return quantity exceeds what is
// still outstanding on the loan. It carries the actual remaining count so
// the caller can report it.
type ExceedsRemainingError struct {
	Remaining int32
}

func (e *ExceedsRemainingError) Error() string {
	return fmt.Sprintf("return quantity exceeds remaining (%d outstanding)", e.Remaining)
}

// IsDomainError reports whether err belongs to the ledger error taxonomy,
// as opposed to an unexpected store fault.
func IsDomainError(err error) bool {
	var exceeds *ExceedsRemainingError
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateEquipment) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrLoanClosed) ||
		errors.As(err, &exceeds)
}
