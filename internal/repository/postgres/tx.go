package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/logger"
	"medequip-backend/internal/repository"

	"github.com/lib/pq"
)

// WithinTx runs fn under a serializable transaction against repositories
// bound to that transaction. Serialization conflicts and lock timeouts are
// retried up to the configured attempt budget; past that the caller gets
// domain.ErrBusy and may resubmit the whole operation.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, r repository.Repositories) error) error {
	var lastErr error
	for attempt := 1; attempt <= s.txCfg.MaxAttempts; attempt++ {
		err := s.runInTx(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return classify(err)
		}
		lastErr = err
		logger.Warn("Transaction conflict, retrying", "attempt", attempt, "error", err)
		select {
		case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", domain.ErrBusy, ctx.Err())
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrBusy, lastErr)
}

func (s *Store) runInTx(ctx context.Context, fn func(ctx context.Context, r repository.Repositories) error) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txCfg.AcquireTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}

	repos := repository.Repositories{
		Equipment: NewEquipmentRepository(tx),
		Loans:     NewLoanRepository(tx),
		Returns:   NewReturnHistoryRepository(tx),
	}

	if err := fn(txCtx, repos); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Postgres error classes worth retrying: serialization_failure,
// deadlock_detected, lock_not_available.
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

func classify(err error) error {
	if domain.IsDomainError(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrBusy, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
}
