package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db, TxConfig{AcquireTimeout: time.Second, MaxAttempts: 3}), mock
}

func TestWithinTx_Commit(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM return_history").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM loans").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := store.WithinTx(context.Background(), func(ctx context.Context, r repository.Repositories) error {
		if err := r.Returns.DeleteAll(ctx); err != nil {
			return err
		}
		return r.Loans.DeleteAll(ctx)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_DomainErrorRollsBackUnchanged(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := &domain.ExceedsRemainingError{Remaining: 5}
	err := store.WithinTx(context.Background(), func(ctx context.Context, r repository.Repositories) error {
		return sentinel
	})

	var exceeds *domain.ExceedsRemainingError
	assert.ErrorAs(t, err, &exceeds)
	assert.Equal(t, int32(5), exceeds.Remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RetriesSerializationFailure(t *testing.T) {
	store, mock := newTestStore(t)

	// First attempt hits a serialization conflict; second succeeds.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM loans").WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM loans").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := store.WithinTx(context.Background(), func(ctx context.Context, r repository.Repositories) error {
		calls++
		return r.Loans.DeleteAll(ctx)
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_ExhaustedRetriesReturnBusy(t *testing.T) {
	store, mock := newTestStore(t)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM loans").WillReturnError(&pq.Error{Code: "40001"})
		mock.ExpectRollback()
	}

	err := store.WithinTx(context.Background(), func(ctx context.Context, r repository.Repositories) error {
		return r.Loans.DeleteAll(ctx)
	})
	assert.ErrorIs(t, err, domain.ErrBusy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_UnexpectedErrorWrappedAsStoreFailure(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := store.WithinTx(context.Background(), func(ctx context.Context, r repository.Repositories) error {
		return errors.New("connection reset by peer")
	})
	assert.ErrorIs(t, err, domain.ErrStoreFailure)
	assert.NotErrorIs(t, err, domain.ErrBusy)
	assert.NoError(t, mock.ExpectationsWereMet())
}
