package postgres

import (
	"context"
	"database/sql"
	"time"

	"medequip-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so every repository can
// run standalone or inside a coordinated transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxConfig bounds transaction acquisition and contention retries.
type TxConfig struct {
	AcquireTimeout time.Duration
	MaxAttempts    int
}

func DefaultTxConfig() TxConfig {
	return TxConfig{
		AcquireTimeout: 5 * time.Second,
		MaxAttempts:    3,
	}
}

type Store struct {
	db    *sql.DB
	txCfg TxConfig
	repository.EquipmentRepository
	repository.LoanRepository
	repository.ReturnHistoryRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB, txCfg TxConfig) *Store {
	if txCfg.AcquireTimeout <= 0 {
		txCfg.AcquireTimeout = DefaultTxConfig().AcquireTimeout
	}
	if txCfg.MaxAttempts <= 0 {
		txCfg.MaxAttempts = DefaultTxConfig().MaxAttempts
	}
	return &Store{
		db:                      db,
		txCfg:                   txCfg,
		EquipmentRepository:     NewEquipmentRepository(db),
		LoanRepository:          NewLoanRepository(db),
		ReturnHistoryRepository: NewReturnHistoryRepository(db),
		ReportRepository:        NewReportRepository(db),
	}
}
