package repositories

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves a snapshot of the full ledger in stored
	// order, which is newest-first by construction.
	FindTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction at the head of the ledger:
	// new records must appear before all existing ones.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces an existing transaction in place, keeping
	// its position in the ledger.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
