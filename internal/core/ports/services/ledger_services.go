package services

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
)

// LedgerReaderSvc defines read operations over the transaction ledger.
type LedgerReaderSvc interface {
	// ListTransactions returns the ledger filtered by type and search term,
	// in stored (newest-first) order. The filter never mutates stored order.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// GetStats recomputes the dashboard aggregates from the full ledger.
	GetStats(ctx context.Context) (domain.DashboardStats, error)
}

// LedgerWriterSvc defines the mutating ledger operations. Every successful
// mutation appends exactly one audit log entry attributed to the actor.
type LedgerWriterSvc interface {
	// AddTransaction creates a transaction stamped with a fresh id, the
	// current time and a snapshot of the actor, and prepends it to the
	// ledger. A nil actor is rejected with apperrors.ErrUnauthorized.
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor *domain.User) (*domain.Transaction, error)

	// UpdateTransaction replaces all mutable fields of an existing
	// transaction, preserving id, date and the creator snapshot.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor *domain.User) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction, logging its name and amount
	// at deletion time under the deleting user.
	DeleteTransaction(ctx context.Context, transactionID string, actor *domain.User) error
}

// LedgerSvcFacade combines the ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
