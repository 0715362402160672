package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
)

// TransactionRepository stores the ledger newest-first: new transactions are
// prepended, so stored order is the listing order and no re-sort ever
// happens. This also settles same-timestamp ties by insertion order.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Ensure TransactionRepository implements the repository facade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append([]domain.Transaction{txn}, r.transactions...)
	return nil
}

func (r *TransactionRepository) UpdateTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.transactions {
		if r.transactions[i].TransactionID == txn.TransactionID {
			// Replaced in place: an edit keeps the ledger position.
			r.transactions[i] = txn
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
}

func (r *TransactionRepository) DeleteTransaction(_ context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.transactions {
		if r.transactions[i].TransactionID == transactionID {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

func (r *TransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.transactions {
		if r.transactions[i].TransactionID == transactionID {
			txn := r.transactions[i]
			return &txn, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

func (r *TransactionRepository) FindTransactions(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txns := make([]domain.Transaction, len(r.transactions))
	copy(txns, r.transactions)
	return txns, nil
}
