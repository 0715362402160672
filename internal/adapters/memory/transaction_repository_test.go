package memory_test

import (
	"context"
	"testing"

	"github.com/fincontrol/fincontrol_backend/internal/adapters/memory"
	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxn(name string, txnType domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          name,
		Amount:        decimal.NewFromInt(amount),
		Type:          txnType,
	}
}

func TestTransactionRepository_SavePrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	first := newTxn("first", domain.Income, 100)
	second := newTxn("second", domain.Expense, 200)
	third := newTxn("third", domain.Income, 300)

	require.NoError(t, repo.SaveTransaction(ctx, first))
	require.NoError(t, repo.SaveTransaction(ctx, second))
	require.NoError(t, repo.SaveTransaction(ctx, third))

	txns, err := repo.FindTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "third", txns[0].Name)
	assert.Equal(t, "second", txns[1].Name)
	assert.Equal(t, "first", txns[2].Name)
}

func TestTransactionRepository_UpdateKeepsLedgerPosition(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	first := newTxn("first", domain.Income, 100)
	second := newTxn("second", domain.Expense, 200)
	require.NoError(t, repo.SaveTransaction(ctx, first))
	require.NoError(t, repo.SaveTransaction(ctx, second))

	// Edit the older record; it must stay at the tail, not move to the head.
	updated := first
	updated.Name = "first edited"
	updated.Amount = decimal.NewFromInt(999)
	require.NoError(t, repo.UpdateTransaction(ctx, updated))

	txns, err := repo.FindTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "second", txns[0].Name)
	assert.Equal(t, "first edited", txns[1].Name)
	assert.True(t, txns[1].Amount.Equal(decimal.NewFromInt(999)))
}

func TestTransactionRepository_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	err := repo.UpdateTransaction(ctx, newTxn("ghost", domain.Income, 1))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	txn := newTxn("victim", domain.Expense, 500)
	require.NoError(t, repo.SaveTransaction(ctx, txn))
	require.NoError(t, repo.DeleteTransaction(ctx, txn.TransactionID))

	_, err := repo.FindTransactionByID(ctx, txn.TransactionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.DeleteTransaction(ctx, txn.TransactionID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionRepository_FindReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	txn := newTxn("stable", domain.Income, 100)
	require.NoError(t, repo.SaveTransaction(ctx, txn))

	found, err := repo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	found.Name = "mutated"

	again, err := repo.FindTransactionByID(ctx, txn.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, "stable", again.Name)
}
