package services_test

import (
	"context"
	"testing"

	"github.com/fincontrol/fincontrol_backend/internal/adapters/memory"
	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/core/services"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerServiceTestSuite runs against the real in-memory adapters so ledger
// ordering and audit side effects are observable end to end.
type LedgerServiceTestSuite struct {
	suite.Suite
	txnRepo *memory.TransactionRepository
	logRepo *memory.LogRepository
	service portssvc.LedgerSvcFacade
	actor   domain.User
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.txnRepo = memory.NewTransactionRepository()
	suite.logRepo = memory.NewLogRepository()
	audit := services.NewAuditService(suite.logRepo)
	suite.service = services.NewLedgerService(suite.txnRepo, audit)
	suite.actor = domain.User{
		UserID:   uuid.NewString(),
		Username: "staff",
		FullName: "Nhân viên",
		Role:     domain.RoleStaff,
	}
}

func (suite *LedgerServiceTestSuite) addTxn(name string, txnType domain.TransactionType, amount int64) *domain.Transaction {
	txn, err := suite.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:   name,
		Amount: decimal.NewFromInt(amount),
		Type:   txnType,
	}, &suite.actor)
	suite.Require().NoError(err)
	return txn
}

// --- AddTransaction Tests ---

func (suite *LedgerServiceTestSuite) TestAddTransaction_Success() {
	txn := suite.addTxn("Công ty ABC", domain.Income, 15000000)

	suite.NotEmpty(txn.TransactionID)
	suite.False(txn.Date.IsZero())
	suite.Equal(suite.actor.Username, txn.CreatedBy)
	suite.Equal(suite.actor.UserID, txn.CreatedByID)

	logs, err := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal(domain.ActionAddTransaction, logs[0].Action)
	suite.Equal(suite.actor.UserID, logs[0].UserID)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_NewestFirst() {
	suite.addTxn("first", domain.Income, 100)
	suite.addTxn("second", domain.Expense, 200)

	txns, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{})
	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("second", txns[0].Name)
	suite.Equal("first", txns[1].Name)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_NilActor() {
	_, err := suite.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:   "orphan",
		Amount: decimal.NewFromInt(1),
		Type:   domain.Income,
	}, nil)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.assertNoSideEffects()
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_NegativeAmount() {
	_, err := suite.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:   "bad",
		Amount: decimal.NewFromInt(-500),
		Type:   domain.Expense,
	}, &suite.actor)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertNoSideEffects()
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_ZeroAmountAllowed() {
	txn := suite.addTxn("free", domain.Income, 0)
	suite.True(txn.Amount.IsZero())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_UnknownType() {
	_, err := suite.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:   "bad type",
		Amount: decimal.NewFromInt(1),
		Type:   domain.TransactionType("transfer"),
	}, &suite.actor)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertNoSideEffects()
}

func (suite *LedgerServiceTestSuite) assertNoSideEffects() {
	txns, err := suite.txnRepo.FindTransactions(context.Background())
	suite.Require().NoError(err)
	suite.Empty(txns)

	logs, err := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(err)
	suite.Empty(logs)
}

// --- UpdateTransaction Tests ---

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_PreservesIdentityFields() {
	created := suite.addTxn("original", domain.Income, 1000)

	editor := domain.User{UserID: uuid.NewString(), Username: "admin", Role: domain.RoleAdmin}
	updated, err := suite.service.UpdateTransaction(context.Background(), created.TransactionID, dto.UpdateTransactionRequest{
		Name:    "edited",
		Content: "new content",
		Amount:  decimal.NewFromInt(2000),
		Type:    domain.Expense,
	}, &editor)

	suite.Require().NoError(err)
	suite.Equal("edited", updated.Name)
	suite.Equal(domain.Expense, updated.Type)

	// Identity and provenance survive the edit untouched.
	suite.Equal(created.TransactionID, updated.TransactionID)
	suite.Equal(created.Date, updated.Date)
	suite.Equal(suite.actor.Username, updated.CreatedBy)
	suite.Equal(suite.actor.UserID, updated.CreatedByID)

	// The audit entry is attributed to the editor, not the creator.
	logs, err := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)
	suite.Equal(domain.ActionUpdateTransaction, logs[1].Action)
	suite.Equal(editor.UserID, logs[1].UserID)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_ClearsOmittedFields() {
	created, err := suite.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:    "with note",
		Content: "content",
		Amount:  decimal.NewFromInt(10),
		Note:    "remember this",
		Type:    domain.Income,
	}, &suite.actor)
	suite.Require().NoError(err)

	// Full replacement: fields absent from the edit are cleared, not kept.
	updated, err := suite.service.UpdateTransaction(context.Background(), created.TransactionID, dto.UpdateTransactionRequest{
		Name:   "with note",
		Amount: decimal.NewFromInt(10),
		Type:   domain.Income,
	}, &suite.actor)

	suite.Require().NoError(err)
	suite.Empty(updated.Content)
	suite.Empty(updated.Note)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NotFound() {
	_, err := suite.service.UpdateTransaction(context.Background(), uuid.NewString(), dto.UpdateTransactionRequest{
		Name:   "ghost",
		Amount: decimal.NewFromInt(1),
		Type:   domain.Income,
	}, &suite.actor)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteTransaction Tests ---

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_Success() {
	created := suite.addTxn("victim", domain.Expense, 2500000)

	err := suite.service.DeleteTransaction(context.Background(), created.TransactionID, &suite.actor)
	suite.Require().NoError(err)

	_, err = suite.service.GetTransactionByID(context.Background(), created.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	logs, err := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)
	suite.Equal(domain.ActionDeleteTransaction, logs[1].Action)
	suite.Contains(logs[1].Details, "victim")
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFound() {
	err := suite.service.DeleteTransaction(context.Background(), uuid.NewString(), &suite.actor)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	// A failed delete must not append to the trail.
	logs, lerr := suite.logRepo.FindLogs(context.Background())
	suite.Require().NoError(lerr)
	suite.Empty(logs)
}

// --- ListTransactions Tests ---

func (suite *LedgerServiceTestSuite) TestListTransactions_TypeFilter() {
	suite.addTxn("salary", domain.Income, 1000)
	suite.addTxn("rent", domain.Expense, 500)
	suite.addTxn("bonus", domain.Income, 200)

	incomes, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Type: "income"})
	suite.Require().NoError(err)
	suite.Require().Len(incomes, 2)
	suite.Equal("bonus", incomes[0].Name)
	suite.Equal("salary", incomes[1].Name)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_SearchIsCaseInsensitive() {
	txn, err := suite.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		Name:    "Công ty ABC",
		Content: "Thu phí dịch vụ",
		Amount:  decimal.NewFromInt(100),
		Type:    domain.Income,
	}, &suite.actor)
	suite.Require().NoError(err)
	suite.addTxn("other", domain.Expense, 50)

	byName, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Search: "abc"})
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal(txn.TransactionID, byName[0].TransactionID)

	byContent, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Search: "dịch vụ"})
	suite.Require().NoError(err)
	suite.Len(byContent, 1)

	none, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{Search: "nothing"})
	suite.Require().NoError(err)
	suite.Empty(none)
}

// --- GetStats Tests ---

func (suite *LedgerServiceTestSuite) TestGetStats() {
	suite.addTxn("salary", domain.Income, 15000000)
	suite.addTxn("supplies", domain.Expense, 2500000)

	stats, err := suite.service.GetStats(context.Background())
	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.Equal(decimal.NewFromInt(15000000)))
	suite.True(stats.TotalExpense.Equal(decimal.NewFromInt(2500000)))
	suite.True(stats.Balance.Equal(decimal.NewFromInt(12500000)))
	suite.Equal(2, stats.TransactionCount)
}

func (suite *LedgerServiceTestSuite) TestGetStats_EmptyLedger() {
	stats, err := suite.service.GetStats(context.Background())
	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.IsZero())
	suite.True(stats.TotalExpense.IsZero())
	suite.True(stats.Balance.IsZero())
	suite.Equal(0, stats.TransactionCount)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
