package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/dto"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/fincontrol/fincontrol_backend/internal/utils/accounting"
	"github.com/google/uuid"
)

// LedgerService handles business logic for the transaction ledger.
type LedgerService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	audit   portssvc.AuditSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, audit portssvc.AuditSvcFacade) *LedgerService {
	return &LedgerService{txnRepo: txnRepo, audit: audit}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// AddTransaction creates a new transaction at the head of the ledger.
func (s *LedgerService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor *domain.User) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          req.Name,
		Content:       req.Content,
		Amount:        req.Amount,
		Note:          req.Note,
		Date:          time.Now(),
		Type:          req.Type,
		CreatedBy:     actor.Username,
		CreatedByID:   actor.UserID,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}

	details := fmt.Sprintf("Added %s %q for %s", txn.Type, txn.Name, txn.Amount.String())
	if err := s.audit.Record(ctx, domain.ActionAddTransaction, details, *actor); err != nil {
		return nil, err
	}

	logger.Info("Transaction added",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// UpdateTransaction replaces all mutable fields of an existing transaction.
// The id, creation date and creator snapshot survive the edit; the editor is
// not recorded as a separate "last modified by".
func (s *LedgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor *domain.User) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	updated := *existing
	updated.Name = req.Name
	updated.Content = req.Content
	updated.Amount = req.Amount
	updated.Note = req.Note
	updated.Type = req.Type

	if err := s.txnRepo.UpdateTransaction(ctx, updated); err != nil {
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	details := fmt.Sprintf("Updated %s %q to %s", updated.Type, updated.Name, updated.Amount.String())
	if err := s.audit.Record(ctx, domain.ActionUpdateTransaction, details, *actor); err != nil {
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction removes a transaction. The log entry captures its name
// and amount at deletion time and is attributed to the deleting user, not the
// original creator.
func (s *LedgerService) DeleteTransaction(ctx context.Context, transactionID string, actor *domain.User) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actor == nil {
		return apperrors.ErrUnauthorized
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	details := fmt.Sprintf("Deleted %s %q for %s", existing.Type, existing.Name, existing.Amount.String())
	if err := s.audit.Record(ctx, domain.ActionDeleteTransaction, details, *actor); err != nil {
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ListTransactions returns the ledger in stored (newest-first) order,
// narrowed by the optional type and search filters.
func (s *LedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	search := strings.ToLower(params.Search)
	for _, txn := range txns {
		if params.Type != "" && string(txn.Type) != params.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(txn.Name), search) &&
			!strings.Contains(strings.ToLower(txn.Content), search) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *LedgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// GetStats recomputes the dashboard aggregates from the full ledger.
func (s *LedgerService) GetStats(ctx context.Context) (domain.DashboardStats, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to compute stats: %w", err)
	}
	return accounting.ComputeStats(txns), nil
}
