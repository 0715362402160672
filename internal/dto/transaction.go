package dto

import (
	"time"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest carries the caller-supplied fields of a new
// transaction. ID, date and the creator snapshot are assigned by the service.
type CreateTransactionRequest struct {
	Name    string                 `json:"name" binding:"required"`
	Content string                 `json:"content"`
	Amount  decimal.Decimal        `json:"amount"`
	Note    string                 `json:"note"`
	Type    domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
}

// UpdateTransactionRequest replaces all mutable fields of a transaction.
// Edits are full-field replacement: id and date are preserved, and the
// creator snapshot is never re-stamped.
type UpdateTransactionRequest struct {
	Name    string                 `json:"name" binding:"required"`
	Content string                 `json:"content"`
	Amount  decimal.Decimal        `json:"amount"`
	Note    string                 `json:"note"`
	Type    domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
}

// ListTransactionsParams defines the read-only filter over the ledger.
type ListTransactionsParams struct {
	// Type restricts to income or expense when set.
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
	// Search matches name or content, case-insensitive substring.
	Search string `form:"search"`
}

// TransactionResponse is the external representation of a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Name          string                 `json:"name"`
	Content       string                 `json:"content"`
	Amount        decimal.Decimal        `json:"amount"`
	Note          string                 `json:"note"`
	Date          time.Time              `json:"date"`
	Type          domain.TransactionType `json:"type"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedByID   string                 `json:"createdById"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Name:          txn.Name,
		Content:       txn.Content,
		Amount:        txn.Amount,
		Note:          txn.Note,
		Date:          txn.Date,
		Type:          txn.Type,
		CreatedBy:     txn.CreatedBy,
		CreatedByID:   txn.CreatedByID,
	}
}

// ListTransactionsResponse wraps the filtered ledger view.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of transactions, keeping order.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}
