package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or an expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single income or expense record in the ledger.
// Both types store positive magnitudes; the sign is implied by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Name          string          `json:"name"`          // Counterparty or short title
	Content       string          `json:"content"`       // What the money was for
	Amount        decimal.Decimal `json:"amount"`        // Non-negative magnitude
	Note          string          `json:"note"`
	Date          time.Time       `json:"date"` // Creation timestamp, immutable across edits
	Type          TransactionType `json:"type"`
	// CreatedBy / CreatedByID are a point-in-time snapshot of the acting
	// user. They are never re-stamped, not even on edit.
	CreatedBy   string `json:"createdBy"`
	CreatedByID string `json:"createdById"`
}
