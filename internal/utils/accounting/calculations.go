package accounting

import (
	"fmt"

	"github.com/fincontrol/fincontrol_backend/internal/apperrors"
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeStats recomputes the dashboard aggregates with a full pass over the
// ledger. The fold is intentionally not incremental: recomputing from scratch
// keeps the figures trivially consistent with the transaction collection.
func ComputeStats(transactions []domain.Transaction) domain.DashboardStats {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Income:
			totalIncome = totalIncome.Add(txn.Amount)
		case domain.Expense:
			totalExpense = totalExpense.Add(txn.Amount)
		}
	}

	return domain.DashboardStats{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		TransactionCount: len(transactions),
	}
}

// ValidateAmount checks that a transaction amount is a non-negative magnitude.
// Income and expense both store positive values; the sign lives in the type.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative, got %s", apperrors.ErrValidation, amount.String())
	}
	return nil
}
