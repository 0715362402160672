package domain

import "github.com/shopspring/decimal"

// DashboardStats holds the aggregate figures shown on the dashboard.
// It is derived, never stored: always recomputed from the full transaction
// collection.
type DashboardStats struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"` // TotalIncome - TotalExpense
	TransactionCount int             `json:"transactionCount"`
}
