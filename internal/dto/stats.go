package dto

import (
	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsResponse carries the dashboard aggregates.
type StatsResponse struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// ToStatsResponse converts domain.DashboardStats to its response DTO.
func ToStatsResponse(stats domain.DashboardStats) StatsResponse {
	return StatsResponse{
		TotalIncome:      stats.TotalIncome,
		TotalExpense:     stats.TotalExpense,
		Balance:          stats.Balance,
		TransactionCount: stats.TransactionCount,
	}
}
