package dto

import (
	"time"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
)

// LogResponse is the external representation of an audit log entry.
type LogResponse struct {
	LogID     string           `json:"logID"`
	Action    domain.LogAction `json:"action"`
	Details   string           `json:"details"`
	UserID    string           `json:"userId"`
	Username  string           `json:"username"`
	Timestamp time.Time        `json:"timestamp"`
}

// ToLogResponse converts a domain.Log to its response DTO.
func ToLogResponse(entry *domain.Log) LogResponse {
	return LogResponse{
		LogID:     entry.LogID,
		Action:    entry.Action,
		Details:   entry.Details,
		UserID:    entry.UserID,
		Username:  entry.Username,
		Timestamp: entry.Timestamp,
	}
}

// ListLogsResponse wraps the audit trail in storage (oldest-first) order.
type ListLogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

// ToListLogsResponse converts a slice of domain.Log, keeping storage order.
func ToListLogsResponse(entries []domain.Log) ListLogsResponse {
	responses := make([]LogResponse, len(entries))
	for i := range entries {
		responses[i] = ToLogResponse(&entries[i])
	}
	return ListLogsResponse{Logs: responses}
}
