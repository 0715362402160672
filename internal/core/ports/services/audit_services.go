package services

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
)

// AuditSvcFacade records and reads the append-only activity trail.
type AuditSvcFacade interface {
	// Record appends one entry attributed to the actor. Mutating operations
	// call this synchronously before they are considered complete.
	Record(ctx context.Context, action domain.LogAction, details string, actor domain.User) error

	// ListLogs returns the trail in storage (oldest-first) order.
	ListLogs(ctx context.Context) ([]domain.Log, error)
}
