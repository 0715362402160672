package repositories

import (
	"context"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
)

// LogReader defines read operations for the audit trail
type LogReader interface {
	// FindLogs retrieves all log entries, oldest-first. Consumers wanting
	// newest-first reverse at read time; storage order is the contract.
	FindLogs(ctx context.Context) ([]domain.Log, error)
}

// LogWriter defines write operations for the audit trail
type LogWriter interface {
	// SaveLog appends one entry. The trail is append-only: there is no
	// update or delete.
	SaveLog(ctx context.Context, entry domain.Log) error
}

// LogRepositoryFacade combines the audit trail repository interfaces
type LogRepositoryFacade interface {
	LogReader
	LogWriter
}
