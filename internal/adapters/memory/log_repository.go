package memory

import (
	"context"
	"sync"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
)

// LogRepository stores the audit trail oldest-first. Append-only: no update
// or delete exists on this type.
type LogRepository struct {
	mu   sync.RWMutex
	logs []domain.Log
}

func NewLogRepository() *LogRepository {
	return &LogRepository{}
}

// Ensure LogRepository implements the repository facade
var _ portsrepo.LogRepositoryFacade = (*LogRepository)(nil)

func (r *LogRepository) SaveLog(_ context.Context, entry domain.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs = append(r.logs, entry)
	return nil
}

func (r *LogRepository) FindLogs(_ context.Context) ([]domain.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]domain.Log, len(r.logs))
	copy(logs, r.logs)
	return logs, nil
}
