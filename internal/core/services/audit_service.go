package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol_backend/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_backend/internal/middleware"
	"github.com/google/uuid"
)

// AuditService appends to and reads the activity trail.
type AuditService struct {
	logRepo portsrepo.LogRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(logRepo portsrepo.LogRepositoryFacade) *AuditService {
	return &AuditService{logRepo: logRepo}
}

var _ portssvc.AuditSvcFacade = (*AuditService)(nil)

// Record appends one entry attributed to the actor. Mutating services call
// this before reporting success, so the trail grows by exactly one entry per
// successful operation.
func (s *AuditService) Record(ctx context.Context, action domain.LogAction, details string, actor domain.User) error {
	entry := domain.Log{
		LogID:     uuid.NewString(),
		Action:    action,
		Details:   details,
		UserID:    actor.UserID,
		Username:  actor.Username,
		Timestamp: time.Now(),
	}

	if err := s.logRepo.SaveLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append audit log entry",
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to record audit log entry: %w", err)
	}
	return nil
}

// ListLogs returns the trail in storage (oldest-first) order.
func (s *AuditService) ListLogs(ctx context.Context) ([]domain.Log, error) {
	logs, err := s.logRepo.FindLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	if logs == nil {
		return []domain.Log{}, nil
	}
	return logs, nil
}
