package services

import (
	portsrepo "github.com/fincontrol/fincontrol_backend/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. One container per running instance, alive for the
// process lifetime.
func NewServiceContainer(repos portsrepo.RepositoryProvider, verifier portssvc.CredentialVerifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Session and audit first; the other services depend on them.
	container.Session = NewSessionService()
	container.Audit = NewAuditService(repos.LogRepo)

	container.Auth = NewAuthService(repos.UserRepo, container.Session, container.Audit, verifier)
	container.Ledger = NewLedgerService(repos.TransactionRepo, container.Audit)
	container.User = NewUserService(repos.UserRepo, container.Audit)

	return container
}
