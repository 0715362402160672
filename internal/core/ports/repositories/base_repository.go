package repositories

// RepositoryProvider bundles the repository facades the service layer needs.
// Handlers and services never see a concrete adapter, only these interfaces.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	LogRepo         LogRepositoryFacade
}
