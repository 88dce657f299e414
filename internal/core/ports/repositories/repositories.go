package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It is constructed once at startup and injected into the service container.
type RepositoryProvider struct {
	JournalRepo  JournalRepositoryWithTx
	AccountRepo  AccountRepositoryFacade
	UserRepo     UserRepositoryFacade
	RoleRepo     RoleRepositoryFacade
	EmployeeRepo EmployeeRepositoryWithTx
}
