package pgsql

import (
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	roleRepo := newPgxRoleRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalRepo:  journalRepo,
		AccountRepo:  accountRepo,
		UserRepo:     userRepo,
		RoleRepo:     roleRepo,
		EmployeeRepo: employeeRepo,
	}
}
