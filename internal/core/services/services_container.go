package services

import (
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/platform/config"
)

// NewServiceContainer wires the service layer from repositories and config.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileMover portsrepo.FileMover) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, cfg.DocNumberMaxAttempts)
	container.Onboarding = NewOnboardingService(repos.UserRepo, repos.RoleRepo, repos.EmployeeRepo, fileMover, cfg.StrictDefaultRole)

	return container
}
