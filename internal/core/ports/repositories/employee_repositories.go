package repositories

import (
	"context"
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EmployeeRepositoryFacade defines persistence operations for employees and
// their append-only assignment histories.
type EmployeeRepositoryFacade interface {
	// SaveEmployeeTx persists a new employee within tx.
	SaveEmployeeTx(ctx context.Context, tx pgx.Tx, employee domain.Employee) error

	// SaveHistoryTx persists a new history snapshot within tx.
	SaveHistoryTx(ctx context.Context, tx pgx.Tx, history domain.EmployeeHistory) error

	// TouchLatestHistoryTx bumps last_updated_at/by on the employee's most
	// recent history row to mark it as superseded.
	TouchLatestHistoryTx(ctx context.Context, tx pgx.Tx, employeeID string, updatedBy string, updatedAt time.Time) error

	// FindEmployeeByID retrieves an employee by identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindHistoriesByEmployeeID retrieves all history rows, newest first.
	FindHistoriesByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeHistory, error)
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities.
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
