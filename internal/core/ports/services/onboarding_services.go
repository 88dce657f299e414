package services

import (
	"context"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/gunarwibowo/erp_backoffice_app/internal/dto"
)

// OnboardingSvcFacade defines the employee onboarding workflow.
type OnboardingSvcFacade interface {
	// OnboardEmployee creates the user, default role link, employee row and
	// initial history snapshot in one transaction, optionally storing an
	// avatar first. It returns the consistent (user, employee) pair or, on
	// any failure, no side effects at all.
	OnboardEmployee(ctx context.Context, req dto.OnboardEmployeeRequest, avatar *dto.UploadFile, creatorUserID string) (*domain.User, *domain.Employee, error)

	// RecordAssignmentChange appends a new history snapshot for an employee,
	// touching the superseded row.
	RecordAssignmentChange(ctx context.Context, employeeID string, req dto.AssignmentChangeRequest, actorUserID string) (*domain.EmployeeHistory, error)

	// GetEmployeeByID retrieves an employee by identifier.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// GetEmployeeHistories retrieves an employee's history rows, newest first.
	GetEmployeeHistories(ctx context.Context, employeeID string) ([]domain.EmployeeHistory, error)
}
