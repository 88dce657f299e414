package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	"github.com/gunarwibowo/erp_backoffice_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

func toDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID: m.EmployeeID,
		UserID:     m.UserID,
		Name:       m.Name,
		AvatarPath: m.AvatarPath,
		BirthDate:  m.BirthDate,
		JoinDate:   m.JoinDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainHistory(m models.EmployeeHistory) domain.EmployeeHistory {
	return domain.EmployeeHistory{
		HistoryID:  m.HistoryID,
		EmployeeID: m.EmployeeID,
		JobTitle:   m.JobTitle,
		Company:    m.Company,
		Branch:     m.Branch,
		Division:   m.Division,
		Department: m.Department,
		Salary:     m.Salary,
		Allowance:  m.Allowance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveEmployeeTx persists a new employee within tx. A duplicate user link
// surfaces as ErrDuplicate (one employee per user).
func (r *PgxEmployeeRepository) SaveEmployeeTx(ctx context.Context, tx pgx.Tx, employee domain.Employee) error {
	query := `
		INSERT INTO employees (employee_id, user_id, name, avatar_path, birth_date, join_date,
		                       created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		employee.EmployeeID,
		employee.UserID,
		employee.Name,
		employee.AvatarPath,
		employee.BirthDate,
		employee.JoinDate,
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert employee "+employee.EmployeeID)
	}
	return nil
}

// SaveHistoryTx persists a new assignment snapshot within tx.
func (r *PgxEmployeeRepository) SaveHistoryTx(ctx context.Context, tx pgx.Tx, history domain.EmployeeHistory) error {
	query := `
		INSERT INTO employee_histories (history_id, employee_id, job_title, company, branch, division, department, salary, allowance,
		                                created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		history.HistoryID,
		history.EmployeeID,
		history.JobTitle,
		history.Company,
		history.Branch,
		history.Division,
		history.Department,
		history.Salary,
		history.Allowance,
		history.CreatedAt,
		history.CreatedBy,
		history.LastUpdatedAt,
		history.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "failed to insert history for employee "+history.EmployeeID)
	}
	return nil
}

// TouchLatestHistoryTx bumps the audit fields on the employee's most recent
// history row, marking it as superseded by a newer snapshot. Touching an
// employee with no history rows is a no-op.
func (r *PgxEmployeeRepository) TouchLatestHistoryTx(ctx context.Context, tx pgx.Tx, employeeID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE employee_histories
		SET last_updated_at = $2,
		    last_updated_by = $3
		WHERE history_id = (
			SELECT history_id
			FROM employee_histories
			WHERE employee_id = $1
			ORDER BY created_at DESC
			LIMIT 1
		);
	`
	_, err := tx.Exec(ctx, query, employeeID, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to touch latest history for employee "+employeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by identifier.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, user_id, name, avatar_path, birth_date, join_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM employees
		WHERE employee_id = $1;
	`
	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.EmployeeID,
		&m.UserID,
		&m.Name,
		&m.AvatarPath,
		&m.BirthDate,
		&m.JoinDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee "+employeeID, err)
	}
	domainEmployee := toDomainEmployee(m)
	return &domainEmployee, nil
}

// FindHistoriesByEmployeeID retrieves all history rows for an employee,
// newest first.
func (r *PgxEmployeeRepository) FindHistoriesByEmployeeID(ctx context.Context, employeeID string) ([]domain.EmployeeHistory, error) {
	query := `
		SELECT history_id, employee_id, job_title, company, branch, division, department, salary, allowance,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM employee_histories
		WHERE employee_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query histories for employee "+employeeID, err)
	}
	defer rows.Close()

	histories := []domain.EmployeeHistory{}
	for rows.Next() {
		var m models.EmployeeHistory
		if err := rows.Scan(
			&m.HistoryID,
			&m.EmployeeID,
			&m.JobTitle,
			&m.Company,
			&m.Branch,
			&m.Division,
			&m.Department,
			&m.Salary,
			&m.Allowance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan history row for employee "+employeeID, err)
		}
		histories = append(histories, toDomainHistory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating history rows for employee "+employeeID, err)
	}
	return histories, nil
}
