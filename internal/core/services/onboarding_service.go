package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/dto"
	"github.com/gunarwibowo/erp_backoffice_app/internal/middleware"
)

// onboardingDateLayout is the wire format for birth and join dates.
const onboardingDateLayout = "2006-01-02"

// defaultOnboardPassword seeds new accounts; users are expected to change it
// through the normal password flow. It is hashed before it reaches storage.
const defaultOnboardPassword = "password"

var ErrJoinDateMissing = errors.New("employee join date is required")

// onboardingService runs the employee onboarding workflow: user, default
// role, employee row and initial history snapshot in one transaction.
type onboardingService struct {
	userRepo          portsrepo.UserRepositoryFacade
	roleRepo          portsrepo.RoleRepositoryFacade
	employeeRepo      portsrepo.EmployeeRepositoryWithTx
	fileMover         portsrepo.FileMover
	strictDefaultRole bool
}

// NewOnboardingService creates a new OnboardingService. With
// strictDefaultRole set, a missing default role aborts onboarding; otherwise
// the user is created without one and the gap is logged.
func NewOnboardingService(userRepo portsrepo.UserRepositoryFacade, roleRepo portsrepo.RoleRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryWithTx, fileMover portsrepo.FileMover, strictDefaultRole bool) portssvc.OnboardingSvcFacade {
	return &onboardingService{
		userRepo:          userRepo,
		roleRepo:          roleRepo,
		employeeRepo:      employeeRepo,
		fileMover:         fileMover,
		strictDefaultRole: strictDefaultRole,
	}
}

var _ portssvc.OnboardingSvcFacade = (*onboardingService)(nil)

func parseOnboardingDate(raw string, field string) (time.Time, error) {
	t, err := time.Parse(onboardingDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted as %s", apperrors.ErrValidation, field, onboardingDateLayout)
	}
	return t, nil
}

// OnboardEmployee creates the user, default role link, employee row and
// initial history snapshot atomically. The avatar, when present, is moved to
// durable storage before the transaction opens; a failed move aborts before
// any row is written.
func (s *onboardingService) OnboardEmployee(ctx context.Context, req dto.OnboardEmployeeRequest, avatar *dto.UploadFile, creatorUserID string) (*domain.User, *domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Employee.JoinDate == "" {
		return nil, nil, ErrJoinDateMissing
	}
	joinDate, err := parseOnboardingDate(req.Employee.JoinDate, "joinDate")
	if err != nil {
		return nil, nil, err
	}
	var birthDate *time.Time
	if req.Employee.BirthDate != nil && *req.Employee.BirthDate != "" {
		parsed, err := parseOnboardingDate(*req.Employee.BirthDate, "birthDate")
		if err != nil {
			return nil, nil, err
		}
		birthDate = &parsed
	}

	var avatarPath *string
	if avatar != nil {
		stored, err := s.fileMover.Save(ctx, avatar.Content, avatar.Name)
		if err != nil {
			logger.Error("Failed to store avatar", slog.String("error", err.Error()), slog.String("file", avatar.Name))
			return nil, nil, fmt.Errorf("failed to store avatar: %w", err)
		}
		avatarPath = &stored
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	user := domain.User{
		UserID:      uuid.NewString(),
		Name:        req.Employee.Name,
		Email:       req.Email,
		IsActive:    true,
		AuditFields: audit,
	}
	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		UserID:      user.UserID,
		Name:        req.Employee.Name,
		AvatarPath:  avatarPath,
		BirthDate:   birthDate,
		JoinDate:    joinDate,
		AuditFields: audit,
	}
	history := domain.EmployeeHistory{
		HistoryID:   uuid.NewString(),
		EmployeeID:  employee.EmployeeID,
		JobTitle:    req.History.JobTitle,
		Company:     req.History.Company,
		Branch:      req.History.Branch,
		Division:    req.History.Division,
		Department:  req.History.Department,
		Salary:      req.History.Salary,
		Allowance:   req.History.Allowance,
		AuditFields: audit,
	}

	err = s.employeeRepo.RunInTxWithHandler(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.SaveUserTx(ctx, tx, user, defaultOnboardPassword); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}

		role, err := s.roleRepo.FindRoleByName(ctx, domain.DefaultRoleName)
		switch {
		case err == nil:
			if err := s.roleRepo.AttachRoleToUserTx(ctx, tx, role.RoleID, user.UserID); err != nil {
				return fmt.Errorf("failed to attach default role: %w", err)
			}
		case errors.Is(err, apperrors.ErrNotFound):
			if s.strictDefaultRole {
				return fmt.Errorf("%w: default role %q is missing", apperrors.ErrNotFound, domain.DefaultRoleName)
			}
			logger.Warn("Default role missing, onboarding without one",
				slog.String("role", domain.DefaultRoleName), slog.String("user_id", user.UserID))
		default:
			return fmt.Errorf("failed to look up default role: %w", err)
		}

		if err := s.employeeRepo.SaveEmployeeTx(ctx, tx, employee); err != nil {
			return fmt.Errorf("failed to save employee: %w", err)
		}
		if err := s.employeeRepo.SaveHistoryTx(ctx, tx, history); err != nil {
			return fmt.Errorf("failed to save employee history: %w", err)
		}
		return nil
	}, func(ctx context.Context, err error, tx pgx.Tx) {
		// The avatar was written before the transaction; after rollback it is
		// an orphan on disk. Flag it for the cleanup sweep.
		if avatarPath != nil {
			logger.Warn("Onboarding rolled back, avatar file orphaned",
				slog.String("avatar_path", *avatarPath), slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Employee onboarded",
		slog.String("user_id", user.UserID),
		slog.String("employee_id", employee.EmployeeID),
		slog.String("email", user.Email))
	return &user, &employee, nil
}

// RecordAssignmentChange appends a new history snapshot for an employee and
// touches the superseded row, both in one transaction.
func (s *onboardingService) RecordAssignmentChange(ctx context.Context, employeeID string, req dto.AssignmentChangeRequest, actorUserID string) (*domain.EmployeeHistory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	now := time.Now().UTC()
	history := domain.EmployeeHistory{
		HistoryID:  uuid.NewString(),
		EmployeeID: employeeID,
		JobTitle:   req.JobTitle,
		Company:    req.Company,
		Branch:     req.Branch,
		Division:   req.Division,
		Department: req.Department,
		Salary:     req.Salary,
		Allowance:  req.Allowance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	err := s.employeeRepo.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.employeeRepo.TouchLatestHistoryTx(ctx, tx, employeeID, actorUserID, now); err != nil {
			return fmt.Errorf("failed to touch previous history: %w", err)
		}
		if err := s.employeeRepo.SaveHistoryTx(ctx, tx, history); err != nil {
			return fmt.Errorf("failed to save employee history: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to record assignment change", slog.String("error", err.Error()),
			slog.String("employee_id", employeeID))
		return nil, err
	}

	logger.Info("Assignment change recorded", slog.String("employee_id", employeeID),
		slog.String("history_id", history.HistoryID))
	return &history, nil
}

// GetEmployeeByID retrieves an employee by identifier.
func (s *onboardingService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return employee, nil
}

// GetEmployeeHistories retrieves an employee's history rows, newest first.
func (s *onboardingService) GetEmployeeHistories(ctx context.Context, employeeID string) ([]domain.EmployeeHistory, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	histories, err := s.employeeRepo.FindHistoriesByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch histories for employee %s: %w", employeeID, err)
	}
	return histories, nil
}
