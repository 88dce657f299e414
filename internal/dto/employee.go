package dto

import (
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeePayload carries the employee fields of an onboarding request.
// Dates arrive as raw "2006-01-02" strings and are parsed by the service.
type EmployeePayload struct {
	Name      string  `json:"name" form:"name" binding:"required"`
	BirthDate *string `json:"birthDate,omitempty" form:"birthDate"`
	JoinDate  string  `json:"joinDate" form:"joinDate" binding:"required"`
}

// HistoryPayload carries the initial assignment/compensation snapshot.
type HistoryPayload struct {
	JobTitle   string          `json:"jobTitle" form:"jobTitle" binding:"required"`
	Company    string          `json:"company" form:"company" binding:"required"`
	Branch     string          `json:"branch" form:"branch"`
	Division   string          `json:"division" form:"division"`
	Department string          `json:"department" form:"department"`
	Salary     decimal.Decimal `json:"salary" form:"salary"`
	Allowance  decimal.Decimal `json:"allowance" form:"allowance"`
}

// OnboardEmployeeRequest is the payload for the onboarding workflow.
type OnboardEmployeeRequest struct {
	Email    string          `json:"email" form:"email" binding:"required,email"`
	Employee EmployeePayload `json:"employee" form:"employee" binding:"required"`
	History  HistoryPayload  `json:"history" form:"history" binding:"required"`
}

// AssignmentChangeRequest records a new assignment snapshot for an employee.
type AssignmentChangeRequest struct {
	JobTitle   string          `json:"jobTitle" binding:"required"`
	Company    string          `json:"company" binding:"required"`
	Branch     string          `json:"branch"`
	Division   string          `json:"division"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	Allowance  decimal.Decimal `json:"allowance"`
}

// EmployeeResponse is the API representation of an employee.
type EmployeeResponse struct {
	EmployeeID string     `json:"employeeID"`
	UserID     string     `json:"userID"`
	Name       string     `json:"name"`
	AvatarPath *string    `json:"avatarPath,omitempty"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	JoinDate   time.Time  `json:"joinDate"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// EmployeeHistoryResponse is the API representation of a history snapshot.
type EmployeeHistoryResponse struct {
	HistoryID     string          `json:"historyID"`
	EmployeeID    string          `json:"employeeID"`
	JobTitle      string          `json:"jobTitle"`
	Company       string          `json:"company"`
	Branch        string          `json:"branch,omitempty"`
	Division      string          `json:"division,omitempty"`
	Department    string          `json:"department,omitempty"`
	Salary        decimal.Decimal `json:"salary"`
	Allowance     decimal.Decimal `json:"allowance"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToEmployeeHistoryResponse converts a domain history row to its API representation.
func ToEmployeeHistoryResponse(h *domain.EmployeeHistory) EmployeeHistoryResponse {
	return EmployeeHistoryResponse{
		HistoryID:     h.HistoryID,
		EmployeeID:    h.EmployeeID,
		JobTitle:      h.JobTitle,
		Company:       h.Company,
		Branch:        h.Branch,
		Division:      h.Division,
		Department:    h.Department,
		Salary:        h.Salary,
		Allowance:     h.Allowance,
		CreatedAt:     h.CreatedAt,
		LastUpdatedAt: h.LastUpdatedAt,
	}
}

// OnboardEmployeeResponse returns the consistent (user, employee) pair.
type OnboardEmployeeResponse struct {
	User     UserResponse     `json:"user"`
	Employee EmployeeResponse `json:"employee"`
}

// ToEmployeeResponse converts a domain employee to its API representation.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID: e.EmployeeID,
		UserID:     e.UserID,
		Name:       e.Name,
		AvatarPath: e.AvatarPath,
		BirthDate:  e.BirthDate,
		JoinDate:   e.JoinDate,
		CreatedAt:  e.CreatedAt,
	}
}
