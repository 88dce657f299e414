package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents an employee record. Every employee is owned by exactly
// one user account (the employee row holds the foreign key) and is created
// together with that user and an initial history snapshot in one atomic
// operation; an employee never exists without either.
type Employee struct {
	EmployeeID string     `json:"employeeID"` // Primary Key (UUID)
	UserID     string     `json:"userID"`     // FK -> User.userID (Not Null, unique)
	Name       string     `json:"name"`
	AvatarPath *string    `json:"avatarPath,omitempty"` // Relative path in durable storage
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	JoinDate   time.Time  `json:"joinDate"`
	AuditFields
}

// EmployeeHistory is an append-only snapshot of an employee's assignment and
// compensation. Changes insert a new row; the superseded row's LastUpdatedAt
// is touched to mark it as no longer current.
type EmployeeHistory struct {
	HistoryID  string          `json:"historyID"`  // Primary Key (UUID)
	EmployeeID string          `json:"employeeID"` // FK -> Employee.employeeID (Not Null)
	JobTitle   string          `json:"jobTitle"`
	Company    string          `json:"company"`
	Branch     string          `json:"branch"`
	Division   string          `json:"division"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	Allowance  decimal.Decimal `json:"allowance"`
	AuditFields
}
