package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the database representation of an employee row.
type Employee struct {
	EmployeeID string     `db:"employee_id"`
	UserID     string     `db:"user_id"` // Unique FK -> users
	Name       string     `db:"name"`
	AvatarPath *string    `db:"avatar_path"` // Nullable
	BirthDate  *time.Time `db:"birth_date"`  // Nullable
	JoinDate   time.Time  `db:"join_date"`
	AuditFields
}

// EmployeeHistory is the database representation of an assignment snapshot.
type EmployeeHistory struct {
	HistoryID  string          `db:"history_id"`
	EmployeeID string          `db:"employee_id"`
	JobTitle   string          `db:"job_title"`
	Company    string          `db:"company"`
	Branch     string          `db:"branch"`
	Division   string          `db:"division"`
	Department string          `db:"department"`
	Salary     decimal.Decimal `db:"salary"`
	Allowance  decimal.Decimal `db:"allowance"`
	AuditFields
}
