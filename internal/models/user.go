package models

// User is the database representation of an application user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"` // Unique
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Role is the database representation of a permission role.
type Role struct {
	RoleID string `db:"role_id"`
	Name   string `db:"name"` // Unique
	AuditFields
}
