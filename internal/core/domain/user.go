package domain

// User represents a user account of the application.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Role is a named permission grouping attached to users (many-to-many).
type Role struct {
	RoleID string `json:"roleID"` // Primary Key (UUID)
	Name   string `json:"name"`   // Unique, e.g. "guest"
	AuditFields
}

// DefaultRoleName is the role attached to newly onboarded users.
const DefaultRoleName = "guest"
