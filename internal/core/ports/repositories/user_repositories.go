package repositories

import (
	"context"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserRepositoryFacade defines persistence operations for Users.
// Passwords are delivered in plaintext and hashed at this layer before
// anything touches the users table.
type UserRepositoryFacade interface {
	// SaveUserTx persists a new user within tx, hashing password before write.
	SaveUserTx(ctx context.Context, tx pgx.Tx, user domain.User, password string) error

	// FindUserByID retrieves a user by identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RoleRepositoryFacade defines persistence operations for Roles.
type RoleRepositoryFacade interface {
	// FindRoleByName retrieves a role by its exact name.
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)

	// AttachRoleToUserTx links a role to a user within tx (many-to-many).
	AttachRoleToUserTx(ctx context.Context, tx pgx.Tx, roleID string, userID string) error
}
