package services

import (
	"context"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
)

// UserSvcFacade defines user lookup and authentication operations.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies the email/password pair and returns the user on
	// success. Inactive users cannot authenticate.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)
}
