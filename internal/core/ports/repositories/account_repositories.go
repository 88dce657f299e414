package repositories

import (
	"context"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
)

// AccountRepositoryFacade defines the persistence operations for chart-of-accounts nodes.
type AccountRepositoryFacade interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by its identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by identifier.
	// Missing IDs are simply absent from the result map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByCode retrieves an account by its unique code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// MarkAccountAsParent flips the is_parent flag once a child is attached.
	MarkAccountAsParent(ctx context.Context, accountID string, updatedBy string) error

	// ListAccounts retrieves accounts ordered by code.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}
