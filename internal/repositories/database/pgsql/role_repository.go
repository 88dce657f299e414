package pgsql

import (
	"context"
	"errors"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	"github.com/gunarwibowo/erp_backoffice_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoleRepository struct {
	BaseRepository
}

func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

// FindRoleByName retrieves a role by its exact name.
func (r *PgxRoleRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `
		SELECT role_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM roles
		WHERE name = $1;
	`
	var m models.Role
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&m.RoleID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find role "+name, err)
	}

	return &domain.Role{
		RoleID: m.RoleID,
		Name:   m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

// AttachRoleToUserTx links a role to a user within tx. Attaching a role the
// user already holds is a no-op.
func (r *PgxRoleRepository) AttachRoleToUserTx(ctx context.Context, tx pgx.Tx, roleID string, userID string) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING;
	`
	_, err := tx.Exec(ctx, query, userID, roleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to attach role "+roleID+" to user "+userID, err)
	}
	return nil
}
