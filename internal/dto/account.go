package dto

import (
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
)

// CreateAccountRequest is the payload for creating a chart-of-accounts node.
type CreateAccountRequest struct {
	Code            string                 `json:"code" binding:"required"`
	Name            string                 `json:"name" binding:"required"`
	Category        domain.AccountCategory `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentAccountID *string                `json:"parentAccountID,omitempty"`
}

// ListAccountsParams holds pagination parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID       string                 `json:"accountID"`
	Code            string                 `json:"code"`
	Name            string                 `json:"name"`
	Category        domain.AccountCategory `json:"category"`
	NormalBalance   domain.BalanceSide     `json:"normalBalance"`
	ParentAccountID *string                `json:"parentAccountID,omitempty"`
	IsParent        bool                   `json:"isParent"`
	IsActive        bool                   `json:"isActive"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToAccountResponse converts a domain account to its API representation.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		Code:            a.Code,
		Name:            a.Name,
		Category:        a.Category,
		NormalBalance:   a.NormalBalance,
		ParentAccountID: a.ParentAccountID,
		IsParent:        a.IsParent,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}
