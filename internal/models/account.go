package models

// Account is the database representation of a chart-of-accounts node.
type Account struct {
	AccountID       string  `db:"account_id"`
	Code            string  `db:"code"` // Unique
	Name            string  `db:"name"`
	Category        string  `db:"category"`
	NormalBalance   string  `db:"normal_balance"`
	ParentAccountID *string `db:"parent_account_id"` // Nullable
	IsParent        bool    `db:"is_parent"`
	IsActive        bool    `db:"is_active"`
	AuditFields
}
