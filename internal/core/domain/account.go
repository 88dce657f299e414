package domain

// AccountCategory defines the fundamental accounting category of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// BalanceSide indicates which side carries an account's normal balance.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// NormalBalance returns the conventional normal balance side for a category.
func (c AccountCategory) NormalBalance() BalanceSide {
	switch c {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Account represents a chart-of-accounts node. Accounts form a self-referential
// hierarchy; only leaf accounts (IsParent == false) may appear on journal lines.
type Account struct {
	AccountID       string          `json:"accountID"` // Primary Key (UUID)
	Code            string          `json:"code"`      // Unique, user-facing
	Name            string          `json:"name"`
	Category        AccountCategory `json:"category"`
	NormalBalance   BalanceSide     `json:"normalBalance"`
	ParentAccountID *string         `json:"parentAccountID,omitempty"`
	IsParent        bool            `json:"isParent"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}
