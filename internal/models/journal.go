package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is the database representation of a journal header row.
type Journal struct {
	JournalID     string    `db:"journal_id"`
	JournalNumber string    `db:"journal_number"` // Unique
	JournalDate   time.Time `db:"journal_date"`
	Description   string    `db:"description"`
	Status        string    `db:"status"`
	ReferenceType *string   `db:"reference_type"` // Nullable
	ReferenceID   *string   `db:"reference_id"`   // Nullable
	AuditFields
}

// JournalLine is the database representation of a single debit/credit row.
type JournalLine struct {
	LineID    string          `db:"line_id"`
	JournalID string          `db:"journal_id"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Notes     string          `db:"notes"`
	AuditFields
}
