package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft     JournalStatus = "DRAFT"
	Posted    JournalStatus = "POSTED"
	Cancelled JournalStatus = "CANCELLED"
)

// CanTransitionTo reports whether a journal may move from its current status
// to the target status. Draft journals can be posted or cancelled, posted
// journals can only be cancelled, and cancelled is terminal.
func (s JournalStatus) CanTransitionTo(target JournalStatus) bool {
	switch target {
	case Posted:
		return s == Draft
	case Cancelled:
		return s == Draft || s == Posted
	default:
		return false
	}
}

// Journal represents a double-entry accounting document composed of balanced lines.
type Journal struct {
	JournalID     string        `json:"journalID"`     // Primary Key (UUID)
	JournalNumber string        `json:"journalNumber"` // Human-readable number, e.g. JRN-0001-100124
	JournalDate   time.Time     `json:"journalDate"`   // Date the event occurred
	Description   string        `json:"description"`
	Status        JournalStatus `json:"status"` // Default: Draft
	ReferenceType *string       `json:"referenceType,omitempty"` // Originating business document type
	ReferenceID   *string       `json:"referenceID,omitempty"`
	Lines         []JournalLine `json:"lines,omitempty"` // Often loaded separately
	AuditFields
}

// JournalLine represents a single debit/credit row within a Journal.
// Lines are only ever created as part of a journal write.
type JournalLine struct {
	LineID    string          `json:"lineID"`    // Primary Key (UUID)
	JournalID string          `json:"journalID"` // FK -> Journal.journalID (Not Null)
	AccountID string          `json:"accountID"` // FK -> Account.accountID (Not Null)
	Debit     decimal.Decimal `json:"debit"`     // Non-negative
	Credit    decimal.Decimal `json:"credit"`    // Non-negative
	Notes     string          `json:"notes"`     // Nullable
	AuditFields
}
