package dto

import (
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit/credit row of a journal create request.
type CreateJournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Notes     string          `json:"notes"`
}

// CreateJournalRequest is the payload for creating a journal with its lines.
type CreateJournalRequest struct {
	Date          time.Time                  `json:"date" binding:"required"`
	Description   string                     `json:"description" binding:"required"`
	JournalNumber *string                    `json:"journalNumber,omitempty"` // Generated when absent
	ReferenceType *string                    `json:"referenceType,omitempty"`
	ReferenceID   *string                    `json:"referenceID,omitempty"`
	Lines         []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ListJournalsParams holds pagination parameters for listing journals.
type ListJournalsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// JournalLineResponse is the API representation of a journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Notes     string          `json:"notes,omitempty"`
}

// JournalResponse is the API representation of a journal.
type JournalResponse struct {
	JournalID     string                `json:"journalID"`
	JournalNumber string                `json:"journalNumber"`
	Date          time.Time             `json:"date"`
	Description   string                `json:"description"`
	Status        domain.JournalStatus  `json:"status"`
	ReferenceType *string               `json:"referenceType,omitempty"`
	ReferenceID   *string               `json:"referenceID,omitempty"`
	Lines         []JournalLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy string                `json:"lastUpdatedBy"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ToJournalResponse converts a domain journal to its API representation.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:     j.JournalID,
		JournalNumber: j.JournalNumber,
		Date:          j.JournalDate,
		Description:   j.Description,
		Status:        j.Status,
		ReferenceType: j.ReferenceType,
		ReferenceID:   j.ReferenceID,
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
		LastUpdatedAt: j.LastUpdatedAt,
		LastUpdatedBy: j.LastUpdatedBy,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(j.Lines))
		for i, l := range j.Lines {
			resp.Lines[i] = JournalLineResponse{
				LineID:    l.LineID,
				AccountID: l.AccountID,
				Debit:     l.Debit,
				Credit:    l.Credit,
				Notes:     l.Notes,
			}
		}
	}
	return resp
}
