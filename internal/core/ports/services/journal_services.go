package services

import (
	"context"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/gunarwibowo/erp_backoffice_app/internal/dto"
)

// JournalSvcFacade defines the double-entry journal posting operations.
type JournalSvcFacade interface {
	// CreateJournal validates, numbers and persists a journal with its lines
	// atomically. The journal starts in DRAFT status.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)

	// GetJournalByID retrieves a journal together with its lines.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journals without lines.
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)

	// PostJournal transitions a DRAFT journal to POSTED after the balance
	// check re-passes against the stored lines.
	PostJournal(ctx context.Context, journalID string, actorUserID string) (*domain.Journal, error)

	// CancelJournal transitions a DRAFT or POSTED journal to CANCELLED.
	CancelJournal(ctx context.Context, journalID string, actorUserID string) (*domain.Journal, error)
}
