package repositories

import (
	"context"
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindJournalByIDForUpdate retrieves a journal within tx, locking the row
	// for the duration of the transaction.
	FindJournalByIDForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves all lines associated with a single journal ID.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)

	// FindLatestJournalNumber returns the lexicographically highest journal
	// number matching "{prefix}-%{dateSuffix}", or nil when none exists yet.
	FindLatestJournalNumber(ctx context.Context, prefix string, dateSuffix string) (*string, error)

	// ListJournals retrieves journals ordered by date descending.
	ListJournals(ctx context.Context, limit int, offset int) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a journal header and all of its lines atomically.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// UpdateJournalStatusTx updates a journal's status within tx.
	UpdateJournalStatusTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
