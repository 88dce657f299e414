package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	"github.com/gunarwibowo/erp_backoffice_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func toModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:     d.JournalID,
		JournalNumber: d.JournalNumber,
		JournalDate:   d.JournalDate,
		Description:   d.Description,
		Status:        string(d.Status),
		ReferenceType: d.ReferenceType,
		ReferenceID:   d.ReferenceID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:     m.JournalID,
		JournalNumber: m.JournalNumber,
		JournalDate:   m.JournalDate,
		Description:   m.Description,
		Status:        domain.JournalStatus(m.Status),
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:    m.LineID,
		JournalID: m.JournalID,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Notes:     m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveJournal persists the journal header and all of its lines within one
// database transaction. A duplicate journal number surfaces as ErrDuplicate.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	return r.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		modelJournal := toModelJournal(journal)
		journalQuery := `
			INSERT INTO journals (
				journal_id, journal_number, journal_date, description, status,
				reference_type, reference_id,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`
		_, err := tx.Exec(ctx, journalQuery,
			modelJournal.JournalID,
			modelJournal.JournalNumber,
			modelJournal.JournalDate,
			modelJournal.Description,
			modelJournal.Status,
			modelJournal.ReferenceType,
			modelJournal.ReferenceID,
			modelJournal.CreatedAt,
			modelJournal.CreatedBy,
			modelJournal.LastUpdatedAt,
			modelJournal.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "failed to insert journal "+modelJournal.JournalID)
		}

		batch := &pgx.Batch{}
		lineQuery := `
			INSERT INTO journal_lines (line_id, journal_id, account_id, debit, credit, notes, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		for _, line := range lines {
			batch.Queue(lineQuery,
				line.LineID,
				line.JournalID,
				line.AccountID,
				line.Debit,
				line.Credit,
				line.Notes,
				line.CreatedAt,
				line.CreatedBy,
				line.LastUpdatedAt,
				line.LastUpdatedBy,
			)
		}

		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return mapWriteError(err, "failed to execute line batch for journal "+modelJournal.JournalID)
		}
		return nil
	})
}

const journalColumns = `journal_id, journal_number, journal_date, description, status,
       reference_type, reference_id,
       created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var m models.Journal
	err := row.Scan(
		&m.JournalID,
		&m.JournalNumber,
		&m.JournalDate,
		&m.Description,
		&m.Status,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan journal row", err)
	}
	domainJournal := toDomainJournal(m)
	return &domainJournal, nil
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`
	return scanJournal(r.Pool.QueryRow(ctx, query, journalID))
}

// FindJournalByIDForUpdate retrieves a journal within tx, locking the row so
// concurrent status transitions serialize.
func (r *PgxJournalRepository) FindJournalByIDForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1 FOR UPDATE;`
	return scanJournal(tx.QueryRow(ctx, query, journalID))
}

// FindLinesByJournalID retrieves all lines associated with a specific journal.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, debit, credit, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.JournalID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal "+journalID, err)
		}
		lines = append(lines, toDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for journal "+journalID, err)
	}
	return lines, nil
}

// FindLatestJournalNumber returns the highest journal number for the given
// prefix and date suffix, or nil when none exists yet. Sequences are
// zero-padded to four digits but keep growing past 9999, so longer numbers
// order first and plain lexicographic ordering only breaks ties.
func (r *PgxJournalRepository) FindLatestJournalNumber(ctx context.Context, prefix string, dateSuffix string) (*string, error) {
	query := `
		SELECT journal_number
		FROM journals
		WHERE journal_number LIKE $1
		ORDER BY LENGTH(journal_number) DESC, journal_number DESC
		LIMIT 1;
	`
	pattern := prefix + "-%" + dateSuffix

	var number string
	err := r.Pool.QueryRow(ctx, query, pattern).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find latest journal number for pattern "+pattern, err)
	}
	return &number, nil
}

// ListJournals retrieves a page of journals ordered by date descending.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit int, offset int) ([]domain.Journal, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + journalColumns + `
		FROM journals
		ORDER BY journal_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journals", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		var m models.Journal
		scanErr := rows.Scan(
			&m.JournalID,
			&m.JournalNumber,
			&m.JournalDate,
			&m.Description,
			&m.Status,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal row", scanErr)
		}
		journals = append(journals, toDomainJournal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}
	return journals, nil
}

// UpdateJournalStatusTx updates the status of a journal within tx.
func (r *PgxJournalRepository) UpdateJournalStatusTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE journal_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, journalID, status, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update journal status for "+journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + journalID + " not found for update")
	}
	return nil
}
