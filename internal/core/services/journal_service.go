package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gunarwibowo/erp_backoffice_app/internal/apperrors"
	"github.com/gunarwibowo/erp_backoffice_app/internal/core/domain"
	portsrepo "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/gunarwibowo/erp_backoffice_app/internal/core/ports/services"
	"github.com/gunarwibowo/erp_backoffice_app/internal/dto"
	"github.com/gunarwibowo/erp_backoffice_app/internal/middleware"
	"github.com/gunarwibowo/erp_backoffice_app/internal/utils/docnumber"
)

// JournalNumberPrefix is the document-number prefix for journals.
const JournalNumberPrefix = "JRN"

var (
	ErrJournalUnbalanced  = errors.New("journal debits and credits do not balance")
	ErrJournalMinEntries  = errors.New("journal must have at least two lines")
	ErrJournalMinAccounts = errors.New("journal must affect at least two different accounts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDescriptionMissing = errors.New("journal description is required")
)

// journalService provides the double-entry journal operations.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountSvc  portssvc.AccountSvcFacade
	maxAttempts int
}

// NewJournalService creates a new JournalService. maxAttempts bounds the
// document-number retry loop when a generated number collides with a
// concurrent writer.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, maxAttempts int) portssvc.JournalSvcFacade {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		maxAttempts: maxAttempts,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLineAmounts checks each line carries non-negative amounts and that
// at least one side of the line is non-zero.
func (s *journalService) validateLineAmounts(lines []dto.CreateJournalLineRequest) error {
	for _, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line amounts must be non-negative for account %s", apperrors.ErrValidation, l.AccountID)
		}
		if l.Debit.IsZero() && l.Credit.IsZero() {
			return fmt.Errorf("%w: line for account %s has neither debit nor credit", apperrors.ErrValidation, l.AccountID)
		}
	}
	return nil
}

// validateJournalBalance checks that debits equal credits across the lines.
func validateJournalBalance(lines []domain.JournalLine) error {
	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	for _, l := range lines {
		debitsSum = debitsSum.Add(l.Debit)
		creditsSum = creditsSum.Add(l.Credit)
	}
	if !debitsSum.Equal(creditsSum) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			ErrJournalUnbalanced, debitsSum.String(), creditsSum.String())
	}
	return nil
}

// CreateJournal validates the request, assigns a document number and persists
// the journal with its lines atomically. The journal starts as DRAFT.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// --- Basic validation ---
	if len(req.Lines) < 2 {
		return nil, ErrJournalMinEntries
	}
	accountSet := make(map[string]bool)
	for _, l := range req.Lines {
		accountSet[l.AccountID] = true
	}
	if len(accountSet) < 2 {
		return nil, ErrJournalMinAccounts
	}
	if req.Description == "" {
		return nil, ErrDescriptionMissing
	}
	if err := s.validateLineAmounts(req.Lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()

	domainLines := make([]domain.JournalLine, len(req.Lines))
	accountIDs := make([]string, 0, len(accountSet))
	for id := range accountSet {
		accountIDs = append(accountIDs, id)
	}
	for i, lineReq := range req.Lines {
		domainLines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			JournalID: journalID,
			AccountID: lineReq.AccountID,
			Debit:     lineReq.Debit,
			Credit:    lineReq.Credit,
			Notes:     lineReq.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := validateJournalBalance(domainLines); err != nil {
		return nil, err
	}

	// --- Account validation: exist, active, leaf ---
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to fetch accounts for journal creation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
		if acc.IsParent {
			return nil, fmt.Errorf("%w: account %s is a parent account and cannot carry entries", apperrors.ErrValidation, id)
		}
	}

	domainJournal := domain.Journal{
		JournalID:     journalID,
		JournalDate:   req.Date,
		Description:   req.Description,
		Status:        domain.Draft,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// --- Numbering + persistence ---
	// The read-max-then-insert pair can race with a concurrent writer, so the
	// unique constraint on journal_number is the arbiter: on a duplicate we
	// recompute from the new maximum and try again, bounded by maxAttempts.
	if req.JournalNumber != nil && *req.JournalNumber != "" {
		domainJournal.JournalNumber = *req.JournalNumber
		if err := s.journalRepo.SaveJournal(ctx, domainJournal, domainLines); err != nil {
			logger.Error("Failed to save journal", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save journal: %w", err)
		}
	} else {
		dateSuffix := docnumber.DateSuffix(req.Date)
		saved := false
		for attempt := 1; attempt <= s.maxAttempts; attempt++ {
			latest, err := s.journalRepo.FindLatestJournalNumber(ctx, JournalNumberPrefix, dateSuffix)
			if err != nil {
				logger.Error("Failed to look up latest journal number", slog.String("error", err.Error()))
				return nil, fmt.Errorf("failed to look up latest journal number: %w", err)
			}
			domainJournal.JournalNumber = docnumber.Next(JournalNumberPrefix, req.Date, latest, logger)

			err = s.journalRepo.SaveJournal(ctx, domainJournal, domainLines)
			if err == nil {
				saved = true
				break
			}
			if errors.Is(err, apperrors.ErrDuplicate) && attempt < s.maxAttempts {
				logger.Warn("Journal number collision, retrying",
					slog.String("journal_number", domainJournal.JournalNumber),
					slog.Int("attempt", attempt))
				continue
			}
			logger.Error("Failed to save journal", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to save journal: %w", err)
		}
		if !saved {
			return nil, fmt.Errorf("failed to save journal after %d attempts: %w", s.maxAttempts, apperrors.ErrDuplicate)
		}
	}

	logger.Info("Journal created", slog.String("journal_id", domainJournal.JournalID), slog.String("journal_number", domainJournal.JournalNumber))
	domainJournal.Lines = domainLines
	return &domainJournal, nil
}

// GetJournalByID retrieves a journal together with its lines.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch journal lines", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to fetch lines for journal %s: %w", journalID, err)
	}
	journal.Lines = lines
	return journal, nil
}

// ListJournals retrieves a page of journals without their lines.
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	journals, err := s.journalRepo.ListJournals(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	resp := &dto.ListJournalsResponse{Journals: make([]dto.JournalResponse, len(journals))}
	for i := range journals {
		resp.Journals[i] = dto.ToJournalResponse(&journals[i])
	}
	return resp, nil
}

// transitionJournal locks the journal row, verifies the status transition and
// persists the new status, all within one transaction.
func (s *journalService) transitionJournal(ctx context.Context, journalID string, target domain.JournalStatus, actorUserID string, verify func(j *domain.Journal) error) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var result *domain.Journal
	err := s.journalRepo.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		journal, err := s.journalRepo.FindJournalByIDForUpdate(ctx, tx, journalID)
		if err != nil {
			return err
		}
		if !journal.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: journal %s is %s and cannot become %s",
				apperrors.ErrInvalidState, journalID, journal.Status, target)
		}
		if verify != nil {
			if err := verify(journal); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		if err := s.journalRepo.UpdateJournalStatusTx(ctx, tx, journalID, target, actorUserID, now); err != nil {
			return err
		}

		journal.Status = target
		journal.LastUpdatedAt = now
		journal.LastUpdatedBy = actorUserID
		result = journal
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidState) {
			logger.Error("Journal status transition failed", slog.String("error", err.Error()),
				slog.String("journal_id", journalID), slog.String("target", string(target)))
		}
		return nil, err
	}

	logger.Info("Journal status updated", slog.String("journal_id", journalID), slog.String("status", string(target)))
	return result, nil
}

// PostJournal transitions a DRAFT journal to POSTED. The balance is re-checked
// against the stored lines before the transition commits.
func (s *journalService) PostJournal(ctx context.Context, journalID string, actorUserID string) (*domain.Journal, error) {
	return s.transitionJournal(ctx, journalID, domain.Posted, actorUserID, func(j *domain.Journal) error {
		lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
		if err != nil {
			return fmt.Errorf("failed to fetch lines for balance check: %w", err)
		}
		return validateJournalBalance(lines)
	})
}

// CancelJournal transitions a DRAFT or POSTED journal to CANCELLED.
func (s *journalService) CancelJournal(ctx context.Context, journalID string, actorUserID string) (*domain.Journal, error) {
	return s.transitionJournal(ctx, journalID, domain.Cancelled, actorUserID, nil)
}
