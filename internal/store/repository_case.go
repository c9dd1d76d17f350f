package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

// caseRepository is the SQL-backed implementation of [CaseRepository].
type caseRepository struct {
	*DB
	logger *logger.Logger
}

func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts c as given. Identity and timestamps are assigned by the
// caller.
func (r *caseRepository) Create(ctx context.Context, c models.Case) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCaseQuery(r.builder, c)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.Create").Msg("failed to build query")
		return models.Case{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.Create").Str("case_id", c.ID).Msg("failed to insert case")
		return models.Case{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil || affected != 1 {
		log.Error().Err(err).
			Str("func", "caseRepository.Create").
			Int64("rows_affected", affected).
			Msg("unexpected insert result")
		return models.Case{}, fmt.Errorf("%w: case was not inserted", ErrExecutingStatement)
	}

	return c, nil
}

// GetByID returns [ErrCaseNotFound] for unknown or malformed ids.
func (r *caseRepository) GetByID(ctx context.Context, id string) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCaseByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.GetByID").Msg("failed to build query")
		return models.Case{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Case
	err = r.withRetry(ctx, func() error {
		return scanCase(r.QueryRowContext(ctx, query, args...), &c)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || r.isInvalidInput(err) {
			return models.Case{}, ErrCaseNotFound
		}
		log.Err(err).Str("func", "caseRepository.GetByID").Str("case_id", id).Msg("failed to select case")
		return models.Case{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return c, nil
}

// List returns one page of cases, newest first, along with the total number
// of cases across all pages.
func (r *caseRepository) List(ctx context.Context, req models.CaseListRequest) (models.CasePage, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountCasesQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.List").Msg("failed to build count query")
		return models.CasePage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := buildListCasesQuery(r.builder, req)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.List").Msg("failed to build query")
		return models.CasePage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total)
	})
	if err != nil {
		log.Err(err).Str("func", "caseRepository.List").Msg("failed to count cases")
		return models.CasePage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "caseRepository.List").
			Int("page", req.Page).
			Int("limit", req.Limit).
			Msg("failed to execute query for listing cases")
		return models.CasePage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cases := make([]models.Case, 0, req.Limit)
	for rows.Next() {
		var c models.Case
		if scanErr := scanCase(rows, &c); scanErr != nil {
			log.Err(scanErr).Str("func", "caseRepository.List").Msg("failed to scan case row")
			return models.CasePage{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cases = append(cases, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "caseRepository.List").Msg("error occurred during rows iteration")
		return models.CasePage{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return models.CasePage{Cases: cases, TotalCount: total}, nil
}

// Update applies upd in a single statement so concurrent updates never
// observe a half-written case.
func (r *caseRepository) Update(ctx context.Context, id string, upd models.CaseUpdate, updatedAt time.Time) (models.Case, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCaseQuery(r.builder, id, upd, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.Update").Msg("failed to build query")
		return models.Case{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Case
	if err = scanCase(r.QueryRowContext(ctx, query, args...), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) || r.isInvalidInput(err) {
			return models.Case{}, ErrCaseNotFound
		}
		log.Err(err).Str("func", "caseRepository.Update").Str("case_id", id).Msg("failed to update case")
		return models.Case{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return c, nil
}

func (r *caseRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCaseQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "caseRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.isInvalidInput(err) {
			return ErrCaseNotFound
		}
		log.Err(err).Str("func", "caseRepository.Delete").Str("case_id", id).Msg("failed to delete case")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "caseRepository.Delete").Msg("failed to read rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCaseNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner, c *models.Case) error {
	var status, priority string
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &status, &priority, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return err
	}
	c.Status = models.CaseStatus(status)
	c.Priority = models.CasePriority(priority)
	return nil
}
