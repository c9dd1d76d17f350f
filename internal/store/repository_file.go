package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

// fileRepository keeps upload metadata in the "files" table. The bytes
// themselves live in a [BlobStorage].
type fileRepository struct {
	*DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *fileRepository) Create(ctx context.Context, f models.StoredFile) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFileQuery(r.builder, f)
	if err != nil {
		log.Err(err).Str("func", "fileRepository.Create").Msg("failed to build query")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "fileRepository.Create").
			Str("file_path", f.FilePath).
			Msg("failed to insert file metadata")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return f, nil
}

func (r *fileRepository) GetByID(ctx context.Context, id string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFileByIDQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "fileRepository.GetByID").Msg("failed to build query")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var f models.StoredFile
	err = r.withRetry(ctx, func() error {
		return scanFile(r.QueryRowContext(ctx, query, args...), &f)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || r.isInvalidInput(err) {
			return models.StoredFile{}, ErrFileNotFound
		}
		log.Err(err).Str("func", "fileRepository.GetByID").Str("file_id", id).Msg("failed to select file")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return f, nil
}

// List returns all file metadata, newest first.
func (r *fileRepository) List(ctx context.Context) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "fileRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "fileRepository.List").Msg("failed to execute query for listing files")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.StoredFile, 0, 16)
	for rows.Next() {
		var f models.StoredFile
		if scanErr := scanFile(rows, &f); scanErr != nil {
			log.Err(scanErr).Str("func", "fileRepository.List").Msg("failed to scan file row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		files = append(files, f)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "fileRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return files, nil
}

func scanFile(row rowScanner, f *models.StoredFile) error {
	return row.Scan(&f.ID, &f.FileName, &f.FilePath, &f.FileType, &f.FileSize, &f.CreatedAt)
}
