package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-tracker/internal/logger"
	"github.com/MKhiriev/go-case-tracker/models"
)

var fileRowColumns = []string{"id", "file_name", "file_path", "file_type", "file_size", "created_at"}

func sampleFile(now time.Time) models.StoredFile {
	return models.StoredFile{
		ID:        "0190c5b4-6c1e-7d2a-9f00-0000000000f1",
		FileName:  "report.pdf",
		FilePath:  "1718000000000-report.pdf",
		FileType:  "application/pdf",
		FileSize:  2048,
		CreatedAt: now,
	}
}

func fileRow(rows *sqlmock.Rows, f models.StoredFile) *sqlmock.Rows {
	return rows.AddRow(f.ID, f.FileName, f.FilePath, f.FileType, f.FileSize, f.CreatedAt)
}

func TestFileRepository_Create(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	f := sampleFile(now)
	query := regexp.QuoteMeta(`INSERT INTO files (id,file_name,file_path,file_type,file_size,created_at) VALUES ($1,$2,$3,$4,$5,$6)`)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(query).
			WithArgs(f.ID, f.FileName, f.FilePath, f.FileType, f.FileSize, now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.Create(testContext(), f)
		require.NoError(t, err)
		assert.Equal(t, f, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(query).WillReturnError(errors.New("disk full"))

		_, err := repo.Create(testContext(), f)
		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestFileRepository_GetByID(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	f := sampleFile(now)
	query := regexp.QuoteMeta(`SELECT id, file_name, file_path, file_type, file_size, created_at FROM files WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WithArgs(f.ID).WillReturnRows(fileRow(sqlmock.NewRows(fileRowColumns), f))

		got, err := repo.GetByID(testContext(), f.ID)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WithArgs("nope").WillReturnRows(sqlmock.NewRows(fileRowColumns))

		_, err := repo.GetByID(testContext(), "nope")
		require.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestFileRepository_List(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	first := sampleFile(now)
	second := sampleFile(now.Add(-time.Minute))
	second.ID = "0190c5b4-6c1e-7d2a-9f00-0000000000f2"
	second.FilePath = "1717999940000-notes.txt"

	query := regexp.QuoteMeta(`SELECT id, file_name, file_path, file_type, file_size, created_at FROM files ORDER BY created_at DESC, id DESC`)

	t.Run("newest first", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		rows := sqlmock.NewRows(fileRowColumns)
		fileRow(rows, first)
		fileRow(rows, second)
		mock.ExpectQuery(query).WillReturnRows(rows)

		got, err := repo.List(testContext())
		require.NoError(t, err)
		assert.Equal(t, []models.StoredFile{first, second}, got)
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(fileRowColumns))

		got, err := repo.List(testContext())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("scan error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewFileRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x"))

		_, err := repo.List(testContext())
		require.ErrorIs(t, err, ErrScanningRow)
	})
}
