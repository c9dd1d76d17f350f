package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-case-tracker/models"
)

// Raw user queries use "?" and go through [DB.rebind] before execution.
const (
	createUser = `INSERT INTO users (user_id, username, password_hash, created_at)
    VALUES (?, ?, ?, ?)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = ?;`
)

var (
	caseColumns    = []string{"id", "title", "description", "status", "priority", "created_at", "updated_at"}
	fileColumns    = []string{"id", "file_name", "file_path", "file_type", "file_size", "created_at"}
	sessionColumns = []string{"id", "data", "expires_at", "created_at", "updated_at"}
)

const (
	newestFirstCreated = "created_at DESC"
	newestFirstID      = "id DESC"

	upsertSessionSuffix = `ON CONFLICT (id) DO UPDATE SET
    data = excluded.data,
    expires_at = excluded.expires_at,
    updated_at = excluded.updated_at`
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ---- cases ----

func buildInsertCaseQuery(b sq.StatementBuilderType, c models.Case) (string, []any, error) {
	return b.Insert(models.Case{}.TableName()).
		Columns(caseColumns...).
		Values(c.ID, c.Title, c.Description, string(c.Status), string(c.Priority), c.CreatedAt, c.UpdatedAt).
		ToSql()
}

func buildSelectCaseByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(caseColumns...).
		From(models.Case{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountCasesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(models.Case{}.TableName()).
		ToSql()
}

// buildListCasesQuery selects one page, newest first. The id tiebreaker keeps
// pages stable when several cases share a creation instant.
func buildListCasesQuery(b sq.StatementBuilderType, req models.CaseListRequest) (string, []any, error) {
	return b.Select(caseColumns...).
		From(models.Case{}.TableName()).
		OrderBy(newestFirstCreated, newestFirstID).
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset())).
		ToSql()
}

// buildUpdateCaseQuery sets only the non-blank fields of upd plus updated_at
// and returns the resulting row.
func buildUpdateCaseQuery(b sq.StatementBuilderType, id string, upd models.CaseUpdate, updatedAt time.Time) (string, []any, error) {
	q := b.Update(models.Case{}.TableName())

	if upd.Title != "" {
		q = q.Set("title", upd.Title)
	}
	if upd.Description != "" {
		q = q.Set("description", upd.Description)
	}
	if upd.Status != "" {
		q = q.Set("status", string(upd.Status))
	}
	if upd.Priority != "" {
		q = q.Set("priority", string(upd.Priority))
	}

	return q.Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returning(caseColumns)).
		ToSql()
}

func buildDeleteCaseQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(models.Case{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ---- files ----

func buildInsertFileQuery(b sq.StatementBuilderType, f models.StoredFile) (string, []any, error) {
	return b.Insert(models.StoredFile{}.TableName()).
		Columns(fileColumns...).
		Values(f.ID, f.FileName, f.FilePath, f.FileType, f.FileSize, f.CreatedAt).
		ToSql()
}

func buildSelectFileByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(fileColumns...).
		From(models.StoredFile{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListFilesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(fileColumns...).
		From(models.StoredFile{}.TableName()).
		OrderBy(newestFirstCreated, newestFirstID).
		ToSql()
}

// ---- sessions ----

func buildSelectSessionQuery(b sq.StatementBuilderType, id string, now time.Time) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.SessionRecord{}.TableName()).
		Where(sq.Eq{"id": id}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

func buildUpsertSessionQuery(b sq.StatementBuilderType, rec models.SessionRecord) (string, []any, error) {
	return b.Insert(models.SessionRecord{}.TableName()).
		Columns(sessionColumns...).
		Values(rec.ID, rec.Data, rec.ExpiresAt, rec.CreatedAt, rec.UpdatedAt).
		Suffix(upsertSessionSuffix).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(models.SessionRecord{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(models.SessionRecord{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
