// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-tracker/migrations"
	"github.com/MKhiriev/go-case-tracker/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildListCasesQuery(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CaseListRequest
		wantLimit string
	}{
		{name: "first page", req: models.CaseListRequest{Page: 1, Limit: 10}, wantLimit: "LIMIT 10 OFFSET 0"},
		{name: "third page", req: models.CaseListRequest{Page: 3, Limit: 20}, wantLimit: "LIMIT 20 OFFSET 40"},
		{name: "limit one", req: models.CaseListRequest{Page: 5, Limit: 1}, wantLimit: "LIMIT 1 OFFSET 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCasesQuery(pgBuilder, tt.req)
			require.NoError(t, err)
			assert.Empty(t, args)

			assert.True(t, strings.HasPrefix(query, "SELECT id, title, description, status, priority, created_at, updated_at FROM cases"))
			assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
			assert.True(t, strings.HasSuffix(query, tt.wantLimit), query)
		})
	}
}

func Test_buildUpdateCaseQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		upd      models.CaseUpdate
		wantSets []string
		wantArgs []any
	}{
		{
			name:     "title only",
			upd:      models.CaseUpdate{Title: "New"},
			wantSets: []string{"title = $1", "updated_at = $2"},
			wantArgs: []any{"New", at, "id-1"},
		},
		{
			name: "every field",
			upd: models.CaseUpdate{
				Title:       "T",
				Description: "D",
				Status:      models.CaseStatusClosed,
				Priority:    models.CasePriorityLow,
			},
			wantSets: []string{"title = $1", "description = $2", "status = $3", "priority = $4", "updated_at = $5"},
			wantArgs: []any{"T", "D", "Closed", "Low", at, "id-1"},
		},
		{
			name:     "blank fields are skipped",
			upd:      models.CaseUpdate{Priority: models.CasePriorityHigh},
			wantSets: []string{"priority = $1", "updated_at = $2"},
			wantArgs: []any{"High", at, "id-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateCaseQuery(pgBuilder, "id-1", tt.upd, at)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "UPDATE cases SET "+strings.Join(tt.wantSets, ", ")), query)
			assert.Contains(t, query, "WHERE id = $")
			assert.NotContains(t, query, "created_at =")
			assert.True(t, strings.HasSuffix(query, "RETURNING id, title, description, status, priority, created_at, updated_at"))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSessionQueries_Placeholders(t *testing.T) {
	now := time.Now()

	pgQuery, _, err := buildSelectSessionQuery(pgBuilder, "sid", now)
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "WHERE id = $1 AND expires_at > $2")

	liteQuery, _, err := buildSelectSessionQuery(sqliteBuilder, "sid", now)
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "WHERE id = ? AND expires_at > ?")

	upsert, args, err := buildUpsertSessionQuery(sqliteBuilder, models.SessionRecord{ID: "sid", Data: "d"})
	require.NoError(t, err)
	assert.Contains(t, upsert, "ON CONFLICT (id) DO UPDATE SET")
	assert.NotContains(t, upsert, "created_at = excluded.created_at")
	assert.Len(t, args, 5)
}

func Test_buildInsertCaseQuery_Args(t *testing.T) {
	now := time.Now().UTC()
	c := sampleCase(now)

	_, args, err := buildInsertCaseQuery(sqliteBuilder, c)
	require.NoError(t, err)
	assert.Equal(t, []any{c.ID, c.Title, c.Description, "Open", "High", now, now}, args)
}

func TestDB_rebind(t *testing.T) {
	pg := &DB{dialect: migrations.DialectPostgres}
	lite := &DB{dialect: migrations.DialectSQLite}

	assert.Contains(t, pg.rebind(createUser), "VALUES ($1, $2, $3, $4)")
	assert.Contains(t, lite.rebind(createUser), "VALUES (?, ?, ?, ?)")
	assert.Contains(t, pg.rebind(findUserByUsername), "WHERE username = $1")
}
