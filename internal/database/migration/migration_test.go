package migration

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	b, err := fs.ReadFile(embedMigrations, "sql/00001_create_companies_invoices.sql")
	require.NoError(t, err)

	sql := string(b)
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "CREATE TABLE companies")
	assert.Contains(t, sql, "REFERENCES companies ON DELETE CASCADE")
	assert.Contains(t, sql, "paid      BOOLEAN     NOT NULL DEFAULT false")
}

func TestNewProvider_ListsSources(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	p, err := newProvider(db)
	require.NoError(t, err)

	sources := p.ListSources()
	require.Len(t, sources, 1)
	assert.Equal(t, int64(1), sources[0].Version)
	assert.Equal(t, "00001_create_companies_invoices.sql", path.Base(sources[0].Path))
}

func TestUp_DatabaseError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	err = Up(context.Background(), db, log)

	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "migrate up: "), err.Error())
	assert.Contains(t, buf.String(), "db_migration_start")
	assert.Contains(t, buf.String(), "db_migration_failed")
}
