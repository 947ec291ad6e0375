// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/migrations"
	"github.com/MKhiriev/go-client-panel/models"
)

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestBinRepo(t *testing.T, dialect migrations.Dialect) (*binRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == migrations.DialectSQLite {
		classifier = SQLiteErrorClassifier{}
	}

	l := logger.Nop()
	repo := &binRepository{
		db:     &DB{DB: db, dialect: dialect, logger: l, errorClassificator: classifier},
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestBinRepository_Create_Postgres(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bins (id,data,created_at,updated_at) VALUES ($1,$2,$3,$4)")).
		WithArgs("abc12345", "blob", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBinRepository_Create_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectSQLite)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bins (id,data,created_at,updated_at) VALUES (?,?,?,?)")).
		WithArgs("abc12345", "blob", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBinRepository_Create_AlreadyExists(t *testing.T) {
	tests := []struct {
		name    string
		dialect migrations.Dialect
		err     error
	}{
		{"postgres unique violation", migrations.DialectPostgres, pgError(pgerrcode.UniqueViolation)},
		{"sqlite primary key", migrations.DialectSQLite, sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestBinRepo(t, tt.dialect)
			mock.ExpectExec("INSERT INTO bins").WillReturnError(tt.err)

			err := repo.Create(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob"})
			require.ErrorIs(t, err, ErrBinAlreadyExists)
		})
	}
}

func TestBinRepository_Create_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)

	mock.ExpectExec("INSERT INTO bins").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO bins").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBinRepository_Create_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)
	for range maxAttempts {
		mock.ExpectExec("INSERT INTO bins").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := repo.Create(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob"})
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBinRepository_Create_OtherError(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)
	mock.ExpectExec("INSERT INTO bins").WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob"})
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrBinAlreadyExists)
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestBinRepository_Get(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)

	rows := sqlmock.NewRows([]string{"id", "data", "created_at", "updated_at"}).
		AddRow("abc12345", "blob", fixedNow, fixedNow.Add(time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, data, created_at, updated_at FROM bins WHERE id = $1")).
		WithArgs("abc12345").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "abc12345")
	require.NoError(t, err)
	assert.Equal(t, models.BinRecord{ID: "abc12345", Data: "blob", CreatedAt: fixedNow, UpdatedAt: fixedNow.Add(time.Hour)}, got)
}

func TestBinRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)
	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing1")
	require.ErrorIs(t, err, ErrBinNotFound)
}

func TestBinRepository_Get_DBError(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.Get(context.Background(), "abc12345")
	require.ErrorIs(t, err, ErrScanningRow)
}

// ── Upsert ────────────────────────────────────────────────────────────────────

func TestBinRepository_Upsert(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bins (id,data,created_at,updated_at) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO UPDATE SET data = excluded.data")).
		WithArgs("abc12345", "blob2", fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob2"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBinRepository_Upsert_Error(t *testing.T) {
	repo, mock := newTestBinRepo(t, migrations.DialectPostgres)
	mock.ExpectExec("INSERT INTO bins").WillReturnError(errors.New("disk full"))

	err := repo.Upsert(context.Background(), models.BinRecord{ID: "abc12345", Data: "blob2"})
	require.ErrorIs(t, err, ErrExecutingStatement)
}

// ── against a real SQLite database ────────────────────────────────────────────

func TestBinRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, testDBConfig(":memory:"), logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	repo := NewBinRepository(db, logger.Nop())

	require.NoError(t, repo.Create(ctx, models.BinRecord{ID: "abc12345", Data: "v1"}))
	require.ErrorIs(t, repo.Create(ctx, models.BinRecord{ID: "abc12345", Data: "other"}), ErrBinAlreadyExists)

	got, err := repo.Get(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Data)

	require.NoError(t, repo.Upsert(ctx, models.BinRecord{ID: "abc12345", Data: "v2"}))
	require.NoError(t, repo.Upsert(ctx, models.BinRecord{ID: "new12345", Data: "v3"}))

	got, err = repo.Get(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Data)

	got, err = repo.Get(ctx, "new12345")
	require.NoError(t, err)
	assert.Equal(t, "v3", got.Data)

	_, err = repo.Get(ctx, "missing1")
	require.ErrorIs(t, err, ErrBinNotFound)
}
