package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/migrations"
)

// maxAttempts bounds how often a statement is tried when the driver reports
// a transient failure.
const maxAttempts = 3

// DB is a database handle together with the knowledge of which SQL dialect
// it speaks.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.DSN. postgres:// and
// postgresql:// URLs use pgx; anything else is treated as a SQLite file
// (an optional sqlite:// prefix is stripped).
func NewConnectDB(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case cfg.DSN == "":
		return nil, fmt.Errorf("%w: empty DSN", ErrUnsupportedDialect)
	default:
		return NewConnectSQLite(ctx, config.DBConfig{DSN: strings.TrimPrefix(cfg.DSN, "sqlite://")}, log)
	}
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, migrations.ServerSchema)
}

// Dialect reports the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// builder returns a statement builder with the placeholder style of db.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// execWithRetry runs a statement, repeating it while the error classifier
// considers the failure transient.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}
		db.logger.Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.execWithRetry").Msg("transient database error")
	}
	return res, err
}
