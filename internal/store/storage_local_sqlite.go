package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/migrations"
)

const kvTable = "kv"

// sqliteLocalStorage keeps the panel's keys in the kv table of a SQLite file.
type sqliteLocalStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteLocalStorage opens (creating when needed) the SQLite file at path
// and applies the local schema.
func NewSQLiteLocalStorage(ctx context.Context, path string, log *logger.Logger) (LocalStorage, error) {
	db, err := NewConnectSQLite(ctx, config.DBConfig{DSN: path}, log)
	if err != nil {
		return nil, err
	}
	if err = migrations.Migrate(db.DB, migrations.DialectSQLite, migrations.LocalSchema); err != nil {
		log.Err(err).Str("func", "NewSQLiteLocalStorage").Msg("error migrating local storage")
		_ = db.Close()
		return nil, err
	}
	return &sqliteLocalStorage{db: db, logger: log}, nil
}

func (s *sqliteLocalStorage) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := s.db.builder().Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		s.logger.Err(err).Str("func", "*sqliteLocalStorage.Get").Str("key", key).Msg("error reading key")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, true, nil
}

func (s *sqliteLocalStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := s.db.builder().
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.execWithRetry(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteLocalStorage.Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteLocalStorage) Remove(ctx context.Context, key string) error {
	query, args, err := s.db.builder().Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.execWithRetry(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteLocalStorage.Remove").Str("key", key).Msg("error removing key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteLocalStorage) Keys(ctx context.Context, prefix string) ([]string, error) {
	// LIKE treats "_" as a wildcard, so the prefix is checked again below
	query, args, err := s.db.builder().
		Select("key").
		From(kvTable).
		Where(sq.Like{"key": prefix + "%"}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqliteLocalStorage.Keys").Msg("error listing keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return keys, nil
}

func (s *sqliteLocalStorage) Close() error {
	return s.db.Close()
}
