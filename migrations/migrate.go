// Package migrations embeds the SQL schemas of the bin server and of the
// panel's local storage and applies them with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql local/*.sql
var embedMigrations embed.FS

// Dialect is the goose dialect name of a database.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// Schema selects one of the embedded migration sets.
type Schema string

const (
	// ServerSchema holds the bins table of the bin server.
	ServerSchema Schema = "server"
	// LocalSchema holds the key-value table of the panel's local storage.
	LocalSchema Schema = "local"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate brings schema up to date on db.
func Migrate(db *sql.DB, dialect Dialect, schema Schema) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(schema)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
