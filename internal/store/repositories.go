package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
)

// Repositories bundles the bin server repositories over one database.
type Repositories struct {
	BinRepository BinRepository

	db *DB
}

// NewRepositories connects to cfg.DSN, applies the schema and builds the
// repositories on top of it.
func NewRepositories(ctx context.Context, cfg config.DBConfig, logger *logger.Logger) (*Repositories, error) {
	db, err := NewConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s database: %w", db.Dialect(), err)
	}

	return &Repositories{
		BinRepository: NewBinRepository(db, logger),
		db:            db,
	}, nil
}

// Close releases the database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
