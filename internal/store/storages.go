package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
)

// NewLocalStorage opens the storage named by cfg.DSN:
//
//	""  or "memory"   in-memory, lost on exit
//	bolt://<path>     bbolt file
//	<path>            SQLite file (an optional sqlite:// prefix is stripped)
func NewLocalStorage(ctx context.Context, cfg config.LocalStorageConfig, log *logger.Logger) (LocalStorage, error) {
	dsn := cfg.DSN
	switch {
	case dsn == "" || dsn == "memory":
		log.Warn().Str("func", "NewLocalStorage").Msg("using in-memory local storage, data will not survive a restart")
		return NewMemoryLocalStorage(), nil
	case strings.HasPrefix(dsn, "bolt://"):
		path := strings.TrimPrefix(dsn, "bolt://")
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		return NewBoltLocalStorage(path, log)
	default:
		path := strings.TrimPrefix(dsn, "sqlite://")
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		return NewSQLiteLocalStorage(ctx, path, log)
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	return nil
}
