// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/models"
)

const binsTable = "bins"

// binRepository is the SQL implementation of [BinRepository]. It speaks
// both PostgreSQL and SQLite; the placeholder style follows the connection.
type binRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewBinRepository constructs a [BinRepository] backed by db.
func NewBinRepository(db *DB, logger *logger.Logger) BinRepository {
	logger.Debug().Msg("creating bin repository")
	return &binRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a new bin.
//
// Error handling:
//   - unique/primary key violation → [ErrBinAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *binRepository) Create(ctx context.Context, bin models.BinRecord) error {
	log := logger.FromContext(ctx)
	now := r.now()

	query, args, err := r.db.builder().
		Insert(binsTable).
		Columns("id", "data", "created_at", "updated_at").
		Values(bin.ID, bin.Data, now, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrBinAlreadyExists
		}
		log.Err(err).Str("func", "*binRepository.Create").Str("bin_id", bin.ID).Msg("error inserting bin")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get loads one bin by id.
func (r *binRepository) Get(ctx context.Context, id string) (models.BinRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("id", "data", "created_at", "updated_at").
		From(binsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.BinRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var bin models.BinRecord
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&bin.ID, &bin.Data, &bin.CreatedAt, &bin.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.BinRecord{}, ErrBinNotFound
	case err != nil:
		log.Err(err).Str("func", "*binRepository.Get").Str("bin_id", id).Msg("error reading bin")
		return models.BinRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return bin, nil
}

// Upsert overwrites the bin data. The creation time of an existing bin is
// kept. Concurrent writers race; the last one wins.
func (r *binRepository) Upsert(ctx context.Context, bin models.BinRecord) error {
	log := logger.FromContext(ctx)
	now := r.now()

	query, args, err := r.db.builder().
		Insert(binsTable).
		Columns("id", "data", "created_at", "updated_at").
		Values(bin.ID, bin.Data, now, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*binRepository.Upsert").Str("bin_id", bin.ID).Msg("error upserting bin")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
