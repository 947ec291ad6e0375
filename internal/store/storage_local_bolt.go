package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-client-panel/internal/logger"
)

var kvBucket = []byte("kv")

// boltLocalStorage keeps the panel's keys in one bbolt bucket.
type boltLocalStorage struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltLocalStorage opens (creating when needed) the bbolt file at path.
func NewBoltLocalStorage(path string, log *logger.Logger) (LocalStorage, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltLocalStorage").Msg("error opening bolt file")
		return nil, fmt.Errorf("open bolt storage: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(kvBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt bucket: %w", err)
	}

	return &boltLocalStorage{db: db, logger: log}, nil
}

func (s *boltLocalStorage) Get(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(kvBucket).Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	return value, found, err
}

func (s *boltLocalStorage) Set(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*boltLocalStorage.Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("bolt put %q: %w", key, err)
	}
	return nil
}

func (s *boltLocalStorage) Remove(_ context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(kvBucket).Delete([]byte(key))
	})
}

func (s *boltLocalStorage) Keys(_ context.Context, prefix string) ([]string, error) {
	keys := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(kvBucket).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	return keys, err
}

func (s *boltLocalStorage) Close() error {
	return s.db.Close()
}
