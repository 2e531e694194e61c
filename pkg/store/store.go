// Package store defines the permanent storage service.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.tddcalc.sh/pkg/logutil"
	"src.tddcalc.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Names of buckets.
const (
	bucketResult      = "result"
	bucketAccumulator = "accumulator"
)

const dbTimeout = time.Second

// initDB holds the functions run once when opening a database, keyed by a
// description of what they do.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for tddcalc. It is not thread-safe.
// In particular, the store may be closed while another goroutine is still
// accessing the store.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: dbTimeout})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the store.
func (s *dbStore) Close() error {
	return s.db.Close()
}
