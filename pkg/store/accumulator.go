package store

import (
	"encoding/binary"
	"math"

	bolt "go.etcd.io/bbolt"
)

var keyAccumulator = []byte("value")

func init() {
	initDB["initialize accumulator table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketAccumulator))
		return err
	}
}

// Accumulator returns the saved accumulator value, or 0 if none has been
// saved.
func (s *dbStore) Accumulator() (float64, error) {
	var value float64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAccumulator))
		if v := b.Get(keyAccumulator); len(v) == 8 {
			value = math.Float64frombits(binary.BigEndian.Uint64(v))
		}
		return nil
	})
	return value, err
}

// SetAccumulator saves the accumulator value.
func (s *dbStore) SetAccumulator(value float64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketAccumulator))
		v := make([]byte, 8)
		binary.BigEndian.PutUint64(v, math.Float64bits(value))
		return b.Put(keyAccumulator, v)
	})
}
