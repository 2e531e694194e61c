package store

import (
	"encoding/binary"
	"math"

	bolt "go.etcd.io/bbolt"
	. "src.tddcalc.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize result history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketResult))
		return err
	}
}

// NextResultSeq returns the next sequence number of the result history.
func (s *dbStore) NextResultSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddResult adds a new result to the result history.
func (s *dbStore) AddResult(keys string, value float64) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalResult(keys, value))
	})
	return int(seq), err
}

// DelResult deletes a result history item with the given sequence number.
func (s *dbStore) DelResult(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Result queries the result history item with the specified sequence number.
func (s *dbStore) Result(seq int) (Result, error) {
	var r Result
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoResult
		}
		r = unmarshalResult(seq, v)
		return nil
	})
	return r, err
}

// Results returns all results within the specified range.
func (s *dbStore) Results(from, upto int) ([]Result, error) {
	var results []Result
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketResult))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			results = append(results, unmarshalResult(int(unmarshalSeq(k)), v))
		}
		return nil
	})
	return results, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// A result is stored as the 8-byte IEEE 754 value followed by the keys.
func marshalResult(keys string, value float64) []byte {
	b := make([]byte, 8+len(keys))
	binary.BigEndian.PutUint64(b, math.Float64bits(value))
	copy(b[8:], keys)
	return b
}

func unmarshalResult(seq int, data []byte) Result {
	if len(data) < 8 {
		return Result{Seq: seq, Value: math.NaN()}
	}
	return Result{
		Seq:   seq,
		Keys:  string(data[8:]),
		Value: math.Float64frombits(binary.BigEndian.Uint64(data)),
	}
}
