// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoResult is the error returned when a Result query finds nothing.
var ErrNoResult = errors.New("no such result")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextResultSeq() (int, error)
	AddResult(keys string, value float64) (int, error)
	DelResult(seq int) error
	Result(seq int) (Result, error)
	Results(from, upto int) ([]Result, error)

	Accumulator() (float64, error)
	SetAccumulator(value float64) error
}

// Result is an entry in the result history.
type Result struct {
	Seq   int
	Keys  string
	Value float64
}
