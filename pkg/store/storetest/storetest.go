// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.tddcalc.sh/pkg/store/storedefs"
)

var (
	resultsToAdd = []storedefs.Result{
		{Keys: "5+3=", Value: 8},
		{Keys: "*2=", Value: 16},
		{Keys: "1/3=", Value: 1.0 / 3},
	}
)

// TestResult tests the result history functionality of a Store.
func TestResult(t *testing.T, store storedefs.Store) {
	t.Helper()

	startSeq, err := store.NextResultSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextResultSeq() => (%v, %v), want (1, nil)",
			startSeq, err)
	}

	// AddResult
	for i, r := range resultsToAdd {
		wantSeq := startSeq + i
		seq, err := store.AddResult(r.Keys, r.Value)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddResult(%q, %v) => (%v, %v), want (%v, nil)",
				r.Keys, r.Value, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextResultSeq()
	wantedEndSeq := startSeq + len(resultsToAdd)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextResultSeq() => (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	// Result
	for i, want := range resultsToAdd {
		seq := i + startSeq
		want.Seq = seq
		got, err := store.Result(seq)
		if got != want || err != nil {
			t.Errorf("store.Result(%v) => (%v, %v), want (%v, nil)",
				seq, got, err, want)
		}
	}
	if _, err := store.Result(endSeq); err != storedefs.ErrNoResult {
		t.Errorf("store.Result(%v) => error %v, want ErrNoResult", endSeq, err)
	}

	// Results
	got, err := store.Results(startSeq+1, endSeq)
	want := []storedefs.Result{
		{Seq: startSeq + 1, Keys: "*2=", Value: 16},
		{Seq: startSeq + 2, Keys: "1/3=", Value: 1.0 / 3},
	}
	if diff := cmp.Diff(want, got); diff != "" || err != nil {
		t.Errorf("store.Results(...) returns error %v, diff (-want +got):\n%s",
			err, diff)
	}

	// DelResult
	if err := store.DelResult(startSeq); err != nil {
		t.Error("Failed to remove result")
	}
	if _, err := store.Result(startSeq); err != storedefs.ErrNoResult {
		t.Errorf("Result deleted by store.DelResult is still there")
	}
	// Deleting a result doesn't free its sequence number.
	if seq, _ := store.NextResultSeq(); seq != endSeq {
		t.Errorf("store.NextResultSeq() after DelResult => %v, want %v", seq, endSeq)
	}
}

// TestAccumulator tests the accumulator functionality of a Store.
func TestAccumulator(t *testing.T, store storedefs.Store) {
	t.Helper()

	v, err := store.Accumulator()
	if v != 0 || err != nil {
		t.Errorf("store.Accumulator() => (%v, %v), want (0, nil)", v, err)
	}
	for _, want := range []float64{42, -0.5, 1e300} {
		if err := store.SetAccumulator(want); err != nil {
			t.Errorf("store.SetAccumulator(%v) => %v", want, err)
		}
		v, err := store.Accumulator()
		if v != want || err != nil {
			t.Errorf("store.Accumulator() => (%v, %v), want (%v, nil)", v, err, want)
		}
	}
}
