package store

import (
	"path/filepath"

	"src.tddcalc.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file for testing. The
// Store and its file will be removed after the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st, err := NewStore(filepath.Join(dir, "db.bolt"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		err := st.Close()
		if err != nil {
			panic(err)
		}
	})
	return st
}
