package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"src.tddcalc.sh/pkg/rc"
	"src.tddcalc.sh/pkg/store"
	"src.tddcalc.sh/pkg/store/storedefs"
)

// Opens the store at the given path, or the default path if it is empty. The
// parent directory is created if needed.
func openStore(path string) (store.DBStore, error) {
	if path == "" {
		var err error
		path, err = rc.DBPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("cannot create directory for database: %w", err)
	}
	logger.Println("opening store at", path)
	return store.NewStore(path)
}

// Like openStore, but failures are reported as a warning and result in a nil
// Store.
func initStore(stderr io.Writer, path string) (storedefs.Store, func()) {
	st, err := openStore(path)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Results will not be saved.")
		return nil, func() {}
	}
	return st, func() {
		if err := st.Close(); err != nil {
			logger.Println("failed to close store:", err)
		}
	}
}
