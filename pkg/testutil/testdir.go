package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"src.tddcalc.sh/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory.
//
// It panics if the test directory cannot be created or symlinks cannot be
// resolved. It is only suitable for use in tests.
func TempDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "tddcalctest")
	if err != nil {
		panic(err)
	}
	dir, err = filepath.EvalSymlinks(dir)
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to remove temp dir %s: %v\n", dir, err)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory, and changes
// back to the working directory when the test finishes. It returns the path of
// the temporary directory.
func InTempDir(c Cleanuper) string {
	tmpDir := TempDir(c)
	Chdir(c, tmpDir)
	return tmpDir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes. It returns the directory for easier chaining.
func Chdir(c Cleanuper, dir string) string {
	oldWd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(oldWd) })
	return dir
}

// Dir describes the layout of a directory. The keys of the map represent
// filenames. Each value is either a string (for the content of a regular file
// with permission 0644) or a Dir.
type Dir map[string]any

// ApplyDir creates the given filesystem layout in the current directory.
func ApplyDir(dir Dir) {
	ApplyDirIn(dir, "")
}

// ApplyDirIn is like ApplyDir, but creates the layout in the given root
// instead of the current directory.
func ApplyDirIn(dir Dir, root string) {
	for name, file := range dir {
		path := filepath.Join(root, name)
		switch file := file.(type) {
		case string:
			must.OK(os.WriteFile(path, []byte(file), 0644))
		case Dir:
			err := os.MkdirAll(path, 0755)
			if err != nil && !os.IsExist(err) {
				panic(err)
			}
			ApplyDirIn(file, path)
		default:
			panic(fmt.Sprintf("file is neither string nor Dir: %v", file))
		}
	}
}
