package shell

import (
	"errors"
	"os"
)

var errNoKeyEditor = errors.New("reading single keys is not supported on Windows")

type keyEditor struct{ editor }

func newKeyEditor(in, out *os.File) (*keyEditor, error) {
	return nil, errNoKeyEditor
}
