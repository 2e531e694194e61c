//go:build unix

package shell

import (
	"bufio"
	"io"
	"os"

	"src.tddcalc.sh/pkg/sys/eunix"
)

// Keys that end the session in the key editor, since the terminal doesn't
// turn them into signals in raw mode.
const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// Reads single keystrokes from a terminal in raw mode, echoing them.
type keyEditor struct {
	in      *bufio.Reader
	out     io.Writer
	restore func() error
}

func newKeyEditor(in, out *os.File) (*keyEditor, error) {
	restore, err := eunix.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, err
	}
	return &keyEditor{bufio.NewReader(in), out, restore}, nil
}

func (ed *keyEditor) ReadKeys() ([]rune, error) {
	for {
		r, _, err := ed.in.ReadRune()
		if err != nil {
			return nil, err
		}
		switch r {
		case ctrlC, ctrlD:
			return nil, io.EOF
		case '\n', '\r':
			continue
		}
		io.WriteString(ed.out, string(r))
		return []rune{r}, nil
	}
}

func (ed *keyEditor) Close() error { return ed.restore() }
