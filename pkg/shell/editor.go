package shell

import (
	"bufio"
	"io"
	"strings"

	"github.com/peterh/liner"
	"src.tddcalc.sh/pkg/store/storedefs"
)

// This type is the interface that the editors have to satisfy. An editor
// never returns line terminators as keys.
type editor interface {
	// ReadKeys returns the keys typed since the last call. It returns io.EOF
	// when there is no more input.
	ReadKeys() ([]rune, error)
	Close() error
}

// Reads keys from a non-terminal, without echoing.
type plainEditor struct {
	in *bufio.Reader
}

func newPlainEditor(in io.Reader) *plainEditor {
	return &plainEditor{bufio.NewReader(in)}
}

func (ed *plainEditor) ReadKeys() ([]rune, error) {
	for {
		r, _, err := ed.in.ReadRune()
		if err != nil {
			return nil, err
		}
		if r != '\n' && r != '\r' {
			return []rune{r}, nil
		}
	}
}

func (ed *plainEditor) Close() error { return nil }

// Reads whole lines with a liner prompt.
type lineEditor struct {
	state  *liner.State
	prompt string
}

// Creates a lineEditor. The stored results, if any, are loaded into its
// history.
func newLineEditor(prompt string, st storedefs.Store) *lineEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if st != nil {
		loadLinerHistory(state, st)
	}
	return &lineEditor{state, prompt}
}

func loadLinerHistory(state *liner.State, st storedefs.Store) {
	upto, err := st.NextResultSeq()
	if err != nil {
		logger.Println("cannot load history:", err)
		return
	}
	results, err := st.Results(0, upto)
	if err != nil {
		logger.Println("cannot load history:", err)
		return
	}
	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(r.Keys)
		sb.WriteByte('\n')
	}
	if _, err := state.ReadHistory(strings.NewReader(sb.String())); err != nil {
		logger.Println("cannot load history:", err)
	}
}

func (ed *lineEditor) ReadKeys() ([]rune, error) {
	line, err := ed.state.Prompt(ed.prompt)
	if err == liner.ErrPromptAborted {
		return nil, io.EOF
	} else if err != nil {
		return nil, err
	}
	if strings.TrimSpace(line) != "" {
		ed.state.AppendHistory(line)
	}
	return []rune(line), nil
}

func (ed *lineEditor) Close() error { return ed.state.Close() }
