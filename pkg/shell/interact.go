package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"src.tddcalc.sh/pkg/calc/keys"
	"src.tddcalc.sh/pkg/rc"
	"src.tddcalc.sh/pkg/store/storedefs"
	"src.tddcalc.sh/pkg/sys"
)

const banner = "Enter an expression followed by the '=' key. Use 'Q' to exit."

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	RC rc.Config
	// Store is where results are saved. It may be nil.
	Store storedefs.Store
}

// Interact runs an interactive calculator session until 'Q' is typed or the
// input ends.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	ed := newEditor(fds, cfg)
	restoreSignal := initSignal(fds[2], ed)
	defer restoreSignal()
	defer func() {
		if err := ed.Close(); err != nil {
			logger.Println("failed to close editor:", err)
		}
	}()

	fmt.Fprintln(fds[1], banner)
	s := newSession(fds[1], fds[2], cfg.RC, cfg.Store)
	for {
		typed, err := ed.ReadKeys()
		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			break
		}
		for _, ch := range typed {
			if ch == 'Q' {
				fmt.Fprintln(fds[1])
				return
			}
			if err := s.feed(ch); err != nil {
				showRetake(fds[1], err)
			}
		}
	}
}

func newEditor(fds [3]*os.File, cfg *InteractConfig) editor {
	if !sys.IsATTY(fds[0].Fd()) {
		return newPlainEditor(fds[0])
	}
	if cfg.RC.Editor == rc.EditorKey {
		ed, err := newKeyEditor(fds[0], fds[1])
		if err == nil {
			return ed
		}
		fmt.Fprintln(fds[2], "Cannot read single keys:", err)
		fmt.Fprintln(fds[2], "Falling back to line editor")
	}
	return newLineEditor(cfg.RC.Prompt, cfg.Store)
}

func showRetake(w io.Writer, err error) {
	var retake *keys.RetakeError
	if errors.As(err, &retake) {
		fmt.Fprintln(w, "\n"+retake.Msg)
	} else {
		fmt.Fprintln(w, "\n"+err.Error())
	}
}

func initSignal(stderr io.Writer, ed editor) func() {
	sigCh := sys.NotifySignals()
	go func() {
		for sig := range sigCh {
			if ignoreSignal(sig) {
				continue
			}
			logger.Println("signal", signalName(sig))
			handleSignal(sig, stderr, ed)
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
