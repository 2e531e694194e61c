package shell

import (
	"fmt"
	"io"
	"strings"

	"src.tddcalc.sh/pkg/calc"
	"src.tddcalc.sh/pkg/calc/invoker"
	"src.tddcalc.sh/pkg/calc/keys"
	"src.tddcalc.sh/pkg/rc"
	"src.tddcalc.sh/pkg/store/storedefs"
)

// A session ties keystrokes to a calculator, saving results to the store when
// there is one.
type session struct {
	receiver *calc.Receiver
	scanner  *keys.Scanner
	store    storedefs.Store
	record   bool
	stderr   io.Writer

	// Keys typed since the last '='.
	typed strings.Builder
}

func newSession(out, stderr io.Writer, cfg rc.Config, st storedefs.Store) *session {
	r := calc.NewReceiver()
	s := &session{
		receiver: r,
		scanner:  keys.NewScanner(invoker.New(r, out, cfg.Precision)),
		store:    st,
		record:   cfg.Record,
		stderr:   stderr,
	}
	if st != nil && cfg.Restore {
		v, err := st.Accumulator()
		if err != nil {
			s.warn("cannot restore accumulator", err)
		} else {
			logger.Println("restoring accumulator", v)
			r.Restore(v)
		}
	}
	return s
}

// Feeds one key. The returned error, if any, is a *keys.RetakeError.
func (s *session) feed(ch rune) error {
	if ch != ' ' {
		s.typed.WriteRune(ch)
	}
	err := s.scanner.Feed(ch)
	switch {
	case err != nil:
		s.typed.Reset()
		s.saveAccumulator()
	case ch == '=':
		s.recordResult(s.typed.String())
		s.typed.Reset()
		s.saveAccumulator()
	case ch == 'A':
		s.typed.Reset()
		s.saveAccumulator()
	}
	return err
}

func (s *session) value() float64 { return s.receiver.CurrentValue() }

func (s *session) recordResult(keys string) {
	if s.store == nil || !s.record {
		return
	}
	seq, err := s.store.AddResult(keys, s.value())
	if err != nil {
		s.warn("cannot save result", err)
		return
	}
	logger.Printf("saved result #%d: %s %v", seq, keys, s.value())
}

func (s *session) saveAccumulator() {
	if s.store == nil {
		return
	}
	if err := s.store.SetAccumulator(s.value()); err != nil {
		s.warn("cannot save accumulator", err)
	}
}

func (s *session) warn(what string, err error) {
	logger.Printf("%s: %v", what, err)
	fmt.Fprintf(s.stderr, "Warning: %s: %v\n", what, err)
}
