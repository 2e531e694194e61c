package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"src.tddcalc.sh/pkg/calc"
	"src.tddcalc.sh/pkg/rc"
	"src.tddcalc.sh/pkg/store/storedefs"
)

// Script feeds the keys in code to a new session, solving at the end if code
// doesn't end with '='. It prints the final value to fds[1] and returns the
// exit status: 0 on success, 2 if the keys had to be retaken.
func Script(fds [3]*os.File, code string, cfg rc.Config, st storedefs.Store) int {
	if !strings.HasSuffix(code, "=") {
		code += "="
	}
	// Intermediate results are not interesting.
	s := newSession(io.Discard, fds[2], cfg, st)
	for _, ch := range code {
		if err := s.feed(ch); err != nil {
			fmt.Fprintln(fds[2], err)
			return 2
		}
	}
	fmt.Fprintln(fds[1], calc.FormatNum(s.value(), cfg.Precision))
	return 0
}
