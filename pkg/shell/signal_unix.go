//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"src.tddcalc.sh/pkg/sys"
	"src.tddcalc.sh/pkg/sys/eunix"
)

func ignoreSignal(sig os.Signal) bool {
	// SIGURG isn't interesting since it is used internally by the Go runtime on UNIX and occurs
	// with great frequency. SIGWINCH and SIGCHLD don't concern us.
	switch sig {
	case syscall.SIGURG, syscall.SIGWINCH, syscall.SIGCHLD:
		return true
	}
	return false
}

func signalName(sig os.Signal) string {
	return eunix.SignalName(sig)
}

func handleSignal(sig os.Signal, stderr io.Writer, ed editor) {
	switch sig {
	case syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT:
		ed.Close()
		os.Exit(0)
	case syscall.SIGUSR1:
		fmt.Fprint(stderr, sys.DumpStack())
	}
}
