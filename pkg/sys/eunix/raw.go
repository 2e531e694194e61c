//go:build unix

package eunix

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// MakeRaw puts the terminal referenced by fd into a mode where every
// keystroke is delivered as soon as it is typed, without echo. Ctrl-C and
// friends are delivered as characters rather than signals. It returns a
// function that restores the original mode.
func MakeRaw(fd int) (restore func() error, err error) {
	old, err := TermiosForFd(fd)
	if err != nil {
		return nil, err
	}
	raw := old.Copy()
	raw.SetICanon(false)
	raw.SetIExten(false)
	raw.SetEcho(false)
	raw.SetISig(false)
	raw.SetICRNL(true)
	raw.SetVMin(1)
	raw.SetVTime(0)
	if err := raw.ApplyToFd(fd); err != nil {
		return nil, err
	}
	return func() error { return old.ApplyToFd(fd) }, nil
}

// SignalName returns the conventional name of a signal, such as "SIGINT".
// Signals not known to the OS are shown as their number.
func SignalName(sig os.Signal) string {
	if s, ok := sig.(syscall.Signal); ok {
		if name := unix.SignalName(s); name != "" {
			return name
		}
	}
	return sig.String()
}
