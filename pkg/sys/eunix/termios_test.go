//go:build unix

package eunix

import (
	"os"
	"syscall"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func setupPty(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	return ptmx, tty
}

func TestMakeRaw(t *testing.T) {
	_, tty := setupPty(t)
	fd := int(tty.Fd())

	before, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal(err)
	}
	restore, err := MakeRaw(fd)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal(err)
	}
	if raw.Lflag&unix.ICANON != 0 {
		t.Errorf("ICANON still set in raw mode")
	}
	if raw.Lflag&unix.ECHO != 0 {
		t.Errorf("ECHO still set in raw mode")
	}
	if raw.Cc[unix.VMIN] != 1 {
		t.Errorf("VMIN = %d, want 1", raw.Cc[unix.VMIN])
	}

	if err := restore(); err != nil {
		t.Fatal(err)
	}
	after, err := TermiosForFd(fd)
	if err != nil {
		t.Fatal(err)
	}
	if after.Lflag != before.Lflag || after.Iflag != before.Iflag {
		t.Errorf("terminal mode not restored: got lflag %x iflag %x, want %x %x",
			after.Lflag, after.Iflag, before.Lflag, before.Iflag)
	}
}

func TestRawModeDeliversKeysImmediately(t *testing.T) {
	ptmx, tty := setupPty(t)
	restore, err := MakeRaw(int(tty.Fd()))
	if err != nil {
		t.Fatal(err)
	}
	defer restore()

	// Without a trailing newline, a terminal in canonical mode would hold
	// the key back.
	ptmx.Write([]byte("5"))
	buf := make([]byte, 1)
	n, err := tty.Read(buf)
	if n != 1 || err != nil || buf[0] != '5' {
		t.Errorf("Read -> (%d, %v, %q), want (1, nil, \"5\")", n, err, buf[:n])
	}
}

func TestMakeRaw_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if _, err := MakeRaw(int(r.Fd())); err == nil {
		t.Errorf("MakeRaw on a pipe returns nil error")
	}
}

func TestSignalName(t *testing.T) {
	if name := SignalName(syscall.SIGINT); name != "SIGINT" {
		t.Errorf("SignalName(SIGINT) -> %q", name)
	}
	if name := SignalName(os.Interrupt); name != "SIGINT" {
		t.Errorf("SignalName(os.Interrupt) -> %q", name)
	}
}
