package progtest

import (
	"fmt"
	"os"
	"testing"

	"src.tddcalc.sh/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	Test(t, noisyProgram{},
		That().WritesStdoutContaining("hello"),
	)
}

type noisyProgram struct{}

func (noisyProgram) RegisterFlags(f *prog.FlagSet) {}

func (noisyProgram) Run(fds [3]*os.File, args []string) error {
	// We need enough data to verify whether we're likely to deadlock due to
	// filling the pipe before the test completes. Pipes typically buffer 8 to
	// 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

func TestStdin(t *testing.T) {
	Test(t, catProgram{},
		That().WithStdin("5+3=").WritesStdout("5+3="),
	)
}

type catProgram struct{}

func (catProgram) RegisterFlags(f *prog.FlagSet) {}

func (catProgram) Run(fds [3]*os.File, args []string) error {
	buf := make([]byte, 64)
	n, _ := fds[0].Read(buf)
	fds[1].Write(buf[:n])
	return nil
}

func TestOutputChecks(t *testing.T) {
	Test(t, twoStreamProgram{},
		That().ExitsWith(3).
			WritesStdout("out\n").WritesStdoutContaining("ou").
			WritesStderr("err\n").WritesStderrContaining("rr"),
	)
}

type twoStreamProgram struct{}

func (twoStreamProgram) RegisterFlags(f *prog.FlagSet) {}

func (twoStreamProgram) Run(fds [3]*os.File, args []string) error {
	fmt.Fprintln(fds[1], "out")
	fmt.Fprintln(fds[2], "err")
	return prog.Exit(3)
}
