// Package progtest contains utilities for testing [prog.Program]
// implementations.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"src.tddcalc.sh/pkg/must"
	"src.tddcalc.sh/pkg/prog"
)

// Case is a test case for Test.
type Case struct {
	args   []string
	stdin  string
	checks []checker
}

type checker func(exit int, stdout, stderr string) string

// That returns a new Case that runs the program with the given arguments.
// Unless overridden with the Exits* methods, the program is expected to exit
// with 0.
func That(args ...string) *Case {
	return &Case{args: append([]string{prog.Name}, args...)}
}

// WithStdin returns an altered Case that feeds the given string to the
// program's stdin.
func (c *Case) WithStdin(s string) *Case {
	c.stdin = s
	return c
}

// DoesNothing returns an altered Case that requires the program to exit with
// 0 and write nothing.
func (c *Case) DoesNothing() *Case {
	return c.ExitsWith(0).WritesStdout("").WritesStderr("")
}

// ExitsWith returns an altered Case that requires the program to exit with the
// given status.
func (c *Case) ExitsWith(code int) *Case {
	c.checks = append(c.checks, func(exit int, _, _ string) string {
		if exit != code {
			return fmt.Sprintf("exit %d, want %d", exit, code)
		}
		return ""
	})
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c *Case) WritesStdout(want string) *Case {
	return c.check("stdout", func(_ int, stdout, _ string) bool { return stdout == want }, want)
}

// WritesStdoutContaining returns an altered Case that requires the program to
// write a text containing the given text to stdout.
func (c *Case) WritesStdoutContaining(want string) *Case {
	return c.check("stdout containing", func(_ int, stdout, _ string) bool {
		return strings.Contains(stdout, want)
	}, want)
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c *Case) WritesStderr(want string) *Case {
	return c.check("stderr", func(_ int, _, stderr string) bool { return stderr == want }, want)
}

// WritesStderrContaining returns an altered Case that requires the program to
// write a text containing the given text to stderr.
func (c *Case) WritesStderrContaining(want string) *Case {
	return c.check("stderr containing", func(_ int, _, stderr string) bool {
		return strings.Contains(stderr, want)
	}, want)
}

func (c *Case) check(what string, ok func(exit int, stdout, stderr string) bool, want string) *Case {
	c.checks = append(c.checks, func(exit int, stdout, stderr string) string {
		if !ok(exit, stdout, stderr) {
			return fmt.Sprintf("want %s %q\nstdout: %q\nstderr: %q", what, want, stdout, stderr)
		}
		return ""
	})
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...*Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if len(c.checks) == 0 {
				c.ExitsWith(0)
			}
			for _, check := range c.checks {
				if msg := check(exit, stdout, stderr); msg != "" {
					t.Error(msg)
				}
			}
		})
	}
}

// Run runs a Program with the given stdin and command-line arguments, which
// include the program name. It returns the exit status and what the program
// wrote to stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	// Write stdin concurrently, so that a program that doesn't read it
	// doesn't block us.
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Drain the outputs concurrently, so that the program doesn't block on
	// writing more than a pipe can buffer.
	outCh, errCh := readAllAsync(r1), readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}
