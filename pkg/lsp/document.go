package lsp

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"src.tddcalc.sh/pkg/calc"
	"src.tddcalc.sh/pkg/calc/invoker"
	"src.tddcalc.sh/pkg/calc/keys"
)

// A problem found in a document. From and To are byte indices.
type problem struct {
	From, To int
	Message  string
}

// The result of evaluating a document.
type evaluation struct {
	// The accumulator after each line.
	values   []float64
	problems []problem
}

// Evaluates a document line by line with a fresh calculator. A line that
// doesn't end with '=' gets an implicit one. Evaluation carries on after a
// retake, which leaves the accumulator at 0.
func evaluate(content string) evaluation {
	r := calc.NewReceiver()
	sc := keys.NewScanner(invoker.New(r, io.Discard, -1))
	var ev evaluation

	for _, ln := range splitLines(content) {
		body := ln.body
		if trimmed := strings.TrimSpace(body); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			for i, ch := range body {
				if err := sc.Feed(ch); err != nil {
					_, size := utf8.DecodeRuneInString(body[i:])
					ev.addProblem(ln.start+i, ln.start+i+size, err)
				}
			}
			if !strings.HasSuffix(strings.TrimRight(body, " "), "=") {
				if err := sc.Feed('='); err != nil {
					end := ln.start + len(body)
					ev.addProblem(end, end, err)
				}
			}
		}
		ev.values = append(ev.values, r.CurrentValue())
	}
	return ev
}

type line struct {
	// Byte index of the first character of the line.
	start int
	// The line without its terminator.
	body string
}

// Splits content into lines terminated by "\r\n", "\r" or "\n", the same
// breaks walkString counts. A trailing terminator does not start a new line.
func splitLines(content string) []line {
	var lines []line
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			lines = append(lines, line{start, content[start:i]})
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, line{start, content[start:i]})
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, line{start, content[start:]})
	}
	return lines
}

func (ev *evaluation) addProblem(from, to int, err error) {
	msg := err.Error()
	var retake *keys.RetakeError
	if errors.As(err, &retake) {
		msg = retake.Msg
	}
	ev.problems = append(ev.problems, problem{from, to, msg})
}
