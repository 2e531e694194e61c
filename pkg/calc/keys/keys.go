// Package keys turns keystrokes into calculator instructions.
//
// Numbers are typed digit by digit and submitted together with the operator
// that preceded them when the next operator arrives. The special keys are:
//
//   - '!': factorial of the number just typed;
//   - "*1/X": reciprocal of the number before "*1";
//   - '=': solve and print;
//   - 'C': discard the number being typed;
//   - 'A': all clear;
//   - ' ': ignored.
package keys

import (
	"strconv"

	"src.tddcalc.sh/pkg/calc"
)

// Invoker is the command queue keystrokes are mapped to. It is satisfied by
// *invoker.Invoker.
type Invoker interface {
	AddInstruction(op calc.Op, value float64)
	SolveEquation() error
	Clear()
	AllClear()
}

// Messages of RetakeError.
const (
	MsgDivideByZero      = "Cannot divide by zero. Try again."
	MsgInvalidExpression = "Invalid expression! Please try again."
	MsgInvertSyntax      = "Invalid syntax detected for 1/X, please try again."
	MsgInvalidNumber     = "Error! A valid number must follow an operator. Try again."
	MsgCharNotAllowed    = "Character not allowed, try again!"
)

// RetakeError is returned by Scanner.Feed when the input so far has been
// discarded and the user should start again. Msg is meant for the user.
type RetakeError struct {
	Msg   string
	Cause error
}

func (e *RetakeError) Error() string { return e.Msg }

func (e *RetakeError) Unwrap() error { return e.Cause }

// Scanner maps keystrokes to invoker calls. It is not safe for concurrent
// use.
type Scanner struct {
	invoker Invoker
	// Characters of the number being typed.
	num []rune
	// Operator applying to the number being typed.
	op rune
	// Whether "*1/" has been typed and held back as a possible start of
	// "*1/X".
	invertState bool
}

// NewScanner creates a Scanner feeding the given Invoker.
func NewScanner(iv Invoker) *Scanner {
	return &Scanner{invoker: iv, op: '+'}
}

// Feed handles one keystroke. If the keystroke makes the input invalid, the
// invoker is all-cleared, the scanner is reset and a *RetakeError is
// returned.
func (s *Scanner) Feed(ch rune) error {
	if s.invertState && ch != 'X' && ch != 'A' {
		// "*1/" was not followed by X; it was an ordinary "*1".
		s.invertState = false
		if err := s.add(calc.Mul, 1); err != nil {
			return err
		}
	}
	switch {
	case '0' <= ch && ch <= '9', ch == '.':
		s.num = append(s.num, ch)
		return nil
	case ch == '+', ch == '-', ch == '*', ch == '/', ch == '!', ch == 'X':
		return s.operator(ch)
	}
	switch ch {
	case '=':
		if err := s.submit(); err != nil {
			return err
		}
		s.resetOperators()
		if err := s.invoker.SolveEquation(); err != nil {
			return s.retake(MsgInvalidExpression, err)
		}
		return nil
	case 'C':
		if len(s.num) == 0 {
			return nil
		}
		if err := s.submit(); err != nil {
			return err
		}
		s.invoker.Clear()
		return nil
	case 'A':
		s.num = nil
		s.invoker.AllClear()
		s.resetOperators()
		return nil
	case ' ':
		return nil
	default:
		return s.retake(MsgCharNotAllowed, nil)
	}
}

func (s *Scanner) operator(ch rune) error {
	switch {
	case len(s.num) == 0 && ch == '-':
		// The sign of a negative number.
		s.num = append(s.num, ch)
	case ch == 'X':
		if s.op != '/' || !s.invertState {
			return s.retake(MsgInvertSyntax, nil)
		}
		s.invertState = false
		s.op = '+'
		return s.add(calc.Invert, 0)
	case len(s.num) > 0:
		n, err := s.number()
		if err != nil {
			return err
		}
		if s.op == '*' && n == 1 && ch == '/' {
			// Hold back "*1/", it may be the start of "*1/X".
			s.invertState = true
			s.num = nil
			s.op = ch
		} else {
			if err := s.add(calc.Op(s.op), n); err != nil {
				return err
			}
			s.num = nil
			s.op = ch
		}
	default:
		s.op = ch
	}
	if s.op == '!' {
		if err := s.add(calc.Factorial, 0); err != nil {
			return err
		}
		s.op = '+'
	}
	return nil
}

// Submits the number being typed with its operator.
func (s *Scanner) submit() error {
	n, err := s.number()
	if err != nil {
		return err
	}
	if err := s.add(calc.Op(s.op), n); err != nil {
		return err
	}
	s.num = nil
	return nil
}

func (s *Scanner) add(op calc.Op, value float64) error {
	if op == calc.Div && value == 0 {
		return s.retake(MsgDivideByZero, &calc.OperationError{Kind: calc.DivideByZero})
	}
	s.invoker.AddInstruction(op, value)
	return nil
}

func (s *Scanner) number() (float64, error) {
	if len(s.num) == 0 {
		return 0, nil
	}
	f, err := strconv.ParseFloat(string(s.num), 64)
	if err != nil {
		return 0, s.retake(MsgInvalidNumber, err)
	}
	return f, nil
}

func (s *Scanner) retake(msg string, cause error) error {
	s.num = nil
	s.invoker.AllClear()
	s.resetOperators()
	return &RetakeError{msg, cause}
}

func (s *Scanner) resetOperators() {
	s.op = '+'
	s.invertState = false
}
