package calc

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is matched by every *OperationError, so that callers can
// test for any failure of the core with errors.Is.
var ErrInvalidOperation = errors.New("invalid operation")

// ErrorKind classifies an OperationError.
type ErrorKind int

// Possible values of ErrorKind.
const (
	DivideByZero ErrorKind = iota
	InvalidFactorialOperand
	InvalidReciprocalOperand
	// MissingOperand is a pseudo-operator with no instruction beneath it.
	MissingOperand
)

var errorKindNames = [...]string{
	DivideByZero:             "divide by zero",
	InvalidFactorialOperand:  "invalid factorial operand",
	InvalidReciprocalOperand: "invalid reciprocal operand",
	MissingOperand:           "missing operand",
}

func (k ErrorKind) String() string {
	if 0 <= k && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// OperationError is returned when an instruction cannot be added or a
// sequence cannot be solved.
type OperationError struct {
	Kind ErrorKind
	// The offending value; 0 for DivideByZero and MissingOperand.
	Value float64
}

func (e *OperationError) Error() string {
	switch e.Kind {
	case DivideByZero:
		return "cannot divide by zero"
	case InvalidFactorialOperand:
		return fmt.Sprintf("factorial can only be calculated from a non-negative integer, got %s",
			FormatNum(e.Value, -1))
	case InvalidReciprocalOperand:
		return "cannot invert 0"
	case MissingOperand:
		return "pseudo-operator has no operand"
	default:
		return e.Kind.String()
	}
}

// Is reports whether target is ErrInvalidOperation or an *OperationError of
// the same kind.
func (e *OperationError) Is(target error) bool {
	if target == ErrInvalidOperation {
		return true
	}
	if t, ok := target.(*OperationError); ok {
		return t.Kind == e.Kind
	}
	return false
}
