// Package calc implements the core of the calculator: it turns a stack of
// (operator, value) instructions into an expression tree honoring operator
// precedence and evaluates it, keeping a running value across evaluations.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op is the operator of an Instruction. Binary operators combine the
// accumulation on their left with the instruction's value; pseudo-operators
// modify the instruction beneath them on the stack; Continue carries a value
// without an operator.
type Op byte

// Possible values of Op.
const (
	Add       Op = '+'
	Sub       Op = '-'
	Mul       Op = '*'
	Div       Op = '/'
	Factorial Op = '!'
	Invert    Op = 'I'
	Continue  Op = 'N'

	// Leaf is the Op of a leaf Node. It never appears in an Instruction.
	Leaf Op = 'L'
)

// Precedence tiers of binary operators.
const (
	NoTier   = 0
	LowTier  = 1
	HighTier = 2
)

// ParseOp returns the Op denoted by a keystroke character.
func ParseOp(r rune) (Op, bool) {
	if r >= 0x80 {
		return 0, false
	}
	switch op := Op(r); op {
	case Add, Sub, Mul, Div, Factorial, Invert, Continue:
		return op, true
	}
	return 0, false
}

// Tier returns the precedence tier of the operator. Operators that are not
// binary have NoTier.
func (op Op) Tier() int {
	switch op {
	case Add, Sub:
		return LowTier
	case Mul, Div:
		return HighTier
	default:
		return NoTier
	}
}

// IsBinary reports whether op is one of the four binary operators.
func (op Op) IsBinary() bool { return op.Tier() != NoTier }

// IsPseudo reports whether op is a unary pseudo-operator.
func (op Op) IsPseudo() bool { return op == Factorial || op == Invert }

func (op Op) String() string {
	switch op {
	case Add, Sub, Mul, Div, Factorial:
		return string(rune(op))
	case Invert:
		return "1/x"
	case Continue:
		return "cont"
	case Leaf:
		return "leaf"
	default:
		return fmt.Sprintf("Op(%d)", byte(op))
	}
}

// Instruction is an operator with the value it applies to.
type Instruction struct {
	Op    Op
	Value float64
}

func (in Instruction) String() string {
	return in.Op.String() + " " + FormatNum(in.Value, -1)
}

// FormatNum formats a number for display. A negative precision uses the
// smallest number of digits necessary to represent the value exactly.
// Trailing zeros after the decimal point are dropped.
func FormatNum(f float64, precision int) string {
	if f == 0 {
		// Turns -0 into 0.
		f = 0
	} else if math.Abs(f) < 1e-4 {
		return trimZeros(strconv.FormatFloat(f, 'e', precision, 64))
	}
	// Like 'g', but without switching to scientific notation for moderately
	// large integers such as 1234567.
	s := strconv.FormatFloat(f, 'f', precision, 64)
	intPart := strings.TrimPrefix(s, "-")
	if i := strings.IndexByte(intPart, '.'); i >= 0 {
		intPart = intPart[:i]
	}
	if len(intPart) > 14 && intPart[len(intPart)-1] == '0' {
		return trimZeros(strconv.FormatFloat(f, 'e', precision, 64))
	}
	return trimZeros(s)
}

// Drops trailing zeros from the fraction of s, keeping any exponent.
func trimZeros(s string) string {
	mantissa, exp := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mantissa, exp = s[:i], s[i:]
	}
	if strings.ContainsRune(mantissa, '.') {
		mantissa = strings.TrimRight(strings.TrimRight(mantissa, "0"), ".")
	}
	return mantissa + exp
}
