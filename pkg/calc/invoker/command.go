// Package invoker queues calculator commands and runs them against a
// receiver.
package invoker

import (
	"fmt"
	"io"

	"src.tddcalc.sh/pkg/calc"
)

// Receiver is the calculator API the commands run against. It is satisfied by
// *calc.Receiver.
type Receiver interface {
	AddInstruction(op calc.Op, value float64) error
	Solve() (float64, error)
	Reset()
	CurrentValue() float64
}

// Command is a deferred operation on a Receiver.
type Command interface {
	Execute() error
}

// AddInstructionCommand adds an instruction to the receiver.
type AddInstructionCommand struct {
	Receiver Receiver
	Op       calc.Op
	Value    float64
}

func (c AddInstructionCommand) Execute() error {
	return c.Receiver.AddInstruction(c.Op, c.Value)
}

// SolveCommand solves the receiver's pending instructions.
type SolveCommand struct{ Receiver Receiver }

func (c SolveCommand) Execute() error {
	_, err := c.Receiver.Solve()
	return err
}

// PrintCommand writes the receiver's current value to Out, on a new line and
// followed by a space. Precision is passed to calc.FormatNum.
type PrintCommand struct {
	Receiver  Receiver
	Out       io.Writer
	Precision int
}

func (c PrintCommand) Execute() error {
	_, err := fmt.Fprintf(c.Out, "\n%s ", calc.FormatNum(c.Receiver.CurrentValue(), c.Precision))
	return err
}

// ResetCommand resets the receiver.
type ResetCommand struct{ Receiver Receiver }

func (c ResetCommand) Execute() error {
	c.Receiver.Reset()
	return nil
}
