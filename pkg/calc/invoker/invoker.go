package invoker

import (
	"io"

	"src.tddcalc.sh/pkg/calc"
	"src.tddcalc.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[invoker] ")

// Invoker queues commands for a Receiver. Instructions only reach the
// receiver when the queue is executed by SolveEquation.
type Invoker struct {
	receiver  Receiver
	out       io.Writer
	precision int
	queue     []Command
}

// New creates an Invoker. The results of solving are printed to out with the
// given precision; see calc.FormatNum.
func New(r Receiver, out io.Writer, precision int) *Invoker {
	return &Invoker{receiver: r, out: out, precision: precision}
}

// AddInstruction queues an instruction.
func (iv *Invoker) AddInstruction(op calc.Op, value float64) {
	iv.queue = append(iv.queue, AddInstructionCommand{iv.receiver, op, value})
}

// SolveEquation queues a solve and a print command and executes the whole
// queue. If a command fails, the rest of the queue is dropped and the error is
// returned.
func (iv *Invoker) SolveEquation() error {
	iv.queue = append(iv.queue,
		SolveCommand{iv.receiver},
		PrintCommand{iv.receiver, iv.out, iv.precision})
	return iv.executeAll()
}

// Clear drops the most recently queued command, if any.
func (iv *Invoker) Clear() {
	if len(iv.queue) > 0 {
		iv.queue = iv.queue[:len(iv.queue)-1]
	}
}

// AllClear drops all queued commands and resets the receiver.
func (iv *Invoker) AllClear() {
	iv.queue = nil
	ResetCommand{iv.receiver}.Execute()
}

// QueueLen returns the number of queued commands.
func (iv *Invoker) QueueLen() int { return len(iv.queue) }

// Receiver returns the receiver commands run against.
func (iv *Invoker) Receiver() Receiver { return iv.receiver }

func (iv *Invoker) executeAll() error {
	for len(iv.queue) > 0 {
		cmd := iv.queue[0]
		iv.queue = iv.queue[1:]
		if err := cmd.Execute(); err != nil {
			logger.Printf("%T failed, dropping %d queued commands: %v", cmd, len(iv.queue), err)
			iv.queue = nil
			return err
		}
	}
	return nil
}
