package calc

import "src.tddcalc.sh/pkg/logutil"

var logger = logutil.GetLogger("[calc] ")

// Receiver holds the running value of a calculator session and the stack of
// instructions entered since the last solve. A Receiver is not safe for
// concurrent use.
type Receiver struct {
	value float64
	stack *Stack
}

// NewReceiver returns a Receiver with a running value of 0.
func NewReceiver() *Receiver {
	r := &Receiver{}
	r.resetStack()
	return r
}

// AddInstruction pushes an instruction. Dividing by 0 is rejected immediately
// and leaves the stack unchanged.
func (r *Receiver) AddInstruction(op Op, value float64) error {
	if op == Div && value == 0 {
		return &OperationError{Kind: DivideByZero}
	}
	r.stack.Push(Instruction{op, value})
	return nil
}

// Solve evaluates the pending instructions and makes the result the new
// running value. The stack is replaced with a single continuation instruction
// holding the running value.
//
// On error, the running value is unchanged and the pending instructions are
// discarded.
func (r *Receiver) Solve() (float64, error) {
	defer r.resetStack()
	seq, err := Normalize(r.stack)
	if err != nil {
		logger.Println("solve failed:", err)
		return 0, err
	}
	tree := Build(seq)
	r.value = tree.Eval()
	logger.Printf("solved %v = %v", tree, r.value)
	return r.value, nil
}

// Reset sets the running value to 0 and discards pending instructions.
func (r *Receiver) Reset() {
	r.value = 0
	r.resetStack()
}

// Restore sets the running value, discarding pending instructions. It is used
// to resume a saved session.
func (r *Receiver) Restore(value float64) {
	r.value = value
	r.resetStack()
}

// CurrentValue returns the running value.
func (r *Receiver) CurrentValue() float64 { return r.value }

// LastInstruction returns the most recently pushed instruction, or the
// continuation instruction if nothing has been pushed since the last solve.
func (r *Receiver) LastInstruction() Instruction {
	in, _ := r.stack.Peek()
	return in
}

// Pending returns the instructions on the stack, bottom first.
func (r *Receiver) Pending() []Instruction { return r.stack.Instructions() }

func (r *Receiver) resetStack() {
	r.stack = NewStack(Instruction{Continue, r.value})
}
