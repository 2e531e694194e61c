package calc

// Stack is a last-in-first-out stack of instructions. The zero value is an
// empty stack.
type Stack struct {
	insts []Instruction
}

// NewStack returns a stack containing the given instructions, the last one on
// top.
func NewStack(insts ...Instruction) *Stack {
	return &Stack{append([]Instruction(nil), insts...)}
}

// Push pushes an instruction onto the stack.
func (s *Stack) Push(in Instruction) { s.insts = append(s.insts, in) }

// Pop removes and returns the top of the stack. It returns false if the stack
// is empty.
func (s *Stack) Pop() (Instruction, bool) {
	if len(s.insts) == 0 {
		return Instruction{}, false
	}
	in := s.insts[len(s.insts)-1]
	s.insts = s.insts[:len(s.insts)-1]
	return in, true
}

// Peek returns the top of the stack without removing it.
func (s *Stack) Peek() (Instruction, bool) {
	if len(s.insts) == 0 {
		return Instruction{}, false
	}
	return s.insts[len(s.insts)-1], true
}

// Len returns the number of instructions on the stack.
func (s *Stack) Len() int { return len(s.insts) }

// Instructions returns a copy of the stack contents, bottom first.
func (s *Stack) Instructions() []Instruction {
	return append([]Instruction(nil), s.insts...)
}
