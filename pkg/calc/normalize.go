package calc

import "math"

// Normalize drains the stack and returns its instructions in the order they
// were pushed, with every pseudo-operator resolved against the instruction
// immediately beneath it. A resolved instruction keeps the operator of its
// operand.
//
// The stack is always left empty, including when an error is returned.
func Normalize(s *Stack) ([]Instruction, error) {
	defer s.clear()
	// Instructions are popped right to left, so they are collected in reverse
	// and flipped at the end.
	var rev []Instruction
	for {
		in, ok := s.Pop()
		if !ok {
			break
		}
		if !in.Op.IsPseudo() {
			rev = append(rev, in)
			continue
		}
		operand, ok := s.Pop()
		if !ok {
			return nil, &OperationError{Kind: MissingOperand}
		}
		resolved, err := resolve(in.Op, operand)
		if err != nil {
			return nil, err
		}
		rev = append(rev, resolved)
	}
	seq := make([]Instruction, len(rev))
	for i, in := range rev {
		seq[len(rev)-1-i] = in
	}
	for _, in := range seq {
		if in.Op == Div && in.Value == 0 {
			return nil, &OperationError{Kind: DivideByZero}
		}
	}
	return seq, nil
}

func resolve(pseudo Op, operand Instruction) (Instruction, error) {
	switch pseudo {
	case Factorial:
		v, err := factorial(operand.Value)
		if err != nil {
			return Instruction{}, err
		}
		operand.Value = v
	case Invert:
		if operand.Value == 0 {
			return Instruction{}, &OperationError{Kind: InvalidReciprocalOperand}
		}
		operand.Value = 1 / operand.Value
	}
	return operand, nil
}

func factorial(n float64) (float64, error) {
	if math.Mod(n, 1) != 0 || n < 0 {
		return 0, &OperationError{Kind: InvalidFactorialOperand, Value: n}
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
		if math.IsInf(result, 1) {
			break
		}
	}
	return result, nil
}

func (s *Stack) clear() { s.insts = nil }
