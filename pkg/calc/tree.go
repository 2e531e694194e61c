package calc

import "strings"

// Node is a node of an expression tree. A leaf has Op == Leaf and holds its
// value in Value; an internal node has a binary Op and both children.
type Node struct {
	Op    Op
	Left  *Node
	Right *Node
	Value float64
}

// Build builds an expression tree from an ordered instruction sequence.
//
// The root is the rightmost low-tier operator, or if there is none, the
// rightmost high-tier operator. Everything left of it forms the left subtree;
// the right subtree starts with the root's own instruction, which then only
// contributes its value. A sequence without operators is a leaf holding the
// value of its first instruction, or 0 if it is empty.
//
// The sequence is not modified.
func Build(seq []Instruction) *Node {
	b := &builder{seq, make([]bool, len(seq))}
	return b.build(0, len(seq)-1)
}

type builder struct {
	seq []Instruction
	// Whether the operator at each index has already been used by a node.
	claimed []bool
}

func (b *builder) build(lo, hi int) *Node {
	i := b.findRightmost(lo, hi, LowTier)
	if i < 0 {
		i = b.findRightmost(lo, hi, HighTier)
	}
	if i < 0 {
		if lo > hi {
			return &Node{Op: Leaf}
		}
		return &Node{Op: Leaf, Value: b.seq[lo].Value}
	}
	b.claimed[i] = true
	return &Node{
		Op:    b.seq[i].Op,
		Left:  b.build(lo, i-1),
		Right: b.build(i, hi),
	}
}

func (b *builder) findRightmost(lo, hi, tier int) int {
	for i := hi; i >= lo; i-- {
		if !b.claimed[i] && b.seq[i].Op.Tier() == tier {
			return i
		}
	}
	return -1
}

// Eval evaluates the tree. Division by zero follows IEEE 754.
func (n *Node) Eval() float64 {
	switch n.Op {
	case Add:
		return n.Left.Eval() + n.Right.Eval()
	case Sub:
		return n.Left.Eval() - n.Right.Eval()
	case Mul:
		return n.Left.Eval() * n.Right.Eval()
	case Div:
		return n.Left.Eval() / n.Right.Eval()
	default:
		return n.Value
	}
}

// String returns the tree in prefix notation, like "(+ 5 (* 3 2))".
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.Op == Leaf {
		sb.WriteString(FormatNum(n.Value, -1))
		return
	}
	sb.WriteString("(")
	sb.WriteString(n.Op.String())
	sb.WriteString(" ")
	n.Left.write(sb)
	sb.WriteString(" ")
	n.Right.write(sb)
	sb.WriteString(")")
}
