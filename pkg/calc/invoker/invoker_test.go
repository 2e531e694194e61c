package invoker

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.tddcalc.sh/pkg/calc"
)

// fakeReceiver records the calls made to it.
type fakeReceiver struct {
	calls    []string
	insts    []calc.Instruction
	value    float64
	solveErr error
}

func (r *fakeReceiver) AddInstruction(op calc.Op, value float64) error {
	r.calls = append(r.calls, "AddInstruction")
	r.insts = append(r.insts, calc.Instruction{Op: op, Value: value})
	return nil
}

func (r *fakeReceiver) Solve() (float64, error) {
	r.calls = append(r.calls, "Solve")
	return r.value, r.solveErr
}

func (r *fakeReceiver) Reset() { r.calls = append(r.calls, "Reset") }

func (r *fakeReceiver) CurrentValue() float64 {
	r.calls = append(r.calls, "CurrentValue")
	return r.value
}

func TestAddInstruction_OnlyQueues(t *testing.T) {
	r := &fakeReceiver{}
	iv := New(r, &strings.Builder{}, -1)

	iv.AddInstruction(calc.Add, 5)

	if iv.QueueLen() != 1 {
		t.Errorf("QueueLen() -> %d, want 1", iv.QueueLen())
	}
	if len(r.calls) != 0 {
		t.Errorf("receiver called before solving: %v", r.calls)
	}
}

func TestSolveEquation(t *testing.T) {
	r := &fakeReceiver{value: 5}
	var out strings.Builder
	iv := New(r, &out, -1)

	iv.AddInstruction(calc.Add, 5)
	err := iv.SolveEquation()

	if err != nil {
		t.Errorf("SolveEquation -> %v", err)
	}
	wantCalls := []string{"AddInstruction", "Solve", "CurrentValue"}
	if diff := cmp.Diff(wantCalls, r.calls); diff != "" {
		t.Errorf("receiver calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]calc.Instruction{{Op: calc.Add, Value: 5}}, r.insts); diff != "" {
		t.Errorf("instructions (-want +got):\n%s", diff)
	}
	if out.String() != "\n5 " {
		t.Errorf("printed %q, want %q", out.String(), "\n5 ")
	}
	if iv.QueueLen() != 0 {
		t.Errorf("QueueLen() -> %d after solving, want 0", iv.QueueLen())
	}
}

func TestSolveEquation_ErrorDropsQueue(t *testing.T) {
	errSolve := errors.New("solve failed")
	r := &fakeReceiver{solveErr: errSolve}
	var out strings.Builder
	iv := New(r, &out, -1)

	iv.AddInstruction(calc.Add, 5)
	err := iv.SolveEquation()

	if err != errSolve {
		t.Errorf("SolveEquation -> %v, want %v", err, errSolve)
	}
	if out.String() != "" {
		t.Errorf("printed %q after failure, want nothing", out.String())
	}
	if iv.QueueLen() != 0 {
		t.Errorf("QueueLen() -> %d, want 0", iv.QueueLen())
	}
}

func TestClear(t *testing.T) {
	r := &fakeReceiver{}
	iv := New(r, &strings.Builder{}, -1)

	iv.AddInstruction(calc.Add, 5)
	iv.AddInstruction(calc.Mul, 10)
	iv.Clear()
	iv.SolveEquation()

	if diff := cmp.Diff([]calc.Instruction{{Op: calc.Add, Value: 5}}, r.insts); diff != "" {
		t.Errorf("instructions (-want +got):\n%s", diff)
	}
}

func TestClear_EmptyQueue(t *testing.T) {
	iv := New(&fakeReceiver{}, &strings.Builder{}, -1)
	iv.Clear()
	if iv.QueueLen() != 0 {
		t.Errorf("QueueLen() -> %d, want 0", iv.QueueLen())
	}
}

func TestAllClear(t *testing.T) {
	r := &fakeReceiver{}
	iv := New(r, &strings.Builder{}, -1)

	iv.AddInstruction(calc.Add, 5)
	iv.AddInstruction(calc.Add, 5)
	iv.AllClear()

	if iv.QueueLen() != 0 {
		t.Errorf("QueueLen() -> %d, want 0", iv.QueueLen())
	}
	if diff := cmp.Diff([]string{"Reset"}, r.calls); diff != "" {
		t.Errorf("receiver calls (-want +got):\n%s", diff)
	}
}

func TestWithCalcReceiver(t *testing.T) {
	var out strings.Builder
	iv := New(calc.NewReceiver(), &out, 2)

	iv.AddInstruction(calc.Add, -5)
	iv.AddInstruction(calc.Mul, 5)
	iv.AddInstruction(calc.Div, 3)
	if err := iv.SolveEquation(); err != nil {
		t.Fatalf("SolveEquation -> %v", err)
	}
	if out.String() != "\n-8.33 " {
		t.Errorf("printed %q, want %q", out.String(), "\n-8.33 ")
	}

	// Instructions reach the receiver only when solving, so dividing by zero
	// is reported by SolveEquation.
	iv.AddInstruction(calc.Div, 0)
	err := iv.SolveEquation()
	if !errors.Is(err, &calc.OperationError{Kind: calc.DivideByZero}) {
		t.Errorf("SolveEquation -> %v, want DivideByZero", err)
	}
}

func TestCommands(t *testing.T) {
	r := &fakeReceiver{value: 2.5}
	var out strings.Builder
	cmds := []Command{
		AddInstructionCommand{r, calc.Sub, 1},
		SolveCommand{r},
		PrintCommand{r, &out, -1},
		ResetCommand{r},
	}
	for _, cmd := range cmds {
		if err := cmd.Execute(); err != nil {
			t.Errorf("%T.Execute() -> %v", cmd, err)
		}
	}
	wantCalls := []string{"AddInstruction", "Solve", "CurrentValue", "Reset"}
	if diff := cmp.Diff(wantCalls, r.calls); diff != "" {
		t.Errorf("receiver calls (-want +got):\n%s", diff)
	}
	if out.String() != "\n2.5 " {
		t.Errorf("printed %q, want %q", out.String(), "\n2.5 ")
	}
}
