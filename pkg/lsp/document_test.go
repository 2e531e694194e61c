package lsp

import (
	"testing"

	"src.tddcalc.sh/pkg/calc/keys"
	"src.tddcalc.sh/pkg/tt"
)

func values(content string) []float64 { return evaluate(content).values }

func problems(content string) []problem { return evaluate(content).problems }

func TestEvaluate_Values(t *testing.T) {
	tt.Test(t, tt.Fn("values", values), tt.Table{
		tt.Args("").Rets([]float64(nil)),
		tt.Args("5+3").Rets([]float64{8}),
		tt.Args("5+3=").Rets([]float64{8}),
		tt.Args("5+3= ").Rets([]float64{8}),
		// The accumulator carries over lines.
		tt.Args("5+3\n*2\n").Rets([]float64{8, 16}),
		tt.Args("5+3\r\n*2\r\n").Rets([]float64{8, 16}),
		tt.Args("5+3\r*2\r").Rets([]float64{8, 16}),
		tt.Args("5+3\r\n\r*2").Rets([]float64{8, 8, 16}),
		// Comments and blank lines keep the accumulator.
		tt.Args("5+3\n# double it\n\n*2").Rets([]float64{8, 8, 8, 16}),
		// A retake resets the accumulator.
		tt.Args("5+3\n/0\n+1").Rets([]float64{8, 0, 1}),
	})
}

func TestEvaluate_Problems(t *testing.T) {
	tt.Test(t, tt.Fn("problems", problems), tt.Table{
		tt.Args("5+3\n*2").Rets([]problem(nil)),
		tt.Args("5%3").Rets([]problem{{1, 2, keys.MsgCharNotAllowed}}),
		tt.Args("1+1\n5/0+1").Rets([]problem{{7, 8, keys.MsgDivideByZero}}),
		tt.Args("1+1\r5/0+1").Rets([]problem{{7, 8, keys.MsgDivideByZero}}),
		// The division by zero is only found with the implicit '='.
		tt.Args("5/0").Rets([]problem{{3, 3, keys.MsgDivideByZero}}),
		tt.Args("0.5!").Rets([]problem{{4, 4, keys.MsgInvalidExpression}}),
		tt.Args("2X").Rets([]problem{{1, 2, keys.MsgInvertSyntax}}),
		// One problem per retake.
		tt.Args("1%2%3").Rets([]problem{
			{1, 2, keys.MsgCharNotAllowed}, {3, 4, keys.MsgCharNotAllowed}}),
		tt.Args("5+é").Rets([]problem{{2, 4, keys.MsgCharNotAllowed}}),
	})
}

func TestEvaluate_LinesMatchPositions(t *testing.T) {
	tests := []struct {
		content string
		line    int
	}{
		{"1+1\n2%3\n", 1},
		{"1+1\r2%3\r", 1},
		{"1+1\r\n2%3\r\n", 1},
		{"# note\r\r\n2%3", 2},
	}
	for _, test := range tests {
		ev := evaluate(test.content)
		if len(ev.values) != test.line+1 {
			t.Errorf("evaluate(%q) has %d values, want %d",
				test.content, len(ev.values), test.line+1)
		}
		if len(ev.problems) != 1 {
			t.Fatalf("evaluate(%q) has %d problems, want 1",
				test.content, len(ev.problems))
		}
		pos := lspPositionFromIdx(test.content, ev.problems[0].From)
		if pos.Line != test.line {
			t.Errorf("evaluate(%q) reports a problem on line %d, want %d",
				test.content, pos.Line, test.line)
		}
	}
}
