// Tddcalc is a keystroke-driven calculator. It reads an expression key by key,
// honors operator precedence, and keeps the result as the starting value of
// the next expression.
package main

import (
	"os"

	"src.tddcalc.sh/pkg/buildinfo"
	"src.tddcalc.sh/pkg/lsp"
	"src.tddcalc.sh/pkg/prog"
	"src.tddcalc.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &shell.Program{})))
}
