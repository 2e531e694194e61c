package lsp

import (
	"fmt"
	"testing"

	. "src.tddcalc.sh/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	initialize := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`
	Test(t, &Program{},
		That("-lsp").DoesNothing(),
		That("-lsp").
			WithStdin(fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(initialize), initialize)).
			WritesStdoutContaining(`"hoverProvider":true`),

		That().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}
