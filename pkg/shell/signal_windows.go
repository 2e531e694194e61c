package shell

import (
	"io"
	"os"
)

func ignoreSignal(sig os.Signal) bool { return false }

func signalName(sig os.Signal) string { return sig.String() }

func handleSignal(sig os.Signal, stderr io.Writer, ed editor) {
	if sig == os.Interrupt {
		ed.Close()
		os.Exit(0)
	}
}
