package logutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")

	var sb strings.Builder
	SetOutput(&sb)
	logger.Println("hello")

	if got := sb.String(); !strings.Contains(got, "[test] ") || !strings.HasSuffix(got, "hello\n") {
		t.Errorf("logged %q, want it to contain prefix and message", got)
	}
}

func TestSetOutputFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })
	logger := GetLogger("[test] ")

	fname := filepath.Join(t.TempDir(), "log")
	if err := SetOutputFile(fname); err != nil {
		t.Fatalf("SetOutputFile: %v", err)
	}
	logger.Println("to file")
	// Closes the file.
	SetOutputFile("")
	logger.Println("discarded")

	content, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if s := string(content); !strings.Contains(s, "to file") || strings.Contains(s, "discarded") {
		t.Errorf("log file contains %q", s)
	}
}

func TestSetOutputFile_Error(t *testing.T) {
	err := SetOutputFile(filepath.Join(t.TempDir(), "no", "such", "dir", "log"))
	if err == nil {
		t.Errorf("SetOutputFile on bad path returned nil error")
	}
}
