//go:build !windows

package main

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
)

// Sends a real SIGINT while a conversion is running. Not parallel: every
// live notifyContext in the process would observe the signal.
func TestRunMain_InterruptCancelsConversion(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(input, []byte("# Doc\n"), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	conv := &blockingConverter{onStart: func() {
		_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
	}}
	env, _, stderr := blockingEnv(conv)

	if code := runMain([]string{input, filepath.Join(dir, "doc.pdf")}, env); code != ExitFailure {
		t.Errorf("runMain() = %d, want %d", code, ExitFailure)
	}
	if !strings.Contains(stderr.String(), "context canceled") {
		t.Errorf("stderr = %q, want a canceled conversion", stderr.String())
	}
}
