//go:build integration && !windows

package tocpdf

// Notes:
// - A fake browser that never reports its DevTools URL stands in for Chrome,
//   so the launch can only end through the context deadline.
// - Uses t.Setenv and cannot run in parallel.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRodRenderer_LaunchHonorsContext(t *testing.T) {
	script := filepath.Join(t.TempDir(), "fake-chrome")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nsleep 30\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake browser: %v", err)
	}
	t.Setenv("ROD_BROWSER_BIN", script)

	r := newRodRenderer(time.Minute)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.RenderFromFile(ctx, filepath.Join(t.TempDir(), "doc.html"))
	elapsed := time.Since(start)

	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("RenderFromFile() error = %v, want ErrBrowserConnect", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("RenderFromFile() error = %v, want it to wrap context.DeadlineExceeded", err)
	}
	if elapsed > 10*time.Second {
		t.Errorf("launch took %v, want it bounded by the context", elapsed)
	}
	if r.browser != nil {
		t.Error("browser should not be set after a failed launch")
	}
}
