package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	got := buf.String()
	for _, want := range []string{
		"Usage:",
		"tocpdf [flags] [input_file] [output_file]",
		"readme.md",
		"output.pdf",
		"--timeout",
		"ROD_NO_SANDBOX",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestIsHelpToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{arg: "-h", want: true},
		{arg: "--help", want: true},
		{arg: "help", want: true},
		{arg: "HELP", want: false},
		{arg: "-help", want: false},
		{arg: "readme.md", want: false},
		{arg: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()

			if got := isHelpToken(tt.arg); got != tt.want {
				t.Errorf("isHelpToken(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}
