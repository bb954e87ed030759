package main

import (
	_ "embed"
	"fmt"
	"io"
)

// usageDoc is the full help text printed for -h, --help and help.
//
//go:embed usage.txt
var usageDoc string

// printUsage prints the embedded usage documentation.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageDoc)
}

// printMissingInput reports an input file that does not exist.
func printMissingInput(w io.Writer, input string) {
	fmt.Fprintf(w, "Error: %s not found!\n", input)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s [input_file] [output_file]\n", programName)
	fmt.Fprintf(w, "Example: %s readme.md output.pdf\n", programName)
}

// isHelpToken reports whether arg asks for help.
func isHelpToken(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
