package tocpdf_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-tocpdf"
)

// Example demonstrates TOC generation without rendering a PDF.
// For PDF output, leave HTMLOnly unset (requires Chrome).
func Example() {
	conv, err := tocpdf.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), tocpdf.Input{
		Markdown: "# Hello, World!\n\n## A -- B\n\nBody text.",
		HTMLOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, h := range result.Headings {
		fmt.Println(h.Level, h.Text, h.ID)
	}
	// Output:
	// 1 Hello, World! hello-world
	// 2 A -- B a-b
}
