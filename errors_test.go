package main

import (
	"strings"
	"testing"
)

// TestCompileErrorRendering tests the human-readable error forms with and
// without a file name
func TestCompileErrorRendering(t *testing.T) {
	withFile := &CompileError{Category: CategoryStructure, File: "prog.bf", Message: "found a `]` code without a matching `[`"}
	if got := withFile.Error(); got != "structure error in prog.bf: found a `]` code without a matching `[`" {
		t.Errorf("Unexpected rendering: %q", got)
	}
	withoutFile := &CompileError{Category: CategoryOutput, Message: "disk full"}
	if !strings.HasPrefix(withoutFile.Error(), "output error: ") {
		t.Errorf("Unexpected rendering: %q", withoutFile.Error())
	}
}

// TestErrorCategoryStrings tests the category names used in diagnostics
func TestErrorCategoryStrings(t *testing.T) {
	cases := map[ErrorCategory]string{
		CategoryInput:     "input",
		CategoryStructure: "structure",
		CategoryOutput:    "output",
		ErrorCategory(99): "unknown",
	}
	for cat, want := range cases {
		if got := cat.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", cat, got, want)
		}
	}
}
