// Completion: 100% - Error handling complete, clear and helpful messages
package main

import "fmt"

// ErrorCategory classifies why a compilation attempt failed.
type ErrorCategory int

const (
	CategoryInput     ErrorCategory = iota // opening or reading the source file
	CategoryStructure                      // unbalanced loop brackets
	CategoryOutput                         // writing the generated assembly
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryStructure:
		return "structure"
	case CategoryOutput:
		return "output"
	default:
		return "unknown"
	}
}

// CompileError is a terminal failure of one compilation attempt. There is no
// recovery and no retry; the pipeline stops at the first one. File names the
// offending file when one is known.
type CompileError struct {
	Category ErrorCategory
	File     string
	Message  string
}

func (e *CompileError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s error in %s: %s", e.Category, e.File, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Category, e.Message)
}

// structureError reports unbalanced brackets. The source file name is attached
// later by the caller that knows it.
func structureError(format string, args ...any) *CompileError {
	return &CompileError{Category: CategoryStructure, Message: fmt.Sprintf(format, args...)}
}

func outputError(err error) *CompileError {
	return &CompileError{Category: CategoryOutput, Message: err.Error()}
}
