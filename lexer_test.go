package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFilterKeepsInstructionOrder tests that the filter preserves the order
// of the instructions it keeps
func TestFilterKeepsInstructionOrder(t *testing.T) {
	program, err := Filter(strings.NewReader("+a - >\n<\t.x,[comment]"))
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	want := []Instruction{MemInc, MemDec, PtrInc, PtrDec, SysWrite, SysRead, LoopStart, LoopEnd}
	if len(program) != len(want) {
		t.Fatalf("Expected %d instructions, got %d", len(want), len(program))
	}
	for i, ins := range want {
		if program[i] != ins {
			t.Errorf("Instruction %d: got %v, want %v", i, program[i], ins)
		}
	}
}

// TestFilterDiscardsEverythingElse tests that a source with no instruction
// characters filters to an empty program
func TestFilterDiscardsEverythingElse(t *testing.T) {
	source := "this is just a comment\nwith newlines and spaces\x00\x01\x02"
	program, err := Filter(strings.NewReader(source))
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(program) != 0 {
		t.Errorf("Expected empty program, got %d instructions", len(program))
	}
}

// TestFilterOutputNoLongerThanInput tests the length property of the filter
func TestFilterOutputNoLongerThanInput(t *testing.T) {
	source := "++[>.<-] trailing noise"
	program, err := Filter(strings.NewReader(source))
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(program) > len(source) {
		t.Errorf("Filter output (%d) longer than input (%d)", len(program), len(source))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

// TestFilterPropagatesReadErrors tests that a broken reader surfaces as an
// error instead of a truncated program
func TestFilterPropagatesReadErrors(t *testing.T) {
	if _, err := Filter(failingReader{}); err == nil {
		t.Fatal("Expected an error from a failing reader")
	}
}

// TestFilterFile tests filtering from an actual file on disk
func TestFilterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.bf")
	if err := os.WriteFile(path, []byte("+[->.<]\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	program, err := FilterFile(path)
	if err != nil {
		t.Fatalf("FilterFile failed: %v", err)
	}
	if len(program) != 7 {
		t.Errorf("Expected 7 instructions, got %d", len(program))
	}
}

// TestFilterFileMissing tests that a missing source file becomes an input
// error naming the file
func TestFilterFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bf")
	_, err := FilterFile(path)
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected a *CompileError, got %T", err)
	}
	if ce.Category != CategoryInput {
		t.Errorf("Expected CategoryInput, got %v", ce.Category)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Error %q does not name the file %q", err.Error(), path)
	}
}
