package main

import (
	"testing"
)

// TestAssembleCommandLine tests the printed nasm invocation
func TestAssembleCommandLine(t *testing.T) {
	got := assembleCommandLine("prog.asm")
	want := nasmCommand + " -f elf64 -o prog.o prog.asm"
	if got != want {
		t.Errorf("assembleCommandLine = %q, want %q", got, want)
	}
}

// TestLinkCommandLine tests the printed ld invocation
func TestLinkCommandLine(t *testing.T) {
	got := linkCommandLine("prog.asm")
	want := ldCommand + " -o prog.exe prog.o"
	if got != want {
		t.Errorf("linkCommandLine = %q, want %q", got, want)
	}
}

// TestArtifactNames tests the object and executable names derived from the
// assembly filename
func TestArtifactNames(t *testing.T) {
	if got := objectFile("dir/hello.asm"); got != "dir/hello.o" {
		t.Errorf("objectFile = %q, want %q", got, "dir/hello.o")
	}
	if got := executableFile("dir/hello.asm"); got != "dir/hello.exe" {
		t.Errorf("executableFile = %q, want %q", got, "dir/hello.exe")
	}
}
