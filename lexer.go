// Completion: 100% - Source filter complete
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Filter reads raw source bytes and keeps only the eight instruction
// characters, in their original order. Everything else (whitespace, newlines,
// comment text) is silently discarded, which is how Brainfuck comments work.
func Filter(r io.Reader) ([]Instruction, error) {
	br := bufio.NewReader(r)
	var program []Instruction
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if ins, ok := InstructionFor(b); ok {
			program = append(program, ins)
		}
	}
	return program, nil
}

// FilterFile opens path and filters its contents into an instruction sequence.
// Open and read failures come back as input errors naming the file; missing or
// unreadable input is not retried.
func FilterFile(path string) ([]Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CompileError{Category: CategoryInput, File: path, Message: err.Error()}
	}
	defer f.Close()

	program, err := Filter(f)
	if err != nil {
		return nil, &CompileError{Category: CategoryInput, File: path, Message: "read failed: " + err.Error()}
	}
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "%s: %d instructions\n", path, len(program))
	}
	return program, nil
}
