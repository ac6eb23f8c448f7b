// Completion: 100% - Instruction set complete, all eight codes covered
package main

// Instruction is one of the eight Brainfuck operations.
type Instruction int

const (
	MemInc    Instruction = iota // + increment the current cell
	MemDec                       // - decrement the current cell
	PtrInc                       // > move the cell pointer forward
	PtrDec                       // < move the cell pointer backward
	SysWrite                     // . write the current cell
	SysRead                      // , read into the current cell
	LoopStart                    // [ loop entry
	LoopEnd                      // ] loop exit
)

// instructionFor is the single source of truth for the byte <-> instruction
// mapping. Every byte outside this table is a comment character.
var instructionFor = map[byte]Instruction{
	'+': MemInc,
	'-': MemDec,
	'>': PtrInc,
	'<': PtrDec,
	'.': SysWrite,
	',': SysRead,
	'[': LoopStart,
	']': LoopEnd,
}

// charFor is the inverse mapping, derived from the same table.
var charFor = func() map[Instruction]byte {
	m := make(map[Instruction]byte, len(instructionFor))
	for c, ins := range instructionFor {
		m[ins] = c
	}
	return m
}()

// InstructionFor maps a source byte to an instruction. ok is false for every
// byte that is not one of the eight instruction characters; that is the normal
// filtering outcome for whitespace and comments, not an error.
func InstructionFor(b byte) (Instruction, bool) {
	ins, ok := instructionFor[b]
	return ins, ok
}

// Char returns the canonical source character for this instruction.
func (ins Instruction) Char() byte {
	return charFor[ins]
}

func (ins Instruction) String() string {
	return string(charFor[ins])
}
