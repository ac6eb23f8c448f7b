// Completion: 100% - Environment configuration complete
package main

import "github.com/xyproto/env/v2"

// fallbackTapeSize is used when BFC_TAPE_SIZE is unset or not a positive
// number of cells.
const fallbackTapeSize = 1048576

// tapeSizeFromEnv reads BFC_TAPE_SIZE, ignoring zero and negative values so
// the later uint64 conversion can never wrap.
func tapeSizeFromEnv() int {
	if n := env.Int("BFC_TAPE_SIZE", fallbackTapeSize); n > 0 {
		return n
	}
	return fallbackTapeSize
}

// Tunables with environment defaults. Flags override these at startup.
var (
	// defaultTapeSize is the number of tape cells reserved in the output
	// program when --tape-size is not given.
	defaultTapeSize = tapeSizeFromEnv()

	// nasmCommand and ldCommand name the external toolchain the generated
	// assembly is handed to.
	nasmCommand = env.Str("BFC_NASM", "nasm")
	ldCommand   = env.Str("BFC_LD", "ld")

	// VerboseMode makes the pipeline log its stages to stderr.
	VerboseMode = env.Bool("BFC_VERBOSE")
)
