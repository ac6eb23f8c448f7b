// Completion: 100% - External toolchain handoff complete
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// The generated .asm file is not executable by itself; nasm and ld turn it
// into one. These helpers name the artifacts and format the two command
// lines that are printed after every successful compile.

func objectFile(asmFile string) string {
	return changeExt(asmFile, "o")
}

func executableFile(asmFile string) string {
	return changeExt(asmFile, "exe")
}

func assembleArgs(asmFile string) []string {
	return []string{nasmCommand, "-f", "elf64", "-o", objectFile(asmFile), asmFile}
}

func linkArgs(asmFile string) []string {
	return []string{ldCommand, "-o", executableFile(asmFile), objectFile(asmFile)}
}

func assembleCommandLine(asmFile string) string {
	return strings.Join(assembleArgs(asmFile), " ")
}

func linkCommandLine(asmFile string) string {
	return strings.Join(linkArgs(asmFile), " ")
}

// runBuild assembles and links the generated file with the external
// toolchain, when --build asks for it.
func runBuild(asmFile string) error {
	for _, args := range [][]string{assembleArgs(asmFile), linkArgs(asmFile)} {
		if VerboseMode {
			fmt.Fprintln(os.Stderr, "-> "+strings.Join(args, " "))
		}
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("`%s` failed: %v", strings.Join(args, " "), err)
		}
	}
	return nil
}
