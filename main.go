// Completion: 95% - CLI interface complete, all flags working
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A tiny Brainfuck compiler emitting NASM x86-64 assembly for Linux

const versionString = "bfc 1.0.0"

// changeExt replaces the extension of path with ext (without the dot).
func changeExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bfc [options] input.bf")
	flag.PrintDefaults()
}

func main() {
	var (
		outputFlag     = flag.String("o", "", "output .asm filename (default: input filename with the extension replaced)")
		outputLongFlag = flag.String("output", "", "output .asm filename (default: input filename with the extension replaced)")
		tapeSizeFlag   = flag.Uint64("tape-size", uint64(defaultTapeSize), "tape size to allocate in the output program, in cells")
		buildFlag      = flag.Bool("build", false, "run the assembler and linker after a successful compile")
		watchFlag      = flag.Bool("watch", false, "watch mode: recompile whenever the input file is saved")
		verbose        = flag.Bool("v", false, "verbose mode (log pipeline stages to stderr)")
		verboseLong    = flag.Bool("verbose", false, "verbose mode (log pipeline stages to stderr)")
		versionShort   = flag.Bool("V", false, "print version information and exit")
		version        = flag.Bool("version", false, "print version information and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *versionShort || *version {
		fmt.Println(versionString)
		return
	}
	if *verbose || *verboseLong {
		VerboseMode = true
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	outputFile := *outputFlag
	if outputFile == "" {
		outputFile = *outputLongFlag
	}
	if outputFile == "" {
		outputFile = changeExt(inputFile, "asm")
	}

	if *tapeSizeFlag == 0 {
		fmt.Fprintln(os.Stderr, "error: tape size must be a positive number of cells")
		os.Exit(1)
	}

	compileOnce := func() error {
		if err := CompileFile(inputFile, outputFile, *tapeSizeFlag); err != nil {
			return err
		}
		fmt.Printf("Done! Output has been written to %s.\n", outputFile)
		fmt.Println("You can compile it by running the following commands:")
		fmt.Println("  " + assembleCommandLine(outputFile))
		fmt.Println("  " + linkCommandLine(outputFile))
		if *buildFlag {
			return runBuild(outputFile)
		}
		return nil
	}

	if *watchFlag {
		watchAndCompile(inputFile, compileOnce) // blocks forever
		return
	}

	if err := compileOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// watchAndCompile compiles once, then recompiles on every save of inputFile.
// Compile errors are printed and watching continues; only a broken watcher
// setup is fatal.
func watchAndCompile(inputFile string, compileOnce func() error) {
	fw, err := newFileWatcher(func(path string) {
		if VerboseMode {
			fmt.Fprintf(os.Stderr, "%s changed, recompiling\n", path)
		}
		if err := compileOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := fw.AddFile(inputFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := compileOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "Watching %s for changes...\n", inputFile)
	fw.Watch()
}
