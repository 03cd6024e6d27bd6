// translate - Pascal to C++ source translator
//
// Reads a single Pascal source file and writes the equivalent C++
// source to a named output file, or to the input path with its
// extension replaced by ".cpp" when -o is omitted.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rjmorel/pas2cpp"
	"github.com/rjmorel/pas2cpp/internal/console"
)

// version is set by GoReleaser at build time via -ldflags.
// For development builds, it will be "dev".
var version = "dev"

const shortUsage = "usage: translate <input.pas> [-o output.cpp] [-v|--verbose] [--version]"

func main() {
	console.EnableUTF8()

	// Parse command line arguments manually rather than using the
	// "flag" package, matching the project's existing flags style.
	var inputFile, outputFile string
	verbose := false

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch arg {
		case "-o":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -o")
			}
			i++
			outputFile = os.Args[i]
		case "-v", "--verbose":
			verbose = true
		case "-h", "--help":
			fmt.Printf("translate %s - Pascal to C++ translator\n\n%s\n", version, shortUsage)
			os.Exit(0)
		case "--version":
			fmt.Printf("translate version %s\n", version)
			os.Exit(0)
		default:
			switch {
			case strings.HasPrefix(arg, "-o"):
				outputFile = arg[2:]
			case strings.HasPrefix(arg, "-"):
				errorExitf("flag provided but not defined: %s", arg)
			default:
				if inputFile != "" {
					errorExitf("unexpected argument: %s", arg)
				}
				inputFile = arg
			}
		}
	}

	if inputFile == "" {
		errorExitf(shortUsage)
	}

	source, err := os.ReadFile(inputFile)
	if err != nil {
		errorExitf("cannot read %s: %v", inputFile, err)
	}

	config := &pas2cpp.Config{Verbose: verbose, Output: os.Stdout}
	prog, err := pas2cpp.Compile(string(source), config)
	if err != nil {
		reportError(err)
	}

	if outputFile == "" {
		outputFile = defaultOutputPath(inputFile)
	}
	if err := os.WriteFile(outputFile, []byte(prog.CPP()), 0o644); err != nil {
		errorExitf("cannot write %s: %v", outputFile, err)
	}
}

// defaultOutputPath derives the output path from the input path by
// replacing its extension with ".cpp" (§6), used when -o is omitted.
func defaultOutputPath(inputFile string) string {
	if ext := filepath.Ext(inputFile); ext != "" {
		return strings.TrimSuffix(inputFile, ext) + ".cpp"
	}
	return inputFile + ".cpp"
}

// reportError prints a positioned diagnostic for the pipeline stage
// that failed and exits 1 (§6, §7).
func reportError(err error) {
	switch e := err.(type) {
	case *pas2cpp.LexerError:
		fmt.Fprintln(os.Stderr, console.Diagnostic(os.Stderr, console.CategoryLexer, e.Message, e.Line, e.Column))
	case *pas2cpp.ParserError:
		fmt.Fprintln(os.Stderr, console.Diagnostic(os.Stderr, console.CategoryParser, e.Message, e.Line, e.Column))
	case *pas2cpp.CodeGenError:
		fmt.Fprintln(os.Stderr, console.Diagnostic(os.Stderr, console.CategoryCodeGen, e.Message, e.Line, e.Column))
	default:
		fmt.Fprintf(os.Stderr, "translate: %v\n", err)
	}
	os.Exit(1)
}

// errorExitf prints a formatted error message and exits with code 1.
func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "translate: "+format+"\n", args...)
	os.Exit(1)
}
