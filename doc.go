// Package pas2cpp translates a small, statically-structured Pascal
// dialect into equivalent C++ source.
//
// # Quick Start
//
// For a one-off translation:
//
//	cpp, err := pas2cpp.Translate(source, nil)
//
// With verbose progress diagnostics:
//
//	cpp, err := pas2cpp.Translate(source, &pas2cpp.Config{
//	    Verbose: true,
//	    Output:  os.Stderr,
//	})
//
// # Compiled Programs
//
// To inspect a translation before taking its C++ text, or to read that
// text again without re-parsing:
//
//	prog, err := pas2cpp.Compile(source, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(prog.Stats())
//	fmt.Println(prog.CPP())
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [LexerError]: a malformed token in the source
//   - [ParserError]: a syntax error; the run reports the first one found
//   - [CodeGenError]: a construct the generator cannot lower, such as a
//     non-literal array bound
//
// # Thread Safety
//
// A compiled [Program] holds no mutable state and is safe for
// concurrent use.
package pas2cpp
