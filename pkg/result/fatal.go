package result

import "fmt"

// FatalFunc receives the message describing a contract violation, such as
// calling Unwrap on an Err. The handler is expected to terminate the
// operation (log and abort, or panic). If it returns, the violation still
// panics: a contract violation never resumes into a returned value.
type FatalFunc func(msg string)

var fatalHandler FatalFunc

// SetFatalHandler installs h as the sink for contract violations. Passing
// nil restores the default behavior of panicking with the message. Intended
// to be set once at startup, or swapped inside tests that assert the fatal
// path is taken.
func SetFatalHandler(h FatalFunc) {
	fatalHandler = h
}

func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if fatalHandler != nil {
		fatalHandler(msg)
	}
	panic(msg)
}
