package lib

import "fmt"

// Assert panics with msg when cond is false.
// Used for programming errors only, never for input validation.
func Assert(cond bool, msg string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Sprintf(msg, args...))
}
