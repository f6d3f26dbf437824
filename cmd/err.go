package cmd

import (
	"fmt"
)

// Error is an error carrying the process exit code to use when it reaches
// main.
type Error struct {
	Err      error
	ExitCode int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func Errorf(code int, format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Errorf(format, args...), ExitCode: code}
}

// Usage reports a usage problem with c. With no message the command's full
// help text is shown instead.
func Usage(c *Command, code int, formatAndArgs ...interface{}) *Error {
	if len(formatAndArgs) == 0 {
		return Errorf(code, "%v\n\n%v\n", c.ShortUsage(), c.Usage())
	}
	format := formatAndArgs[0].(string)
	msg := fmt.Sprintf(format, formatAndArgs[1:]...)
	return Errorf(code, "error: %v\n\n%v\n", msg, c.ShortUsage())
}
