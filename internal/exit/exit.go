package exit

import (
	"fmt"
	"io"
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message, newline terminated, to the configured
// output destination.
func (r *Result) Print() {
	fmt.Fprintln(r.Output, r.Message)
}

// Success reports a completed conversion.
func Success(w io.Writer, message string) *Result {
	return &Result{
		Output:   w,
		ExitCode: 0,
		Message:  message,
	}
}

// Reported is a failure that has been explained to the user. The process
// still exits with status 0.
func Reported(w io.Writer, message string) *Result {
	return &Result{
		Output:   w,
		ExitCode: 0,
		Message:  message,
	}
}

// Reportedf formats a Reported result.
func Reportedf(w io.Writer, format string, a ...any) *Result {
	return Reported(w, fmt.Sprintf(format, a...))
}

// Error is an invocation error, such as a wrong argument count.
func Error(w io.Writer, message string) *Result {
	return &Result{
		Output:   w,
		ExitCode: 1,
		Message:  message,
	}
}

// Errorf formats an Error result.
func Errorf(w io.Writer, format string, a ...any) *Result {
	return Error(w, fmt.Sprintf(format, a...))
}
