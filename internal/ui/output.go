package ui

import (
	"fmt"
	"io"
)

// OK, Fail and Warn print one status line in the current theme.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}

func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Pending.Render(current.SymWarn+" "+msg))
}
