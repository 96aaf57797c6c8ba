package window

import (
	"fmt"
	"io"
)

type TerminalReporter struct {
	w io.Writer
}

func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

func (r *TerminalReporter) Report(title, message string) error {
	_, err := fmt.Fprintf(r.w, "%s: %s\n", title, message)
	return err
}
