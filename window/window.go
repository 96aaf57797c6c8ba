package window

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reporter shows a fatal diagnostic to a human before the process exits.
type Reporter interface {
	Report(title, message string) error
}

type Kind int

const (
	KindAuto Kind = iota
	KindTerminal
	KindSDL
)

func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindTerminal:
		return "terminal"
	case KindSDL:
		return "sdl"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "auto":
		return KindAuto, nil
	case "terminal":
		return KindTerminal, nil
	case "sdl":
		return KindSDL, nil
	}
	return 0, fmt.Errorf("Unknown reporter: %q (want auto, terminal or sdl)", s)
}

// NewReporter builds the reporter of the given kind. KindAuto picks the
// terminal when stderr is attached to one and a message box otherwise,
// falling back to stderr when no message box is available.
func NewReporter(kind Kind) (Reporter, error) {
	switch kind {
	case KindTerminal:
		return NewTerminalReporter(os.Stderr), nil
	case KindSDL:
		r, err := NewSDLReporter()
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindAuto:
		if term.IsTerminal(int(os.Stderr.Fd())) {
			return NewTerminalReporter(os.Stderr), nil
		}
		if r, err := NewSDLReporter(); err == nil {
			return r, nil
		}
		return NewTerminalReporter(os.Stderr), nil
	}
	return nil, fmt.Errorf("Invalid reporter kind: %d", int(kind))
}
