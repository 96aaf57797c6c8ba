//go:build sdl2

package window

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SDLReporter pops up a modal error box. SDL does not need to be initialized
// for message boxes.
type SDLReporter struct{}

func NewSDLReporter() (*SDLReporter, error) {
	return &SDLReporter{}, nil
}

func (r *SDLReporter) Report(title, message string) error {
	return sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, message, nil)
}
