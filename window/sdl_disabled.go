//go:build !sdl2

package window

import "errors"

var ErrNoSDL = errors.New("built without SDL2 support (rebuild with -tags sdl2)")

type SDLReporter struct{}

func NewSDLReporter() (*SDLReporter, error) {
	return nil, ErrNoSDL
}

func (r *SDLReporter) Report(title, message string) error {
	return ErrNoSDL
}
