package mmu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ushitora-anqou/aqcore/constant"
)

var ErrEmptyImage = errors.New("image is empty")

// LoadError reports that the image could not be ingested. The address space
// must not be used to start execution after it is returned.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("Failed to load image: %v", e.Err)
	}
	return fmt.Sprintf("Failed to load image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadROM copies the image from src into the address space starting at 0.
// At most ROM_SIZE bytes are read; anything beyond is ignored and a shorter
// image leaves the rest of memory as Reset left it.
func (mmu *MMU) LoadROM(src io.Reader) (int, error) {
	buf := make([]uint8, constant.ROM_SIZE)
	n, err := io.ReadFull(src, buf)
	switch {
	case err == io.EOF:
		return 0, &LoadError{Err: ErrEmptyImage}
	case err != nil && err != io.ErrUnexpectedEOF:
		return 0, &LoadError{Err: err}
	}
	copy(mmu.memory[:n], buf[:n])
	return n, nil
}

func (mmu *MMU) LoadROMFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	n, err := mmu.LoadROM(file)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return 0, err
	}
	return n, nil
}
