package mmu

import (
	"fmt"
	"strings"
)

// Header is the cartridge header found at 0x0100-0x014F.
type Header struct {
	Title    string
	CartType uint8
	ROMSize  uint8
	RAMSize  uint8
}

var cartTypeNames = map[uint8]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x0f: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1a: "MBC5+RAM",
	0x1b: "MBC5+RAM+BATTERY",
}

// Header parses the cartridge header from the loaded image.
func (mmu *MMU) Header() Header {
	title := mmu.Slice(0x134, 0x143-0x134+1)
	if i := strings.IndexByte(string(title), 0); i >= 0 {
		title = title[:i]
	}
	return Header{
		Title:    strings.TrimSpace(string(title)),
		CartType: mmu.memory[0x147],
		ROMSize:  mmu.memory[0x148],
		RAMSize:  mmu.memory[0x149],
	}
}

func (h Header) CartTypeName() string {
	if name, ok := cartTypeNames[h.CartType]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", h.CartType)
}

// Flat reports whether the cartridge runs without bank switching, i.e. the
// whole program lives in the first 32KB.
func (h Header) Flat() bool {
	return h.CartType == 0x00 && h.ROMSize == 0x00
}
