package mmu

import (
	"github.com/ushitora-anqou/aqcore/constant"
)

type MMU struct {
	/*
		GENERAL MEMORY MAP
		Thanks to: https://gbdev.gg8.se/wiki/articles/Memory_Map

		0000-3FFF  16KB ROM bank 00 	From cartridge
		4000-7FFF  16KB ROM Bank 01-NN 	From cartridge (flat, no banking)
		8000-9FFF  8KB Video RAM (VRAM)
		A000-BFFF  8KB External RAM     In cartridge
		C000-CFFF  4KB Work RAM (WRAM)
		D000-DFFF  4KB Work RAM (WRAM)
		E000-FDFF  Mirror of C000-DDFF (ECHO RAM)
		FE00-FE9F  Sprite attribute table (OAM)
		FEA0-FEFF  Not Usable
		FF00-FF7F  I/O Registers
		FF80-FFFE  High RAM (HRAM)
		FFFF-FFFF  Interrupts Enable Register (IE)
	*/
	memory [constant.MEMORY_SIZE]uint8
}

func NewMMU() *MMU {
	return &MMU{}
}

// ioDefaults are the register values left behind by the boot ROM.
var ioDefaults = []struct {
	addr uint16
	val  uint8
}{
	{constant.NR10, 0x80},
	{constant.NR11, 0xbf},
	{constant.NR12, 0xf3},
	{constant.NR14, 0xbf},
	{constant.NR21, 0x3f},
	{constant.NR24, 0xbf},
	{constant.NR30, 0x7f},
	{constant.NR31, 0xff},
	{constant.NR32, 0x9f},
	{constant.NR34, 0xbf},
	{constant.NR41, 0xff},
	{constant.NR44, 0xbf},
	{constant.NR50, 0x77},
	{constant.NR51, 0xf3},
	{constant.NR52, 0xf1},
	{constant.LCDC, 0x91},
	{constant.BGP, 0xfc},
	{constant.OBP0, 0xff},
	{constant.OBP1, 0xff},
	{constant.LY, constant.LY_VBLANK},
}

// Reset zeroes the whole address space and restores the power-up I/O values.
func (mmu *MMU) Reset() {
	mmu.memory = [constant.MEMORY_SIZE]uint8{}
	for _, reg := range ioDefaults {
		mmu.Set8(reg.addr, reg.val)
	}
}

func echoOf(addr uint16) (uint16, bool) {
	switch {
	case constant.WRAM_ECHO_START <= addr && addr <= constant.WRAM_ECHO_END:
		return addr + constant.ECHO_OFFSET, true
	case constant.ECHO_START <= addr && addr <= constant.ECHO_END:
		return addr - constant.ECHO_OFFSET, true
	}
	return 0, false
}

// Set8 is the only place memory is written during execution, so the echo
// region stays consistent for byte and word writes alike.
func (mmu *MMU) Set8(addr uint16, val uint8) {
	mmu.memory[addr] = val
	if mirror, ok := echoOf(addr); ok {
		mmu.memory[mirror] = val
	}
}

func (mmu *MMU) Get8(addr uint16) uint8 {
	return mmu.memory[addr]
}

func (mmu *MMU) Get16(addr uint16) uint16 {
	lo := (uint16)(mmu.Get8(addr))
	hi := (uint16)(mmu.Get8(addr + 1))
	return lo + (hi << 8)
}

func (mmu *MMU) Set16(addr uint16, val uint16) {
	mmu.Set8(addr, uint8(val))
	mmu.Set8(addr+1, uint8(val>>8))
}

// Slice returns a copy of size bytes starting at addr, wrapping at the top of
// the address space.
func (mmu *MMU) Slice(addr uint16, size int) []uint8 {
	ret := make([]uint8, size)
	for i := range ret {
		ret[i] = mmu.memory[uint16(int(addr)+i)]
	}
	return ret
}
