package cpu

import (
	"fmt"
	"strings"

	"github.com/ushitora-anqou/aqcore/bus"
)

const (
	TablePrimary  = "primary"
	TableExtended = "extended"
)

// OpcodeError is returned when the fetched byte has no instruction bound to
// it. Execution cannot continue past it.
type OpcodeError struct {
	Table  string
	Opcode uint8
	PC     uint16
}

func (e *OpcodeError) Error() string {
	if e.Table == TableExtended {
		return fmt.Sprintf("Unknown CB opcode: CB 0x%02X at 0x%04X (%s table)", e.Opcode, e.PC, e.Table)
	}
	return fmt.Sprintf("Unknown opcode: 0x%02X at 0x%04X (%s table)", e.Opcode, e.PC, e.Table)
}

type instruction struct {
	mnemonic string
	length   uint16 // Bytes, counted from the byte that selected this entry
	cycles   int    // Cost when a conditional branch is not taken
	taken    int    // Cost when a conditional branch is taken
	exec     func(cpu *CPU) error
}

func (in *instruction) implemented() bool {
	return in.mnemonic != ""
}

type opTable struct {
	name    string
	entries [256]instruction
}

// newTable returns a table where every opcode resolves to the unknown opcode
// handler until it is defined.
func newTable(name string) *opTable {
	t := &opTable{name: name}
	for i := range t.entries {
		t.entries[i] = unknown(name, uint8(i))
	}
	return t
}

func unknown(table string, opcode uint8) instruction {
	return instruction{
		exec: func(cpu *CPU) error {
			pc := cpu.pc
			if table == TableExtended {
				pc-- // Report the prefix address
			}
			return &OpcodeError{Table: table, Opcode: opcode, PC: pc}
		},
	}
}

// fetchOperands reads the immediates following the opcode at pc. It must run
// before pc moves.
func (cpu *CPU) fetchOperands(length uint16) {
	switch length {
	case 2:
		cpu.imm8 = cpu.bus.Get8(cpu.pc + 1)
	case 3:
		cpu.imm16 = cpu.bus.Get16(cpu.pc + 1)
		cpu.imm8 = uint8(cpu.imm16)
	}
}

func (t *opTable) def(opcode uint8, mnemonic string, length uint16, cycles int, fn func(cpu *CPU)) {
	t.set(opcode, instruction{
		mnemonic: mnemonic,
		length:   length,
		cycles:   cycles,
		taken:    cycles,
		exec: func(cpu *CPU) error {
			cpu.fetchOperands(length)
			cpu.pc += length
			fn(cpu)
			cpu.cycles -= cycles
			return nil
		},
	})
}

// defBranch defines a conditional control transfer. fn reports whether the
// branch was taken; pc already points past the instruction when it runs.
func (t *opTable) defBranch(opcode uint8, mnemonic string, length uint16, cycles, taken int, fn func(cpu *CPU) bool) {
	t.set(opcode, instruction{
		mnemonic: mnemonic,
		length:   length,
		cycles:   cycles,
		taken:    taken,
		exec: func(cpu *CPU) error {
			cpu.fetchOperands(length)
			cpu.pc += length
			if fn(cpu) {
				cpu.cycles -= taken
			} else {
				cpu.cycles -= cycles
			}
			return nil
		},
	})
}

func (t *opTable) set(opcode uint8, in instruction) {
	if t.entries[opcode].implemented() {
		panic(fmt.Sprintf("%s table: opcode 0x%02x defined twice", t.name, opcode))
	}
	t.entries[opcode] = in
}

func (cpu *CPU) dispatch(t *opTable, opcode uint8) error {
	return t.entries[opcode].exec(cpu)
}

// Disassemble renders the instruction at addr and returns its length in bytes.
// Unknown opcodes render as "DB 0x..".
func Disassemble(mmu bus.MMU, addr uint16) (string, uint16) {
	opcode := mmu.Get8(addr)
	in := &primaryTable.entries[opcode]
	if opcode == 0xcb {
		cb := mmu.Get8(addr + 1)
		in = &extendedTable.entries[cb]
		if !in.implemented() {
			return fmt.Sprintf("DB 0xCB, 0x%02X", cb), 2
		}
		return in.mnemonic, 2
	}
	if !in.implemented() {
		return fmt.Sprintf("DB 0x%02X", opcode), 1
	}

	text := in.mnemonic
	switch {
	case strings.Contains(text, "d16"):
		text = strings.Replace(text, "d16", fmt.Sprintf("0x%04X", mmu.Get16(addr+1)), 1)
	case strings.Contains(text, "a16"):
		text = strings.Replace(text, "a16", fmt.Sprintf("0x%04X", mmu.Get16(addr+1)), 1)
	case strings.Contains(text, "d8"):
		text = strings.Replace(text, "d8", fmt.Sprintf("0x%02X", mmu.Get8(addr+1)), 1)
	case strings.Contains(text, "a8"):
		text = strings.Replace(text, "a8", fmt.Sprintf("0xFF%02X", mmu.Get8(addr+1)), 1)
	case strings.Contains(text, "r8"):
		text = strings.Replace(text, "r8", fmt.Sprintf("%d", int8(mmu.Get8(addr+1))), 1)
	}
	return text, in.length
}
