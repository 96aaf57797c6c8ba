package cpu

import "fmt"

var extendedTable = buildExtendedTable()

// Every CB entry is two bytes long including the prefix; pc already points at
// the second byte when the entry runs, so its own length is 1. The cycle
// counts include the prefix fetch.
func buildExtendedTable() *opTable {
	t := newTable(TableExtended)

	for r := uint8(0); r < 8; r++ {
		r := r
		name := reg2str(r)
		cycles, bitCycles := 8, 8
		if r == 6 {
			cycles, bitCycles = 16, 12
		}

		for op := uint8(0); op < 8; op++ {
			op := op
			t.def(op<<3|r, shift2str(op)+" "+name, 1, cycles, func(cpu *CPU) {
				res, carry := cpu.shift(op, cpu.getReg(r))
				cpu.setReg(r, res)
				cpu.setFlagZNHC(res == 0, false, false, carry)
			})
		}

		for bit := uint8(0); bit < 8; bit++ {
			bit := bit
			t.def(0x40|bit<<3|r, fmt.Sprintf("BIT %d,%s", bit, name), 1, bitCycles, func(cpu *CPU) {
				cpu.setFlagZNHC(!bitN8(cpu.getReg(r), bit), false, true, cpu.FlagC())
			})
			t.def(0x80|bit<<3|r, fmt.Sprintf("RES %d,%s", bit, name), 1, cycles, func(cpu *CPU) {
				cpu.setReg(r, cpu.getReg(r)&^(1<<bit))
			})
			t.def(0xc0|bit<<3|r, fmt.Sprintf("SET %d,%s", bit, name), 1, cycles, func(cpu *CPU) {
				cpu.setReg(r, cpu.getReg(r)|(1<<bit))
			})
		}
	}

	return t
}
