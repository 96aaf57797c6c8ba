package cpu

import "fmt"

var primaryTable = buildPrimaryTable()

func (cpu *CPU) cond(index uint8) bool {
	switch index {
	case 0:
		return !cpu.FlagZ()
	case 1:
		return cpu.FlagZ()
	case 2:
		return !cpu.FlagC()
	case 3:
		return cpu.FlagC()
	}
	panic(fmt.Sprintf("invalid condition: %d", index))
}

func (cpu *CPU) jumpRelative(offset uint8) {
	cpu.pc = uint16(int(cpu.pc) + int(int8(offset)))
}

func (cpu *CPU) call(addr uint16) {
	cpu.push16(cpu.pc)
	cpu.pc = addr
}

func buildPrimaryTable() *opTable {
	t := newTable(TablePrimary)

	t.def(0x00, "NOP", 1, 4, func(cpu *CPU) {})
	t.def(0x08, "LD (a16),SP", 3, 20, func(cpu *CPU) {
		cpu.bus.Set16(cpu.imm16, cpu.sp)
	})
	t.def(0x10, "STOP", 2, 4, func(cpu *CPU) {
		cpu.halted = true
	})
	t.def(0x76, "HALT", 1, 4, func(cpu *CPU) {
		cpu.halted = true
	})

	// 16-bit loads and arithmetic
	for i := uint8(0); i < 4; i++ {
		i := i
		name := regBC_DE_HL_SP_ToStr(i)
		t.def(0x01+i<<4, "LD "+name+",d16", 3, 12, func(cpu *CPU) {
			cpu.setReg16(i, cpu.imm16, true)
		})
		t.def(0x03+i<<4, "INC "+name, 1, 8, func(cpu *CPU) {
			cpu.setReg16(i, cpu.getReg16(i, true)+1, true)
		})
		t.def(0x0b+i<<4, "DEC "+name, 1, 8, func(cpu *CPU) {
			cpu.setReg16(i, cpu.getReg16(i, true)-1, true)
		})
		t.def(0x09+i<<4, "ADD HL,"+name, 1, 8, func(cpu *CPU) {
			cpu.addHL(cpu.getReg16(i, true))
		})
	}

	// LD ((BC)|(DE)|(HL+)|(HL-)),A and the reverse
	for i := uint8(0); i < 4; i++ {
		i := i
		name := regBC_DE_HLPLUS_HLMINUS_ToStr(i)
		t.def(0x02+i<<4, "LD ("+name+"),A", 1, 8, func(cpu *CPU) {
			cpu.bus.Set8(cpu.indirectAddr(i), cpu.a)
		})
		t.def(0x0a+i<<4, "LD A,("+name+")", 1, 8, func(cpu *CPU) {
			cpu.a = cpu.bus.Get8(cpu.indirectAddr(i))
		})
	}

	// INC r, DEC r, LD r,d8
	for r := uint8(0); r < 8; r++ {
		r := r
		name := reg2str(r)
		cycles, immCycles := 4, 8
		if r == 6 {
			cycles, immCycles = 12, 12
		}
		t.def(0x04+r<<3, "INC "+name, 1, cycles, func(cpu *CPU) {
			cpu.incReg(r)
		})
		t.def(0x05+r<<3, "DEC "+name, 1, cycles, func(cpu *CPU) {
			cpu.decReg(r)
		})
		t.def(0x06+r<<3, "LD "+name+",d8", 2, immCycles, func(cpu *CPU) {
			cpu.setReg(r, cpu.imm8)
		})
	}

	// Rotates on A always clear Z, unlike their CB counterparts
	for i, name := range []string{"RLCA", "RRCA", "RLA", "RRA"} {
		index := uint8(i)
		t.def(0x07+index<<3, name, 1, 4, func(cpu *CPU) {
			res, carry := cpu.shift(index, cpu.a)
			cpu.a = res
			cpu.setFlagZNHC(false, false, false, carry)
		})
	}
	t.def(0x27, "DAA", 1, 4, func(cpu *CPU) {
		cpu.daa()
	})
	t.def(0x2f, "CPL", 1, 4, func(cpu *CPU) {
		cpu.a = ^cpu.a
		cpu.SetFlag(FlagN)
		cpu.SetFlag(FlagH)
	})
	t.def(0x37, "SCF", 1, 4, func(cpu *CPU) {
		cpu.setFlagZNHC(cpu.FlagZ(), false, false, true)
	})
	t.def(0x3f, "CCF", 1, 4, func(cpu *CPU) {
		cpu.setFlagZNHC(cpu.FlagZ(), false, false, !cpu.FlagC())
	})

	// Relative jumps
	t.def(0x18, "JR r8", 2, 12, func(cpu *CPU) {
		cpu.jumpRelative(cpu.imm8)
	})
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		t.defBranch(0x20+cc<<3, "JR "+cond2str(cc)+",r8", 2, 8, 12, func(cpu *CPU) bool {
			if !cpu.cond(cc) {
				return false
			}
			cpu.jumpRelative(cpu.imm8)
			return true
		})
	}

	// LD r1,r2
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		for src := uint8(0); src < 8; src++ {
			src := src
			if dst == 6 && src == 6 {
				continue // HALT
			}
			cycles := 4
			if dst == 6 || src == 6 {
				cycles = 8
			}
			t.def(0x40|dst<<3|src, "LD "+reg2str(dst)+","+reg2str(src), 1, cycles, func(cpu *CPU) {
				cpu.setReg(dst, cpu.getReg(src))
			})
		}
	}

	// ALU A,r and ALU A,d8
	for op := uint8(0); op < 8; op++ {
		op := op
		for src := uint8(0); src < 8; src++ {
			src := src
			cycles := 4
			if src == 6 {
				cycles = 8
			}
			t.def(0x80|op<<3|src, alu2str(op)+reg2str(src), 1, cycles, func(cpu *CPU) {
				cpu.alu(op, cpu.getReg(src))
			})
		}
		t.def(0xc6+op<<3, alu2str(op)+"d8", 2, 8, func(cpu *CPU) {
			cpu.alu(op, cpu.imm8)
		})
	}

	// Conditional returns, jumps and calls
	for cc := uint8(0); cc < 4; cc++ {
		cc := cc
		name := cond2str(cc)
		t.defBranch(0xc0+cc<<3, "RET "+name, 1, 8, 20, func(cpu *CPU) bool {
			if !cpu.cond(cc) {
				return false
			}
			cpu.pc = cpu.pop16()
			return true
		})
		t.defBranch(0xc2+cc<<3, "JP "+name+",a16", 3, 12, 16, func(cpu *CPU) bool {
			if !cpu.cond(cc) {
				return false
			}
			cpu.pc = cpu.imm16
			return true
		})
		t.defBranch(0xc4+cc<<3, "CALL "+name+",a16", 3, 12, 24, func(cpu *CPU) bool {
			if !cpu.cond(cc) {
				return false
			}
			cpu.call(cpu.imm16)
			return true
		})
	}

	// Stack
	for i := uint8(0); i < 4; i++ {
		i := i
		name := regBC_DE_HL_AF_ToStr(i)
		t.def(0xc1+i<<4, "POP "+name, 1, 12, func(cpu *CPU) {
			cpu.setReg16(i, cpu.pop16(), false)
		})
		t.def(0xc5+i<<4, "PUSH "+name, 1, 16, func(cpu *CPU) {
			cpu.push16(cpu.getReg16(i, false))
		})
	}
	for n := uint8(0); n < 8; n++ {
		n := n
		t.def(0xc7+n<<3, fmt.Sprintf("RST 0x%02X", n<<3), 1, 16, func(cpu *CPU) {
			cpu.call(uint16(n) << 3)
		})
	}

	t.def(0xc3, "JP a16", 3, 16, func(cpu *CPU) {
		cpu.pc = cpu.imm16
	})
	t.def(0xe9, "JP (HL)", 1, 4, func(cpu *CPU) {
		cpu.pc = cpu.HL()
	})
	t.def(0xcd, "CALL a16", 3, 24, func(cpu *CPU) {
		cpu.call(cpu.imm16)
	})
	t.def(0xc9, "RET", 1, 16, func(cpu *CPU) {
		cpu.pc = cpu.pop16()
	})
	t.def(0xd9, "RETI", 1, 16, func(cpu *CPU) {
		cpu.pc = cpu.pop16()
		cpu.ime = true
	})
	t.set(0xcb, instruction{
		mnemonic: "PREFIX CB",
		length:   1,
		exec: func(cpu *CPU) error {
			cpu.pc++
			if err := cpu.dispatch(extendedTable, cpu.bus.Get8(cpu.pc)); err != nil {
				cpu.pc--
				return err
			}
			return nil
		},
	})

	// High page and absolute loads
	t.def(0xe0, "LDH (a8),A", 2, 12, func(cpu *CPU) {
		cpu.bus.Set8(0xff00+uint16(cpu.imm8), cpu.a)
	})
	t.def(0xf0, "LDH A,(a8)", 2, 12, func(cpu *CPU) {
		cpu.a = cpu.bus.Get8(0xff00 + uint16(cpu.imm8))
	})
	t.def(0xe2, "LD (C),A", 1, 8, func(cpu *CPU) {
		cpu.bus.Set8(0xff00+uint16(cpu.c), cpu.a)
	})
	t.def(0xf2, "LD A,(C)", 1, 8, func(cpu *CPU) {
		cpu.a = cpu.bus.Get8(0xff00 + uint16(cpu.c))
	})
	t.def(0xea, "LD (a16),A", 3, 16, func(cpu *CPU) {
		cpu.bus.Set8(cpu.imm16, cpu.a)
	})
	t.def(0xfa, "LD A,(a16)", 3, 16, func(cpu *CPU) {
		cpu.a = cpu.bus.Get8(cpu.imm16)
	})

	// SP arithmetic
	t.def(0xe8, "ADD SP,r8", 2, 16, func(cpu *CPU) {
		res, h, c := addSigned8(cpu.sp, cpu.imm8)
		cpu.sp = res
		cpu.setFlagZNHC(false, false, h, c)
	})
	t.def(0xf8, "LD HL,SP+r8", 2, 12, func(cpu *CPU) {
		res, h, c := addSigned8(cpu.sp, cpu.imm8)
		cpu.SetHL(res)
		cpu.setFlagZNHC(false, false, h, c)
	})
	t.def(0xf9, "LD SP,HL", 1, 8, func(cpu *CPU) {
		cpu.sp = cpu.HL()
	})

	// Interrupt master enable, deferred by one instruction
	t.def(0xf3, "DI", 1, 4, func(cpu *CPU) {
		cpu.requestToggle(DisableAfterNext)
	})
	t.def(0xfb, "EI", 1, 4, func(cpu *CPU) {
		cpu.requestToggle(EnableAfterNext)
	})

	return t
}

func (cpu *CPU) indirectAddr(index uint8) uint16 {
	switch index {
	case 0:
		return cpu.BC()
	case 1:
		return cpu.DE()
	case 2:
		hl := cpu.HL()
		cpu.SetHL(hl + 1)
		return hl
	case 3:
		hl := cpu.HL()
		cpu.SetHL(hl - 1)
		return hl
	}
	panic(fmt.Sprintf("invalid indirect index: %d", index))
}
