package cpu

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func bitN8(n uint8, index uint8) bool {
	return ((n >> index) & 1) != 0
}

func add8(x, y uint8, carry bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=354
	sum := x + y + b2u8(carry)
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 7) != 0
	return sum, carryOut
}

func add4(xu8, yu8 uint8, carry bool) (uint8, bool) {
	x, y := xu8&0x0f, yu8&0x0f
	sum := (x + y + b2u8(carry)) & 0x0f
	carryOut := (((x & y) | ((x | y) &^ sum)) >> 3) != 0
	return sum, carryOut
}

func sub8(x, y uint8, borrow bool) (uint8, bool) {
	// Thanks to: https://cs.opensource.google/go/go/+/refs/tags/go1.17.6:src/math/bits/bits.go;l=380
	diff := x - y - b2u8(borrow)
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 7) != 0
	return diff, borrowOut
}

func sub4(xu8, yu8 uint8, borrow bool) (uint8, bool) {
	x, y := xu8&0x0f, yu8&0x0f
	diff := (x - y - b2u8(borrow)) & 0x0f
	borrowOut := (((^x & y) | (^(x ^ y) & diff)) >> 3) != 0
	return diff, borrowOut
}

// add16 returns the sum with the carries out of bit 11 and bit 15.
func add16(x, y uint16) (uint16, bool, bool) {
	sum := x + y
	halfCarry := (x&0x0fff)+(y&0x0fff) > 0x0fff
	carry := uint32(x)+uint32(y) > 0xffff
	return sum, halfCarry, carry
}

// addSigned8 adds a signed 8-bit offset to a 16-bit value. The flags come
// from the unsigned addition of the low byte, as for ADD SP,r8.
func addSigned8(x uint16, offset uint8) (uint16, bool, bool) {
	e := uint16(int8(offset))
	halfCarry := (x&0x000f)+(e&0x000f) > 0x000f
	carry := (x&0x00ff)+(e&0x00ff) > 0x00ff
	return x + e, halfCarry, carry
}

// Arithmetic and logic on A. index follows the opcode layout:
// ADD ADC SUB SBC AND XOR OR CP.
func (cpu *CPU) alu(index uint8, val uint8) {
	var res uint8 = 0
	n, h, c := false, false, false
	switch index {
	case 0: // ADD
		res, c = add8(cpu.a, val, false)
		_, h = add4(cpu.a, val, false)
	case 1: // ADC
		res, c = add8(cpu.a, val, cpu.FlagC())
		_, h = add4(cpu.a, val, cpu.FlagC())
	case 2: // SUB
		res, c = sub8(cpu.a, val, false)
		_, h = sub4(cpu.a, val, false)
		n = true
	case 3: // SBC
		res, c = sub8(cpu.a, val, cpu.FlagC())
		_, h = sub4(cpu.a, val, cpu.FlagC())
		n = true
	case 4: // AND
		res = cpu.a & val
		h = true
	case 5: // XOR
		res = cpu.a ^ val
	case 6: // OR
		res = cpu.a | val
	case 7: // CP
		res, c = sub8(cpu.a, val, false)
		_, h = sub4(cpu.a, val, false)
		n = true
		cpu.setFlagZNHC(res == 0, n, h, c)
		return
	}
	cpu.a = res
	cpu.setFlagZNHC(res == 0, n, h, c)
}

func alu2str(index uint8) string {
	return []string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}[index]
}

// INC/DEC never touch the carry flag.
func (cpu *CPU) incReg(reg uint8) {
	src := cpu.getReg(reg)
	res := src + 1
	cpu.setReg(reg, res)
	_, halfCarry := add4(src, 1, false)
	cpu.setFlagZNHC(res == 0, false, halfCarry, cpu.FlagC())
}

func (cpu *CPU) decReg(reg uint8) {
	src := cpu.getReg(reg)
	res := src - 1
	cpu.setReg(reg, res)
	_, halfCarry := sub4(src, 1, false)
	cpu.setFlagZNHC(res == 0, true, halfCarry, cpu.FlagC())
}

func (cpu *CPU) addHL(val uint16) {
	res, h, c := add16(cpu.HL(), val)
	cpu.SetHL(res)
	cpu.setFlagZNHC(cpu.FlagZ(), false, h, c)
}

func (cpu *CPU) daa() {
	a := cpu.a
	c := cpu.FlagC()
	if !cpu.FlagN() {
		if c || a > 0x99 {
			a += 0x60
			c = true
		}
		if cpu.FlagH() || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if c {
			a -= 0x60
		}
		if cpu.FlagH() {
			a -= 0x06
		}
	}
	cpu.a = a
	cpu.setFlagZNHC(a == 0, cpu.FlagN(), false, c)
}

// shift applies one of the CB rotate/shift operations, in opcode order:
// RLC RRC RL RR SLA SRA SWAP SRL. It returns the result and the new carry.
func (cpu *CPU) shift(index uint8, val uint8) (uint8, bool) {
	switch index {
	case 0: // RLC
		return val<<1 | val>>7, bitN8(val, 7)
	case 1: // RRC
		return val>>1 | val<<7, bitN8(val, 0)
	case 2: // RL
		return val<<1 | b2u8(cpu.FlagC()), bitN8(val, 7)
	case 3: // RR
		return val>>1 | b2u8(cpu.FlagC())<<7, bitN8(val, 0)
	case 4: // SLA
		return val << 1, bitN8(val, 7)
	case 5: // SRA
		return val>>1 | val&0x80, bitN8(val, 0)
	case 6: // SWAP
		return val<<4 | val>>4, false
	case 7: // SRL
		return val >> 1, bitN8(val, 0)
	}
	panic("invalid shift")
}

func shift2str(index uint8) string {
	return []string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}[index]
}
