package cpu

// The stack grows downward; sp wraps modulo 0x10000.

func (cpu *CPU) push16(val uint16) {
	sp := cpu.sp
	sp -= 2
	cpu.bus.Set16(sp, val)
	cpu.sp = sp
}

func (cpu *CPU) pop16() uint16 {
	sp := cpu.sp
	val := cpu.bus.Get16(sp)
	sp += 2
	cpu.sp = sp
	return val
}

func (cpu *CPU) Push16(val uint16) {
	cpu.push16(val)
}

func (cpu *CPU) Pop16() uint16 {
	return cpu.pop16()
}
