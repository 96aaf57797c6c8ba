package cpu

// Snapshot is a copy of the architectural state, comparable with ==.
type Snapshot struct {
	PC, SP                 uint16
	A, F, B, C, D, E, H, L uint8
	IME                    bool
	PendingToggle          InterruptToggle
	Halted                 bool
	Cycles                 int
}

func (cpu *CPU) Snapshot() Snapshot {
	return Snapshot{
		PC:            cpu.pc,
		SP:            cpu.sp,
		A:             cpu.a,
		F:             cpu.f,
		B:             cpu.b,
		C:             cpu.c,
		D:             cpu.d,
		E:             cpu.e,
		H:             cpu.h,
		L:             cpu.l,
		IME:           cpu.ime,
		PendingToggle: cpu.toggle,
		Halted:        cpu.halted,
		Cycles:        cpu.cycles,
	}
}
