package cpu

import (
	"testing"

	"github.com/ushitora-anqou/aqcore/constant"
)

func TestEnableInterruptsLatency(t *testing.T) {
	cpu, _ := newTestCPU(Config{}, 0xfb, 0x00, 0x00)

	mustStep(t, cpu)
	if cpu.IME() || cpu.PendingToggle() != EnableAfterNext {
		t.Fatalf("after EI: IME=%v pending=%v, expected IME=false pending=%v", cpu.IME(), cpu.PendingToggle(), EnableAfterNext)
	}
	mustStep(t, cpu)
	if !cpu.IME() || cpu.PendingToggle() != ToggleNone {
		t.Fatalf("after EI; NOP: IME=%v pending=%v, expected IME=true pending=%v", cpu.IME(), cpu.PendingToggle(), ToggleNone)
	}
}

func TestDisableInterruptsLatency(t *testing.T) {
	cpu, _ := newTestCPU(Config{}, 0xf3, 0x00)
	cpu.SetIME(true)

	mustStep(t, cpu)
	if !cpu.IME() {
		t.Fatalf("after DI: IME cleared too early")
	}
	mustStep(t, cpu)
	if cpu.IME() {
		t.Fatalf("after DI; NOP: IME still set")
	}
}

func TestLaterToggleReplacesPending(t *testing.T) {
	// EI; DI; NOP: the enable never takes effect
	cpu, _ := newTestCPU(Config{}, 0xfb, 0xf3, 0x00)
	for i := 0; i < 3; i++ {
		mustStep(t, cpu)
		if cpu.IME() {
			t.Fatalf("step %d: IME set by an overwritten EI", i)
		}
	}
	if cpu.PendingToggle() != ToggleNone {
		t.Fatalf("pending toggle left over: %v", cpu.PendingToggle())
	}

	// DI; EI; NOP: ends enabled
	cpu, _ = newTestCPU(Config{}, 0xf3, 0xfb, 0x00)
	mustStep(t, cpu)
	mustStep(t, cpu)
	if cpu.IME() || cpu.PendingToggle() != EnableAfterNext {
		t.Fatalf("after DI; EI: IME=%v pending=%v", cpu.IME(), cpu.PendingToggle())
	}
	mustStep(t, cpu)
	if !cpu.IME() {
		t.Fatalf("after DI; EI; NOP: IME not set")
	}
}

func TestLineTickJumpsToVBlank(t *testing.T) {
	cpu, m := newTestCPU(Config{}, 0x00)
	m.Set8(constant.LY, constant.LY_VBLANK-1)
	cpu.cycles = 4

	mustStep(t, cpu)
	if cpu.PC() != constant.VBLANK_ADDR {
		t.Fatalf("PC got %04x, expected %04x", cpu.PC(), constant.VBLANK_ADDR)
	}
	if ly := m.Get8(constant.LY); ly != constant.LY_VBLANK {
		t.Fatalf("LY got %d, expected %d", ly, constant.LY_VBLANK)
	}
	if cpu.Cycles() != constant.LINE_CYCLES {
		t.Fatalf("cycles got %d, expected %d", cpu.Cycles(), constant.LINE_CYCLES)
	}
	if cpu.SP() != constant.STACK_TOP {
		t.Fatalf("SP got %04x, the forced jump must not push", cpu.SP())
	}
}

func TestLineTick(t *testing.T) {
	table := []struct {
		ly     uint8
		cycles int
		lyOut  uint8
		pc     uint16
	}{
		{0, 4, 1, 0x0101},
		{152, 2, 153, 0x0101},
		{153, 4, 0, 0x0101},
		{144, 4, 145, 0x0101},
		{100, 5, 100, 0x0101},
	}

	for _, entry := range table {
		cpu, m := newTestCPU(Config{}, 0x00)
		m.Set8(constant.LY, entry.ly)
		cpu.cycles = entry.cycles
		mustStep(t, cpu)
		if ly := m.Get8(constant.LY); ly != entry.lyOut || cpu.PC() != entry.pc {
			t.Fatalf("LY %d with %d cycles: got LY=%d PC=%04x, expected LY=%d PC=%04x",
				entry.ly, entry.cycles, ly, cpu.PC(), entry.lyOut, entry.pc)
		}
		if cpu.Cycles() <= 0 || cpu.Cycles() > constant.LINE_CYCLES {
			t.Fatalf("LY %d: cycles out of range: %d", entry.ly, cpu.Cycles())
		}
	}
}

func TestHalt(t *testing.T) {
	cpu, m := newTestCPU(Config{}, 0x76, 0x00)

	mustStep(t, cpu)
	if !cpu.Halted() || cpu.PC() != 0x0101 {
		t.Fatalf("HALT: halted=%v PC=%04x", cpu.Halted(), cpu.PC())
	}
	mustStep(t, cpu)
	if !cpu.Halted() || cpu.PC() != 0x0101 {
		t.Fatalf("halted step: halted=%v PC=%04x", cpu.Halted(), cpu.PC())
	}
	if consumed := constant.LINE_CYCLES - cpu.Cycles(); consumed != 4+constant.IDLE_CYCLES {
		t.Fatalf("halted step: consumed %d cycles", consumed)
	}

	m.Set8(constant.LY, constant.LY_VBLANK-1)
	cpu.cycles = constant.IDLE_CYCLES
	mustStep(t, cpu)
	if cpu.Halted() || cpu.PC() != constant.VBLANK_ADDR {
		t.Fatalf("vblank while halted: halted=%v PC=%04x", cpu.Halted(), cpu.PC())
	}
}

func TestStop(t *testing.T) {
	cpu, m := newTestCPU(Config{}, 0x10, 0x00, 0x3c)

	mustStep(t, cpu)
	if !cpu.Halted() || cpu.PC() != 0x0102 {
		t.Fatalf("STOP: halted=%v PC=%04x, expected halted=true PC=0102", cpu.Halted(), cpu.PC())
	}
	before := cpu.Snapshot()
	for i := 0; i < 3; i++ {
		mustStep(t, cpu)
	}
	after := cpu.Snapshot()
	if !after.Halted || after.PC != 0x0102 || after.A != before.A {
		t.Fatalf("stopped steps: got %+v", after)
	}
	if consumed := before.Cycles - after.Cycles; consumed != 3*constant.IDLE_CYCLES {
		t.Fatalf("stopped steps: consumed %d cycles, expected %d", consumed, 3*constant.IDLE_CYCLES)
	}

	m.Set8(constant.LY, constant.LY_VBLANK-1)
	cpu.cycles = constant.IDLE_CYCLES
	mustStep(t, cpu)
	if cpu.Halted() || cpu.PC() != constant.VBLANK_ADDR {
		t.Fatalf("vblank while stopped: halted=%v PC=%04x", cpu.Halted(), cpu.PC())
	}
}

func TestVectoredInterrupt(t *testing.T) {
	cpu, m := newTestCPU(Config{InterruptMode: InterruptsVectored}, 0x00, 0x00)
	cpu.SetIME(true)
	m.Set8(constant.IE, 0x01)
	m.Set8(constant.LY, constant.LY_VBLANK-1)
	cpu.cycles = 4

	mustStep(t, cpu)
	if cpu.PC() != 0x0101 {
		t.Fatalf("PC got %04x, vectored mode must not jump at the line tick", cpu.PC())
	}
	if m.Get8(constant.IF)&0x01 == 0 {
		t.Fatalf("IF got %02x, vblank not requested", m.Get8(constant.IF))
	}

	mustStep(t, cpu)
	if cpu.PC() != constant.VBLANK_ADDR+1 {
		t.Fatalf("PC got %04x, expected the NOP at the vector to run", cpu.PC())
	}
	if cpu.IME() || m.Get8(constant.IF)&0x01 != 0 {
		t.Fatalf("IME=%v IF=%02x after dispatch", cpu.IME(), m.Get8(constant.IF))
	}
	if cpu.SP() != 0xfffc || m.Get16(0xfffc) != 0x0101 {
		t.Fatalf("SP=%04x return=%04x, expected SP=fffc return=0101", cpu.SP(), m.Get16(0xfffc))
	}
	if consumed := constant.LINE_CYCLES - cpu.Cycles(); consumed != constant.INTERRUPT_CYCLES+4 {
		t.Fatalf("consumed %d cycles, expected %d", consumed, constant.INTERRUPT_CYCLES+4)
	}
}

func TestVectoredInterruptPriority(t *testing.T) {
	cpu, m := newTestCPU(Config{InterruptMode: InterruptsVectored}, 0x00)
	cpu.SetIME(true)
	m.Set8(constant.IE, 0x1f)
	m.Set8(constant.IF, 0x06)

	mustStep(t, cpu)
	if cpu.PC() != constant.LCDC_ADDR+1 {
		t.Fatalf("PC got %04x, expected the STAT vector", cpu.PC())
	}
	if m.Get8(constant.IF) != 0x04 {
		t.Fatalf("IF got %02x, expected 04", m.Get8(constant.IF))
	}
}

func TestVectoredInterruptMasked(t *testing.T) {
	cpu, m := newTestCPU(Config{InterruptMode: InterruptsVectored}, 0x76, 0x00, 0x00)
	m.Set8(constant.IE, 0x01)

	mustStep(t, cpu)
	if !cpu.Halted() {
		t.Fatalf("HALT did not halt")
	}

	// IME is off: the request wakes the CPU without a dispatch
	m.Set8(constant.IF, 0x01)
	mustStep(t, cpu)
	if cpu.Halted() || cpu.PC() != 0x0102 || cpu.SP() != constant.STACK_TOP {
		t.Fatalf("halted=%v PC=%04x SP=%04x, expected a wake without dispatch", cpu.Halted(), cpu.PC(), cpu.SP())
	}
	if m.Get8(constant.IF) != 0x01 {
		t.Fatalf("IF got %02x, request must stay pending", m.Get8(constant.IF))
	}
}
