package cpu

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/ushitora-anqou/aqcore/bus"
	"github.com/ushitora-anqou/aqcore/constant"
	"github.com/ushitora-anqou/aqcore/util"
)

// InterruptToggle is an EI or DI that has been executed but not applied yet.
type InterruptToggle int

const (
	ToggleNone InterruptToggle = iota
	EnableAfterNext
	DisableAfterNext
)

func (t InterruptToggle) String() string {
	switch t {
	case ToggleNone:
		return "none"
	case EnableAfterNext:
		return "enable-after-next"
	case DisableAfterNext:
		return "disable-after-next"
	}
	return fmt.Sprintf("InterruptToggle(%d)", int(t))
}

// InterruptMode selects what happens when LY reaches the vblank line.
type InterruptMode int

const (
	// InterruptsForceJump moves pc to the vblank vector unconditionally,
	// without pushing a return address or looking at IME.
	InterruptsForceJump InterruptMode = iota
	// InterruptsVectored requests the vblank interrupt in IF and services
	// pending interrupts the way the hardware does, gated by IME and IE.
	InterruptsVectored
)

func (m InterruptMode) String() string {
	switch m {
	case InterruptsForceJump:
		return "jump"
	case InterruptsVectored:
		return "vectored"
	}
	return fmt.Sprintf("InterruptMode(%d)", int(m))
}

func ParseInterruptMode(s string) (InterruptMode, error) {
	switch strings.ToLower(s) {
	case "jump":
		return InterruptsForceJump, nil
	case "vectored":
		return InterruptsVectored, nil
	}
	return 0, fmt.Errorf("Unknown interrupt mode: %q (want jump or vectored)", s)
}

type Config struct {
	InterruptMode InterruptMode
}

type CPU struct {
	bus                    *bus.Bus
	config                 Config
	pc, sp                 uint16
	a, f, b, c, d, e, h, l uint8
	ime                    bool // Interrupt Master Enable flag (IME)
	toggle                 InterruptToggle
	deferToggle            bool // Set by EI/DI so the next instruction runs first
	halted                 bool
	cycles                 int // Remaining cycles until the next line tick

	// Operands of the instruction being executed
	imm8  uint8
	imm16 uint16
}

func NewCPU(bus *bus.Bus, config Config) *CPU {
	cpu := &CPU{bus: bus, config: config}
	cpu.Reset()
	return cpu
}

// Reset puts the registers in their post-boot state. Memory is left alone.
func (cpu *CPU) Reset() {
	cpu.pc = constant.ENTRY_POINT
	cpu.sp = constant.STACK_TOP
	cpu.f = 0
	cpu.SetAF(0x01b0)
	cpu.SetBC(0x0013)
	cpu.SetDE(0x00d8)
	cpu.SetHL(0x014d)
	cpu.ime = false
	cpu.toggle = ToggleNone
	cpu.deferToggle = false
	cpu.halted = false
	cpu.cycles = constant.LINE_CYCLES
	cpu.imm8, cpu.imm16 = 0, 0
}

func (cpu *CPU) IME() bool {
	return cpu.ime
}
func (cpu *CPU) SetIME(flag bool) {
	cpu.ime = flag
}
func (cpu *CPU) PendingToggle() InterruptToggle {
	return cpu.toggle
}
func (cpu *CPU) Halted() bool {
	return cpu.halted
}
func (cpu *CPU) Cycles() int {
	return cpu.cycles
}

// requestToggle records an EI/DI. A second request before the first is
// applied replaces it.
func (cpu *CPU) requestToggle(toggle InterruptToggle) {
	cpu.toggle = toggle
	cpu.deferToggle = true
}

func (cpu *CPU) applyToggle() {
	if cpu.toggle == ToggleNone {
		return
	}
	if cpu.deferToggle {
		cpu.deferToggle = false
		return
	}
	switch cpu.toggle {
	case EnableAfterNext:
		cpu.ime = true
		util.Trace("Interrupts enabled")
	case DisableAfterNext:
		cpu.ime = false
		util.Trace("Interrupts disabled")
	}
	cpu.toggle = ToggleNone
}

// tickLine runs once the cycle budget is spent: it advances LY and fires the
// vblank handling when LY reaches 144.
func (cpu *CPU) tickLine() {
	if cpu.cycles > 0 {
		return
	}
	cpu.cycles += constant.LINE_CYCLES

	ly := cpu.bus.Get8(constant.LY) + 1
	switch {
	case ly == constant.LY_VBLANK:
		cpu.vblank()
	case ly > constant.LY_MAX:
		ly = 0
	}
	cpu.bus.Set8(constant.LY, ly)
}

func (cpu *CPU) vblank() {
	switch cpu.config.InterruptMode {
	case InterruptsForceJump:
		util.Trace("VBlank: jump to 0x%04x", constant.VBLANK_ADDR)
		cpu.pc = constant.VBLANK_ADDR
		cpu.halted = false
	case InterruptsVectored:
		cpu.bus.Set8(constant.IF, cpu.bus.Get8(constant.IF)|1)
	}
}

// serviceInterrupts dispatches the highest priority interrupt that is both
// requested and enabled. A pending interrupt wakes a halted CPU even when
// IME is off.
func (cpu *CPU) serviceInterrupts() {
	requested := cpu.bus.Get8(constant.IF)
	pending := requested & cpu.bus.Get8(constant.IE) & 0x1f
	if pending == 0 {
		return
	}
	cpu.halted = false
	if !cpu.ime {
		return
	}

	n := bits.TrailingZeros8(pending)
	cpu.ime = false
	cpu.bus.Set8(constant.IF, requested&^(1<<n))
	cpu.push16(cpu.pc)
	cpu.pc = constant.VBLANK_ADDR + uint16(n)*8
	cpu.cycles -= constant.INTERRUPT_CYCLES
	util.Trace("Interrupt %d: jump to 0x%04x", n, cpu.pc)
}

// Step executes one instruction (or one idle slot while halted) followed by
// the EI/DI and line timing bookkeeping. On an unknown opcode it returns an
// *OpcodeError before pc, the registers or the cycle budget change.
func (cpu *CPU) Step() error {
	if cpu.config.InterruptMode == InterruptsVectored {
		cpu.serviceInterrupts()
	}

	if cpu.halted {
		cpu.cycles -= constant.IDLE_CYCLES
	} else {
		pc := cpu.pc
		opcode := cpu.bus.Get8(pc)
		if util.TraceEnabled() {
			text, _ := Disassemble(cpu.bus, pc)
			util.Trace("0x%04x: %s", pc, text)
		}
		if err := cpu.dispatch(primaryTable, opcode); err != nil {
			return err
		}
		if util.TraceEnabled() {
			cpu.traceRegisters()
		}
	}

	cpu.applyToggle()
	cpu.tickLine()
	return nil
}

// AdvanceCycle is Step under the name the frontend loop uses.
func (cpu *CPU) AdvanceCycle() error {
	return cpu.Step()
}

func (cpu *CPU) traceRegisters() {
	util.Trace("                af=%04x    bc=%04x    de=%04x    hl=%04x",
		cpu.AF(), cpu.BC(), cpu.DE(), cpu.HL())
	util.Trace("                sp=%04x    pc=%04x    Z=%d  N=%d  H=%d  C=%d",
		cpu.SP(), cpu.PC(), b2u8(cpu.FlagZ()), b2u8(cpu.FlagN()), b2u8(cpu.FlagH()), b2u8(cpu.FlagC()))
}
