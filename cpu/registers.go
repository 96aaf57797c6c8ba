package cpu

import "fmt"

// Flag identifies one of the four status bits packed into the high nibble of F.
type Flag uint8

const (
	FlagC Flag = 4 // Carry
	FlagH Flag = 5 // Half-carry
	FlagN Flag = 6 // Subtract
	FlagZ Flag = 7 // Zero
)

// The low nibble of F always reads as zero.
const flagMask uint8 = 0xf0

func (f Flag) String() string {
	switch f {
	case FlagC:
		return "C"
	case FlagH:
		return "H"
	case FlagN:
		return "N"
	case FlagZ:
		return "Z"
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

// Pair names one of the 16-bit register views.
type Pair int

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
)

func (p Pair) String() string {
	switch p {
	case PairAF:
		return "AF"
	case PairBC:
		return "BC"
	case PairDE:
		return "DE"
	case PairHL:
		return "HL"
	}
	return fmt.Sprintf("Pair(%d)", int(p))
}

func reg2str(index uint8) string {
	return []string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[index]
}

func regBC_DE_HL_SP_ToStr(index uint8) string {
	return []string{"BC", "DE", "HL", "SP"}[index]
}

func regBC_DE_HLPLUS_HLMINUS_ToStr(index uint8) string {
	return []string{"BC", "DE", "HL+", "HL-"}[index]
}

func regBC_DE_HL_AF_ToStr(index uint8) string {
	return []string{"BC", "DE", "HL", "AF"}[index]
}

func cond2str(index uint8) string {
	return []string{"NZ", "Z", "NC", "C"}[index]
}

func (cpu *CPU) PC() uint16 {
	return cpu.pc
}
func (cpu *CPU) SP() uint16 {
	return cpu.sp
}
func (cpu *CPU) A() uint8 {
	return cpu.a
}
func (cpu *CPU) F() uint8 {
	return cpu.f
}
func (cpu *CPU) B() uint8 {
	return cpu.b
}
func (cpu *CPU) C() uint8 {
	return cpu.c
}
func (cpu *CPU) D() uint8 {
	return cpu.d
}
func (cpu *CPU) E() uint8 {
	return cpu.e
}
func (cpu *CPU) H() uint8 {
	return cpu.h
}
func (cpu *CPU) L() uint8 {
	return cpu.l
}
func (cpu *CPU) AF() uint16 {
	return ((uint16)(cpu.a) << 8) | (uint16)(cpu.f)
}
func (cpu *CPU) BC() uint16 {
	return ((uint16)(cpu.b) << 8) | (uint16)(cpu.c)
}
func (cpu *CPU) DE() uint16 {
	return ((uint16)(cpu.d) << 8) | (uint16)(cpu.e)
}
func (cpu *CPU) HL() uint16 {
	return ((uint16)(cpu.h) << 8) | (uint16)(cpu.l)
}
func (cpu *CPU) SetPC(pc uint16) {
	cpu.pc = pc
}
func (cpu *CPU) SetSP(sp uint16) {
	cpu.sp = sp
}
func (cpu *CPU) SetA(a uint8) {
	cpu.a = a
}
func (cpu *CPU) SetF(f uint8) {
	cpu.f = f & flagMask
}
func (cpu *CPU) SetB(b uint8) {
	cpu.b = b
}
func (cpu *CPU) SetC(c uint8) {
	cpu.c = c
}
func (cpu *CPU) SetD(d uint8) {
	cpu.d = d
}
func (cpu *CPU) SetE(e uint8) {
	cpu.e = e
}
func (cpu *CPU) SetH(h uint8) {
	cpu.h = h
}
func (cpu *CPU) SetL(l uint8) {
	cpu.l = l
}
func (cpu *CPU) SetAF(af uint16) {
	cpu.a = (uint8)(af >> 8)
	cpu.f = (uint8)(af) & flagMask
}
func (cpu *CPU) SetBC(bc uint16) {
	cpu.b = (uint8)(bc >> 8)
	cpu.c = (uint8)(bc)
}
func (cpu *CPU) SetDE(de uint16) {
	cpu.d = (uint8)(de >> 8)
	cpu.e = (uint8)(de)
}
func (cpu *CPU) SetHL(hl uint16) {
	cpu.h = (uint8)(hl >> 8)
	cpu.l = (uint8)(hl)
}

func (cpu *CPU) GetPair(p Pair) uint16 {
	switch p {
	case PairAF:
		return cpu.AF()
	case PairBC:
		return cpu.BC()
	case PairDE:
		return cpu.DE()
	case PairHL:
		return cpu.HL()
	}
	panic(fmt.Sprintf("invalid register pair: %d", int(p)))
}

func (cpu *CPU) SetPair(p Pair, word uint16) {
	switch p {
	case PairAF:
		cpu.SetAF(word)
	case PairBC:
		cpu.SetBC(word)
	case PairDE:
		cpu.SetDE(word)
	case PairHL:
		cpu.SetHL(word)
	default:
		panic(fmt.Sprintf("invalid register pair: %d", int(p)))
	}
}

func (cpu *CPU) GetFlag(flag Flag) bool {
	return ((cpu.f >> flag) & 1) != 0
}
func (cpu *CPU) SetFlag(flag Flag) {
	cpu.f |= 1 << flag
}
func (cpu *CPU) ClearFlag(flag Flag) {
	cpu.f &^= 1 << flag
}
func (cpu *CPU) putFlag(flag Flag, on bool) {
	if on {
		cpu.SetFlag(flag)
	} else {
		cpu.ClearFlag(flag)
	}
}

func (cpu *CPU) FlagZ() bool {
	return cpu.GetFlag(FlagZ)
}
func (cpu *CPU) FlagN() bool {
	return cpu.GetFlag(FlagN)
}
func (cpu *CPU) FlagH() bool {
	return cpu.GetFlag(FlagH)
}
func (cpu *CPU) FlagC() bool {
	return cpu.GetFlag(FlagC)
}
func (cpu *CPU) setFlagZNHC(z, n, h, c bool) {
	cpu.putFlag(FlagZ, z)
	cpu.putFlag(FlagN, n)
	cpu.putFlag(FlagH, h)
	cpu.putFlag(FlagC, c)
}

func (cpu *CPU) getReg(num uint8) uint8 {
	switch num {
	case 0:
		return cpu.b
	case 1:
		return cpu.c
	case 2:
		return cpu.d
	case 3:
		return cpu.e
	case 4:
		return cpu.h
	case 5:
		return cpu.l
	case 6:
		return cpu.bus.Get8(cpu.HL())
	case 7:
		return cpu.a
	}
	panic(fmt.Sprintf("invalid register: %d", num))
}

func (cpu *CPU) setReg(dst, val uint8) {
	switch dst {
	case 0:
		cpu.b = val
	case 1:
		cpu.c = val
	case 2:
		cpu.d = val
	case 3:
		cpu.e = val
	case 4:
		cpu.h = val
	case 5:
		cpu.l = val
	case 6:
		cpu.bus.Set8(cpu.HL(), val)
	case 7:
		cpu.a = val
	default:
		panic(fmt.Sprintf("invalid register: %d", dst))
	}
}

func (cpu *CPU) getReg16(index uint8, is3rdSP bool) uint16 {
	switch index {
	case 0:
		return cpu.BC()
	case 1:
		return cpu.DE()
	case 2:
		return cpu.HL()
	case 3:
		if is3rdSP {
			return cpu.sp
		}
		return cpu.AF()
	}
	panic(fmt.Sprintf("invalid register pair index: %d", index))
}

func (cpu *CPU) setReg16(index uint8, val uint16, is3rdSP bool) {
	switch index {
	case 0:
		cpu.SetBC(val)
	case 1:
		cpu.SetDE(val)
	case 2:
		cpu.SetHL(val)
	case 3:
		if is3rdSP {
			cpu.sp = val
		} else {
			cpu.SetAF(val)
		}
	default:
		panic(fmt.Sprintf("invalid register pair index: %d", index))
	}
}
