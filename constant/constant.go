package constant

const (
	MEMORY_SIZE = 0x10000
	ROM_SIZE    = 0x8000 // Non-banked program region 0000-7FFF

	// Echo RAM: writes to C000-DDFF also land at E000-FDFF and vice versa
	WRAM_ECHO_START = 0xc000
	WRAM_ECHO_END   = 0xddff
	ECHO_START      = 0xe000
	ECHO_END        = 0xfdff
	ECHO_OFFSET     = 0x2000

	ENTRY_POINT = 0x0100
	STACK_TOP   = 0xfffe

	LINE_CYCLES = 455 // Cycle budget replenished at each scanline tick
	LY_VBLANK   = 144
	LY_MAX      = 153
	IDLE_CYCLES = 4 // Cost of one tick while halted

	INTERRUPT_CYCLES = 20
)

// Interrupt vectors, highest priority first
const (
	VBLANK_ADDR = 0x0040
	LCDC_ADDR   = 0x0048
	TIMER_ADDR  = 0x0050
	SERIAL_ADDR = 0x0058
	JOYPAD_ADDR = 0x0060
)

// I/O registers
const (
	P1   = 0xff00
	SB   = 0xff01
	SC   = 0xff02
	DIV  = 0xff04
	TIMA = 0xff05
	TMA  = 0xff06
	TAC  = 0xff07
	IF   = 0xff0f
	NR10 = 0xff10
	NR11 = 0xff11
	NR12 = 0xff12
	NR14 = 0xff14
	NR21 = 0xff16
	NR24 = 0xff19
	NR30 = 0xff1a
	NR31 = 0xff1b
	NR32 = 0xff1c
	NR34 = 0xff1e
	NR41 = 0xff20
	NR44 = 0xff23
	NR50 = 0xff24
	NR51 = 0xff25
	NR52 = 0xff26
	LCDC = 0xff40
	STAT = 0xff41
	SCY  = 0xff42
	SCX  = 0xff43
	LY   = 0xff44
	LYC  = 0xff45
	DMA  = 0xff46
	BGP  = 0xff47
	OBP0 = 0xff48
	OBP1 = 0xff49
	WY   = 0xff4a
	WX   = 0xff4b
	IE   = 0xffff
)
