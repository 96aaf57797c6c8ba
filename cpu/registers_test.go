package cpu

import "testing"

func TestPairRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU(Config{})
	for _, pair := range []Pair{PairBC, PairDE, PairHL} {
		for w := 0; w <= 0xffff; w++ {
			cpu.SetPair(pair, uint16(w))
			if got := cpu.GetPair(pair); got != uint16(w) {
				t.Fatalf("%s: got %04x, expected %04x", pair, got, w)
			}
		}
	}
	for w := 0; w <= 0xffff; w++ {
		cpu.SetPair(PairAF, uint16(w))
		expected := uint16(w) & 0xfff0
		if got := cpu.GetPair(PairAF); got != expected {
			t.Fatalf("AF: got %04x, expected %04x", got, expected)
		}
	}
}

func TestPairSplit(t *testing.T) {
	cpu, _ := newTestCPU(Config{})
	cpu.SetBC(0x1234)
	cpu.SetDE(0x5678)
	cpu.SetHL(0x9abc)
	cpu.SetAF(0xdeff)
	got := [8]uint8{cpu.B(), cpu.C(), cpu.D(), cpu.E(), cpu.H(), cpu.L(), cpu.A(), cpu.F()}
	expected := [8]uint8{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0}
	if got != expected {
		t.Fatalf("byte registers: got %02x, expected %02x", got, expected)
	}
}

func TestFlags(t *testing.T) {
	flags := []Flag{FlagZ, FlagN, FlagH, FlagC}
	bits := map[Flag]uint8{FlagZ: 0x80, FlagN: 0x40, FlagH: 0x20, FlagC: 0x10}

	for _, flag := range flags {
		for _, initial := range []uint8{0x00, 0xf0, 0x50, 0xa0} {
			cpu, _ := newTestCPU(Config{})
			cpu.SetF(initial)

			cpu.SetFlag(flag)
			if !cpu.GetFlag(flag) {
				t.Fatalf("SetFlag(%s) from %02x: flag not set", flag, initial)
			}
			if got, expected := cpu.F(), initial|bits[flag]; got != expected {
				t.Fatalf("SetFlag(%s) from %02x: F got %02x, expected %02x", flag, initial, got, expected)
			}
			cpu.SetFlag(flag)
			if got, expected := cpu.F(), initial|bits[flag]; got != expected {
				t.Fatalf("SetFlag(%s) twice from %02x: F got %02x, expected %02x", flag, initial, got, expected)
			}

			cpu.ClearFlag(flag)
			if cpu.GetFlag(flag) {
				t.Fatalf("ClearFlag(%s) from %02x: flag still set", flag, initial)
			}
			if got, expected := cpu.F(), initial&^bits[flag]; got != expected {
				t.Fatalf("ClearFlag(%s) from %02x: F got %02x, expected %02x", flag, initial, got, expected)
			}
			cpu.ClearFlag(flag)
			if got, expected := cpu.F(), initial&^bits[flag]; got != expected {
				t.Fatalf("ClearFlag(%s) twice from %02x: F got %02x, expected %02x", flag, initial, got, expected)
			}
		}
	}
}

func TestFlagAccessors(t *testing.T) {
	cpu, _ := newTestCPU(Config{})
	cpu.SetF(0xa0)
	if !cpu.FlagZ() || cpu.FlagN() || !cpu.FlagH() || cpu.FlagC() {
		t.Fatalf("F=a0: got Z=%v N=%v H=%v C=%v", cpu.FlagZ(), cpu.FlagN(), cpu.FlagH(), cpu.FlagC())
	}
	cpu.SetF(0x0f)
	if cpu.F() != 0 {
		t.Fatalf("SetF(0x0f): low nibble kept, F=%02x", cpu.F())
	}
}
