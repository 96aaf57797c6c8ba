package cpu

import "testing"

func TestStackRoundTrip(t *testing.T) {
	cpu, m := newTestCPU(Config{})
	for _, sp := range []uint16{0xfffe, 0xc100, 0xe002, 0x0001, 0x0000} {
		for _, v := range []uint16{0x0000, 0x0001, 0x1234, 0x8000, 0xffff} {
			cpu.SetSP(sp)
			cpu.Push16(v)
			if got, expected := cpu.SP(), sp-2; got != expected {
				t.Fatalf("push at sp=%04x: sp got %04x, expected %04x", sp, got, expected)
			}
			if got := m.Get16(sp - 2); got != v {
				t.Fatalf("push at sp=%04x: memory got %04x, expected %04x", sp, got, v)
			}
			if got := cpu.Pop16(); got != v {
				t.Fatalf("pop at sp=%04x: got %04x, expected %04x", sp, got, v)
			}
			if cpu.SP() != sp {
				t.Fatalf("pop: sp got %04x, expected %04x", cpu.SP(), sp)
			}
		}
	}
}
