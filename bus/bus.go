package bus

// MMU is the address space every other component reads and writes through.
type MMU interface {
	Get8(addr uint16) uint8
	Get16(addr uint16) uint16
	Set8(addr uint16, val uint8)
	Set16(addr uint16, val uint16)
}

type Bus struct {
	MMU
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Register(mmu MMU) {
	b.MMU = mmu
}
