package main

import (
	"io"
	"log"

	"github.com/ushitora-anqou/aqcore/bus"
	"github.com/ushitora-anqou/aqcore/cpu"
	"github.com/ushitora-anqou/aqcore/mmu"
)

type AQCore struct {
	bus *bus.Bus
	cpu *cpu.CPU
	mmu *mmu.MMU
}

func NewAQCore(config cpu.Config) *AQCore {
	// Build the components
	bus := bus.NewBus()
	mmu := mmu.NewMMU()
	bus.Register(mmu)
	cpu := cpu.NewCPU(bus, config)

	a := &AQCore{bus, cpu, mmu}
	a.Init()
	return a
}

// Init restores the power-up state of memory and registers.
func (a *AQCore) Init() {
	a.mmu.Reset()
	a.cpu.Reset()
}

// LoadGame copies the image at path into memory. It must be called after
// Init and before the first AdvanceCycle.
func (a *AQCore) LoadGame(path string) error {
	n, err := a.mmu.LoadROMFile(path)
	if err != nil {
		return err
	}
	a.logHeader(path, n)
	return nil
}

func (a *AQCore) LoadGameFrom(src io.Reader) error {
	n, err := a.mmu.LoadROM(src)
	if err != nil {
		return err
	}
	a.logHeader("<reader>", n)
	return nil
}

func (a *AQCore) logHeader(name string, n int) {
	header := a.mmu.Header()
	log.Printf("Loaded %s: %d bytes, title %q, type %s", name, n, header.Title, header.CartTypeName())
	if !header.Flat() {
		log.Printf("Warning: cartridge uses bank switching (type 0x%02x, ROM size 0x%02x); only the first 32KB is mapped",
			header.CartType, header.ROMSize)
	}
}

func (a *AQCore) AdvanceCycle() error {
	return a.cpu.AdvanceCycle()
}

// Run calls AdvanceCycle until it fails or, when maxSteps is non-zero, until
// maxSteps instructions have run.
func (a *AQCore) Run(maxSteps uint64) error {
	for step := uint64(0); maxSteps == 0 || step < maxSteps; step++ {
		if err := a.AdvanceCycle(); err != nil {
			return err
		}
	}
	return nil
}

func (a *AQCore) Snapshot() cpu.Snapshot {
	return a.cpu.Snapshot()
}
