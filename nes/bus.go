package nes

import "fmt"

const oamDmaAddr = 0x4014

// Bus is the CPU-side address-bus fabric. It owns work RAM and the stubbed
// audio/IO register slot, and routes accesses to the PPU and cartridge by
// address range, exactly mirroring the ranges real NES hardware mirrors.
//
// When the shared debug context has FlagJSONTestMode set, Read and Write
// bypass all of this and address a flat 64KiB array instead, so a
// single-instruction JSON test vector can lay out memory without caring
// about mirroring.
type Bus struct {
	RAM       *RAM
	PPU       *PPU
	APU       *APU
	Cartridge *Cartridge
	Debug     *DebugContext

	// Controller1, if non-nil, intercepts reads/writes of $4016 instead of
	// the generic "return last written byte" IO stub.
	Controller1 *Controller

	io   [0x18]byte // 0x4000-0x4017, stub storage for when APU is nil
	flat [0x10000]byte
}

// NewBus constructs a Bus with freshly zeroed work RAM, wired to ppu,
// cartridge, and the shared debug context. The APU field is left nil; while
// it is nil, the $4000-$4017 range falls back to a plain "last write wins"
// IO stub.
func NewBus(ppu *PPU, cartridge *Cartridge, debug *DebugContext) *Bus {
	return &Bus{
		RAM:       NewRAM(),
		PPU:       ppu,
		Cartridge: cartridge,
		Debug:     debug,
	}
}

// Read returns the byte visible to the CPU at addr, applying the bus'
// mirroring rules (or, in JSON test mode, addressing the flat backing
// array directly).
func (b *Bus) Read(addr uint16) byte {
	if b.Debug != nil && b.Debug.FlagEnabled(FlagJSONTestMode) {
		return b.flat[addr]
	}

	switch {
	case addr <= 0x1FFF:
		return b.RAM.Read(addr & 0x07FF)
	case addr <= 0x3FFF:
		return b.PPU.ReadPort(addr, b.Debug)
	case addr == oamDmaAddr:
		return b.PPU.ReadPort(addr, b.Debug)
	case addr == 0x4016 && b.Controller1 != nil:
		return byte(b.Controller1.Read())
	case addr <= 0x4017 && b.APU != nil:
		return b.APU.ReadPort(addr)
	case addr <= 0x4017:
		return b.io[addr-0x4000]
	case addr <= 0x401F:
		return 0
	case addr <= 0x5FFF:
		return 0
	case addr <= 0x7FFF:
		panic(fmt.Sprintf("nes: read from unimplemented cartridge RAM region: 0x%04X", addr))
	default:
		v, err := b.Cartridge.ReadPRG(addr)
		if err != nil {
			panic(fmt.Sprintf("nes: %s at 0x%04X", err, addr))
		}
		return v
	}
}

// Write stores value at the bus address visible to the CPU, applying the
// bus' mirroring rules (or, in JSON test mode, addressing the flat backing
// array directly).
func (b *Bus) Write(addr uint16, value byte) {
	if b.Debug != nil && b.Debug.FlagEnabled(FlagJSONTestMode) {
		b.flat[addr] = value
		return
	}

	switch {
	case addr <= 0x1FFF:
		b.RAM.Write(addr&0x07FF, value)
	case addr <= 0x3FFF:
		b.PPU.WritePort(addr, value, b.Debug)
	case addr == oamDmaAddr:
		b.PPU.WritePort(addr, value, b.Debug)
	case addr == 0x4016 && b.Controller1 != nil:
		b.io[addr-0x4000] = value
		b.Controller1.Write(value)
	case addr <= 0x4017 && b.APU != nil:
		b.APU.WritePort(addr, value, b.Debug)
	case addr <= 0x4017:
		b.io[addr-0x4000] = value
	default:
		// 0x4018 and beyond (including cartridge RAM and PRG ROM: mapper 0
		// has no writable registers) reaches the source's default branch
		// and faults. Real hardware silently ignores these writes.
		panic(fmt.Sprintf("nes: write to unimplemented region: 0x%04X", addr))
	}
}

// LoadFlat copies data into the bus' flat 64KiB test-mode array starting at
// addr. Only meaningful while FlagJSONTestMode is set.
func (b *Bus) LoadFlat(addr uint16, data []byte) {
	copy(b.flat[int(addr):], data)
}

// ReadFlat reads directly from the flat 64KiB test-mode array, regardless
// of FlagJSONTestMode.
func (b *Bus) ReadFlat(addr uint16) byte {
	return b.flat[addr]
}
