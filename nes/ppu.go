package nes

import "fmt"

const (
	ppuCtrl   = 0x2000
	ppuMask   = 0x2001
	ppuStatus = 0x2002
	oamAddr   = 0x2003
	oamData   = 0x2004
	ppuScroll = 0x2005
	ppuAddr   = 0x2006
	ppuData   = 0x2007
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// palette is the fixed four-color placeholder palette used by the
// nametable and pattern-table renderers, packed as 0x00RRGGBB.
var palette = [4]uint32{
	0x000000, // black
	0x00FF0000, // red
	0x0000FF00, // green
	0x000000FF, // blue
}

// PPU is a deliberately simplified picture unit: the eight memory-mapped
// registers, the v/t/x/w scroll latches, a dot/scanline counter advanced
// one dot at a time, and a single-pass nametable rasterizer run once per
// frame rather than a per-dot fetch pipeline.
type PPU struct {
	Cartridge *Cartridge

	Ctrl    byte // 0x2000
	Mask    byte // 0x2001
	Status  byte // 0x2002
	OAMAddr byte // 0x2003
	OAMData byte // 0x2004
	dma     byte // 0x4014

	dataBuffer byte // 0x2007 read stub

	// v is the current VRAM address, t the temporary (top-left onscreen
	// tile) address, x the fine-X scroll, w the write-toggle.
	v, t uint16
	x    byte
	w    byte

	Dot      int
	ScanLine int
	Frame    uint64

	// VRAM backs the PPU's internal address space 0x2000-0x3FFF directly
	// (nametable bytes and, from 0x3F00 up, palette bytes stored in the
	// same region for now, per the simplified internal_write contract).
	VRAM [0x2000]byte
}

// NewPPU returns a PPU wired to cartridge for character-ROM reads.
func NewPPU(cartridge *Cartridge) *PPU {
	return &PPU{Cartridge: cartridge}
}

// ReadPort returns the byte visible to the CPU at the given bus address
// (already known to fall in 0x2000-0x3FFF or be 0x4014). When debug has
// FlagCPULog's side-effect suppression active (CPUDebugRead), the status
// register is read without clearing vblank or the write toggle.
func (p *PPU) ReadPort(addr uint16, debug *DebugContext) byte {
	if addr < 0x4000 {
		addr = (addr-0x2000)%8 + 0x2000
	}

	debugRead := debug != nil && debug.CPUDebugRead

	switch addr {
	case ppuCtrl:
		return p.Ctrl
	case ppuMask:
		return p.Mask
	case ppuStatus:
		result := p.Status
		if !debugRead {
			p.Status &^= 0x80
			p.w = 0
		}
		return result
	case oamAddr:
		return p.OAMAddr
	case oamData:
		return p.OAMData
	case ppuScroll:
		panic(fmt.Sprintf("nes: unimplemented ppu register read: 0x%04X", addr))
	case ppuAddr:
		panic(fmt.Sprintf("nes: unimplemented ppu register read: 0x%04X", addr))
	case ppuData:
		return p.dataBuffer
	case oamDmaAddr:
		return p.dma
	default:
		panic(fmt.Sprintf("nes: unexpected ppu port read: 0x%04X", addr))
	}
}

// WritePort stores value at the given bus address, applying the same
// register mirroring as ReadPort.
func (p *PPU) WritePort(addr uint16, value byte, debug *DebugContext) {
	if addr < 0x4000 {
		addr = (addr-0x2000)%8 + 0x2000
	}

	switch addr {
	case ppuCtrl:
		p.Ctrl = value
	case ppuMask:
		p.Mask = value
	case ppuStatus:
		p.Status = value
	case oamAddr:
		p.OAMAddr = value
	case oamData:
		p.OAMData = value
	case ppuScroll:
		if p.w == 0 {
			p.t = p.t&^0x001F | uint16(value>>3)
			p.x = value & 0x07
			p.w = 1
		} else {
			coarseY := uint16(value>>3) << 5
			fineY := uint16(value&0x07) << 12
			p.t = p.t&^0x73E0 | coarseY | fineY
			p.w = 0
		}
	case ppuAddr:
		if p.w == 0 {
			p.t = p.t&^0x7F00 | uint16(value&0x3F)<<8
			p.w = 1
		} else {
			p.t = p.t&^0x00FF | uint16(value)
			p.v = p.t
			p.w = 0
		}
	case ppuData:
		p.dataBuffer = value
		p.internalWrite(p.v, value)
		if p.Ctrl&0x04 > 0 {
			p.v += 32
		} else {
			p.v++
		}
	case oamDmaAddr:
		p.dma = value
	default:
		panic(fmt.Sprintf("nes: unexpected ppu port write: 0x%04X, 0x%02X", addr, value))
	}
}

// internalRead implements the PPU-internal address space used by the
// tile/palette fetch paths: character ROM below 0x2000, VRAM above it.
func (p *PPU) internalRead(addr uint16) byte {
	switch {
	case addr < 0x2000:
		v, err := p.Cartridge.ReadCHR(addr)
		if err != nil {
			panic(fmt.Sprintf("nes: %s at ppu address 0x%04X", err, addr))
		}
		return v
	case addr < 0x3000:
		return p.VRAM[addr-0x2000]
	default:
		panic(fmt.Sprintf("nes: unimplemented ppu internal read: 0x%04X", addr))
	}
}

// internalWrite implements the PPU-internal address space's write side:
// character ROM is not writable, VRAM (and, above 0x3F00, palette data
// stored in the same backing array) is.
func (p *PPU) internalWrite(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		panic(fmt.Sprintf("nes: unimplemented ppu internal write: 0x%04X", addr))
	case addr < 0x3F00:
		p.VRAM[addr-0x2000] = value
	case addr < 0x4000:
		p.VRAM[addr-0x2000] = value
	default:
		panic(fmt.Sprintf("nes: unimplemented ppu internal write: 0x%04X", addr))
	}
}

// Tick advances the picture unit by one dot. This is a deliberately
// simplified state machine: it sets the vblank flag at scanline 241 dot 1
// and otherwise only advances the dot/scanline counters, incrementing Frame
// when a new frame begins. There is no per-dot background fetch pipeline.
func (p *PPU) Tick() {
	if p.Dot == 1 && p.ScanLine == 241 {
		p.Status |= 0x80
	}

	p.Dot++
	if p.Dot > 340 {
		p.Dot = 0
		p.ScanLine++
	}
	if p.ScanLine > 261 {
		p.ScanLine = 0
		p.Frame++
	}
}

// DrawNametable rasterizes the current nametable into buf (256x240 pixels,
// row-major, packed 0x00RRGGBB) using the fixed four-color placeholder
// palette. ctrl bit 4 selects which half of character ROM backs the
// background tiles.
func (p *PPU) DrawNametable(buf []uint32) {
	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			tileIndex := p.VRAM[ty*32+tx]
			base := (uint16(tileIndex) | (uint16(p.Ctrl)&0x10)<<4) * 16

			for row := 0; row < 8; row++ {
				plane0 := p.internalRead(base + uint16(row))
				plane1 := p.internalRead(base + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					shift := uint(7 - col)
					bit0 := (plane0 >> shift) & 1
					bit1 := (plane1 >> shift) & 1
					colorIdx := bit1<<1 | bit0

					px := tx*8 + col
					py := ty*8 + row
					buf[py*screenWidth+px] = palette[colorIdx]
				}
			}
		}
	}
}

// DrawPatternTable rasterizes both 4KiB character-ROM halves into buf
// (128x256 pixels, row-major, packed 0x00RRGGBB), 16x16 tiles per half,
// stacked vertically. It is rebuilt on demand, never on the hot path.
func (p *PPU) DrawPatternTable(buf []uint32) {
	const tilesPerRow = 16
	const patternTableWidth = 128

	for half := 0; half < 2; half++ {
		for tileRow := 0; tileRow < tilesPerRow; tileRow++ {
			for tileCol := 0; tileCol < tilesPerRow; tileCol++ {
				tileIndex := tileRow*tilesPerRow + tileCol
				base := uint16(half)*0x1000 + uint16(tileIndex)*16

				for row := 0; row < 8; row++ {
					plane0 := p.internalRead(base + uint16(row))
					plane1 := p.internalRead(base + uint16(row) + 8)

					for col := 0; col < 8; col++ {
						shift := uint(7 - col)
						bit0 := (plane0 >> shift) & 1
						bit1 := (plane1 >> shift) & 1
						colorIdx := bit1<<1 | bit0

						px := tileCol*8 + col
						py := half*patternTableWidth + tileRow*8 + row
						buf[py*patternTableWidth+px] = palette[colorIdx]
					}
				}
			}
		}
	}
}
