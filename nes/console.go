package nes

import (
	"fmt"
	"io"
	"os"
)

// Emulator wires together a cartridge, bus, CPU, and PPU and is the only
// thing responsible for keeping them in lockstep: the CPU has no notion of
// the PPU at all, so after every CPU.Step the Emulator ticks the PPU three
// times per CPU cycle consumed.
type Emulator struct {
	Cartridge *Cartridge
	Bus       *Bus
	CPU       *CPU
	PPU       *PPU
	APU       *APU
	Debug     *DebugContext

	Controller1 *Controller
	Controller2 *Controller
}

// NewEmulator returns an Emulator with no cartridge loaded. LoadPath or
// LoadRom must be called before Tick or StepFrame will do anything useful.
func NewEmulator() *Emulator {
	debug := NewDebugContext()
	ppu := NewPPU(nil)
	apu := NewAPU()
	bus := NewBus(ppu, nil, debug)
	bus.APU = apu
	ctrl1 := &Controller{}
	bus.Controller1 = ctrl1

	return &Emulator{
		Bus:         bus,
		CPU:         NewCPU(bus, debug),
		PPU:         ppu,
		APU:         apu,
		Debug:       debug,
		Controller1: ctrl1,
		Controller2: &Controller{},
	}
}

// Empty reports whether a cartridge has been loaded yet.
func (e *Emulator) Empty() bool {
	return e.Cartridge == nil
}

func (e *Emulator) load(cart *Cartridge) {
	first := e.Cartridge == nil
	e.Cartridge = cart
	e.Bus.Cartridge = cart
	e.PPU.Cartridge = cart

	if first {
		e.CPU.Init()
		return
	}
	e.Reset()
}

// LoadPath opens path and loads it as an iNES image.
func (e *Emulator) LoadPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("nes: unable to open rom: %s", err)
	}
	defer f.Close()

	cart, err := LoadINES(f)
	if err != nil {
		return err
	}
	e.load(cart)
	return nil
}

// LoadRom loads an iNES image from an already-open reader.
func (e *Emulator) LoadRom(rom io.Reader) error {
	cart, err := LoadINES(rom)
	if err != nil {
		return err
	}
	e.load(cart)
	return nil
}

// Reset applies a soft reset: the CPU's reset line, with the APU's register
// state cleared alongside it.
func (e *Emulator) Reset() {
	e.CPU.Reset()
	e.APU.Reset()
}

// Tick runs exactly one CPU instruction (or interrupt service routine) and
// the matching PPU dots. It returns the number of CPU cycles spent and
// whether the instruction just executed was sitting at the armed PC
// breakpoint.
func (e *Emulator) Tick() (cycles uint64, hitBreakpoint bool) {
	pc := e.CPU.PC
	cycles = e.CPU.Step()
	for i := uint64(0); i < cycles*3; i++ {
		e.PPU.Tick()
	}
	hitBreakpoint = e.Debug.CheckBreakpoint(pc) == BreakpointPC
	return cycles, hitBreakpoint
}

// StepFrame runs Tick until the PPU completes a frame, halting immediately
// if a tick hits the armed PC breakpoint rather than running through to
// the end of the frame.
func (e *Emulator) StepFrame() {
	if e.Empty() {
		return
	}

	frame := e.PPU.Frame
	for frame == e.PPU.Frame {
		if _, hit := e.Tick(); hit {
			return
		}
	}
}

// RunInLoop drives the emulator one step at a time, calling display once per
// iteration, until stop reports true. Each iteration runs one frame, except
// that while FlagStepInstruction is set it runs a single Tick instead. A step
// flag is cleared after the iteration that honored it, and the loop then
// goes on running whole frames: it does not pause or return on a step flag
// or a breakpoint hit.
func (e *Emulator) RunInLoop(display func(*Emulator), stop func() bool) {
	for !stop() {
		switch {
		case e.Debug.FlagEnabled(FlagStepInstruction):
			e.Tick()
			e.Debug.ClearFlag(FlagStepInstruction)
		case e.Debug.FlagEnabled(FlagStepFrame):
			e.StepFrame()
			e.Debug.ClearFlag(FlagStepFrame)
		default:
			e.StepFrame()
		}
		display(e)
	}
}

// Press and Release forward to controller 0 or 1.
func (e *Emulator) Press(ctrl int, button Button) {
	switch ctrl {
	case 0:
		e.Controller1.Press(button)
	case 1:
		e.Controller2.Press(button)
	}
}

func (e *Emulator) Release(ctrl int, button Button) {
	switch ctrl {
	case 0:
		e.Controller1.Release(button)
	case 1:
		e.Controller2.Release(button)
	}
}

// DrawNametable and DrawPatternTable forward to the PPU's renderers.
func (e *Emulator) DrawNametable(buf []uint32) {
	e.PPU.DrawNametable(buf)
}

func (e *Emulator) DrawPatternTable(buf []uint32) {
	e.PPU.DrawPatternTable(buf)
}

// Read and Write expose the CPU's address bus for debugging tools.
func (e *Emulator) Read(addr uint16) byte {
	return e.Bus.Read(addr)
}

func (e *Emulator) Write(addr uint16, v byte) {
	e.Bus.Write(addr, v)
}

// DumpAPU encodes whatever register writes were captured while FlagAPUDump
// was set to w. Callers typically set FlagAPUDump, run for a while, clear
// it, then call this once to flush the capture to disk.
func (e *Emulator) DumpAPU(w io.WriteSeeker, sampleRate int) error {
	return e.APU.DumpRegisters(w, sampleRate)
}
