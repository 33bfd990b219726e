package nes

import (
	"bufio"
	"bytes"
	"os"
	"testing"
)

// TestConsole_nestest replays the canonical nestest ROM against its golden
// CPU trace log, byte for byte. It is skipped when the fixtures aren't
// present locally; they are too large to vendor into the module.
func TestConsole_nestest(t *testing.T) {
	testRom, err := os.Open("../roms/cpu/nestest/nestest.nes")
	if err != nil {
		t.Skip("nestest fixture not present, skipping golden-log comparison")
	}
	defer testRom.Close()

	log, err := os.Open("../roms/cpu/nestest/nestest.log.txt")
	if err != nil {
		t.Skip("nestest golden log not present, skipping golden-log comparison")
	}
	defer log.Close()

	e := NewEmulator()
	if err := e.LoadRom(testRom); err != nil {
		t.Fatalf("unable to load rom: %v", err)
	}
	e.CPU.PC = 0xC000 // nestest's automated-mode entry point
	e.Debug.SetFlag(FlagCPULog)

	scanner := bufio.NewScanner(log)
	for scanner.Scan() {
		want := scanner.Bytes()

		e.CPU.Step()

		got := []byte(e.Debug.LastInstruction())
		if !bytes.Equal(got, want) {
			t.Fatalf("nestest: want %q, got %q", want, got)
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("unable to read log: %v", err)
	}
}

func newTestEmulator(t *testing.T, prg []byte) *Emulator {
	t.Helper()

	prgROM := make([]byte, prgMul*2)
	for i := range prgROM {
		prgROM[i] = 0xEA // NOP, so falling off the end of prg keeps executing harmlessly
	}
	copy(prgROM, prg)
	prgROM[0x7FFC] = 0x00
	prgROM[0x7FFD] = 0x80

	e := NewEmulator()
	e.Cartridge = &Cartridge{PRG: prgROM, CHR: make([]byte, chrMul)}
	e.Bus.Cartridge = e.Cartridge
	e.PPU.Cartridge = e.Cartridge
	e.CPU.Init()
	return e
}

func TestEmulator_TickAdvancesPPUThreeDotsPerCycle(t *testing.T) {
	e := newTestEmulator(t, []byte{0xEA}) // NOP, 2 cycles
	e.Tick()

	if e.PPU.Dot != 6 {
		t.Errorf("PPU.Dot = %d, want %d (2 cycles * 3 dots)", e.PPU.Dot, 6)
	}
}

func TestEmulator_StepFrameStopsAtFrameBoundary(t *testing.T) {
	e := newTestEmulator(t, []byte{0xEA}) // an infinite stream of NOPs, PC never advances past ROM
	startFrame := e.PPU.Frame

	e.StepFrame()

	if e.PPU.Frame != startFrame+1 {
		t.Errorf("PPU.Frame = %d, want %d", e.PPU.Frame, startFrame+1)
	}
}

func TestEmulator_EmptyStepFrameIsNoop(t *testing.T) {
	e := NewEmulator()
	e.StepFrame() // must not panic with no cartridge loaded
}

func TestEmulator_PressRelease(t *testing.T) {
	e := NewEmulator()
	// Each Read shifts out one button state (1 pressed, 0 released) in
	// A, B, Select, Start, ... order.
	e.Press(0, Start)
	for i := A; i < Start; i++ {
		e.Controller1.Read()
	}
	if e.Controller1.Read() != 1 {
		t.Errorf("expected controller 1 to report Start pressed")
	}
	e.Release(0, Start)
	e.Controller1.Write(1) // re-strobe
	e.Controller1.Write(0)
	for i := A; i < Start; i++ {
		e.Controller1.Read()
	}
	if e.Controller1.Read() != 0 {
		t.Errorf("expected controller 1 to report Start released")
	}
}
