package nes

import "testing"

// newTestCPU builds a CPU wired to a 32KiB program ROM (no bank mirroring),
// with prg copied to the start of it and the reset vector pointed at
// $8000. Tests write to the bus directly to set up memory before stepping.
func newTestCPU(prg []byte) (*CPU, *Bus) {
	prgROM := make([]byte, prgMul*2)
	for i := range prgROM {
		prgROM[i] = 0xEA // NOP, so falling off the end of prg keeps executing harmlessly
	}
	copy(prgROM, prg)
	prgROM[0x7FFC] = 0x00
	prgROM[0x7FFD] = 0x80

	cart := &Cartridge{PRG: prgROM, CHR: make([]byte, chrMul)}
	debug := NewDebugContext()
	ppu := NewPPU(cart)
	bus := NewBus(ppu, cart, debug)
	cpu := NewCPU(bus, debug)
	cpu.Init()
	return cpu, bus
}

func TestCPU_LDAImmediateSetsNegative(t *testing.T) {
	cpu, _ := newTestCPU([]byte{0xA9, 0xFF})
	cpu.Step()

	if cpu.A != 0xFF {
		t.Fatalf("A = %#02x, want %#02x", cpu.A, 0xFF)
	}
	if cpu.P&negative == 0 {
		t.Errorf("expected negative flag set")
	}
	if cpu.P&zero != 0 {
		t.Errorf("expected zero flag clear")
	}
}

func TestCPU_ADCCarryAndOverflow(t *testing.T) {
	cpu, _ := newTestCPU([]byte{0xA9, 0x50, 0x69, 0x50})
	cpu.Step() // LDA #$50
	cpu.Step() // ADC #$50

	if cpu.A != 0xA0 {
		t.Fatalf("A = %#02x, want %#02x", cpu.A, 0xA0)
	}
	if cpu.P&carry != 0 {
		t.Errorf("expected carry clear, got set")
	}
	if cpu.P&overflow == 0 {
		t.Errorf("expected signed overflow set")
	}
}

func TestCPU_IndirectJMPPageBoundaryBug(t *testing.T) {
	cpu, bus := newTestCPU([]byte{0x6C, 0xFF, 0x01}) // JMP ($01FF)
	bus.Write(0x01FF, 0x34)                          // low byte of target
	bus.Write(0x0100, 0x12)                          // high byte, wrapped (the bug)
	bus.Write(0x0200, 0x99)                          // high byte if the bug were absent

	cpu.Step()

	if cpu.PC != 0x1234 {
		t.Fatalf("PC = %#04x, want %#04x (the wrapped-fetch target)", cpu.PC, 0x1234)
	}
}

func TestCPU_JSRRTSRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU([]byte{
		0x20, 0x05, 0x80, // JSR $8005
		0xEA, 0xEA, // NOP NOP (the return site)
		0x60, // RTS
	})

	cpu.Step() // JSR
	if cpu.PC != 0x8005 {
		t.Fatalf("after JSR, PC = %#04x, want %#04x", cpu.PC, 0x8005)
	}

	cpu.Step() // RTS
	if cpu.PC != 0x8003 {
		t.Fatalf("after RTS, PC = %#04x, want %#04x", cpu.PC, 0x8003)
	}
}

func TestCPU_BranchTaken(t *testing.T) {
	cpu, _ := newTestCPU([]byte{
		0xA9, 0x00, // LDA #$00 (sets zero)
		0xF0, 0x02, // BEQ +2
	})
	cpu.Step() // LDA
	cycles := cpu.Step()

	if cpu.PC != 0x8006 {
		t.Fatalf("PC = %#04x, want %#04x", cpu.PC, 0x8006)
	}
	if cycles != 3 {
		t.Errorf("cycles = %d, want 3 (2 base + 1 taken)", cycles)
	}
}

func TestCPU_BranchNotTaken(t *testing.T) {
	cpu, _ := newTestCPU([]byte{
		0xA9, 0x01, // LDA #$01 (clears zero)
		0xF0, 0x02, // BEQ +2
	})
	cpu.Step() // LDA
	cycles := cpu.Step()

	if cpu.PC != 0x8004 {
		t.Fatalf("PC = %#04x, want %#04x", cpu.PC, 0x8004)
	}
	if cycles != 2 {
		t.Errorf("cycles = %d, want 2", cycles)
	}
}

func TestCPU_PPUStatusReadClearsVblank(t *testing.T) {
	cpu, bus := newTestCPU([]byte{})
	bus.PPU.Status = 0x80

	if v := bus.Read(0x2002); v != 0x80 {
		t.Fatalf("Read(0x2002) = %#02x, want %#02x", v, 0x80)
	}
	if bus.PPU.Status&0x80 != 0 {
		t.Errorf("expected vblank cleared after CPU-visible read")
	}
	_ = cpu
}

func TestCPU_Step_PanicsOnUnofficialOpcode(t *testing.T) {
	cpu, _ := newTestCPU([]byte{0x02}) // not in the 151-opcode table

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Step to panic on an unofficial opcode")
		}
	}()
	cpu.Step()
}

func TestCPU_DeferredInterruptDisableLatch(t *testing.T) {
	cpu, _ := newTestCPU([]byte{0x78, 0xEA}) // SEI, NOP
	cpu.P &^= interruptDisable

	cpu.Step() // SEI
	if cpu.P&interruptDisable != 0 {
		t.Errorf("SEI must not take effect until the next instruction's poll point")
	}

	cpu.Step() // NOP: pollInterrupts applies the deferred update first
	if cpu.P&interruptDisable == 0 {
		t.Errorf("expected interrupt-disable set after the next poll point")
	}
}

func TestCPU_BRKRTIRoundTrip(t *testing.T) {
	prgROM := make([]byte, prgMul*2)
	prgROM[0x0000] = 0x00 // BRK at $8000
	prgROM[0x0010] = 0x40 // RTI at $8010, the ISR entry point
	prgROM[0x7FFC] = 0x00 // reset vector -> $8000
	prgROM[0x7FFD] = 0x80
	prgROM[0x7FFE] = 0x10 // IRQ/BRK vector -> $8010
	prgROM[0x7FFF] = 0x80

	cart := &Cartridge{PRG: prgROM, CHR: make([]byte, chrMul)}
	debug := NewDebugContext()
	ppu := NewPPU(cart)
	bus := NewBus(ppu, cart, debug)
	cpu := NewCPU(bus, debug)
	cpu.Init()

	cpu.Step() // BRK
	if cpu.PC != 0x8010 {
		t.Fatalf("after BRK, PC = %#04x, want %#04x", cpu.PC, 0x8010)
	}
	if cpu.P&interruptDisable == 0 {
		t.Errorf("expected interrupt-disable set by BRK")
	}

	cpu.Step() // RTI
	if cpu.PC != 0x8002 {
		t.Fatalf("after RTI, PC = %#04x, want %#04x (byte past BRK's padding byte)", cpu.PC, 0x8002)
	}
}

func TestCPU_PageCrossPenaltyOnlyOnReads(t *testing.T) {
	cpu, _ := newTestCPU([]byte{
		0xBD, 0xFF, 0x00, // LDA $00FF,X
		0x9D, 0xFF, 0x00, // STA $00FF,X
	})
	cpu.X = 1 // $00FF + 1 crosses into page $01

	if cycles := cpu.Step(); cycles != 5 {
		t.Errorf("LDA page-crossing cycles = %d, want 5 (4 base + 1 page)", cycles)
	}
	if cycles := cpu.Step(); cycles != 5 {
		t.Errorf("STA page-crossing cycles = %d, want 5 (fixed, no page penalty on writes)", cycles)
	}
}

func TestCPU_Step_LogsDisassembly(t *testing.T) {
	cpu, bus := newTestCPU([]byte{0xA9, 0x2A}) // LDA #$2A
	bus.Debug.SetFlag(FlagCPULog)

	cpu.Step()

	got := bus.Debug.LastInstruction()
	if got == "" {
		t.Fatalf("expected an instruction to be logged")
	}
	if want := "8000"; len(got) < len(want) || got[:4] != want {
		t.Errorf("logged line = %q, want it to start with PC %q", got, want)
	}
}
