package nes

import (
	"fmt"
	"strings"
)

var addressingFormats = map[AddressingMode]string{
	Immediate:           "#$%02X",    // #aa
	Absolute:            "$%04X",     // aaaa
	ZeroPage:            "$%02X",     // aa
	Implied:             "",          //
	Indirect:            "($%04X)",   // (aaaa)
	IndexedX:            "$%04X,X",   // aaaa,X
	IndexedY:            "$%04X,Y",   // aaaa,Y
	ZeroPageIndexedX:    "$%02X,X",   // aa,X
	ZeroPageIndexedY:    "$%02X,Y",   // aa,Y
	PreIndexedIndirect:  "($%02X,X)", // (aa,X)
	PostIndexedIndirect: "($%02X),Y", // (aa),Y
	Relative:            "$%04X",     // aaaa
	Accumulator:         "A",         // A
}

// Disassemble renders the single instruction at pc, in the CPU's current
// register state, as one nestest-style trace line. It reads through c.Bus
// with CPUDebugRead expected to already be set by the caller, so the read
// has none of its usual side effects.
func Disassemble(c *CPU, pc uint16) string {
	opCode := c.Bus.Read(pc)
	inst := instructions[opCode]

	var b strings.Builder
	fmt.Fprintf(&b, "%04X  ", pc)

	switch inst.Size {
	case 2:
		fmt.Fprintf(&b, "%02X %02X   ", opCode, c.Bus.Read(pc+1))
	case 3:
		fmt.Fprintf(&b, "%02X %02X %02X", opCode, c.Bus.Read(pc+1), c.Bus.Read(pc+2))
	default:
		fmt.Fprintf(&b, "%02X      ", opCode)
	}

	name := inst.Name
	if name == "" {
		name = "???"
	}
	fmt.Fprintf(&b, "  %s ", name)

	switch inst.Mode {
	case Accumulator:
		b.WriteString("A")
	case Implied:
	default:
		var arg uint16
		switch inst.Mode {
		case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY, PreIndexedIndirect, PostIndexedIndirect:
			arg = uint16(c.Bus.Read(pc + 1))
		case Absolute, Indirect, IndexedX, IndexedY:
			arg = uint16(c.Bus.Read(pc+1)) | uint16(c.Bus.Read(pc+2))<<8
		case Relative:
			arg = pc + 2 + uint16(int8(c.Bus.Read(pc+1)))
		}
		if format, ok := addressingFormats[inst.Mode]; ok {
			fmt.Fprintf(&b, format, arg)
		}

		// Dereferenced-value annotations for memory-reading modes, mirroring
		// the nestest log format. Recomputes the same effective address
		// resolveAddress would, without mutating PC.
		switch inst.Mode {
		case ZeroPage, Absolute:
			if inst.Name != "JMP" && inst.Name != "JSR" {
				fmt.Fprintf(&b, " = %02X", c.Bus.Read(arg))
			}
		case Indirect:
			pointer := arg
			targetLo := c.Bus.Read(pointer)
			targetHi := c.Bus.Read(pointer&0xFF00 | uint16(byte(pointer)+1))
			resolved := uint16(targetHi)<<8 | uint16(targetLo)
			fmt.Fprintf(&b, " = %04X", resolved)
		case ZeroPageIndexedX:
			resolved := uint16(byte(arg) + c.X)
			fmt.Fprintf(&b, " @ %02X = %02X", resolved, c.Bus.Read(resolved))
		case ZeroPageIndexedY:
			resolved := uint16(byte(arg) + c.Y)
			fmt.Fprintf(&b, " @ %02X = %02X", resolved, c.Bus.Read(resolved))
		case IndexedX:
			resolved := arg + uint16(c.X)
			fmt.Fprintf(&b, " @ %04X = %02X", resolved, c.Bus.Read(resolved))
		case IndexedY:
			resolved := arg + uint16(c.Y)
			fmt.Fprintf(&b, " @ %04X = %02X", resolved, c.Bus.Read(resolved))
		case PreIndexedIndirect:
			zp := byte(arg) + c.X
			lo := c.Bus.Read(uint16(zp))
			hi := c.Bus.Read(uint16(zp + 1))
			resolved := uint16(hi)<<8 | uint16(lo)
			fmt.Fprintf(&b, " @ %02X = %04X = %02X", zp, resolved, c.Bus.Read(resolved))
		case PostIndexedIndirect:
			zp := byte(arg)
			lo := c.Bus.Read(uint16(zp))
			hi := c.Bus.Read(uint16(zp + 1))
			base := uint16(hi)<<8 | uint16(lo)
			resolved := base + uint16(c.Y)
			fmt.Fprintf(&b, " = %04X @ %04X = %02X", base, resolved, c.Bus.Read(resolved))
		}
	}

	if pad := 48 - b.Len(); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	var col, scanLine int
	if c.Bus.PPU != nil {
		col, scanLine = c.Bus.PPU.Dot, c.Bus.PPU.ScanLine
	}
	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d", c.A, c.X, c.Y, byte(c.P), c.SP, col, scanLine, c.cycles)

	return b.String()
}
