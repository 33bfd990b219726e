package nes

// AddressingMode identifies how an instruction's operand bytes are turned
// into an effective address (or into no address at all, for Implied and
// Accumulator instructions).
type AddressingMode byte

const (
	// Immediate addressing is used when the operand's 1-byte value is given
	// in the instruction itself.
	Immediate AddressingMode = iota

	// ZeroPage addressing requires a 1-byte address and can only access the
	// zero-page range ($0000-$00FF).
	ZeroPage

	// Absolute addressing requires a full 2-byte address and can access the
	// full range ($0000-$FFFF).
	Absolute

	// Relative addressing is used by the branch instructions: a 1-byte
	// signed operand is added to the program counter.
	Relative

	// Implied addressing occurs when there is no operand; the addressing
	// mode is implied by the instruction.
	Implied

	// Accumulator addressing is a special form of Implied addressing that
	// targets the accumulator.
	Accumulator

	// IndexedX addressing works like Absolute but adds the X register as an
	// offset. Read instructions pay an extra cycle when this crosses a page
	// boundary.
	IndexedX

	// IndexedY addressing works like Absolute but adds the Y register as an
	// offset. Read instructions pay an extra cycle when this crosses a page
	// boundary.
	IndexedY

	// ZeroPageIndexedX addressing works like ZeroPage but adds the X
	// register as an offset, wrapping within page zero.
	ZeroPageIndexedX

	// ZeroPageIndexedY addressing works like ZeroPage but adds the Y
	// register as an offset, wrapping within page zero.
	ZeroPageIndexedY

	// Indirect addressing reads a two-byte pointer and dereferences it. Used
	// only by JMP, and preserves the page-boundary fetch bug.
	Indirect

	// PreIndexedIndirect addressing (aka (zp,X)) adds X to a zero-page
	// address before dereferencing the resulting pointer.
	PreIndexedIndirect

	// PostIndexedIndirect addressing (aka (zp),Y) dereferences a zero-page
	// pointer, then adds Y to the result.
	PostIndexedIndirect
)

// InstructionKind classifies whether an instruction reads memory, writes
// memory, or both (read-modify-write). Used to decide whether a page
// crossing during address resolution costs an extra cycle: only pure reads
// are penalized.
type InstructionKind byte

const (
	other InstructionKind = iota
	read
	write
	readModWrite
)

// Instruction is one entry of the CPU's decode table.
type Instruction struct {
	OpCode     byte
	Name       string
	Mode       AddressingMode
	Kind       InstructionKind
	Size       byte
	Cycles     byte
	PageCycles byte
}

// instructions is the CPU decode table: the exhaustive set of 151 official
// 6502 opcodes. Entries not present here are left at their zero value
// (empty Name) and are treated as unknown opcodes by the CPU.
var instructions = [256]Instruction{
	0x00: {OpCode: 0x00, Name: "BRK", Mode: Implied, Size: 1, Cycles: 7},
	0x01: {OpCode: 0x01, Name: "ORA", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0x05: {OpCode: 0x05, Name: "ORA", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0x06: {OpCode: 0x06, Name: "ASL", Mode: ZeroPage, Kind: readModWrite, Size: 2, Cycles: 5},
	0x08: {OpCode: 0x08, Name: "PHP", Mode: Implied, Size: 1, Cycles: 3},
	0x09: {OpCode: 0x09, Name: "ORA", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0x0A: {OpCode: 0x0A, Name: "ASL", Mode: Accumulator, Kind: readModWrite, Size: 1, Cycles: 2},
	0x0D: {OpCode: 0x0D, Name: "ORA", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0x0E: {OpCode: 0x0E, Name: "ASL", Mode: Absolute, Kind: readModWrite, Size: 3, Cycles: 6},

	0x10: {OpCode: 0x10, Name: "BPL", Mode: Relative, Size: 2, Cycles: 2},
	0x11: {OpCode: 0x11, Name: "ORA", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0x15: {OpCode: 0x15, Name: "ORA", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0x16: {OpCode: 0x16, Name: "ASL", Mode: ZeroPageIndexedX, Kind: readModWrite, Size: 2, Cycles: 6},
	0x18: {OpCode: 0x18, Name: "CLC", Mode: Implied, Size: 1, Cycles: 2},
	0x19: {OpCode: 0x19, Name: "ORA", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x1D: {OpCode: 0x1D, Name: "ORA", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x1E: {OpCode: 0x1E, Name: "ASL", Mode: IndexedX, Kind: readModWrite, Size: 3, Cycles: 7},

	0x20: {OpCode: 0x20, Name: "JSR", Mode: Absolute, Size: 3, Cycles: 6},
	0x21: {OpCode: 0x21, Name: "AND", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0x24: {OpCode: 0x24, Name: "BIT", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0x25: {OpCode: 0x25, Name: "AND", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0x26: {OpCode: 0x26, Name: "ROL", Mode: ZeroPage, Kind: readModWrite, Size: 2, Cycles: 5},
	0x28: {OpCode: 0x28, Name: "PLP", Mode: Implied, Size: 1, Cycles: 4},
	0x29: {OpCode: 0x29, Name: "AND", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0x2A: {OpCode: 0x2A, Name: "ROL", Mode: Accumulator, Kind: readModWrite, Size: 1, Cycles: 2},
	0x2C: {OpCode: 0x2C, Name: "BIT", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0x2D: {OpCode: 0x2D, Name: "AND", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0x2E: {OpCode: 0x2E, Name: "ROL", Mode: Absolute, Kind: readModWrite, Size: 3, Cycles: 6},

	0x30: {OpCode: 0x30, Name: "BMI", Mode: Relative, Size: 2, Cycles: 2},
	0x31: {OpCode: 0x31, Name: "AND", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0x35: {OpCode: 0x35, Name: "AND", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0x36: {OpCode: 0x36, Name: "ROL", Mode: ZeroPageIndexedX, Kind: readModWrite, Size: 2, Cycles: 6},
	0x38: {OpCode: 0x38, Name: "SEC", Mode: Implied, Size: 1, Cycles: 2},
	0x39: {OpCode: 0x39, Name: "AND", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x3D: {OpCode: 0x3D, Name: "AND", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x3E: {OpCode: 0x3E, Name: "ROL", Mode: IndexedX, Kind: readModWrite, Size: 3, Cycles: 7},

	0x40: {OpCode: 0x40, Name: "RTI", Mode: Implied, Size: 1, Cycles: 6},
	0x41: {OpCode: 0x41, Name: "EOR", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0x45: {OpCode: 0x45, Name: "EOR", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0x46: {OpCode: 0x46, Name: "LSR", Mode: ZeroPage, Kind: readModWrite, Size: 2, Cycles: 5},
	0x48: {OpCode: 0x48, Name: "PHA", Mode: Implied, Size: 1, Cycles: 3},
	0x49: {OpCode: 0x49, Name: "EOR", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0x4A: {OpCode: 0x4A, Name: "LSR", Mode: Accumulator, Kind: readModWrite, Size: 1, Cycles: 2},
	0x4C: {OpCode: 0x4C, Name: "JMP", Mode: Absolute, Size: 3, Cycles: 3},
	0x4D: {OpCode: 0x4D, Name: "EOR", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0x4E: {OpCode: 0x4E, Name: "LSR", Mode: Absolute, Kind: readModWrite, Size: 3, Cycles: 6},

	0x50: {OpCode: 0x50, Name: "BVC", Mode: Relative, Size: 2, Cycles: 2},
	0x51: {OpCode: 0x51, Name: "EOR", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0x55: {OpCode: 0x55, Name: "EOR", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0x56: {OpCode: 0x56, Name: "LSR", Mode: ZeroPageIndexedX, Kind: readModWrite, Size: 2, Cycles: 6},
	0x58: {OpCode: 0x58, Name: "CLI", Mode: Implied, Size: 1, Cycles: 2},
	0x59: {OpCode: 0x59, Name: "EOR", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x5D: {OpCode: 0x5D, Name: "EOR", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x5E: {OpCode: 0x5E, Name: "LSR", Mode: IndexedX, Kind: readModWrite, Size: 3, Cycles: 7},

	0x60: {OpCode: 0x60, Name: "RTS", Mode: Implied, Size: 1, Cycles: 6},
	0x61: {OpCode: 0x61, Name: "ADC", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0x65: {OpCode: 0x65, Name: "ADC", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0x66: {OpCode: 0x66, Name: "ROR", Mode: ZeroPage, Kind: readModWrite, Size: 2, Cycles: 5},
	0x68: {OpCode: 0x68, Name: "PLA", Mode: Implied, Size: 1, Cycles: 4},
	0x69: {OpCode: 0x69, Name: "ADC", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0x6A: {OpCode: 0x6A, Name: "ROR", Mode: Accumulator, Kind: readModWrite, Size: 1, Cycles: 2},
	0x6C: {OpCode: 0x6C, Name: "JMP", Mode: Indirect, Size: 3, Cycles: 5},
	0x6D: {OpCode: 0x6D, Name: "ADC", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0x6E: {OpCode: 0x6E, Name: "ROR", Mode: Absolute, Kind: readModWrite, Size: 3, Cycles: 6},

	0x70: {OpCode: 0x70, Name: "BVS", Mode: Relative, Size: 2, Cycles: 2},
	0x71: {OpCode: 0x71, Name: "ADC", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0x75: {OpCode: 0x75, Name: "ADC", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0x76: {OpCode: 0x76, Name: "ROR", Mode: ZeroPageIndexedX, Kind: readModWrite, Size: 2, Cycles: 6},
	0x78: {OpCode: 0x78, Name: "SEI", Mode: Implied, Size: 1, Cycles: 2},
	0x79: {OpCode: 0x79, Name: "ADC", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x7D: {OpCode: 0x7D, Name: "ADC", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0x7E: {OpCode: 0x7E, Name: "ROR", Mode: IndexedX, Kind: readModWrite, Size: 3, Cycles: 7},

	0x81: {OpCode: 0x81, Name: "STA", Mode: PreIndexedIndirect, Kind: write, Size: 2, Cycles: 6},
	0x84: {OpCode: 0x84, Name: "STY", Mode: ZeroPage, Kind: write, Size: 2, Cycles: 3},
	0x85: {OpCode: 0x85, Name: "STA", Mode: ZeroPage, Kind: write, Size: 2, Cycles: 3},
	0x86: {OpCode: 0x86, Name: "STX", Mode: ZeroPage, Kind: write, Size: 2, Cycles: 3},
	0x88: {OpCode: 0x88, Name: "DEY", Mode: Implied, Size: 1, Cycles: 2},
	0x8A: {OpCode: 0x8A, Name: "TXA", Mode: Implied, Size: 1, Cycles: 2},
	0x8C: {OpCode: 0x8C, Name: "STY", Mode: Absolute, Kind: write, Size: 3, Cycles: 4},
	0x8D: {OpCode: 0x8D, Name: "STA", Mode: Absolute, Kind: write, Size: 3, Cycles: 4},
	0x8E: {OpCode: 0x8E, Name: "STX", Mode: Absolute, Kind: write, Size: 3, Cycles: 4},

	0x90: {OpCode: 0x90, Name: "BCC", Mode: Relative, Size: 2, Cycles: 2},
	0x91: {OpCode: 0x91, Name: "STA", Mode: PostIndexedIndirect, Kind: write, Size: 2, Cycles: 6},
	0x94: {OpCode: 0x94, Name: "STY", Mode: ZeroPageIndexedX, Kind: write, Size: 2, Cycles: 4},
	0x95: {OpCode: 0x95, Name: "STA", Mode: ZeroPageIndexedX, Kind: write, Size: 2, Cycles: 4},
	0x96: {OpCode: 0x96, Name: "STX", Mode: ZeroPageIndexedY, Kind: write, Size: 2, Cycles: 4},
	0x98: {OpCode: 0x98, Name: "TYA", Mode: Implied, Size: 1, Cycles: 2},
	0x99: {OpCode: 0x99, Name: "STA", Mode: IndexedY, Kind: write, Size: 3, Cycles: 5},
	0x9A: {OpCode: 0x9A, Name: "TXS", Mode: Implied, Size: 1, Cycles: 2},
	0x9D: {OpCode: 0x9D, Name: "STA", Mode: IndexedX, Kind: write, Size: 3, Cycles: 5},

	0xA0: {OpCode: 0xA0, Name: "LDY", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xA1: {OpCode: 0xA1, Name: "LDA", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0xA2: {OpCode: 0xA2, Name: "LDX", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xA4: {OpCode: 0xA4, Name: "LDY", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xA5: {OpCode: 0xA5, Name: "LDA", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xA6: {OpCode: 0xA6, Name: "LDX", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xA8: {OpCode: 0xA8, Name: "TAY", Mode: Implied, Size: 1, Cycles: 2},
	0xA9: {OpCode: 0xA9, Name: "LDA", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xAA: {OpCode: 0xAA, Name: "TAX", Mode: Implied, Size: 1, Cycles: 2},
	0xAC: {OpCode: 0xAC, Name: "LDY", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0xAD: {OpCode: 0xAD, Name: "LDA", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0xAE: {OpCode: 0xAE, Name: "LDX", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},

	0xB0: {OpCode: 0xB0, Name: "BCS", Mode: Relative, Size: 2, Cycles: 2},
	0xB1: {OpCode: 0xB1, Name: "LDA", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0xB4: {OpCode: 0xB4, Name: "LDY", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0xB5: {OpCode: 0xB5, Name: "LDA", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0xB6: {OpCode: 0xB6, Name: "LDX", Mode: ZeroPageIndexedY, Kind: read, Size: 2, Cycles: 4},
	0xB8: {OpCode: 0xB8, Name: "CLV", Mode: Implied, Size: 1, Cycles: 2},
	0xB9: {OpCode: 0xB9, Name: "LDA", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xBA: {OpCode: 0xBA, Name: "TSX", Mode: Implied, Size: 1, Cycles: 2},
	0xBC: {OpCode: 0xBC, Name: "LDY", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xBD: {OpCode: 0xBD, Name: "LDA", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xBE: {OpCode: 0xBE, Name: "LDX", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},

	0xC0: {OpCode: 0xC0, Name: "CPY", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xC1: {OpCode: 0xC1, Name: "CMP", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0xC4: {OpCode: 0xC4, Name: "CPY", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xC5: {OpCode: 0xC5, Name: "CMP", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xC6: {OpCode: 0xC6, Name: "DEC", Mode: ZeroPage, Kind: readModWrite, Size: 2, Cycles: 5},
	0xC8: {OpCode: 0xC8, Name: "INY", Mode: Implied, Size: 1, Cycles: 2},
	0xC9: {OpCode: 0xC9, Name: "CMP", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xCA: {OpCode: 0xCA, Name: "DEX", Mode: Implied, Size: 1, Cycles: 2},
	0xCC: {OpCode: 0xCC, Name: "CPY", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0xCD: {OpCode: 0xCD, Name: "CMP", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0xCE: {OpCode: 0xCE, Name: "DEC", Mode: Absolute, Kind: readModWrite, Size: 3, Cycles: 6},

	0xD0: {OpCode: 0xD0, Name: "BNE", Mode: Relative, Size: 2, Cycles: 2},
	0xD1: {OpCode: 0xD1, Name: "CMP", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0xD5: {OpCode: 0xD5, Name: "CMP", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0xD6: {OpCode: 0xD6, Name: "DEC", Mode: ZeroPageIndexedX, Kind: readModWrite, Size: 2, Cycles: 6},
	0xD8: {OpCode: 0xD8, Name: "CLD", Mode: Implied, Size: 1, Cycles: 2},
	0xD9: {OpCode: 0xD9, Name: "CMP", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xDD: {OpCode: 0xDD, Name: "CMP", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xDE: {OpCode: 0xDE, Name: "DEC", Mode: IndexedX, Kind: readModWrite, Size: 3, Cycles: 7},

	0xE0: {OpCode: 0xE0, Name: "CPX", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xE1: {OpCode: 0xE1, Name: "SBC", Mode: PreIndexedIndirect, Kind: read, Size: 2, Cycles: 6},
	0xE4: {OpCode: 0xE4, Name: "CPX", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xE5: {OpCode: 0xE5, Name: "SBC", Mode: ZeroPage, Kind: read, Size: 2, Cycles: 3},
	0xE6: {OpCode: 0xE6, Name: "INC", Mode: ZeroPage, Kind: readModWrite, Size: 2, Cycles: 5},
	0xE8: {OpCode: 0xE8, Name: "INX", Mode: Implied, Size: 1, Cycles: 2},
	0xE9: {OpCode: 0xE9, Name: "SBC", Mode: Immediate, Kind: read, Size: 2, Cycles: 2},
	0xEA: {OpCode: 0xEA, Name: "NOP", Mode: Implied, Size: 1, Cycles: 2},
	0xEC: {OpCode: 0xEC, Name: "CPX", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0xED: {OpCode: 0xED, Name: "SBC", Mode: Absolute, Kind: read, Size: 3, Cycles: 4},
	0xEE: {OpCode: 0xEE, Name: "INC", Mode: Absolute, Kind: readModWrite, Size: 3, Cycles: 6},

	0xF0: {OpCode: 0xF0, Name: "BEQ", Mode: Relative, Size: 2, Cycles: 2},
	0xF1: {OpCode: 0xF1, Name: "SBC", Mode: PostIndexedIndirect, Kind: read, Size: 2, Cycles: 5, PageCycles: 1},
	0xF5: {OpCode: 0xF5, Name: "SBC", Mode: ZeroPageIndexedX, Kind: read, Size: 2, Cycles: 4},
	0xF6: {OpCode: 0xF6, Name: "INC", Mode: ZeroPageIndexedX, Kind: readModWrite, Size: 2, Cycles: 6},
	0xF8: {OpCode: 0xF8, Name: "SED", Mode: Implied, Size: 1, Cycles: 2},
	0xF9: {OpCode: 0xF9, Name: "SBC", Mode: IndexedY, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xFD: {OpCode: 0xFD, Name: "SBC", Mode: IndexedX, Kind: read, Size: 3, Cycles: 4, PageCycles: 1},
	0xFE: {OpCode: 0xFE, Name: "INC", Mode: IndexedX, Kind: readModWrite, Size: 3, Cycles: 7},
}
