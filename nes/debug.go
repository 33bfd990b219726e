package nes

// DebugFlag is one of the independently toggleable debug switches shared by
// the CPU, bus, and PPU.
type DebugFlag int

const (
	// FlagCPULog enables the per-instruction disassembly trace.
	FlagCPULog DebugFlag = iota
	// FlagPPUDebug enables the pattern-table debug view.
	FlagPPUDebug
	// FlagStepInstruction makes the emulator loop's next iteration run one
	// instruction instead of a frame; the loop clears it afterwards and does
	// not pause. CPU.Step sets it when the PC breakpoint is hit.
	FlagStepInstruction
	// FlagStepFrame makes the emulator loop's next iteration run one frame;
	// the loop clears it afterwards and does not pause.
	FlagStepFrame
	// FlagJSONTestMode redirects all bus accesses to a flat 64KiB array.
	FlagJSONTestMode
	// FlagAPUDump arms the APU's register-write capture for DumpRegisters.
	FlagAPUDump
)

// StepMode names the two single-step granularities. The emulator loop does
// not consult it; RunInLoop is driven by FlagStepInstruction and
// FlagStepFrame.
type StepMode int

const (
	StepInstruction StepMode = iota
	StepFrame
)

// BreakpointKind reports why the emulator loop stopped, if at all.
type BreakpointKind int

const (
	BreakpointNone BreakpointKind = iota
	BreakpointPC
)

const (
	instructionLogLimit = 1000
	instructionLogDrain = 500
)

// DebugContext is process-scoped state shared by the CPU, bus, and PPU. It
// is the deliberate mechanism for cross-cutting concerns (logging, test
// mode, side-effect suppression) without threading parameters through every
// call in the emulation path.
type DebugContext struct {
	flags map[DebugFlag]bool

	instructionLog []string

	breakpoint    uint16
	hasBreakpoint bool

	// CPUDebugRead, when true, routes bus reads without their usual
	// side effects (notably: reading PPUSTATUS does not clear vblank or
	// the write-toggle). Set for the duration of disassembly logging.
	CPUDebugRead bool
}

// NewDebugContext returns a DebugContext with no flags enabled and no
// breakpoint set.
func NewDebugContext() *DebugContext {
	return &DebugContext{flags: make(map[DebugFlag]bool)}
}

// FlagEnabled reports whether f is currently set.
func (d *DebugContext) FlagEnabled(f DebugFlag) bool {
	return d.flags[f]
}

// SetFlag enables f.
func (d *DebugContext) SetFlag(f DebugFlag) {
	d.flags[f] = true
}

// ClearFlag disables f.
func (d *DebugContext) ClearFlag(f DebugFlag) {
	delete(d.flags, f)
}

// ToggleFlag flips f's current state.
func (d *DebugContext) ToggleFlag(f DebugFlag) {
	if d.flags[f] {
		delete(d.flags, f)
	} else {
		d.flags[f] = true
	}
}

// SetFlags enables every flag in flags, replacing whatever was set before.
func (d *DebugContext) SetFlags(flags ...DebugFlag) {
	d.flags = make(map[DebugFlag]bool, len(flags))
	for _, f := range flags {
		d.flags[f] = true
	}
}

// LogInstruction appends line to the instruction-log ring buffer. When the
// buffer exceeds instructionLogLimit entries, the oldest half is dropped so
// the log never grows without bound.
func (d *DebugContext) LogInstruction(line string) {
	d.instructionLog = append(d.instructionLog, line)
	if len(d.instructionLog) > instructionLogLimit {
		drop := len(d.instructionLog) - instructionLogDrain
		d.instructionLog = append([]string(nil), d.instructionLog[drop:]...)
	}
}

// LastInstruction returns the most recently logged instruction line, or the
// empty string if nothing has been logged yet.
func (d *DebugContext) LastInstruction() string {
	if len(d.instructionLog) == 0 {
		return ""
	}
	return d.instructionLog[len(d.instructionLog)-1]
}

// InstructionLog returns the full current instruction log.
func (d *DebugContext) InstructionLog() []string {
	return d.instructionLog
}

// SetBreakpoint arms a PC breakpoint.
func (d *DebugContext) SetBreakpoint(pc uint16) {
	d.breakpoint = pc
	d.hasBreakpoint = true
}

// ClearBreakpoint disarms the PC breakpoint.
func (d *DebugContext) ClearBreakpoint() {
	d.hasBreakpoint = false
}

// CheckBreakpoint reports whether pc matches the armed breakpoint.
func (d *DebugContext) CheckBreakpoint(pc uint16) BreakpointKind {
	if d.hasBreakpoint && pc == d.breakpoint {
		return BreakpointPC
	}
	return BreakpointNone
}
