package nes

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const apuBase = 0x4000

// APU is a register-storage stub for $4000-$4017: it remembers the last
// byte written to every pulse/triangle/noise/DMC/status/frame-counter
// register a real NES program would touch, but synthesizes nothing.
// Audio synthesis is an explicit Non-goal; what's kept is the register
// interface real software drives against, plus, when armed, a capture of
// the raw write stream for offline inspection via DumpRegisters.
type APU struct {
	registers [0x18]byte

	writes []apuWrite
}

type apuWrite struct {
	addr  uint16
	value byte
}

// NewAPU returns an APU with every register zeroed.
func NewAPU() *APU {
	return &APU{}
}

// ReadPort returns the last byte written to addr (0x4000-0x4017). Real
// hardware only a few of these registers are readable; this stub does not
// enforce that distinction.
func (a *APU) ReadPort(addr uint16) byte {
	return a.registers[addr-apuBase]
}

// WritePort stores value at addr. When debug has FlagAPUDump set, the write
// is also appended to the capture DumpRegisters later encodes.
func (a *APU) WritePort(addr uint16, value byte, debug *DebugContext) {
	a.registers[addr-apuBase] = value
	if debug != nil && debug.FlagEnabled(FlagAPUDump) {
		a.writes = append(a.writes, apuWrite{addr: addr, value: value})
	}
}

// Reset clears every register and discards any captured write-stream,
// mirroring power-on/reset behavior on real hardware (which silences all
// channels).
func (a *APU) Reset() {
	a.registers = [0x18]byte{}
	a.writes = nil
}

// DumpRegisters encodes the captured register writes as a minimal mono
// 16-bit PCM WAV file: one sample per write, high byte the register offset
// from $4000, low byte the value written. This is a trace of register
// activity for offline inspection, not synthesized audio — there is no
// pulse/triangle/noise/DMC waveform generator behind it.
func (a *APU) DumpRegisters(w io.WriteSeeker, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, 16, 1, 1)

	samples := make([]int, len(a.writes))
	for i, rec := range a.writes {
		sample := int16(uint16(rec.addr-apuBase)<<8 | uint16(rec.value))
		samples[i] = int(sample)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("nes: unable to write apu register dump: %s", err)
	}
	return enc.Close()
}
