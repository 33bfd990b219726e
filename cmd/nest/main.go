package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/flga/nest/nes"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

var keyboardMapping = map[sdl.Keycode]nes.Button{
	sdl.K_a:      nes.A,
	sdl.K_z:      nes.B,
	sdl.K_RETURN: nes.Start,
	sdl.K_RSHIFT: nes.Select,
	sdl.K_UP:     nes.Up,
	sdl.K_DOWN:   nes.Down,
	sdl.K_LEFT:   nes.Left,
	sdl.K_RIGHT:  nes.Right,
}

var debugFlagNames = map[string]nes.DebugFlag{
	"cpu":  nes.FlagCPULog,
	"ppu":  nes.FlagPPUDebug,
	"json": nes.FlagJSONTestMode,
	"apu":  nes.FlagAPUDump,
}

func parseDebugFlags(csv string) ([]nes.DebugFlag, error) {
	if csv == "" {
		return nil, nil
	}

	var flags []nes.DebugFlag
	for _, name := range strings.Split(csv, ",") {
		f, ok := debugFlagNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown debug flag %q", name)
		}
		flags = append(flags, f)
	}
	return flags, nil
}

func parseBreakpoint(s string) (pc uint16, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
	if err != nil {
		return 0, false, fmt.Errorf("invalid breakpoint %q: %s", s, err)
	}
	return uint16(v), true, nil
}

func run(romPath string, debugFlags []nes.DebugFlag, breakpoint uint16, hasBreakpoint bool, apuDumpPath string) error {
	e := nes.NewEmulator()
	if len(debugFlags) > 0 {
		e.Debug.SetFlags(debugFlags...)
	}
	if hasBreakpoint {
		e.Debug.SetBreakpoint(breakpoint)
	}

	if romPath != "" {
		if err := e.LoadPath(romPath); err != nil {
			return err
		}
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("nest: unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	patternDebug := e.Debug.FlagEnabled(nes.FlagPPUDebug)

	w, h := 256, 240
	title := "nest"
	if patternDebug {
		w, h = 128, 256
		title = "nest - pattern tables"
	}
	const zoom = 3

	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(w*zoom), int32(h*zoom),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return fmt.Errorf("nest: unable to create window: %s", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("nest: unable to create renderer: %s", err)
	}
	defer renderer.Destroy()
	renderer.SetLogicalSize(int32(w), int32(h))

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		return fmt.Errorf("nest: unable to create texture: %s", err)
	}
	defer texture.Destroy()

	buf := make([]uint32, w*h)
	pixelBuf := make([]byte, w*h*4)

	quit := false
	var renderErr error

	display := func(e *nes.Emulator) {
		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			switch evt := evt.(type) {
			case *sdl.QuitEvent:
				quit = true
			case *sdl.KeyboardEvent:
				if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_ESCAPE {
					quit = true
					continue
				}
				if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_r {
					e.Reset()
					continue
				}
				if btn, ok := keyboardMapping[evt.Keysym.Sym]; ok {
					if evt.Type == sdl.KEYDOWN {
						e.Press(0, btn)
					} else {
						e.Release(0, btn)
					}
				}
			}
		}

		if !e.Empty() {
			if patternDebug {
				e.DrawPatternTable(buf)
			} else {
				e.DrawNametable(buf)
			}
			for i, px := range buf {
				binary.LittleEndian.PutUint32(pixelBuf[i*4:], px)
			}

			pixels, _, err := texture.Lock(nil)
			if err != nil {
				renderErr = fmt.Errorf("nest: unable to lock texture: %s", err)
				quit = true
				return
			}
			copy(pixels, pixelBuf)
			texture.Unlock()
		}

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
	}

	e.RunInLoop(display, func() bool { return quit })
	if renderErr != nil {
		return renderErr
	}

	if apuDumpPath != "" {
		f, err := os.Create(apuDumpPath)
		if err != nil {
			return fmt.Errorf("nest: unable to create apu dump file: %s", err)
		}
		defer f.Close()
		if err := e.DumpAPU(f, 44100); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM (also accepted as the first positional argument)")
	debugCSV := flag.String("debug", "", "comma separated debug flags to enable: cpu,ppu,json,apu")
	breakArg := flag.String("break", "", "hex PC to break on, e.g. 0xC000")
	apuDump := flag.String("apu-dump", "", "on exit, write captured apu register writes (requires -debug=apu) to this WAV path")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	path := *romPath
	if path == "" {
		path = flag.Arg(0)
	}

	debugFlags, err := parseDebugFlags(*debugCSV)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	breakpoint, hasBreakpoint, err := parseBreakpoint(*breakArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("could not create CPU profile: %s", err))
			os.Exit(2)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("could not start CPU profile: %s", err))
			os.Exit(2)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(path, debugFlags, breakpoint, hasBreakpoint, *apuDump); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("could not create memory profile: %s", err))
			os.Exit(2)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("could not write memory profile: %s", err))
			os.Exit(2)
		}
	}
}
