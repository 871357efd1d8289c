// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/fatih/color"
	"github.com/jetsetilly/gopher6502/debugger/monitor"
	"github.com/jetsetilly/gopher6502/driver"
	"github.com/jetsetilly/gopher6502/driver/script"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/savestate"
	"github.com/jetsetilly/gopher6502/statsview"
	"golang.org/x/term"
)

const additionalHelp = `A program file is loaded at the origin address. Execution begins at the
entry address if it has been specified. Otherwise execution begins at the
address in the reset vector or, if the reset vector is zero, at the origin.

A state saved with the -save flag can be loaded with the -load flag instead
of a program file.`

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the value to be used with os.Exit()
func launch(args []string, output io.Writer) int {
	// colour is only used when writing to a terminal
	if f, ok := output.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "MONITOR")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "STEP":
		err = step(md)

	case "MONITOR":
		err = monitorMode(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to all modes
type options struct {
	origin    *uint16
	entry     *uint16
	steps     *int
	stop      *[]uint16
	until     *string
	traps     *bool
	lenient   *bool
	trace     *bool
	load      *string
	save      *string
	memviz    *string
	statsview *bool
	log       *bool
}

func addOptions(md *modalflag.Modes) options {
	md.AdditionalHelp(additionalHelp)
	return options{
		origin:    md.AddHex("origin", 0x0200, "load address of program file"),
		entry:     md.AddHex("entry", 0x0000, "address to begin execution"),
		steps:     md.AddInt("steps", 0, "maximum number of instructions to run (0 is no limit)"),
		stop:      md.AddHexList("stop", "stop execution at these addresses (comma separated)"),
		until:     md.AddString("until", "", "Lua condition to stop execution"),
		traps:     md.AddBool("traps", true, "stop when an instruction jumps or branches to itself"),
		lenient:   md.AddBool("lenient", false, "skip invalid opcodes"),
		trace:     md.AddBool("trace", false, "print every instruction executed"),
		load:      md.AddString("load", "", "load state from file"),
		save:      md.AddString("save", "", "save state to file after execution"),
		memviz:    md.AddString("memviz", "", "write dot graph of CPU to file after execution"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress)),
		log:       md.AddBool("log", false, "echo log to output"),
	}
}

// session is the CPU and driver prepared according to the options
type session struct {
	md   *modalflag.Modes
	opts options
	mc   *cpu.CPU
	drv  *driver.Driver

	// cleanup functions are called in reverse order by end()
	cleanup []func()
}

func (s *session) end() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

func prepare(md *modalflag.Modes) (*session, error) {
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil {
		return nil, err
	}
	if p != modalflag.ParseContinue {
		return nil, nil
	}

	s := &session{
		md:   md,
		opts: opts,
		mc:   cpu.New(),
	}

	if err := s.setup(); err != nil {
		// undo anything that was done before the error
		s.end()
		return nil, err
	}

	return s, nil
}

// setup the session according to the options. the caller must call end() if
// an error is returned
func (s *session) setup() error {
	if *s.opts.log {
		logger.SetEcho(logger.NewColorizer(s.md.Output))
		s.cleanup = append(s.cleanup, func() { logger.SetEcho(nil) })
	}

	var entrySet bool
	s.md.Visit(func(flag string) {
		if flag == "entry" {
			entrySet = true
		}
	})

	if *s.opts.load != "" {
		if len(s.md.RemainingArgs()) > 0 {
			return fmt.Errorf("program file cannot be used with -load")
		}

		f, err := os.Open(*s.opts.load)
		if err != nil {
			return err
		}
		defer f.Close()

		state, err := savestate.Read(f)
		if err != nil {
			return err
		}
		if err := state.Restore(s.mc); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "gopher6502", "loaded state from %s", *s.opts.load)

		if entrySet {
			s.mc.LoadPC(*s.opts.entry)
		}
	} else {
		switch len(s.md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("program file required")
		case 1:
		default:
			return fmt.Errorf("too many arguments for %s mode", s.md)
		}

		data, err := os.ReadFile(s.md.GetArg(0))
		if err != nil {
			return err
		}

		if err := memory.LoadImage(s.mc.Mem(), *s.opts.origin, data); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "gopher6502", "loaded %d bytes from %s at %#04x", len(data), s.md.GetArg(0), *s.opts.origin)

		s.mc.Reset()
		if entrySet {
			s.mc.LoadPC(*s.opts.entry)
		} else if memory.ReadWord(s.mc.Mem(), cpubus.Reset) != 0 {
			s.mc.LoadPCIndirect(cpubus.Reset)
		} else {
			s.mc.LoadPC(*s.opts.origin)
		}
	}

	s.drv = driver.NewDriver(s.mc)
	s.drv.MaxSteps = *s.opts.steps
	s.drv.Traps = *s.opts.traps
	s.drv.Lenient = *s.opts.lenient
	s.drv.StopAt = *s.opts.stop

	if *s.opts.until != "" {
		c, err := script.NewCondition(s.mc, *s.opts.until)
		if err != nil {
			return err
		}
		s.drv.Condition = c
		s.cleanup = append(s.cleanup, c.Close)
	}

	if *s.opts.trace {
		s.drv.Trace = traceFunc(s.md.Output)
	}

	if *s.opts.statsview {
		if err := statsview.Launch(s.md.Output, statsview.DefaultAddress); err != nil {
			return err
		}
	}

	return nil
}

// traceFunc returns a function that prints the result of an instruction.
// instructions that cause a CPU bug or a page fault are highlighted
func traceFunc(output io.Writer) func(execution.Result) {
	plain := color.New(color.FgWhite)
	branch := color.New(color.FgCyan)
	fault := color.New(color.FgYellow)
	bug := color.New(color.FgRed, color.Bold)

	return func(r execution.Result) {
		c := plain
		switch {
		case r.CPUBug != execution.NoBug:
			c = bug
		case r.PageFault:
			c = fault
		case r.BranchSuccess:
			c = branch
		}
		c.Fprintln(output, r.String())
	}
}

// finish is called after execution in every mode
func (s *session) finish() error {
	fmt.Fprintf(s.md.Output, "%s\n", s.mc)
	fmt.Fprintf(s.md.Output, "%d instructions, %d cycles\n", s.drv.Steps, s.drv.Cycles)
	if s.drv.Skipped > 0 {
		fmt.Fprintf(s.md.Output, "%d invalid opcodes skipped\n", s.drv.Skipped)
	}

	if *s.opts.save != "" {
		f, err := os.Create(*s.opts.save)
		if err != nil {
			return err
		}
		err = savestate.Capture(s.mc).Write(f)
		if err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "gopher6502", "saved state to %s", *s.opts.save)
	}

	if *s.opts.memviz != "" {
		f, err := os.Create(*s.opts.memviz)
		if err != nil {
			return err
		}
		// the graph is of the registers and the last result only. a graph of
		// 64KiB of memory is not useful
		memviz.Map(f, &struct {
			PC         registers.ProgramCounter
			A          registers.Register
			X          registers.Register
			Y          registers.Register
			SP         registers.StackPointer
			Status     registers.StatusRegister
			LastResult execution.Result
		}{
			PC:         s.mc.PC,
			A:          s.mc.A,
			X:          s.mc.X,
			Y:          s.mc.Y,
			SP:         s.mc.SP,
			Status:     s.mc.Status,
			LastResult: s.mc.LastResult,
		})
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	s, err := prepare(md)
	if err != nil || s == nil {
		return err
	}
	defer s.end()

	// stop execution on ctrl-c
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	reason, err := s.drv.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, nil
		default:
		}
		return true, nil
	})
	if err != nil && !errors.Is(err, driver.ErrStepLimit) {
		return err
	}

	fmt.Fprintf(md.Output, "stopped: %s\n", reason)

	return s.finish()
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	s, err := prepare(md)
	if err != nil || s == nil {
		return err
	}
	defer s.end()

	// the trace would interfere with the monitor display
	s.drv.Trace = nil

	err = monitor.NewMonitor(s.mc, s.drv).Run()
	if err != nil {
		return err
	}

	return s.finish()
}
