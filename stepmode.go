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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/jetsetilly/gopher6502/debugger/terminal/easyterm"
	"github.com/jetsetilly/gopher6502/driver"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
)

// list of commands recognised in STEP mode
const (
	cmdStep = iota
	cmdRun
	cmdQuit
	cmdNone
)

// keyReader returns the next command from the user
type keyReader func() (int, error)

// cbreakReader reads single key presses from a terminal in cbreak mode
func cbreakReader(et *easyterm.Terminal) keyReader {
	return func() (int, error) {
		k, err := et.ReadKey()
		if err != nil {
			return cmdQuit, err
		}
		switch k {
		case easyterm.KeySpace, easyterm.KeyCarriageReturn, easyterm.KeyLineFeed, 's':
			return cmdStep, nil
		case 'r':
			return cmdRun, nil
		case 'q', easyterm.KeyEsc, easyterm.KeyInterrupt, easyterm.KeyEndOfFile:
			return cmdQuit, nil
		}
		return cmdNone, nil
	}
}

// lineReader reads commands one line at a time. an empty line steps
func lineReader(input io.Reader) keyReader {
	r := bufio.NewReader(input)
	return func() (int, error) {
		s, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return cmdQuit, nil
			}
			return cmdQuit, err
		}
		switch strings.TrimSpace(strings.ToLower(s)) {
		case "", "s", "step":
			return cmdStep, nil
		case "r", "run":
			return cmdRun, nil
		case "q", "quit":
			return cmdQuit, nil
		}
		return cmdNone, nil
	}
}

// flusher is implemented by easyterm.Terminal
type flusher interface {
	Flush() error
}

// flushInput discards any key presses made before STEP mode started. failure
// is not fatal
func flushInput(f flusher) {
	if err := f.Flush(); err != nil {
		logger.Logf(logger.Allow, "gopher6502", "flushing terminal input: %v", err)
	}
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	s, err := prepare(md)
	if err != nil || s == nil {
		return err
	}
	defer s.end()

	// instructions are always printed in STEP mode
	if s.drv.Trace == nil {
		s.drv.Trace = traceFunc(md.Output)
	}

	var read keyReader

	et := &easyterm.Terminal{}
	err = et.Initialise(os.Stdin)
	if err != nil {
		if !errors.Is(err, easyterm.ErrNotTerminal) {
			return err
		}
		logger.Log(logger.Allow, "gopher6502", err)
		read = lineReader(os.Stdin)
	} else {
		defer et.CleanUp()
		if err := et.CBreakMode(); err != nil {
			return err
		}
		flushInput(et)
		read = cbreakReader(et)
	}

	return stepLoop(s, read)
}

func stepLoop(s *session, read keyReader) error {
	prompt := color.New(color.FgGreen)
	help := "[space] step  [r] run  [q] quit"

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	fmt.Fprintln(s.md.Output, help)

	for {
		prompt.Fprintf(s.md.Output, "%s > ", s.mc)

		cmd, err := read()
		fmt.Fprintln(s.md.Output)
		if err != nil {
			return err
		}

		switch cmd {
		case cmdQuit:
			return s.finish()

		case cmdNone:
			fmt.Fprintln(s.md.Output, help)

		case cmdStep:
			err := s.drv.Step()
			if err != nil {
				fmt.Fprintf(s.md.Output, "* %v\n", err)
				continue // for loop
			}

			if s.drv.Condition != nil {
				met, err := s.drv.Condition.Met(s.drv.Steps, s.drv.Cycles)
				if err != nil {
					return err
				}
				if met {
					fmt.Fprintf(s.md.Output, "stopped: %s\n", driver.StopCondition)
				}
			}

		case cmdRun:
			// drain any interrupt that arrived while waiting for input
			select {
			case <-intChan:
			default:
			}

			reason, err := s.drv.Run(func() (bool, error) {
				select {
				case <-intChan:
					return false, nil
				default:
				}
				return true, nil
			})
			if err != nil && !errors.Is(err, driver.ErrStepLimit) {
				fmt.Fprintf(s.md.Output, "* %v\n", err)
			}
			fmt.Fprintf(s.md.Output, "stopped: %s\n", reason)
		}
	}
}
