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

package driver

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/logger"
)

// ErrStepLimit is returned by Run() when the maximum number of steps have
// been executed without any other stop condition being met.
var ErrStepLimit = errors.New("step limit reached")

// StopReason indicates why Run() returned.
type StopReason int

// List of valid StopReason values.
const (
	StopError StopReason = iota
	StopAddress
	StopStepLimit
	StopTrap
	StopCondition
	StopInterrupted
)

func (r StopReason) String() string {
	switch r {
	case StopError:
		return "error"
	case StopAddress:
		return "stop address"
	case StopStepLimit:
		return "step limit"
	case StopTrap:
		return "trap"
	case StopCondition:
		return "condition"
	case StopInterrupted:
		return "interrupted"
	}
	return "unknown stop reason"
}

// Condition is checked after every instruction. Execution stops when Met()
// returns true.
type Condition interface {
	Met(steps int, cycles int) (bool, error)
}

// Driver runs the CPU and counts the number of instructions and cycles.
type Driver struct {
	mc *cpu.CPU

	// the maximum number of steps executed by a single call to Run(). a value
	// of zero means there is no limit
	MaxSteps int

	// stop when the program counter reaches any of these addresses. the
	// address is not checked before the first instruction of a call to Run()
	// so that execution can resume from a stop address
	StopAt []uint16

	// stop when an instruction leaves the program counter unchanged
	Traps bool

	// skip invalid opcodes rather than stopping with an error
	Lenient bool

	// stop when the condition has been met. can be nil
	Condition Condition

	// called after every instruction, including skipped invalid opcodes. can
	// be nil
	Trace func(execution.Result)

	// running totals. these are never reset by the driver
	Steps   int
	Cycles  int
	Skipped int
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(mc *cpu.CPU) *Driver {
	return &Driver{
		mc: mc,
	}
}

// Step executes a single instruction.
func (drv *Driver) Step() error {
	cycles, err := drv.mc.Step()
	if err != nil {
		if !drv.Lenient || !errors.Is(err, cpu.ErrInvalidOpcode) {
			return fmt.Errorf("driver: %w", err)
		}

		logger.Logf(logger.Allow, "driver", "skipping: %v", err)
		drv.mc.PC.Add(1)
		drv.Skipped++
	}

	drv.Steps++
	drv.Cycles += cycles

	if drv.Trace != nil {
		drv.Trace(drv.mc.LastResult)
	}

	return nil
}

func (drv *Driver) stopAt(address uint16) bool {
	for _, a := range drv.StopAt {
		if a == address {
			return true
		}
	}
	return false
}

func (drv *Driver) stop(reason StopReason) StopReason {
	logger.Logf(logger.Allow, "driver", "%s at %#04x after %d steps (%d cycles)", reason, drv.mc.PC.Address(), drv.Steps, drv.Cycles)
	return reason
}

// Run executes instructions until a stop condition is met. The continueCheck
// function can be nil.
//
// The returned error is nil for every StopReason except StopError and
// StopStepLimit.
func (drv *Driver) Run(continueCheck func() (bool, error)) (StopReason, error) {
	var steps int

	for {
		pc := drv.mc.PC.Address()

		if steps > 0 && drv.stopAt(pc) {
			return drv.stop(StopAddress), nil
		}

		if drv.MaxSteps > 0 && steps >= drv.MaxSteps {
			return drv.stop(StopStepLimit), fmt.Errorf("driver: %w (%d)", ErrStepLimit, drv.MaxSteps)
		}

		if err := drv.Step(); err != nil {
			return StopError, err
		}
		steps++

		if drv.Traps && drv.mc.PC.Address() == pc {
			return drv.stop(StopTrap), nil
		}

		if drv.Condition != nil {
			met, err := drv.Condition.Met(drv.Steps, drv.Cycles)
			if err != nil {
				return StopError, fmt.Errorf("driver: %w", err)
			}
			if met {
				return drv.stop(StopCondition), nil
			}
		}

		if continueCheck != nil {
			ok, err := continueCheck()
			if err != nil {
				return StopError, fmt.Errorf("driver: %w", err)
			}
			if !ok {
				return drv.stop(StopInterrupted), nil
			}
		}
	}
}
