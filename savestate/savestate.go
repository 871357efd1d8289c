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

package savestate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// ErrBadMemorySize is returned when a state does not contain exactly the
// amount of memory addressable by the CPU.
var ErrBadMemorySize = errors.New("bad memory size")

// State is a snapshot of the CPU registers and memory.
type State struct {
	PC     uint16 `json:"pc"`
	A      uint8  `json:"a"`
	X      uint8  `json:"x"`
	Y      uint8  `json:"y"`
	SP     uint8  `json:"sp"`
	Status uint8  `json:"status"`
	Memory []byte `json:"memory"`
}

// Capture the current state of the CPU and its memory.
func Capture(mc *cpu.CPU) *State {
	s := &State{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status.Value(),
		Memory: make([]byte, cpubus.Size),
	}

	for i := range s.Memory {
		s.Memory[i] = mc.Read(uint16(i))
	}

	return s
}

func (s *State) validate() error {
	if len(s.Memory) != cpubus.Size {
		return fmt.Errorf("savestate: %w: %d bytes (expected %d)", ErrBadMemorySize, len(s.Memory), cpubus.Size)
	}
	return nil
}

// Restore the state to the CPU. Nothing is changed if the state is not valid.
// The result of the last instruction is reset.
func (s *State) Restore(mc *cpu.CPU) error {
	if err := s.validate(); err != nil {
		return err
	}

	for i, v := range s.Memory {
		mc.Write(uint16(i), v)
	}

	mc.LastResult.Reset()
	mc.PC.Load(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status.Load(s.Status)

	return nil
}

func (s *State) String() string {
	return fmt.Sprintf("PC=%#04x A=%#02x X=%#02x Y=%#02x SP=%#02x SR=%#02x", s.PC, s.A, s.X, s.Y, s.SP, s.Status)
}

// Write state to io.Writer as JSON.
func (s *State) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("savestate: %w", err)
	}
	return nil
}

// Read a state written by the Write() function.
func Read(r io.Reader) (*State, error) {
	var s State
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("savestate: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
