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

// Package instructions defines the instruction set of the CPU. Each of the
// 151 documented opcodes has a Definition describing the operator, the
// addressing mode, the number of bytes the instruction occupies and the number
// of cycles it takes to execute.
//
// The definitions table is generated from the instructions.csv file in the
// generator directory. To regenerate the table after changing the CSV file
// run "go generate" in the generator directory.
//
// Opcodes that have no definition are not part of the documented instruction
// set. The Lookup() function returns nil for these opcodes.
package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the definition for the opcode. Returns nil if the opcode is
// not defined.
func Lookup(opcode uint8) *Definition {
	return definitions[opcode]
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Undefined opcodes have a nil entry.
//
// The table is shared and must not be modified.
func GetDefinitions() []*Definition {
	return definitions[:]
}
