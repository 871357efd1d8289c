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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. will be nil if the opcode is not defined
	Defn *instructions.Definition

	// the number of bytes read from the program during the instruction,
	// including the opcode
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in the
	// case of a branch instruction, it is the offset value. for immediate
	// addressing it is the value used by the instruction
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// error string. will be empty unless the instruction could not be
	// completed
	Error string

	// whether this data has been finalised. the values of the other fields are
	// undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns a summary of the instruction in assembly notation, along with
// the cycle count and any notes.
func (r Result) String() string {
	if r.Defn == nil {
		if r.Final {
			return fmt.Sprintf("%#04x ??? [%d]", r.Address, r.Cycles)
		}
		return "???"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#04x %s", r.Address, r.Defn.Operator))

	var operand string
	switch r.Defn.Bytes {
	case 2:
		operand = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		operand = fmt.Sprintf("$%04x", r.InstructionData)
	}

	// decorate operand with addressing mode indicators
	switch r.Defn.AddressingMode {
	case instructions.Implied:
		// BRK reads a padding byte but there is no operand
		operand = ""
	case instructions.Immediate:
		operand = fmt.Sprintf("#%s", operand)
	case instructions.Indirect:
		operand = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf("%s,Y", operand)
	}

	if operand != "" {
		s.WriteString(" ")
		s.WriteString(operand)
	}

	s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}
