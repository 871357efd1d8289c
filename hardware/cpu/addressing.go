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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// resolveAddress reads the operand bytes of the instruction and returns the
// effective address. In the case of immediate addressing the operand is
// returned as the value and the address is meaningless. In the case of
// relative addressing the address is the unextended branch offset.
//
// For Read and RMW instructions the value at the effective address is also
// returned.
//
// side-effects:
//   - advances the program counter past the operand
//   - notes page faults and CPU bugs in LastResult
func (mc *CPU) resolveAddress(defn *instructions.Definition) (uint16, uint8) {
	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// value is read from the program for immediate mode, and from non-program
	// memory for all other modes. note that for instructions which are
	// read-modify-write, the value will change during execution and be used to
	// write back to memory
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes
		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			mc.read8BitPC(brk)
		}

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC
		value = mc.read8BitPC(loNibble)

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position. the PC is advanced
		// past the offset whether or not the branch is taken
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		address = mc.read16BitPC()

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC(loNibble))

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		indirectAddress := mc.read16BitPC()

		// handle indirect addressing JMP bug
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			// in this bug path, the lower byte of the indirect address is on a
			// page boundary. because of the bug we must read high byte of JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			lo := mc.mem.Read(indirectAddress)
			hi := mc.mem.Read(indirectAddress & 0xff00)
			address = uint16(hi)<<8 | uint16(lo)
		} else {
			address = mc.read16Bit(indirectAddress)
		}

	case instructions.IndexedIndirect: // x indexing
		indirectAddress := mc.read8BitPC(loNibble)

		// using 8bit addition because the pointer can not extend past the
		// zero page
		pointer := indirectAddress + mc.X.Value()
		if uint16(indirectAddress)+mc.X.Address() > 0xff || pointer == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		address = mc.read16BitZeroPage(pointer)

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		indirectAddress := mc.read8BitPC(loNibble)
		if indirectAddress == 0xff {
			mc.LastResult.CPUBug = execution.IndirectIndexedAddressingBug
		}

		indexedAddress := mc.read16BitZeroPage(indirectAddress)
		address = indexedAddress + mc.Y.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && indexedAddress&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		indirectAddress := mc.read16BitPC()
		address = indirectAddress + mc.X.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && indirectAddress&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		indirectAddress := mc.read16BitPC()
		address = indirectAddress + mc.Y.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && indirectAddress&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		indirectAddress := mc.read8BitPC(loNibble)
		address = uint16(indirectAddress + mc.X.Value())

		// make a note of zero page index bug
		if uint16(indirectAddress)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX ZeroPage,y and STX ZeroPage,y
		indirectAddress := mc.read8BitPC(loNibble)
		address = uint16(indirectAddress + mc.Y.Value())

		// make a note of zero page index bug
		if uint16(indirectAddress)+mc.Y.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
	}

	// read value from memory using address found in AddressingMode switch above only when:
	// a) addressing mode is not 'implied', 'immediate' or 'relative'
	//	- for immediate modes, we already have the value in lieu of an address
	//  - for implied modes, we don't need a value
	//  - for relative modes, the address is an offset
	// b) instruction is 'Read' OR 'RMW'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	return address, value
}
