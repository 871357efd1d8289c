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

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) uint8 {
	v := mc.mem.Read(mc.PC.Address())

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		// look up definition. will be nil for an undefined opcode
		mc.LastResult.Defn = mc.instructions[v]
	case loNibble:
		mc.LastResult.InstructionData = uint16(v)
	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	return v
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates InstructionData field
func (mc *CPU) read16BitPC() uint16 {
	mc.read8BitPC(loNibble)
	mc.read8BitPC(hiNibble)
	return mc.LastResult.InstructionData
}

// read16Bit returns 16bit value from the specified address
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage returns the 16bit value from the specified zero page
// address. the high byte is read from the next address in the zero page,
// wrapping around to address zero if necessary
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// push value onto the stack.
func (mc *CPU) push(value uint8) {
	mc.mem.Write(mc.SP.Address(), value)
	mc.SP.Push()
}

// pull value from the stack.
func (mc *CPU) pull() uint8 {
	mc.SP.Pull()
	return mc.mem.Read(mc.SP.Address())
}

// push16 pushes the high byte of value and then the low byte.
func (mc *CPU) push16(value uint16) {
	mc.push(uint8(value >> 8))
	mc.push(uint8(value))
}

// pull16 pulls the low byte and then the high byte.
func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return (uint16(hi) << 8) | uint16(lo)
}
