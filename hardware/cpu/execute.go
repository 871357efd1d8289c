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
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/alu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Step executes the next instruction and returns the number of cycles it
// consumed. See ExecuteInstruction() for details.
func (mc *CPU) Step() (int, error) {
	err := mc.ExecuteInstruction()
	return mc.LastResult.Cycles, err
}

// ExecuteInstruction steps CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// If the opcode is not defined then an error wrapping ErrInvalidOpcode is
// returned. In that case the program counter is not advanced and the
// LastResult field is finalised with a ByteCount of one.
func (mc *CPU) ExecuteInstruction() error {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8BitPC(newOpcode)

	defn := mc.LastResult.Defn
	if defn == nil {
		// the instruction never happened. the PC points to the opcode so that
		// the caller can decide how to proceed
		mc.PC.Load(mc.LastResult.Address)
		mc.LastResult.InstructionData = uint16(opcode)
		mc.LastResult.Final = true

		err := fmt.Errorf("cpu: %w (%#02x) at (%#04x)", ErrInvalidOpcode, opcode, mc.LastResult.Address)
		mc.LastResult.Error = err.Error()
		return err
	}

	address, value := mc.resolveAddress(defn)

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		alu.Load(&mc.Status, &mc.A, mc.pull())

	case instructions.Php:
		// the break flag is always set in the value pushed by PHP
		mc.push(mc.Status.Value() | 0x10)

	case instructions.Plp:
		mc.loadStatus(mc.pull())

	case instructions.Txa:
		alu.Load(&mc.Status, &mc.A, mc.X.Value())

	case instructions.Tax:
		alu.Load(&mc.Status, &mc.X, mc.A.Value())

	case instructions.Tay:
		alu.Load(&mc.Status, &mc.Y, mc.A.Value())

	case instructions.Tya:
		alu.Load(&mc.Status, &mc.A, mc.Y.Value())

	case instructions.Tsx:
		alu.Load(&mc.Status, &mc.X, mc.SP.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		alu.EOR(&mc.Status, &mc.A, value)

	case instructions.Ora:
		alu.ORA(&mc.Status, &mc.A, value)

	case instructions.And:
		alu.AND(&mc.Status, &mc.A, value)

	case instructions.Lda:
		alu.Load(&mc.Status, &mc.A, value)

	case instructions.Ldx:
		alu.Load(&mc.Status, &mc.X, value)

	case instructions.Ldy:
		alu.Load(&mc.Status, &mc.Y, value)

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Load(alu.Increment(&mc.Status, mc.X.Value()))

	case instructions.Iny:
		mc.Y.Load(alu.Increment(&mc.Status, mc.Y.Value()))

	case instructions.Dex:
		mc.X.Load(alu.Decrement(&mc.Status, mc.X.Value()))

	case instructions.Dey:
		mc.Y.Load(alu.Decrement(&mc.Status, mc.Y.Value()))

	case instructions.Asl:
		if defn.Effect == instructions.RMW {
			value = alu.ASL(&mc.Status, value)
		} else {
			mc.A.Load(alu.ASL(&mc.Status, mc.A.Value()))
		}

	case instructions.Lsr:
		if defn.Effect == instructions.RMW {
			value = alu.LSR(&mc.Status, value)
		} else {
			mc.A.Load(alu.LSR(&mc.Status, mc.A.Value()))
		}

	case instructions.Rol:
		if defn.Effect == instructions.RMW {
			value = alu.ROL(&mc.Status, value)
		} else {
			mc.A.Load(alu.ROL(&mc.Status, mc.A.Value()))
		}

	case instructions.Ror:
		if defn.Effect == instructions.RMW {
			value = alu.ROR(&mc.Status, value)
		} else {
			mc.A.Load(alu.ROR(&mc.Status, mc.A.Value()))
		}

	case instructions.Inc:
		value = alu.Increment(&mc.Status, value)

	case instructions.Dec:
		value = alu.Decrement(&mc.Status, value)

	case instructions.Adc:
		alu.ADC(&mc.Status, &mc.A, value)

	case instructions.Sbc:
		alu.SBC(&mc.Status, &mc.A, value)

	case instructions.Cmp:
		alu.Compare(&mc.Status, mc.A, value)

	case instructions.Cpx:
		alu.Compare(&mc.Status, mc.X, value)

	case instructions.Cpy:
		alu.Compare(&mc.Status, mc.Y, value)

	case instructions.Bit:
		alu.BIT(&mc.Status, mc.A, value)

	case instructions.Jmp:
		if !mc.NoFlowControl {
			mc.PC.Load(address)
		}

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		if !mc.NoFlowControl {
			// the address pushed onto the stack is the address of the last
			// byte of the JSR instruction. RTS adds one to the pulled address
			mc.push16(mc.PC.Address() - 1)
			mc.PC.Load(address)
		}

	case instructions.Rts:
		if !mc.NoFlowControl {
			mc.PC.Load(mc.pull16())
			mc.PC.Add(1)
		}

	case instructions.Brk:
		if !mc.NoFlowControl {
			// the PC has been advanced past the padding byte following the
			// BRK opcode
			mc.push16(mc.PC.Address())

			// the break flag is set in the pushed status value but not in the
			// status register itself
			mc.push(mc.Status.Value() | 0x10)

			mc.Status.InterruptDisable = true
			mc.PC.Load(mc.read16Bit(cpubus.BRK))
		}

	case instructions.Rti:
		if !mc.NoFlowControl {
			mc.loadStatus(mc.pull())
			mc.PC.Load(mc.pull16())
		}

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		mc.mem.Write(address, value)
	}

	// cycle count is the defined number of cycles with additional cycles for
	// page faults and successful branches
	mc.LastResult.Cycles = defn.Cycles
	if mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}
	if mc.LastResult.BranchSuccess {
		mc.LastResult.Cycles++
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}

// loadStatus loads the status register with a value pulled from the stack.
// bits 4 and 5 of the value are ignored
func (mc *CPU) loadStatus(value uint8) {
	b := mc.Status.Break
	mc.Status.Load(value)
	mc.Status.Break = b
}

// branch is used by all the branch instructions. the PC has already been
// advanced past the offset byte.
func (mc *CPU) branch(flag bool, address uint16) {
	// return early if NoFlowControl flag is turned on
	if mc.NoFlowControl {
		return
	}

	// in the case of branching (relative addressing) we've read an 8bit value
	// rather than a 16bit value to use as the "address". we need to make sure
	// the sign bit of the 8bit value has been propogated into the
	// most-significant bits of the 16bit value.
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if flag {
		// note current PC for reference
		oldPC := mc.PC.Address()
		mc.PC.Add(address)

		// check to see whether branching has crossed a page
		mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	}
}
