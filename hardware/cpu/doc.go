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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument to NewCPU(). The Memory
// interface defines the memory operations required by the CPU. The New()
// function creates a CPU with a flat 64KiB RAM attached.
//
// The bread-and-butter of the CPU type is the Step() function, which executes
// a single instruction and returns the number of cycles it consumed.
//
//	mc := cpu.New()
//	mc.Write(0x0000, 0xa9) // LDA #$01
//	mc.Write(0x0001, 0x01)
//
//	cycles, err := mc.Step()
//
// Step() is a thin wrapper around ExecuteInstruction(). Information about the
// most recently executed instruction is available in the LastResult field. See
// the execution package for more information. Very useful for debuggers.
//
// The arithmetic and logical operations of the CPU are found in the alu
// package. The CPU decides which register or memory address an operation acts
// upon and the alu package decides what happens to the status register.
//
// An opcode that is not in the instruction set causes Step() to return an
// error that can be tested for with errors.Is(err, ErrInvalidOpcode). The
// program counter is left pointing at the invalid opcode.
//
// The NoFlowControl flag is used to prevent the CPU from honouring "flow
// control" functions (ie. JMP, BNE, BEQ, etc.). This is useful when
// disassembling a program. See instructions package for classifications.
package cpu
