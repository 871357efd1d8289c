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

// Package registers implements the register file of the 6502. The Register
// type is used for the accumulator and the two index registers. The program
// counter, stack pointer and status register have their own types.
//
// All registers are stored at their architectural width. The Address()
// functions widen a value at the point it is used as an address and never
// before.
//
// The registers do not set the flags of the status register themselves. That
// is the job of the alu package, which is given both the register and the
// status register for every operation. For example:
//
//	a.Load(10)
//	alu.Compare(a, sr, 11)
//
// In this case the carry flag in the status register will be false and the
// value in the a register will still be 10.
package registers
