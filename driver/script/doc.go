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

// Package script implements driver conditions as Lua expressions.
//
// The expression can use the following functions and values:
//
//	pc            the program counter
//	a x y         the A, X and Y registers
//	sp            the stack pointer
//	flag(name)    status flag. name is a single letter (N, V, B, D, I, Z, C)
//	              or the full name of the flag (eg. "Carry")
//	peek(addr)    the value in memory at addr
//	steps         number of instructions executed by the driver
//	cycles        number of cycles consumed by the driver
//
// For example:
//
//	pc == 0x3469 or peek(0x0200) > 10
//
// Lua source that isn't an expression is run as a chunk and the first
// returned value is used as the result of the condition.
package script
