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

// Package driver runs the CPU for a bounded number of instructions or until
// a stop condition is met.
//
// Stop conditions are checked in the following order:
//
//	1. the program counter has reached a stop address (checked before the
//	   instruction at that address is executed)
//	2. the step limit has been reached
//	3. the instruction did not change the program counter (a trap)
//	4. the Condition returns true
//	5. the continueCheck function passed to Run() returns false
//
// Traps are the way Klaus Dormann's functional tests indicate the completion
// of a test. A jump or branch to itself halts the program.
//
// By default an invalid opcode causes Run() and Step() to return an error
// wrapping cpu.ErrInvalidOpcode. In lenient mode the opcode is skipped by
// advancing the program counter by one, the event is logged, and execution
// continues.
package driver
