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

// Package monitor is a text user interface for the CPU. It shows the CPU
// registers, a trace of the most recently executed instructions, a page of
// memory and the tail of the log.
//
// Keys:
//
//	space, s   step one instruction
//	r          run until a stop condition is met
//	p          pause a running program
//	n, N       next and previous memory page
//	q, ctrl-c  quit
package monitor
