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

// Package cpubus defines the interface between the CPU and the memory it is
// attached to, together with the addresses the CPU treats specially.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are 16 bits wide so there is no such thing as an out of range
// access and the operations can not fail.
//
// Implementations are free to map addresses in any way they see fit. A
// peripheral that wants to intercept an area of memory can wrap another
// Memory implementation and forward the addresses it is not interested in.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Addresses of the interrupt vectors. Each vector is two bytes long, stored
// little-endian.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares its vector with IRQ.
	BRK = IRQ
)

// StackPage is the base address of the stack. The stack pointer is an offset
// into this page.
const StackPage = uint16(0x0100)

// Size of the addressable memory space.
const Size = 0x10000
