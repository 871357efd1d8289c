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

package memory

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// ErrImageTooLarge is returned by LoadImage() when the image does not fit
// between the origin address and the top of memory.
var ErrImageTooLarge = errors.New("image too large")

// LoadImage copies data into memory starting at origin. If the image does not
// fit in the address space then nothing is written and ErrImageTooLarge is
// returned.
func LoadImage(mem cpubus.Memory, origin uint16, data []uint8) error {
	if int(origin)+len(data) > cpubus.Size {
		return fmt.Errorf("memory: %w: %d bytes at %#04x (%d bytes available)",
			ErrImageTooLarge, len(data), origin, cpubus.Size-int(origin))
	}

	for i, d := range data {
		mem.Write(origin+uint16(i), d)
	}

	return nil
}

// ReadWord returns the little-endian 16 bit value stored at address. The high
// byte is read from address+1, wrapping around the top of memory.
func ReadWord(mem cpubus.Memory, address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord stores the 16 bit value at address in little-endian order.
func WriteWord(mem cpubus.Memory, address uint16, value uint16) {
	mem.Write(address, uint8(value))
	mem.Write(address+1, uint8(value>>8))
}

// Dump writes a hex dump of memory from origin to memtop inclusive. Rows are
// sixteen bytes wide and always start at an address that is a multiple of
// sixteen. The byte at the mark address is shown in brackets.
func Dump(w io.Writer, mem cpubus.Memory, origin uint16, memtop uint16, mark uint16) {
	if memtop < origin {
		origin, memtop = memtop, origin
	}

	fmt.Fprint(w, "      ")
	for i := 0; i < 16; i++ {
		fmt.Fprintf(w, "  %x", i)
	}
	fmt.Fprintln(w)

	for row := uint32(origin) &^ 0x0f; row <= uint32(memtop); row += 16 {
		fmt.Fprintf(w, "%04x |", row)
		for col := uint32(0); col < 16; col++ {
			a := row + col

			sep := " "
			if a == uint32(mark) {
				sep = "["
			} else if a == uint32(mark)+1 && col > 0 {
				sep = "]"
			}

			if a < uint32(origin) || a > uint32(memtop) {
				fmt.Fprint(w, sep, "  ")
			} else {
				fmt.Fprintf(w, "%s%02x", sep, mem.Read(uint16(a)))
			}
		}
		fmt.Fprintln(w)
	}
}
