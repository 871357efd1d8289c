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

import "github.com/jetsetilly/gopher6502/hardware/memory/cpubus"

// RAM is the entire addressable memory space as a single block.
type RAM struct {
	Data [cpubus.Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) uint8 {
	return ram.Data[address]
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.Data[address] = data
}

// Clear sets every address to zero.
func (ram *RAM) Clear() {
	clear(ram.Data[:])
}
