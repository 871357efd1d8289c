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

// Package savestate captures the state of the CPU and the whole of its
// addressable memory so that it can be restored later. States can be written
// and read as JSON.
//
// Memory is captured through the CPU's Read() function and restored through
// the Write() function, so any implementation of the cpubus.Memory interface
// can be saved and restored. The memory data is encoded as a base64 string in
// the JSON output.
package savestate
