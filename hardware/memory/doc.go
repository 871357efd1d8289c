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

// Package memory implements a flat 64KiB random access memory, suitable for
// attaching to the CPU through the cpubus.Memory interface.
//
// There is no memory mapping of any kind. Every address reads back the last
// value written to it and a newly created RAM reads zero everywhere.
//
// Program images are placed in memory with the LoadImage() function, which
// works with any implementation of cpubus.Memory and not just the RAM type
// in this package.
package memory
