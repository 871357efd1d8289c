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

// Package singlestep runs single instruction test vectors in the format
// described by Thom Harte. https://github.com/SingleStepTests/ProcessorTests
//
// A small number of hand verified vectors are embedded in the package. The
// full set of vectors for the 6502 can be placed in the 6502/v1 directory and
// will be run in addition to the embedded vectors.
//
// The CPU does not expose individual bus cycles, so the tests compare the
// number of cycles and the order of memory writes rather than the whole of
// the bus activity.
package singlestep
