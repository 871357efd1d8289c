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

// Package functional_test runs whole programs on the CPU and detects the
// completion of the program by looking for an instruction that jumps to
// itself.
//
// A short self checking program is always run. The 6502 functional test as
// defined by Klaus Dormann is run if the assembled binary is placed in the
// testdata directory. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary should be assembled with the decimal mode tests and the
// ROM_vectors test disabled and loaded at address zero.
package functional_test
