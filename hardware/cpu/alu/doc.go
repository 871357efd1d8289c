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

// Package alu implements the arithmetic and logical operations of the CPU.
//
// Every function takes the status register and updates only the flags that
// the operation is documented to affect. Functions that produce a result
// either load it into the register they are given or return it, in which case
// the caller is responsible for storing the result. This means the same
// function can be used for the accumulator form and the memory form of an
// instruction. For example, ASL can shift the accumulator:
//
//	mc.A.Load(alu.ASL(&mc.Status, mc.A.Value()))
//
// or a value read from memory, with the result being written back to the same
// address.
//
// The Compare() and BIT() functions only ever affect the status register.
//
// Decimal mode is supported by ADC() and SBC(). The behaviour is that of the
// NMOS 6502, including the state of the Zero, Sign and Overflow flags, which
// are only partly meaningful when the decimal flag is set. The details of how
// the flags should be set in decimal mode are taken from the "Decimal Mode"
// document by Bruce Clark and from Marko Makela's notes on the subject.
package alu
