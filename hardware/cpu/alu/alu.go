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

package alu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// setZN sets the Zero and Sign flags according to the value.
func setZN(sr *registers.StatusRegister, v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
}

// Load value into register. Used by all load, pull and transfer instructions
// that affect the status register.
func Load(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	r.Load(v)
	setZN(sr, v)
}

// ADC adds value and the carry flag to the register.
func ADC(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	if sr.DecimalMode {
		adcDecimal(sr, r, v)
		return
	}
	adcBinary(sr, r, v)
}

func adcBinary(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	a := r.Value()

	sum := uint16(a) + uint16(v)
	if sr.Carry {
		sum++
	}
	result := uint8(sum)

	sr.Carry = sum > 0xff
	sr.Overflow = (v^result)&(a^result)&0x80 != 0
	setZN(sr, result)
	r.Load(result)
}

// SBC subtracts value and the inverse of the carry flag from the register. The
// carry flag is used as a "not borrow" flag, meaning that it should be set
// before the first subtraction of a sequence.
func SBC(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	if sr.DecimalMode {
		sbcDecimal(sr, r, v)
		return
	}

	// binary subtraction is identical to the addition of the one's complement
	adcBinary(sr, r, ^v)
}

// AND register with value.
func AND(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	Load(sr, r, r.Value()&v)
}

// ORA performs an OR of register and value.
func ORA(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	Load(sr, r, r.Value()|v)
}

// EOR performs an exclusive-OR of register and value.
func EOR(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	Load(sr, r, r.Value()^v)
}

// ASL (Arithmetic Shift Left) shifts the value one bit to the left. Bit seven
// of the value is moved into the carry flag.
func ASL(sr *registers.StatusRegister, v uint8) uint8 {
	sr.Carry = v&0x80 != 0
	v <<= 1
	setZN(sr, v)
	return v
}

// LSR (Logical Shift Right) shifts the value one bit to the right. Bit zero of
// the value is moved into the carry flag.
func LSR(sr *registers.StatusRegister, v uint8) uint8 {
	sr.Carry = v&0x01 != 0
	v >>= 1
	setZN(sr, v)
	return v
}

// ROL rotates the value one bit to the left, through the carry flag.
func ROL(sr *registers.StatusRegister, v uint8) uint8 {
	carry := sr.Carry
	sr.Carry = v&0x80 != 0
	v <<= 1
	if carry {
		v |= 0x01
	}
	setZN(sr, v)
	return v
}

// ROR rotates the value one bit to the right, through the carry flag.
func ROR(sr *registers.StatusRegister, v uint8) uint8 {
	carry := sr.Carry
	sr.Carry = v&0x01 != 0
	v >>= 1
	if carry {
		v |= 0x80
	}
	setZN(sr, v)
	return v
}

// Compare register value with v. Used by CMP, CPX and CPY. Only the status
// register is changed.
func Compare(sr *registers.StatusRegister, r registers.Register, v uint8) {
	a := r.Value()
	sr.Carry = a >= v
	setZN(sr, a-v)
}

// BIT tests the bits of value against the register. The Sign and Overflow
// flags are copied from bits 7 and 6 of the value, regardless of the Zero
// flag.
func BIT(sr *registers.StatusRegister, r registers.Register, v uint8) {
	sr.Zero = r.Value()&v == 0
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
}

// Increment returns the value plus one. Used by INC, INX and INY.
func Increment(sr *registers.StatusRegister, v uint8) uint8 {
	v++
	setZN(sr, v)
	return v
}

// Decrement returns the value minus one. Used by DEC, DEX and DEY.
func Decrement(sr *registers.StatusRegister, v uint8) uint8 {
	v--
	setZN(sr, v)
	return v
}
