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

func adcDecimal(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	a := r.Value()

	var carry uint8
	if sr.Carry {
		carry = 1
	}

	// the Z flag is computed before performing any decimal adjust. in
	// other words, it is the same as for binary addition
	sr.Zero = a+v+carry == 0

	units := a&0x0f + v&0x0f + carry
	if units > 0x09 {
		units += 0x06
	}

	tens := a>>4 + v>>4
	if units > 0x0f {
		tens++
	}

	// the N and V flags are computed after a decimal adjust of the low nibble
	// but before adjusting the high nibble. the tens value has not been shifted
	// into the upper nibble yet
	sr.Sign = tens&0x08 == 0x08
	sr.Overflow = (a^v)&0x80 == 0 && (a^(tens<<4))&0x80 != 0

	if tens > 0x09 {
		tens += 0x06
	}
	sr.Carry = tens > 0x0f

	r.Load(tens<<4 | units&0x0f)
}

func sbcDecimal(sr *registers.StatusRegister, r *registers.Register, v uint8) {
	a := r.Value()

	var borrow int
	if !sr.Carry {
		borrow = 1
	}

	// the flags are set exactly as they are for binary subtraction
	var bin registers.Register
	bin.Load(a)
	adcBinary(sr, &bin, ^v)

	units := int(a&0x0f) - int(v&0x0f) - borrow
	tens := int(a>>4) - int(v>>4)
	if units < 0 {
		units -= 0x06
		tens--
	}
	if tens < 0 {
		tens -= 0x06
	}

	r.Load(uint8(tens<<4) | uint8(units&0x0f))
}
