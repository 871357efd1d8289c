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

package registers

import (
	"strings"
)

// Flag identifies one bit of the status register. The value of each Flag is
// the mask of the bit in the packed form of the register.
type Flag uint8

// List of valid Flag values, from the most significant bit to the least.
const (
	Negative         Flag = 0x80
	Overflow         Flag = 0x40
	Unused           Flag = 0x20
	Break            Flag = 0x10
	Decimal          Flag = 0x08
	InterruptDisable Flag = 0x04
	Zero             Flag = 0x02
	Carry            Flag = 0x01
)

// Flags lists every status flag in bit order, most significant first.
var Flags = []Flag{Negative, Overflow, Unused, Break, Decimal, InterruptDisable, Zero, Carry}

func (f Flag) String() string {
	switch f {
	case Negative:
		return "Negative"
	case Overflow:
		return "Overflow"
	case Unused:
		return "Unused"
	case Break:
		return "Break"
	case Decimal:
		return "Decimal"
	case InterruptDisable:
		return "InterruptDisable"
	case Zero:
		return "Zero"
	case Carry:
		return "Carry"
	}
	return "unknown flag"
}

// StatusRegister is the special purpose register that stores the flags of the CPU.
//
// The unused bit has no field. It is always set in the packed form returned
// by Value() and is ignored by Load().
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// field returns a pointer to the boolean backing the flag. returns nil for the
// unused flag.
func (sr *StatusRegister) field(f Flag) *bool {
	switch f {
	case Negative:
		return &sr.Sign
	case Overflow:
		return &sr.Overflow
	case Break:
		return &sr.Break
	case Decimal:
		return &sr.DecimalMode
	case InterruptDisable:
		return &sr.InterruptDisable
	case Zero:
		return &sr.Zero
	case Carry:
		return &sr.Carry
	}
	return nil
}

// Get returns the state of the flag. The unused flag is always set.
func (sr *StatusRegister) Get(f Flag) bool {
	if b := sr.field(f); b != nil {
		return *b
	}
	return f == Unused
}

// SetTo sets the state of the flag. Has no effect on the unused flag.
func (sr *StatusRegister) SetTo(f Flag, v bool) {
	if b := sr.field(f); b != nil {
		*b = v
	}
}

// Set the flag.
func (sr *StatusRegister) Set(f Flag) {
	sr.SetTo(f, true)
}

// Clear the flag.
func (sr *StatusRegister) Clear(f Flag) {
	sr.SetTo(f, false)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= uint8(Negative)
	}
	if sr.Overflow {
		v |= uint8(Overflow)
	}
	if sr.Break {
		v |= uint8(Break)
	}
	if sr.DecimalMode {
		v |= uint8(Decimal)
	}
	if sr.InterruptDisable {
		v |= uint8(InterruptDisable)
	}
	if sr.Zero {
		v |= uint8(Zero)
	}
	if sr.Carry {
		v |= uint8(Carry)
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= uint8(Unused)

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&uint8(Negative) == uint8(Negative)
	sr.Overflow = v&uint8(Overflow) == uint8(Overflow)
	sr.Break = v&uint8(Break) == uint8(Break)
	sr.DecimalMode = v&uint8(Decimal) == uint8(Decimal)
	sr.InterruptDisable = v&uint8(InterruptDisable) == uint8(InterruptDisable)
	sr.Zero = v&uint8(Zero) == uint8(Zero)
	sr.Carry = v&uint8(Carry) == uint8(Carry)
}
