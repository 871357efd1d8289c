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

package modalflag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadHex is returned when a string can not be parsed as a 16 bit
// hexadecimal value.
var ErrBadHex = errors.New("bad hexadecimal value")

// ParseHex parses a 16 bit hexadecimal value. The value can be prefixed with
// "0x" or "$". Values without a prefix are also treated as hexadecimal.
func ParseHex(s string) (uint16, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "$") {
		t = t[1:]
	} else if strings.HasPrefix(strings.ToLower(t), "0x") {
		t = t[2:]
	}

	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("modalflag: %w: %q", ErrBadHex, s)
	}

	return uint16(v), nil
}

// hexValue implements the flag.Value interface
type hexValue uint16

func (h *hexValue) String() string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%#04x", uint16(*h))
}

func (h *hexValue) Set(s string) error {
	v, err := ParseHex(s)
	if err != nil {
		return err
	}
	*h = hexValue(v)
	return nil
}

// hexListValue implements the flag.Value interface. Values are separated by
// commas and the flag can be specified more than once
type hexListValue []uint16

func (h *hexListValue) String() string {
	if h == nil {
		return ""
	}
	s := make([]string, len(*h))
	for i, v := range *h {
		s[i] = fmt.Sprintf("%#04x", v)
	}
	return strings.Join(s, ",")
}

func (h *hexListValue) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		v, err := ParseHex(f)
		if err != nil {
			return err
		}
		*h = append(*h, v)
	}
	return nil
}
