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

package memory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRAM(t *testing.T) {
	ram := memory.NewRAM()

	// never written cells read as zero
	for _, a := range []uint16{0x0000, 0x00ff, 0x0100, 0x8000, 0xffff} {
		test.ExpectEquality(t, ram.Read(a), 0, a)
	}

	ram.Write(0x0000, 0x01)
	ram.Write(0xffff, 0xff)
	test.ExpectEquality(t, ram.Read(0x0000), 0x01)
	test.ExpectEquality(t, ram.Read(0xffff), 0xff)

	// unconditional overwrite
	ram.Write(0xffff, 0x10)
	test.ExpectEquality(t, ram.Read(0xffff), 0x10)

	ram.Clear()
	test.ExpectEquality(t, ram.Read(0xffff), 0x00)
}

func TestLoadImage(t *testing.T) {
	ram := memory.NewRAM()

	err := memory.LoadImage(ram, 0x1000, []uint8{0xa9, 0x01, 0x00})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ram.Read(0x1000), 0xa9)
	test.ExpectEquality(t, ram.Read(0x1001), 0x01)
	test.ExpectEquality(t, ram.Read(0x1002), 0x00)

	// image fitting exactly against the top of memory
	err = memory.LoadImage(ram, 0xfffe, []uint8{0x34, 0x12})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, memory.ReadWord(ram, 0xfffe), 0x1234)

	// empty image
	test.ExpectSuccess(t, memory.LoadImage(ram, 0xffff, nil))

	// one byte too many. nothing should be written
	err = memory.LoadImage(ram, 0xfffe, []uint8{0xaa, 0xbb, 0xcc})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, memory.ErrImageTooLarge))
	test.ExpectEquality(t, ram.Read(0xfffe), 0x34)
	test.ExpectEquality(t, ram.Read(0xffff), 0x12)

	// an image larger than the entire address space
	err = memory.LoadImage(ram, 0x0000, make([]uint8, cpubus.Size+1))
	test.ExpectSuccess(t, errors.Is(err, memory.ErrImageTooLarge))
}

func TestWords(t *testing.T) {
	ram := memory.NewRAM()

	memory.WriteWord(ram, cpubus.Reset, 0xc000)
	test.ExpectEquality(t, ram.Read(cpubus.Reset), 0x00)
	test.ExpectEquality(t, ram.Read(cpubus.Reset+1), 0xc0)
	test.ExpectEquality(t, memory.ReadWord(ram, cpubus.Reset), 0xc000)

	// high byte wraps around to address zero
	memory.WriteWord(ram, 0xffff, 0xabcd)
	test.ExpectEquality(t, ram.Read(0xffff), 0xcd)
	test.ExpectEquality(t, ram.Read(0x0000), 0xab)
}

func TestDump(t *testing.T) {
	ram := memory.NewRAM()
	ram.Write(0x0012, 0xea)
	ram.Write(0x0013, 0x4c)

	w := &test.CompareWriter{}
	memory.Dump(w, ram, 0x0010, 0x0013, 0x0012)
	lines := strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "      "+"  0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f")
	test.ExpectEquality(t, lines[1], "0010 | 00 00[ea]4c"+strings.Repeat(" ", 36))
	test.ExpectEquality(t, lines[2], "")

	// origin and memtop are swapped if necessary. the mark is not shown if
	// it is outside the range
	w.Clear()
	memory.Dump(w, ram, 0x001f, 0x0010, 0x0100)
	lines = strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[1], "0010 | 00 00 ea 4c"+strings.Repeat(" 00", 12))

	// a mark at the end of a row doesn't close the bracket on the next row
	w.Clear()
	memory.Dump(w, ram, 0x0000, 0x001f, 0x000f)
	lines = strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[1], "0000 |"+strings.Repeat(" 00", 15)+"[00")
	test.ExpectEquality(t, lines[2], "0010 | 00 00 ea 4c"+strings.Repeat(" 00", 12))
}
