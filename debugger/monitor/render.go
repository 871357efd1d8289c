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

package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// the render functions are called with the critical section locked

func (mon *Monitor) renderRegisters(w io.Writer) {
	fmt.Fprintf(w, "PC %04x  A %02x  X %02x  Y %02x  SP %02x\n",
		mon.mc.PC.Address(), mon.mc.A.Value(), mon.mc.X.Value(), mon.mc.Y.Value(), mon.mc.SP.Value())

	var flags strings.Builder
	for _, f := range registers.Flags {
		if f == registers.Unused {
			continue
		}
		if mon.mc.Status.Get(f) {
			flags.WriteString(fmt.Sprintf("%s ", f))
		}
	}
	fmt.Fprintf(w, "SR %s  %s\n", mon.mc.Status, strings.TrimSpace(flags.String()))
	fmt.Fprintf(w, "RTS %04x  NMI %04x  RESET %04x  IRQ %04x\n", mon.mc.PredictRTS(),
		memory.ReadWord(mon.mc.Mem(), cpubus.NMI),
		memory.ReadWord(mon.mc.Mem(), cpubus.Reset),
		memory.ReadWord(mon.mc.Mem(), cpubus.IRQ))
	fmt.Fprintf(w, "steps %d  cycles %d  skipped %d\n", mon.drv.Steps, mon.drv.Cycles, mon.drv.Skipped)
	fmt.Fprintf(w, "%s", mon.status)
}

func (mon *Monitor) renderTrace(w io.Writer, lines int) {
	start := len(mon.trace) - lines
	if start < 0 {
		start = 0
	}
	for _, l := range mon.trace[start:] {
		fmt.Fprintln(w, l)
	}
}

func (mon *Monitor) renderMemory(w io.Writer) {
	origin := uint16(mon.page) << 8
	memory.Dump(w, mon.mc.Mem(), origin, origin|0xff, mon.mc.PC.Address())
}

func (mon *Monitor) renderLog(w io.Writer, lines int) {
	logger.Tail(w, lines)
}
