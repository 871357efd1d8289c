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
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/driver"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

func prepare(t *testing.T) (*cpu.CPU, *driver.Driver) {
	t.Helper()

	mc := cpu.New()
	mc.Reset()

	// LDA #$42; SEC; JMP $0403
	test.DemandSuccess(t, memory.LoadImage(mc.Mem(), 0x0400, []uint8{0xa9, 0x42, 0x38, 0x4c, 0x03, 0x04}))
	mc.LoadPC(0x0400)

	drv := driver.NewDriver(mc)
	drv.Traps = true

	return mc, drv
}

func TestStep(t *testing.T) {
	mc, drv := prepare(t)

	var chained int
	drv.Trace = func(_ execution.Result) {
		chained++
	}

	mon := NewMonitor(mc, drv)
	test.ExpectEquality(t, mon.page, 0x04)

	test.ExpectSuccess(t, mon.step())
	test.ExpectSuccess(t, mon.step())
	test.ExpectEquality(t, chained, 2)

	w := &test.CompareWriter{}
	mon.renderRegisters(w)
	test.ExpectEquality(t, w.String(), "PC 0403  A 42  X 00  Y 00  SP ff\n"+
		"SR sv-bdizC  Carry\n"+
		"RTS 0001  NMI 0000  RESET 0000  IRQ 0000\n"+
		"steps 2  cycles 4  skipped 0\n"+
		"stepped")

	w.Clear()
	mon.renderTrace(w, 1)
	test.ExpectEquality(t, w.String(), "0x0402 SEC [2]\n")

	w.Clear()
	mon.renderTrace(w, 10)
	test.ExpectEquality(t, w.String(), "0x0400 LDA #$42 [2]\n0x0402 SEC [2]\n")
}

func TestRun(t *testing.T) {
	mc, drv := prepare(t)
	mon := NewMonitor(mc, drv)

	done := make(chan bool)
	test.ExpectSuccess(t, mon.run(func() {
		done <- true
	}))
	<-done

	test.ExpectEquality(t, mon.status, "stopped (trap)")
	test.ExpectEquality(t, drv.Steps, 3)
	test.ExpectFailure(t, mon.running.Load())
	test.ExpectEquality(t, len(mon.trace), 3)

	// stepping is possible once the run has finished
	test.ExpectSuccess(t, mon.step())
	test.ExpectEquality(t, drv.Steps, 4)
}

func TestMemory(t *testing.T) {
	mc, drv := prepare(t)
	mon := NewMonitor(mc, drv)
	test.ExpectSuccess(t, mon.step())
	test.ExpectSuccess(t, mon.step())

	w := &test.CompareWriter{}
	mon.renderMemory(w)

	lines := strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 18)
	test.ExpectEquality(t, lines[0], "        0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f")
	test.ExpectEquality(t, lines[1], "0400 | a9 42 38[4c]03 04"+strings.Repeat(" 00", 10))
	test.ExpectEquality(t, lines[16], "04f0 |"+strings.Repeat(" 00", 16))
}

func TestRegistersVectors(t *testing.T) {
	mc, drv := prepare(t)
	mon := NewMonitor(mc, drv)

	memory.WriteWord(mc.Mem(), cpubus.NMI, 0x1234)
	memory.WriteWord(mc.Mem(), cpubus.Reset, 0x0400)
	memory.WriteWord(mc.Mem(), cpubus.IRQ, 0xabcd)

	// return address of $0405 pushed by a JSR at $0403
	mc.Write(0x01ff, 0x04)
	mc.Write(0x01fe, 0x05)
	mc.SP.Load(0xfd)

	w := &test.CompareWriter{}
	mon.renderRegisters(w)
	lines := strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 5)
	test.ExpectEquality(t, lines[2], "RTS 0406  NMI 1234  RESET 0400  IRQ abcd")
}

func TestNotifyAfterQuit(t *testing.T) {
	mc, drv := prepare(t)
	mon := NewMonitor(mc, drv)

	// the gui is never touched once the main loop has ended
	close(mon.quit)
	test.ExpectFailure(t, mon.notify(nil))
}

func TestTraceLimit(t *testing.T) {
	mc, drv := prepare(t)
	mon := NewMonitor(mc, drv)

	for i := 0; i < maxTrace+10; i++ {
		mon.record(execution.Result{})
	}
	test.ExpectEquality(t, len(mon.trace), maxTrace)
}

func TestLog(t *testing.T) {
	logger.Clear()
	logger.Log(logger.Allow, "test", "monitor log")

	mc, drv := prepare(t)
	mon := NewMonitor(mc, drv)

	w := &test.CompareWriter{}
	mon.renderLog(w, 1)
	test.ExpectEquality(t, w.String(), "test: monitor log\n")
}
