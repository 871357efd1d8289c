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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher6502/driver"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jroimartin/gocui"
)

// the maximum number of lines kept in the trace
const maxTrace = 256

// how often the views are updated while the program is running
const refreshRate = 100 * time.Millisecond

// Monitor is a gocui interface for the CPU and driver.
type Monitor struct {
	mc  *cpu.CPU
	drv *driver.Driver

	// critical section protects the CPU and the monitor fields below. it is
	// held by the run goroutine for the duration of a call to driver.Run()
	// and released between instructions
	crit sync.Mutex

	trace  []string
	page   uint8
	status string

	running atomic.Bool

	// closed when the gui main loop has ended. the gui must not be updated
	// after that
	quit chan bool

	// waits for the run goroutine to end
	wg sync.WaitGroup
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The driver's Trace field is replaced. Any existing trace function will
// still be called.
func NewMonitor(mc *cpu.CPU, drv *driver.Driver) *Monitor {
	mon := &Monitor{
		mc:     mc,
		drv:    drv,
		page:   uint8(mc.PC.Address() >> 8),
		status: "ready",
		quit:   make(chan bool),
	}

	chain := drv.Trace
	drv.Trace = func(r execution.Result) {
		mon.record(r)
		if chain != nil {
			chain(r)
		}
	}

	return mon
}

func (mon *Monitor) record(r execution.Result) {
	mon.trace = append(mon.trace, r.String())
	if len(mon.trace) > maxTrace {
		mon.trace = mon.trace[len(mon.trace)-maxTrace:]
	}
}

// step a single instruction. returns false if the monitor is running
func (mon *Monitor) step() bool {
	if mon.running.Load() {
		return false
	}

	mon.crit.Lock()
	defer mon.crit.Unlock()

	mon.page = uint8(mon.mc.PC.Address() >> 8)
	if err := mon.drv.Step(); err != nil {
		mon.status = err.Error()
		logger.Log(logger.Allow, "monitor", err)
	} else {
		mon.status = "stepped"
	}
	mon.page = uint8(mon.mc.PC.Address() >> 8)

	return true
}

// run the driver until a stop condition is met or until pause() is called.
// the done function is called when the driver stops
func (mon *Monitor) run(done func()) bool {
	if !mon.running.CompareAndSwap(false, true) {
		return false
	}

	mon.wg.Add(1)
	go func() {
		defer mon.wg.Done()

		mon.crit.Lock()
		mon.status = "running"

		reason, err := mon.drv.Run(func() (bool, error) {
			// give other goroutines a chance to acquire the lock
			mon.crit.Unlock()
			mon.crit.Lock()
			return mon.running.Load(), nil
		})

		if err != nil {
			mon.status = err.Error()
		} else {
			mon.status = fmt.Sprintf("stopped (%s)", reason)
		}
		mon.page = uint8(mon.mc.PC.Address() >> 8)
		mon.running.Store(false)
		mon.crit.Unlock()

		if done != nil {
			done()
		}
	}()

	return true
}

func (mon *Monitor) pause() {
	mon.running.Store(false)
}

// Run the monitor. Returns when the user quits.
func (mon *Monitor) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(mon.layout)

	if err := mon.keybindings(g); err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	// update views while the driver is running
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ticker.C:
				if mon.running.Load() {
					g.Update(mon.update)
				}
			case <-mon.quit:
				return
			}
		}
	}()

	err = g.MainLoop()
	close(mon.quit)

	// stop any running program and wait for it to finish
	mon.pause()
	mon.wg.Wait()

	if err != nil && err != gocui.ErrQuit {
		return fmt.Errorf("monitor: %w", err)
	}

	return nil
}

// notify the gui that the views should be updated. does nothing if the gui
// main loop has ended
func (mon *Monitor) notify(g *gocui.Gui) bool {
	select {
	case <-mon.quit:
		return false
	default:
	}
	g.Update(mon.update)
	return true
}

func (mon *Monitor) keybindings(g *gocui.Gui) error {
	step := func(g *gocui.Gui, v *gocui.View) error {
		if mon.step() {
			return mon.update(g)
		}
		return nil
	}

	run := func(g *gocui.Gui, v *gocui.View) error {
		mon.run(func() {
			mon.notify(g)
		})
		return mon.update(g)
	}

	pause := func(g *gocui.Gui, v *gocui.View) error {
		mon.pause()
		return nil
	}

	page := func(delta int) func(g *gocui.Gui, v *gocui.View) error {
		return func(g *gocui.Gui, v *gocui.View) error {
			mon.crit.Lock()
			mon.page = uint8(int(mon.page) + delta)
			mon.crit.Unlock()
			return mon.update(g)
		}
	}

	quit := func(g *gocui.Gui, v *gocui.View) error {
		return gocui.ErrQuit
	}

	bindings := []struct {
		key     any
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeySpace, step},
		{'s', step},
		{'r', run},
		{'p', pause},
		{'n', page(1)},
		{'N', page(-1)},
		{'q', quit},
		{gocui.KeyCtrlC, quit},
	}

	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			return err
		}
	}

	return nil
}

func (mon *Monitor) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	views := []struct {
		name           string
		title          string
		x0, y0, x1, y1 int
	}{
		{"registers", "Registers", 0, 0, maxX/2 - 1, 6},
		{"trace", "Trace", 0, 7, maxX/2 - 1, maxY - 1},
		{"memory", "Memory", maxX / 2, 0, maxX - 1, 18},
		{"log", "Log", maxX / 2, 19, maxX - 1, maxY - 1},
	}

	created := false
	for _, vw := range views {
		v, err := g.SetView(vw.name, vw.x0, vw.y0, vw.x1, vw.y1)
		if err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
			v.Title = vw.title
			created = true
		}
	}

	if created {
		return mon.update(g)
	}

	return nil
}

// update all views
func (mon *Monitor) update(g *gocui.Gui) error {
	mon.crit.Lock()
	defer mon.crit.Unlock()

	v, err := g.View("registers")
	if err != nil {
		return err
	}
	v.Clear()
	mon.renderRegisters(v)

	v, err = g.View("trace")
	if err != nil {
		return err
	}
	v.Clear()
	_, h := v.Size()
	mon.renderTrace(v, h)

	v, err = g.View("memory")
	if err != nil {
		return err
	}
	v.Clear()
	mon.renderMemory(v)

	v, err = g.View("log")
	if err != nil {
		return err
	}
	v.Clear()
	_, h = v.Size()
	mon.renderLog(v, h)

	return nil
}
