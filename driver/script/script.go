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

package script

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	lua "github.com/yuin/gopher-lua"
)

// Condition is a compiled Lua condition. It satisfies the driver.Condition
// interface.
type Condition struct {
	mc     *cpu.CPU
	L      *lua.LState
	fn     *lua.LFunction
	source string
}

// NewCondition compiles the Lua source. The CPU will be inspected every time
// the condition is checked.
func NewCondition(mc *cpu.CPU, source string) (*Condition, error) {
	c := &Condition{
		mc:     mc,
		L:      lua.NewState(lua.Options{SkipOpenLibs: true}),
		source: source,
	}

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
		{lua.StringLibName, lua.OpenString},
	} {
		err := c.L.CallByParam(lua.P{
			Fn:      c.L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			c.L.Close()
			return nil, fmt.Errorf("script: %w", err)
		}
	}

	c.register()

	var err error

	c.fn, err = c.L.LoadString(fmt.Sprintf("return (%s)", source))
	if err != nil {
		c.fn, err = c.L.LoadString(source)
		if err != nil {
			c.L.Close()
			return nil, fmt.Errorf("script: %w", err)
		}
	}

	return c, nil
}

func (c *Condition) register() {
	c.registers()

	c.L.SetGlobal("peek", c.L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		if addr < 0 || addr > 0xffff {
			L.ArgError(1, "address out of range")
			return 0
		}
		L.Push(lua.LNumber(c.mc.Read(uint16(addr))))
		return 1
	}))

	c.L.SetGlobal("flag", c.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		f, ok := lookupFlag(name)
		if !ok {
			L.ArgError(1, fmt.Sprintf("unknown flag %q", name))
			return 0
		}
		L.Push(lua.LBool(c.mc.Status.Get(f)))
		return 1
	}))
}

// registers are set as global values. they must be refreshed before every
// evaluation of the condition
func (c *Condition) registers() {
	c.L.SetGlobal("pc", lua.LNumber(c.mc.PC.Address()))
	c.L.SetGlobal("a", lua.LNumber(c.mc.A.Value()))
	c.L.SetGlobal("x", lua.LNumber(c.mc.X.Value()))
	c.L.SetGlobal("y", lua.LNumber(c.mc.Y.Value()))
	c.L.SetGlobal("sp", lua.LNumber(c.mc.SP.Value()))
}

// single letter names for flags, as used in the String() output of the status
// register
var flagLetters = map[string]registers.Flag{
	"N": registers.Negative,
	"S": registers.Negative,
	"V": registers.Overflow,
	"B": registers.Break,
	"D": registers.Decimal,
	"I": registers.InterruptDisable,
	"Z": registers.Zero,
	"C": registers.Carry,
}

func lookupFlag(name string) (registers.Flag, bool) {
	if f, ok := flagLetters[strings.ToUpper(name)]; ok {
		return f, true
	}
	for _, f := range registers.Flags {
		if f != registers.Unused && strings.EqualFold(f.String(), name) {
			return f, true
		}
	}
	return 0, false
}

// Met implements the driver.Condition interface.
func (c *Condition) Met(steps int, cycles int) (bool, error) {
	c.registers()
	c.L.SetGlobal("steps", lua.LNumber(steps))
	c.L.SetGlobal("cycles", lua.LNumber(cycles))

	c.L.Push(c.fn)
	if err := c.L.PCall(0, 1, nil); err != nil {
		return false, fmt.Errorf("script: %w", err)
	}

	v := c.L.Get(-1)
	c.L.Pop(1)

	return lua.LVAsBool(v), nil
}

func (c *Condition) String() string {
	return c.source
}

// Close the Lua state. The condition can not be used after it has been closed.
func (c *Condition) Close() {
	c.L.Close()
}
