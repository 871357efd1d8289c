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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/test"
)

type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%v  - wanted %v at address %04x", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	mem.internal = [0x10000]uint8{}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// PHP; PLP
	_ = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	test.ExpectEquality(t, mc.SP.Value(), 254)

	// break and unused bits are set in the pushed value
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true
	mc.Status.Break = false

	// restore status register. the break bit is ignored
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 255)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)

	// LDA immediate; ADC immediate; ADC immediate
	_ = mem.putInstructions(origin, 0xa9, 0, 0x18, 0x69, 0x05, 0x69, 0xff)
	step(t, mc) // LDA #0
	step(t, mc) // CLC
	step(t, mc) // ADC #$05
	step(t, mc) // ADC #$FF
	test.ExpectEquality(t, mc.A.Value(), 0x04)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.ExpectEquality(t, mc.A.Value(), 0)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), 255)
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), 15)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), 1)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 2)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 1)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	origin = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), 1)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 128)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 64)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")

	// LDA immediate; ASL implied
	_ = mem.putInstructions(origin, 0xa9, 0x81, 0x0a)
	step(t, mc) // LDA #$81
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDX immediate; INX; DEX
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), 6)
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.X.Value(), 5)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")

	// PHA; LDA immediate; PLA
	origin = mem.putInstructions(origin, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), 254)
	step(t, mc) // LDA #0
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), 5)
	test.ExpectFailure(t, mc.Status.Zero)

	// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
	origin = mem.putInstructions(origin, 0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 5)
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 1)
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 2)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), 3)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 2)

	// TSX; LDX immediate; TXS
	_ = mem.putInstructions(origin, 0xba, 0xa2, 100, 0x9a)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), 255)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizc")
	step(t, mc) // LDX #100
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 100)

	// TXS does not affect the status register
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
}

func testOtherAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var r execution.Result
	var origin uint16
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0100, 123, 43)
	mem.putInstructions(0x01a2, 47)

	// LDA zero page
	origin = mem.putInstructions(origin, 0xa5, 0x00)
	step(t, mc) // LDA $00
	test.ExpectEquality(t, mc.A.Value(), 0xa5)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xb5, 0x01)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $01,X
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// LDY immediate; LDX zero page,Y
	origin = mem.putInstructions(origin, 0xa0, 3, 0xb6, 0x01)
	step(t, mc) // LDY #3
	step(t, mc) // LDX $01,Y
	test.ExpectEquality(t, mc.X.Value(), 0xb5)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x01)
	step(t, mc) // LDA $0100
	test.ExpectEquality(t, mc.A.Value(), 123)

	// LDX immediate; LDA absolute,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xbd, 0x01, 0x00)
	step(t, mc) // LDX #1
	test.ExpectEquality(t, mc.X.Value(), 1)
	step(t, mc) // LDA $0001,X
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 1, 0xb9, 0x01, 0x00)
	step(t, mc) // LDY #1
	test.ExpectEquality(t, mc.Y.Value(), 1)
	step(t, mc) // LDA $0001,Y
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// pre-indexed indirect
	// X = 1
	// INX; LDA (Indirect, X)
	origin = mem.putInstructions(origin, 0xe8, 0xa1, 0x0b)
	step(t, mc)     // INX (x equals 2)
	r = step(t, mc) // LDA (0x0b,X)
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)
	test.ExpectEquality(t, mc.A.Value(), 47)

	// pre-indexed indirect (with wraparound)
	// X = 2
	// INX; LDA (Indirect, X)
	origin = mem.putInstructions(origin, 0xe8, 0xa1, 0xff)
	step(t, mc)     // INX (x equals 3)
	r = step(t, mc) // LDA (0xff,X)
	test.ExpectEquality(t, r.CPUBug, execution.IndexedIndirectAddressingBug)
	test.ExpectEquality(t, mc.A.Value(), 47)

	// post-indexed indirect (with page-fault)
	// Y = 1
	// INY; INY; LDA (Indirect), Y
	mem.putInstructions(0xc0, 0xfd, 0x00)
	_ = mem.putInstructions(origin, 0xc8, 0xc8, 0xb1, 0xc0)
	step(t, mc)     // INY (y = 2)
	step(t, mc)     // INY (y = 3)
	r = step(t, mc) // LDA (0xc0),Y
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 6)
}

func testPostIndexedIndirect(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0xee00, 0x01, 0x02, 0x03)

	// pointer at the top of the zero page. the high byte of the pointer is
	// read from the bottom of the zero page
	mem.putInstructions(0x00ff, 0x00)
	mem.putInstructions(0x0000, 0xee)

	// LDY immediate; LDA (Indirect), Y
	mc.PC.Load(0x0200)
	mem.putInstructions(0x0200, 0xa0, 0x02, 0xb1, 0xff)
	step(t, mc) // LDY #2
	test.ExpectEquality(t, mc.Y.Value(), 2)
	r := step(t, mc) // LDA ($ff),Y
	test.ExpectEquality(t, mc.A.Value(), 0x03)
	test.ExpectEquality(t, r.CPUBug, execution.IndirectIndexedAddressingBug)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)
}

func testZeroPageIndexing(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0100, 0x99)

	// LDX immediate; LDA zero page,X (index wraps inside the zero page)
	origin = mem.putInstructions(0x0200, 0xa2, 0x02, 0xb5, 0xff)
	mc.PC.Load(0x0200)
	step(t, mc)      // LDX #2
	r := step(t, mc) // LDA $ff,X
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)

	// LDA immediate; STA zero page,X
	_ = mem.putInstructions(origin, 0xa9, 0x42, 0x95, 0xff)
	step(t, mc) // LDA #$42
	step(t, mc) // STA $ff,X
	mem.assert(t, 0x0001, 0x42)
	mem.assert(t, 0x0101, 0x00)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate; STA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x54, 0x8d, 0x00, 0x01)
	step(t, mc) // LDA 0x54
	step(t, mc) // STA 0x0100
	mem.assert(t, 0x0100, 0x54)

	// LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x8e, 0x01, 0x01)
	step(t, mc) // LDX 0x63
	step(t, mc) // STX 0x0101
	mem.assert(t, 0x0101, 0x63)

	// LDY immediate; STY absolute
	origin = mem.putInstructions(origin, 0xa0, 0x72, 0x8c, 0x02, 0x01)
	step(t, mc) // LDY 0x72
	step(t, mc) // STY 0x0102
	mem.assert(t, 0x0102, 0x72)

	// INC zero page
	origin = mem.putInstructions(origin, 0xe6, 0x01)
	step(t, mc) // INC $01
	mem.assert(t, 0x01, 0x55)

	// DEC absolute
	origin = mem.putInstructions(origin, 0xce, 0x00, 0x01)
	step(t, mc) // DEC 0x0100
	mem.assert(t, 0x0100, 0x53)

	// ASL zero page
	mem.putInstructions(0x0030, 0x81)
	origin = mem.putInstructions(origin, 0x06, 0x30)
	r := step(t, mc) // ASL $30
	mem.assert(t, 0x0030, 0x02)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
	test.ExpectEquality(t, r.Cycles, 5)

	// LDX immediate; STA absolute,X (no page fault for writes)
	_ = mem.putInstructions(origin, 0xa2, 0xff, 0x9d, 0x01, 0x01)
	step(t, mc)     // LDX #$ff
	r = step(t, mc) // STA $0101,X
	mem.assert(t, 0x0200, 0x54)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	var r execution.Result

	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0x10, 0x10)
	r = step(t, mc) // BPL $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 3)

	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0x50, 0x10)
	step(t, mc) // BVC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0x90, 0x10)
	step(t, mc) // BCC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0x38, 0xb0, 0x10)
	step(t, mc) // SEC
	step(t, mc) // BCS $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0xe8, 0xd0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BNE $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0xca, 0x30, 0x10)
	step(t, mc) // DEX
	step(t, mc) // BMI $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	_ = mem.putInstructions(0x13, 0xe8, 0xf0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BEQ $10
	test.ExpectEquality(t, mc.PC.Address(), 0x26)

	origin = 0
	mem.Clear()
	mc.Reset()
	// fudging overflow test
	mc.Status.Overflow = true
	_ = mem.putInstructions(origin, 0x70, 0x10)
	step(t, mc) // BVS $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	// branch not taken still consumes the offset byte
	origin = 0
	mem.Clear()
	mc.Reset()
	_ = mem.putInstructions(origin, 0x38, 0x90, 0x10)
	step(t, mc)     // SEC
	r = step(t, mc) // BCC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x03)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 2)

	// branch not taken with the offset byte at address zero
	mem.Clear()
	mc.Reset()
	mc.Status.Carry = true
	mem.putInstructions(0xffff, 0x90)
	mem.putInstructions(0x0000, 0x7f)
	mc.PC.Load(0xffff)
	step(t, mc) // BCC $7f
	test.ExpectEquality(t, mc.PC.Address(), 0x0001)

	// backwards branch
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0010, 0xd0, 0xfc)
	mc.PC.Load(0x0010)
	mc.Status.Zero = false
	step(t, mc) // BNE $fc
	test.ExpectEquality(t, mc.PC.Address(), 0x000e)

	// branch crossing a page
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x00f0, 0x90, 0x20)
	mc.PC.Load(0x00f0)
	r = step(t, mc) // BCC $20
	test.ExpectEquality(t, mc.PC.Address(), 0x0112)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)

	// backwards branch crossing a page
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0200, 0x90, 0xf0)
	mc.PC.Load(0x0200)
	r = step(t, mc) // BCC $f0
	test.ExpectEquality(t, mc.PC.Address(), 0x01f2)
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 4)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// JMP absolute
	_ = mem.putInstructions(origin, 0x4c, 0x00, 0x01)
	step(t, mc) // JMP $100
	test.ExpectEquality(t, mc.PC.Address(), 0x0100)

	// JMP indirect
	origin = 0
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0050, 0x49, 0x01)
	_ = mem.putInstructions(origin, 0x6c, 0x50, 0x00)
	step(t, mc) // JMP ($50)
	test.ExpectEquality(t, mc.PC.Address(), 0x0149)

	// JMP indirect (bug)
	origin = 0
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x01ff, 0x03)
	mem.putInstructions(0x0100, 0x00)
	mem.putInstructions(0x0200, 0x04)
	_ = mem.putInstructions(origin, 0x6c, 0xff, 0x01)
	r := step(t, mc) // JMP ($01ff)
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// CMP immediate (equality)
	origin = mem.putInstructions(origin, 0xc9, 0x00)
	step(t, mc) // CMP $00
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0xf6, 0xc9, 0x18)
	step(t, mc) // LDA $F6
	step(t, mc) // CMP $18
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizC")

	// LDX immediate; CPX immediate
	origin = mem.putInstructions(origin, 0xa2, 0xf6, 0xe0, 0x18)
	step(t, mc) // LDX $F6
	step(t, mc) // CPX $18
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizC")

	// LDY immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xa0, 0xf6, 0xc0, 0x18)
	step(t, mc) // LDY $F6
	step(t, mc) // CPY $18
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdizC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0x18, 0xc9, 0xf6)
	step(t, mc) // LDA $18
	step(t, mc) // CMP $F6
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")

	// comparison does not change the accumulator
	test.ExpectEquality(t, mc.A.Value(), 0x18)

	// BIT zero page
	origin = mem.putInstructions(origin, 0x24, 0x01)
	step(t, mc) // BIT $01
	test.ExpectEquality(t, mc.Status.String(), "sv-bdiZc")

	// LDA immediate; BIT absolute
	mem.putInstructions(0x0300, 0xc0)
	_ = mem.putInstructions(origin, 0xa9, 0x00, 0x2c, 0x00, 0x03)
	step(t, mc) // LDA #$00
	step(t, mc) // BIT $0300
	test.ExpectEquality(t, mc.Status.String(), "SV-bdiZc")
	test.ExpectEquality(t, mc.A.Value(), 0x00)
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// JSR absolute
	_ = mem.putInstructions(origin, 0x20, 0x00, 0x01)
	r := step(t, mc) // JSR $0100
	test.ExpectEquality(t, mc.PC.Address(), 0x0100)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 253)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PredictRTS(), 0x0003)

	_ = mem.putInstructions(0x100, 0x60)
	step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 255)
}

func testInterruptInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	// BRK vector
	mem.putInstructions(cpubus.BRK, 0x00, 0x03)

	// BRK; padding byte
	mem.putInstructions(0x0000, 0x00, 0xea)
	r := step(t, mc) // BRK
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	mem.assert(t, 0x01fd, 0x30)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// RTI
	mem.putInstructions(0x0300, 0x40)
	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), 0x0002)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	_ = mem.putInstructions(origin, 0xf8, 0xa9, 0x20, 0x38, 0xe9, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$20
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x19)
}

func testInvalidOpcode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0400, 0xa9, 0x01, 0x02)
	mc.PC.Load(0x0400)
	step(t, mc) // LDA #$01

	cycles, err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, cpu.ErrInvalidOpcode))
	test.ExpectEquality(t, cycles, 0)

	// the program counter still points to the invalid opcode
	test.ExpectEquality(t, mc.PC.Address(), 0x0402)
	test.ExpectEquality(t, mc.LastResult.Address, 0x0402)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 1)
	test.ExpectSuccess(t, mc.LastResult.Final)
	test.ExpectSuccess(t, mc.LastResult.Defn == nil)

	// nothing else has changed
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func testNoFlowControl(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.NoFlowControl = true
	defer func() {
		mc.NoFlowControl = false
	}()

	// JMP absolute; BCC; JSR
	mem.putInstructions(0x0000, 0x4c, 0x00, 0x10, 0x90, 0x10, 0x20, 0x00, 0x20)
	step(t, mc) // JMP $1000
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	step(t, mc) // BCC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x0005)
	step(t, mc) // JSR $2000
	test.ExpectEquality(t, mc.PC.Address(), 0x0008)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testOtherAddressingModes(t, mc, mem)
	testPostIndexedIndirect(t, mc, mem)
	testZeroPageIndexing(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testInterruptInstructions(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testInvalidOpcode(t, mc, mem)
	testNoFlowControl(t, mc, mem)
}

func TestNewCPU(t *testing.T) {
	mc := cpu.New()

	// a new CPU has every register zeroed
	test.ExpectEquality(t, mc.PC.Address(), 0)
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	test.ExpectSuccess(t, mc.HasReset())

	// memory is zeroed and BRK is opcode zero
	test.ExpectEquality(t, mc.Read(0x1234), 0x00)
	mc.Write(0x1234, 0xea)
	test.ExpectEquality(t, mc.Read(0x1234), 0xea)

	// reset vector
	mc.Write(cpubus.Reset, 0x00)
	mc.Write(cpubus.Reset+1, 0xc0)
	mc.Reset()
	mc.LoadPCIndirect(cpubus.Reset)
	test.ExpectEquality(t, mc.PC.Address(), 0xc000)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.String(), "PC=0xc000 A=0x00 X=0x00 Y=0x00 SP=0xff SR=sv-bdizc")

	// the first instruction after the reset vector has been loaded
	mc.Write(0xc000, 0xea)
	cycles, err := mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectFailure(t, mc.HasReset())

	// snapshots are independent of the original
	snap := mc.Snapshot()
	mc.A.Load(0x10)
	test.ExpectEquality(t, snap.A.Value(), 0x00)
}
