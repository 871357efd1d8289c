//go:generate go run instructions_gen.go

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

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go; DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"var definitions = [256]*Definition{"

const trailingBoilerPlate = "}\n"

func parseCSV() (string, error) {
	// open file
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	// treat the file as a CSV file
	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// instruction file can have a variable number of fields per definition.
	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	// create new definitions table
	deftable := make(map[uint8]instructions.Definition)

	line := 0
	for {
		// loop through file until EOF is reached
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		// check for valid record length
		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		// manually trim trailing space from all fields in the record
		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: parse opcode
		opcode := strings.TrimPrefix(strings.ToLower(rec[0]), "0x")
		n, err := strconv.ParseUint(opcode, 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		newDef.OpCode = uint8(n)

		if _, ok := deftable[newDef.OpCode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", newDef.OpCode, line)
		}

		// field: opcode mnemonic
		var ok bool
		newDef.Operator, ok = instructions.LookupOperator(strings.ToUpper(rec[1]))
		if !ok {
			return "", fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", newDef.OpCode, rec[1], line)
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", newDef.OpCode, rec[2], line)
		}

		// field: addressing mode
		//
		// the addressing mode also defines how many bytes an opcode
		// requires
		am := strings.ToUpper(rec[3])
		switch am {
		default:
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", newDef.OpCode, rec[3], line)
		case "IMPLIED":
			newDef.AddressingMode = instructions.Implied
		case "IMMEDIATE":
			newDef.AddressingMode = instructions.Immediate
		case "RELATIVE":
			newDef.AddressingMode = instructions.Relative
		case "ABSOLUTE":
			newDef.AddressingMode = instructions.Absolute
		case "ZERO_PAGE":
			newDef.AddressingMode = instructions.ZeroPage
		case "INDIRECT":
			newDef.AddressingMode = instructions.Indirect
		case "INDEXED_INDIRECT":
			newDef.AddressingMode = instructions.IndexedIndirect
		case "INDIRECT_INDEXED":
			newDef.AddressingMode = instructions.IndirectIndexed
		case "ABSOLUTE_INDEXED_X":
			newDef.AddressingMode = instructions.AbsoluteIndexedX
		case "ABSOLUTE_INDEXED_Y":
			newDef.AddressingMode = instructions.AbsoluteIndexedY
		case "ZERO_PAGE_INDEXED_X":
			newDef.AddressingMode = instructions.ZeroPageIndexedX
		case "ZERO_PAGE_INDEXED_Y":
			newDef.AddressingMode = instructions.ZeroPageIndexedY
		}
		newDef.Bytes = newDef.AddressingMode.Bytes()

		// BRK is unusual in that it increases the PC by two bytes despite
		// being an implied addressing instruction
		if newDef.Operator == instructions.Brk {
			newDef.Bytes = 2
		}

		// field: page sensitive
		ps := strings.ToUpper(rec[4])
		switch ps {
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", newDef.OpCode, rec[4], line)
		case "TRUE":
			newDef.PageSensitive = true
		case "FALSE":
			newDef.PageSensitive = false
		}

		// field: effect category
		if len(rec) == 5 {
			// effect field is optional. if it hasn't been included then
			// default instruction effect defaults to 'Read'
			newDef.Effect = instructions.Read
		} else {
			switch strings.ToUpper(rec[5]) {
			default:
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", newDef.OpCode, rec[5], line)
			case "READ":
				newDef.Effect = instructions.Read
			case "WRITE":
				newDef.Effect = instructions.Write
			case "RMW":
				newDef.Effect = instructions.RMW
			case "FLOW":
				newDef.Effect = instructions.Flow
			case "SUBROUTINE":
				newDef.Effect = instructions.Subroutine
			case "INTERRUPT":
				newDef.Effect = instructions.Interrupt
			}
		}

		// add new definition to deftable, using opcode as the hash key
		deftable[newDef.OpCode] = newDef
	}

	printSummary(deftable)

	// output the definitions map as an array
	s := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		defn, found := deftable[uint8(opcode)]
		if found {
			// the named constants are used rather than the %#v verb so that
			// the generated table is readable
			s.WriteString(fmt.Sprintf("\n{OpCode: %#02x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %t, Effect: %s},",
				defn.OpCode, operatorName(defn.Operator), defn.Bytes, defn.Cycles,
				defn.AddressingMode, defn.PageSensitive, defn.Effect))
		} else {
			s.WriteString("\nnil,")
		}
	}

	return s.String(), nil
}

// operatorName returns the name of the constant for the operator. the String()
// function returns the upper case mnemonic
func operatorName(op instructions.Operator) string {
	m := op.String()
	return m[:1] + strings.ToLower(m[1:])
}

func printSummary(deftable map[uint8]instructions.Definition) {
	missing := make([]int, 0, 255)

	// walk deftable and note missing instructions
	for i := 0; i <= 255; i++ {
		if _, ok := deftable[uint8(i)]; !ok {
			missing = append(missing, i)
		}
	}

	// if no missing instructions were found then there is nothing more to do
	if len(missing) == 0 {
		return
	}

	fmt.Println("6502 implementation / undefined opcodes")
	fmt.Println("---------------------------------------")

	sort.Ints(missing)

	// print and columnise missing instructions
	c := 0
	for i := range missing {
		fmt.Printf("%#02x\t", missing[i])
		c++
		if c > 4 {
			c = 0
			fmt.Printf("\n")
		}
	}
	if c != 0 {
		fmt.Printf("\n")
	}

	// print summary
	fmt.Printf("%d undefined, %02.0f%% defined\n", len(missing), float32(100*(256-len(missing)))/256)
}

func main() {
	// parse definitions files
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// add boiler-plate to output
	output = fmt.Sprintf("%s%s%s", leadingBoilerPlate, output, trailingBoilerPlate)

	// format code using standard Go formatted
	formattedOutput, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// create output file (over-writing) if it already exists
	f, err := os.Create(generatedGoFile)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
	defer f.Close()

	_, err = f.Write(formattedOutput)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
