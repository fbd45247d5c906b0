// This file is part of wmsboard.
//
// wmsboard is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// wmsboard is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with wmsboard.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//go:embed instructions.csv
var definitionsCSV string

// Table is the complete list of instruction definitions indexed by opcode.
type Table struct {
	defns [256]*Definition
	count int
}

// NewTable parses the instruction definitions and returns a new Table.
func NewTable() (*Table, error) {
	return parse(strings.NewReader(definitionsCSV))
}

func parse(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = 7

	tbl := &Table{}

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("instructions: %w", err)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn, err := parseRecord(rec)
		if err != nil {
			line, _ := csvr.FieldPos(0)
			return nil, fmt.Errorf("instructions: %w [line %d]", err, line)
		}

		if tbl.defns[defn.OpCode] != nil {
			return nil, fmt.Errorf("instructions: duplicate definition for opcode %#02x", defn.OpCode)
		}
		tbl.defns[defn.OpCode] = defn
		tbl.count++
	}

	return tbl, nil
}

func parseRecord(rec []string) (*Definition, error) {
	defn := &Definition{}

	opcode, err := strconv.ParseUint(rec[0], 0, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid opcode (%s)", rec[0])
	}
	defn.OpCode = uint8(opcode)

	defn.Operator = rec[1]
	if rec[2] != "-" {
		if rec[2] != "A" && rec[2] != "B" {
			return nil, fmt.Errorf("invalid accumulator (%s)", rec[2])
		}
		defn.Accumulator = rec[2]
	}
	defn.Mnemonic = defn.Operator + defn.Accumulator

	defn.Bytes, err = strconv.Atoi(rec[3])
	if err != nil || defn.Bytes < 1 || defn.Bytes > 3 {
		return nil, fmt.Errorf("invalid byte count (%s)", rec[3])
	}

	defn.Cycles, err = strconv.Atoi(rec[4])
	if err != nil || defn.Cycles < 1 {
		return nil, fmt.Errorf("invalid cycle count (%s)", rec[4])
	}

	defn.AddressingMode, err = parseAddressingMode(rec[5])
	if err != nil {
		return nil, err
	}

	defn.Effect, err = parseCategory(rec[6])
	if err != nil {
		return nil, err
	}

	return defn, nil
}

// Lookup returns the definition for the opcode. Returns nil if the opcode is
// not defined.
func (tbl *Table) Lookup(opcode uint8) *Definition {
	return tbl.defns[opcode]
}

// Len returns the number of defined opcodes.
func (tbl *Table) Len() int {
	return tbl.count
}
