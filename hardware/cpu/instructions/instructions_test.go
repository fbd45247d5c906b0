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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/wmsboard/hardware/cpu/instructions"
	"github.com/jetsetilly/wmsboard/test"
)

func TestTable(t *testing.T) {
	tbl, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	// the 6800 has 197 documented opcodes
	test.ExpectEquality(t, tbl.Len(), 197)

	defn := tbl.Lookup(0x86)
	test.DemandInequality(t, defn, nil)
	test.ExpectEquality(t, defn.Mnemonic, "LDAA")
	test.ExpectEquality(t, defn.Operator, "LDA")
	test.ExpectEquality(t, defn.Accumulator, "A")
	test.ExpectEquality(t, defn.Bytes, 2)
	test.ExpectEquality(t, defn.Cycles, 2)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)

	defn = tbl.Lookup(0xce)
	test.DemandInequality(t, defn, nil)
	test.ExpectEquality(t, defn.Mnemonic, "LDX")
	test.ExpectEquality(t, defn.Bytes, 3)
	test.ExpectEquality(t, defn.IsWide(), true)

	defn = tbl.Lookup(0x7e)
	test.DemandInequality(t, defn, nil)
	test.ExpectEquality(t, defn.Mnemonic, "JMP")
	test.ExpectEquality(t, defn.Cycles, 3)
	test.ExpectEquality(t, defn.Effect, instructions.Flow)

	defn = tbl.Lookup(0x27)
	test.DemandInequality(t, defn, nil)
	test.ExpectEquality(t, defn.Mnemonic, "BEQ")
	test.ExpectEquality(t, defn.IsBranch(), true)

	defn = tbl.Lookup(0x3f)
	test.DemandInequality(t, defn, nil)
	test.ExpectEquality(t, defn.Mnemonic, "SWI")
	test.ExpectEquality(t, defn.Cycles, 12)

	// undocumented opcodes are not defined
	for _, op := range []uint8{0x00, 0x02, 0x03, 0x12, 0x21, 0x38, 0x41, 0x87, 0xcd, 0xfd} {
		test.ExpectEquality(t, tbl.Lookup(op), nil, op)
	}
}

func TestConsistency(t *testing.T) {
	tbl, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	for op := 0; op <= 0xff; op++ {
		defn := tbl.Lookup(uint8(op))
		if defn == nil {
			continue
		}

		test.ExpectEquality(t, int(defn.OpCode), op)

		var bytes int
		switch defn.AddressingMode {
		case instructions.Inherent:
			bytes = 1
		case instructions.Immediate:
			bytes = 2
			if defn.IsWide() {
				bytes = 3
			}
		case instructions.Direct, instructions.Indexed, instructions.Relative:
			bytes = 2
		case instructions.Extended:
			bytes = 3
		}
		test.ExpectEquality(t, defn.Bytes, bytes, defn.Mnemonic)
	}
}
