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

package cpu

import (
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/hardware/cpu/instructions"
)

// Peeker is the side effect free subset of cpubus.Debugger required by
// Disassemble().
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Disassemble decodes the instruction at pc without executing it. Memory is
// only accessed with Peek() so the state of the machine is not changed.
//
// The returned Result is not Final and has no cycles.
func Disassemble(mem Peeker, table *instructions.Table, pc uint16) (execution.Result, error) {
	res := execution.Result{
		Kind:    execution.Step,
		Address: pc,
	}

	opcode, err := mem.Peek(pc)
	if err != nil {
		return res, curated.Errorf("cpu: disassemble: %v", err)
	}

	defn := table.Lookup(opcode)
	if defn == nil {
		res.ByteCount = 1
		return res, curated.Errorf(UnrecognisedInstruction, pc, opcode)
	}

	res.Defn = defn

	for i := 1; i < defn.Bytes; i++ {
		v, err := mem.Peek(pc + uint16(i))
		if err != nil {
			return res, curated.Errorf("cpu: disassemble: %v", err)
		}
		res.InstructionData = res.InstructionData<<8 | uint16(v)
	}
	res.ByteCount = defn.Bytes

	return res, nil
}
