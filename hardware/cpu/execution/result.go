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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/wmsboard/hardware/cpu/instructions"
)

// Kind is the type of step performed by the CPU.
type Kind int

// List of valid Kind values.
const (
	// Step is the execution of a single instruction. A CPU waiting for an
	// interrupt after a WAI instruction also reports a Step.
	Step Kind = iota

	// IRQ, NMI and Reset are reported when the CPU acknowledges the
	// interrupt and loads the PC from the corresponding vector.
	IRQ
	NMI
	Reset
)

func (k Kind) String() string {
	switch k {
	case Step:
		return "Step"
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case Reset:
		return "Reset"
	}
	return "unknown"
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	Kind Kind

	// the address at which the instruction began. for interrupt kinds this is
	// the address loaded from the vector
	Address uint16

	// a reference to the instruction definition. nil for interrupt kinds and
	// for a CPU that is waiting for an interrupt
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand of the instruction. one byte operands are stored in the
	// low byte
	InstructionData uint16

	// the number of cycles consumed by the step
	Cycles int

	// the CPU is waiting for an interrupt after a WAI instruction
	Waiting bool

	// whether a branch instruction has taken the branch
	BranchSuccess bool

	// description of a non-fatal memory error encountered during execution
	Error string

	// whether the step has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction in the assembler notation
// for the addressing mode. The relative addressing mode shows the target of
// the branch.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		if r.ByteCount == 3 {
			return fmt.Sprintf("#$%04x", r.InstructionData)
		}
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Direct:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indexed:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.Extended:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", BranchTarget(r.Address, uint8(r.InstructionData)))
	}

	return ""
}

// BranchTarget returns the destination of a relative branch instruction at
// address with the specified offset. The offset is relative to the address of
// the following instruction.
func BranchTarget(address uint16, offset uint8) uint16 {
	return address + 2 + uint16(int16(int8(offset)))
}

// String returns a single line description of the step.
func (r Result) String() string {
	switch r.Kind {
	case IRQ, NMI, Reset:
		return fmt.Sprintf("%s -> %04x [%d]", r.Kind, r.Address, r.Cycles)
	}

	if r.Waiting {
		return fmt.Sprintf("%04x  (waiting for interrupt) [%d]", r.Address, r.Cycles)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%04x  ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  %-4s", r.Address, r.Defn.Mnemonic))
	if op := r.Operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	}

	if r.Error != "" {
		s.WriteString(fmt.Sprintf(" * %s *", r.Error))
	}

	return s.String()
}
