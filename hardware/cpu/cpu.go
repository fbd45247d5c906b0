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
	"fmt"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/hardware/cpu/instructions"
	"github.com/jetsetilly/wmsboard/hardware/cpu/registers"
	"github.com/jetsetilly/wmsboard/hardware/memory/cpubus"
)

// UnrecognisedInstruction is returned when the opcode at the PC has no entry
// in the instruction table. The values are the address of the opcode and the
// opcode itself.
const UnrecognisedInstruction = "cpu: unrecognised instruction at %#04x (opcode %#02x)"

// cycle counts for interrupt acknowledgement. a CPU that is waiting after a
// WAI instruction has already pushed its registers
const (
	interruptCycles        = 12
	interruptWaitingCycles = 3
)

// CPU implements the 6800 found on the Williams sound board.
type CPU struct {
	PC registers.ProgramCounter
	A  registers.Register
	B  registers.Register
	X  registers.Register16
	SP registers.Register16
	CC registers.ConditionCodes

	mem   cpubus.Memory
	table *instructions.Table

	// last result of ExecuteInstruction() or Reset()
	LastResult execution.Result

	// the CPU has executed a WAI instruction and is waiting for an interrupt
	Waiting bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem cpubus.Memory, table *instructions.Table) *CPU {
	return &CPU{
		mem:   mem,
		table: table,
		PC:    registers.NewProgramCounter(0),
		A:     registers.NewRegister(0, "A"),
		B:     registers.NewRegister(0, "B"),
		X:     registers.NewRegister16(0, "X"),
		SP:    registers.NewRegister16(0, "SP"),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.B.Label(), mc.B, mc.X.Label(), mc.X,
		mc.SP.Label(), mc.SP, mc.CC.Label(), mc.CC)
}

// Registers returns a copy of the register values.
func (mc *CPU) Registers() registers.File {
	return registers.File{
		PC: mc.PC.Address(),
		A:  mc.A.Value(),
		B:  mc.B.Value(),
		X:  mc.X.Address(),
		SP: mc.SP.Address(),
		CC: mc.CC.Value(),
	}
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// The interrupt mask is set.
//
// Unlike other memory accesses made by the CPU, a failure to read the reset
// vector is always returned as an error.
func (mc *CPU) Reset() (execution.Result, error) {
	mc.LastResult.Reset()
	mc.Waiting = false

	mc.A.Load(0)
	mc.B.Load(0)
	mc.X.Load(0)
	mc.SP.Load(0)
	mc.CC.Reset()

	hi, err := mc.mem.Read(cpubus.Reset)
	if err != nil {
		return mc.LastResult, curated.Errorf("cpu: reset: %v", err)
	}
	lo, err := mc.mem.Read(cpubus.Reset + 1)
	if err != nil {
		return mc.LastResult, curated.Errorf("cpu: reset: %v", err)
	}
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	mc.LastResult.Kind = execution.Reset
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Final = true

	return mc.LastResult, nil
}

// read a byte from memory. an address error is noted in the LastResult and
// execution continues with a value of zero
func (mc *CPU) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		if !curated.Has(err, cpubus.AddressError) {
			return 0, err
		}
		mc.LastResult.Error = err.Error()
		return 0, nil
	}
	return v, nil
}

// read a big endian word from memory
func (mc *CPU) read16(address uint16) (uint16, error) {
	hi, err := mc.read(address)
	if err != nil {
		return 0, err
	}
	lo, err := mc.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (mc *CPU) write(address uint16, data uint8) error {
	err := mc.mem.Write(address, data)
	if err != nil {
		if !curated.Has(err, cpubus.AddressError) {
			return err
		}
		mc.LastResult.Error = err.Error()
	}
	return nil
}

func (mc *CPU) write16(address uint16, data uint16) error {
	err := mc.write(address, uint8(data>>8))
	if err != nil {
		return err
	}
	return mc.write(address+1, uint8(data))
}

// ExecuteInstruction performs one step of the CPU. Depending on the state of
// the interrupt lines and the CPU, a step is either the acknowledgement of an
// interrupt or the execution of a single instruction.
//
// The irq and nmi arguments are the current state of the request lines. It
// is up to the caller to clear a request once it has been acknowledged.
func (mc *CPU) ExecuteInstruction(irq bool, nmi bool) (execution.Result, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if nmi {
		return mc.interrupt(execution.NMI, cpubus.NMI)
	}

	if irq && !mc.CC.InterruptMask {
		return mc.interrupt(execution.IRQ, cpubus.IRQ)
	}

	if mc.Waiting {
		mc.LastResult.Kind = execution.Step
		mc.LastResult.Waiting = true
		mc.LastResult.Cycles = 1
		mc.LastResult.Final = true
		return mc.LastResult, nil
	}

	opcode, err := mc.read(mc.PC.Address())
	if err != nil {
		return mc.LastResult, err
	}

	defn := mc.table.Lookup(opcode)
	if defn == nil {
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		return mc.LastResult, curated.Errorf(UnrecognisedInstruction, mc.LastResult.Address, opcode)
	}

	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1

	switch defn.Bytes {
	case 2:
		v, err := mc.read(mc.PC.Address() + 1)
		if err != nil {
			return mc.LastResult, err
		}
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		v, err := mc.read16(mc.PC.Address() + 1)
		if err != nil {
			return mc.LastResult, err
		}
		mc.LastResult.InstructionData = v
	}
	mc.LastResult.ByteCount = defn.Bytes

	// PC points to the next instruction from this point on. the return
	// address of subroutines and interrupts depend on this
	mc.PC.Add(uint16(defn.Bytes))

	err = mc.execute(defn)
	if err != nil {
		return mc.LastResult, err
	}

	mc.LastResult.Cycles = defn.Cycles
	mc.LastResult.Final = true

	return mc.LastResult, nil
}

// interrupt acknowledges an interrupt request. registers are pushed unless
// the CPU was waiting after a WAI instruction, in which case they have
// already been pushed.
func (mc *CPU) interrupt(kind execution.Kind, vector uint16) (execution.Result, error) {
	mc.LastResult.Kind = kind

	if mc.Waiting {
		mc.Waiting = false
		mc.LastResult.Cycles = interruptWaitingCycles
	} else {
		err := mc.pushRegisters()
		if err != nil {
			return mc.LastResult, err
		}
		mc.LastResult.Cycles = interruptCycles
	}

	mc.CC.InterruptMask = true

	address, err := mc.read16(vector)
	if err != nil {
		return mc.LastResult, err
	}
	mc.PC.Load(address)

	mc.LastResult.Address = address
	mc.LastResult.Final = true

	return mc.LastResult, nil
}

// effectiveAddress returns the address referred to by the operand of the
// instruction. not meaningful for the inherent or immediate addressing modes
func (mc *CPU) effectiveAddress(defn *instructions.Definition) uint16 {
	data := mc.LastResult.InstructionData

	switch defn.AddressingMode {
	case instructions.Direct:
		return data & 0x00ff
	case instructions.Indexed:
		return mc.X.Address() + (data & 0x00ff)
	case instructions.Extended:
		return data
	case instructions.Relative:
		return execution.BranchTarget(mc.LastResult.Address, uint8(data))
	}

	return 0
}

// operand8 returns the 8 bit value the instruction operates on
func (mc *CPU) operand8(defn *instructions.Definition) (uint8, error) {
	if defn.AddressingMode == instructions.Immediate {
		return uint8(mc.LastResult.InstructionData), nil
	}
	return mc.read(mc.effectiveAddress(defn))
}

// operand16 returns the 16 bit value the instruction operates on
func (mc *CPU) operand16(defn *instructions.Definition) (uint16, error) {
	if defn.AddressingMode == instructions.Immediate {
		return mc.LastResult.InstructionData, nil
	}
	return mc.read16(mc.effectiveAddress(defn))
}

// accumulator named by the instruction definition. returns nil if the
// instruction does not operate on an accumulator
func (mc *CPU) accumulator(defn *instructions.Definition) *registers.Register {
	switch defn.Accumulator {
	case "A":
		return &mc.A
	case "B":
		return &mc.B
	}
	return nil
}

func (mc *CPU) setNZ(r registers.Register) {
	mc.CC.Negative = r.IsNegative()
	mc.CC.Zero = r.IsZero()
}

func (mc *CPU) setNZ16(r registers.Register16) {
	mc.CC.Negative = r.IsNegative()
	mc.CC.Zero = r.IsZero()
}
