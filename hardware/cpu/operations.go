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
	"github.com/jetsetilly/wmsboard/hardware/cpu/instructions"
	"github.com/jetsetilly/wmsboard/hardware/cpu/registers"
	"github.com/jetsetilly/wmsboard/hardware/memory/cpubus"
)

// execute the decoded instruction. the PC has already been advanced past the
// instruction
func (mc *CPU) execute(defn *instructions.Definition) error {
	switch defn.Effect {
	case instructions.Flow:
		return mc.flow(defn)
	case instructions.Subroutine:
		return mc.subroutine(defn)
	case instructions.Interrupt:
		return mc.software(defn)
	}

	if defn.AddressingMode == instructions.Inherent && defn.Accumulator == "" {
		return mc.inherent(defn)
	}

	if defn.IsWide() {
		return mc.wide(defn)
	}

	switch defn.Operator {
	case "ADD", "ADC", "SUB", "SBC", "CMP", "AND", "BIT", "EOR", "ORA", "LDA":
		v, err := mc.operand8(defn)
		if err != nil {
			return err
		}
		mc.arithmetic(defn.Operator, mc.accumulator(defn), v)
		return nil

	case "STA":
		acc := mc.accumulator(defn)
		mc.setNZ(*acc)
		mc.CC.Overflow = false
		return mc.write(mc.effectiveAddress(defn), acc.Value())

	case "PSH":
		return mc.push(mc.accumulator(defn).Value())

	case "PUL":
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.accumulator(defn).Load(v)
		return nil
	}

	// the remaining instructions operate on an accumulator or on a memory
	// location. memory locations are read into a temporary register and
	// written back after the operation
	r := mc.accumulator(defn)
	if r == nil {
		v, err := mc.read(mc.effectiveAddress(defn))
		if err != nil {
			return err
		}
		tmp := registers.NewRegister(v, "M")
		r = &tmp
	}

	mc.unary(defn.Operator, r)

	if defn.Accumulator == "" && defn.Operator != "TST" {
		return mc.write(mc.effectiveAddress(defn), r.Value())
	}

	return nil
}

// arithmetic performs the instructions that take an accumulator and a value
func (mc *CPU) arithmetic(operator string, acc *registers.Register, v uint8) {
	switch operator {
	case "ADD", "ADC":
		carry, overflow, half := acc.Add(v, operator == "ADC" && mc.CC.Carry)
		mc.setNZ(*acc)
		mc.CC.HalfCarry = half
		mc.CC.Overflow = overflow
		mc.CC.Carry = carry

	case "SUB", "SBC":
		borrow, overflow := acc.Subtract(v, operator == "SBC" && mc.CC.Carry)
		mc.setNZ(*acc)
		mc.CC.Overflow = overflow
		mc.CC.Carry = borrow

	case "CMP":
		cmp := *acc
		borrow, overflow := cmp.Subtract(v, false)
		mc.setNZ(cmp)
		mc.CC.Overflow = overflow
		mc.CC.Carry = borrow

	case "AND":
		acc.AND(v)
		mc.setNZ(*acc)
		mc.CC.Overflow = false

	case "BIT":
		cmp := *acc
		cmp.AND(v)
		mc.setNZ(cmp)
		mc.CC.Overflow = false

	case "EOR":
		acc.EOR(v)
		mc.setNZ(*acc)
		mc.CC.Overflow = false

	case "ORA":
		acc.ORA(v)
		mc.setNZ(*acc)
		mc.CC.Overflow = false

	case "LDA":
		acc.Load(v)
		mc.setNZ(*acc)
		mc.CC.Overflow = false
	}
}

// unary performs the single operand instructions. the register can be an
// accumulator or a temporary register holding a memory value
func (mc *CPU) unary(operator string, r *registers.Register) {
	switch operator {
	case "NEG":
		v := r.Value()
		r.Load(0)
		r.Subtract(v, false)
		mc.setNZ(*r)
		mc.CC.Overflow = r.Value() == 0x80
		mc.CC.Carry = r.Value() != 0x00

	case "COM":
		r.EOR(0xff)
		mc.setNZ(*r)
		mc.CC.Overflow = false
		mc.CC.Carry = true

	case "LSR":
		mc.CC.Carry = r.LSR()
		mc.shifted(*r)

	case "ROR":
		mc.CC.Carry = r.ROR(mc.CC.Carry)
		mc.shifted(*r)

	case "ASR":
		mc.CC.Carry = r.ASR()
		mc.shifted(*r)

	case "ASL":
		mc.CC.Carry = r.ASL()
		mc.shifted(*r)

	case "ROL":
		mc.CC.Carry = r.ROL(mc.CC.Carry)
		mc.shifted(*r)

	case "DEC":
		mc.CC.Overflow = r.Value() == 0x80
		r.Load(r.Value() - 1)
		mc.setNZ(*r)

	case "INC":
		mc.CC.Overflow = r.Value() == 0x7f
		r.Load(r.Value() + 1)
		mc.setNZ(*r)

	case "TST":
		mc.setNZ(*r)
		mc.CC.Overflow = false
		mc.CC.Carry = false

	case "CLR":
		r.Load(0)
		mc.CC.Negative = false
		mc.CC.Zero = true
		mc.CC.Overflow = false
		mc.CC.Carry = false
	}
}

// flags after a shift or rotate. the carry flag must already be set
func (mc *CPU) shifted(r registers.Register) {
	mc.setNZ(r)
	mc.CC.Overflow = mc.CC.Negative != mc.CC.Carry
}

// wide performs the instructions that operate on the 16 bit registers
func (mc *CPU) wide(defn *instructions.Definition) error {
	switch defn.Operator {
	case "LDX", "LDS":
		v, err := mc.operand16(defn)
		if err != nil {
			return err
		}
		r := &mc.X
		if defn.Operator == "LDS" {
			r = &mc.SP
		}
		r.Load(v)
		mc.setNZ16(*r)
		mc.CC.Overflow = false

	case "STX", "STS":
		r := mc.X
		if defn.Operator == "STS" {
			r = mc.SP
		}
		mc.setNZ16(r)
		mc.CC.Overflow = false
		return mc.write16(mc.effectiveAddress(defn), r.Address())

	case "CPX":
		v, err := mc.operand16(defn)
		if err != nil {
			return err
		}
		mc.CC.Negative, mc.CC.Zero, mc.CC.Overflow = mc.X.Compare(v)
	}

	return nil
}

// inherent performs the single byte instructions that do not name an
// accumulator
func (mc *CPU) inherent(defn *instructions.Definition) error {
	switch defn.Operator {
	case "NOP":
	case "TAP":
		mc.CC.Load(mc.A.Value())
	case "TPA":
		mc.A.Load(mc.CC.Value())
	case "INX":
		mc.X.Increment()
		mc.CC.Zero = mc.X.IsZero()
	case "DEX":
		mc.X.Decrement()
		mc.CC.Zero = mc.X.IsZero()
	case "INS":
		mc.SP.Increment()
	case "DES":
		mc.SP.Decrement()
	case "TSX":
		mc.X.Load(mc.SP.Address() + 1)
	case "TXS":
		mc.SP.Load(mc.X.Address() - 1)
	case "CLV":
		mc.CC.Overflow = false
	case "SEV":
		mc.CC.Overflow = true
	case "CLC":
		mc.CC.Carry = false
	case "SEC":
		mc.CC.Carry = true
	case "CLI":
		mc.CC.InterruptMask = false
	case "SEI":
		mc.CC.InterruptMask = true
	case "SBA":
		mc.arithmetic("SUB", &mc.A, mc.B.Value())
	case "CBA":
		mc.arithmetic("CMP", &mc.A, mc.B.Value())
	case "ABA":
		mc.arithmetic("ADD", &mc.A, mc.B.Value())
	case "TAB":
		mc.B.Load(mc.A.Value())
		mc.setNZ(mc.B)
		mc.CC.Overflow = false
	case "TBA":
		mc.A.Load(mc.B.Value())
		mc.setNZ(mc.A)
		mc.CC.Overflow = false
	case "DAA":
		mc.daa()
	}

	return nil
}

// decimal adjust of the accumulator after a BCD addition
func (mc *CPU) daa() {
	v := mc.A.Value()
	lo := v & 0x0f
	hi := v >> 4

	var correction uint8
	carry := mc.CC.Carry

	if mc.CC.HalfCarry || lo > 9 {
		correction |= 0x06
	}
	if carry || hi > 9 || (hi > 8 && lo > 9) {
		correction |= 0x60
		carry = true
	}

	sum := uint16(v) + uint16(correction)
	mc.A.Load(uint8(sum))
	mc.setNZ(mc.A)
	mc.CC.Overflow = false
	mc.CC.Carry = carry || sum > 0xff
}

// branch reports whether the condition of the branch instruction is met
func (mc *CPU) branch(operator string) bool {
	cc := mc.CC

	switch operator {
	case "BRA":
		return true
	case "BHI":
		return !(cc.Carry || cc.Zero)
	case "BLS":
		return cc.Carry || cc.Zero
	case "BCC":
		return !cc.Carry
	case "BCS":
		return cc.Carry
	case "BNE":
		return !cc.Zero
	case "BEQ":
		return cc.Zero
	case "BVC":
		return !cc.Overflow
	case "BVS":
		return cc.Overflow
	case "BPL":
		return !cc.Negative
	case "BMI":
		return cc.Negative
	case "BGE":
		return cc.Negative == cc.Overflow
	case "BLT":
		return cc.Negative != cc.Overflow
	case "BGT":
		return !cc.Zero && cc.Negative == cc.Overflow
	case "BLE":
		return cc.Zero || cc.Negative != cc.Overflow
	}

	return false
}

// flow performs branches and jumps
func (mc *CPU) flow(defn *instructions.Definition) error {
	if defn.IsBranch() {
		if mc.branch(defn.Operator) {
			mc.LastResult.BranchSuccess = true
			mc.PC.Load(mc.effectiveAddress(defn))
		}
		return nil
	}

	// JMP
	mc.PC.Load(mc.effectiveAddress(defn))
	return nil
}

// subroutine performs JSR, BSR and RTS
func (mc *CPU) subroutine(defn *instructions.Definition) error {
	if defn.Operator == "RTS" {
		address, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(address)
		return nil
	}

	err := mc.push16(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.PC.Load(mc.effectiveAddress(defn))

	return nil
}

// software performs the instructions that interact with the interrupt
// mechanism: SWI, WAI and RTI
func (mc *CPU) software(defn *instructions.Definition) error {
	switch defn.Operator {
	case "SWI":
		err := mc.pushRegisters()
		if err != nil {
			return err
		}
		mc.CC.InterruptMask = true
		address, err := mc.read16(cpubus.SWI)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case "WAI":
		err := mc.pushRegisters()
		if err != nil {
			return err
		}
		mc.Waiting = true

	case "RTI":
		return mc.pullRegisters()
	}

	return nil
}
