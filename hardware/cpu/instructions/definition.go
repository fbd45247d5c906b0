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

import "fmt"

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode uint8

	// Mnemonic is the Operator followed by the Accumulator. For example, LDAA
	// is the LDA operator acting on accumulator A.
	Mnemonic    string
	Operator    string
	Accumulator string

	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsWide returns true if the instruction operates on a 16 bit value. The
// immediate form of these instructions has a two byte operand.
func (defn Definition) IsWide() bool {
	switch defn.Operator {
	case "CPX", "LDS", "LDX", "STS", "STX":
		return true
	}
	return false
}
