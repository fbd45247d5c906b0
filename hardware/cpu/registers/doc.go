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

// Package registers implements the registers of the 6800 CPU. The 8 bit
// accumulators are implemented by the Register type and the 16 bit index
// register and stack pointer by the Register16 type. The ProgramCounter and
// ConditionCodes types are special purpose registers.
//
// The arithmetic functions of the Register type return the state of the
// flags affected by the operation. It is up to the CPU to decide what to do
// with that information. For example:
//
//	a.Load(0x0a)
//	borrow, overflow := a.Subtract(0x0b, false)
//	cc.Carry = borrow
//	cc.Zero = a.IsZero()
//
// In this case, the carry flag will be true and the zero flag will be false.
package registers
