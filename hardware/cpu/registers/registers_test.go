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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/wmsboard/hardware/cpu/registers"
	"github.com/jetsetilly/wmsboard/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow, half bool

	r8 := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r8.Value(), uint8(0))
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Label(), "A")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), uint8(127))
	_, overflow, _ = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), uint8(129))
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow, half = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, half, true)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, _, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), uint8(1))

	// half carry only
	r8.Load(0x08)
	carry, overflow, half = r8.Add(0x08, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x10))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, half, true)

	// subtraction. carry means borrow on the 6800
	var borrow bool
	r8.Load(11)
	borrow, _ = r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(10))
	test.ExpectEquality(t, borrow, false)

	r8.Load(12)
	borrow, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(10))
	test.ExpectEquality(t, borrow, false)

	r8.Load(0x01)
	borrow, _ = r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), uint8(0xfb))
	test.ExpectEquality(t, borrow, true)

	r8.Load(0)
	borrow, _ = r8.Subtract(0, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectEquality(t, borrow, true)

	r8.Load(0x80)
	borrow, overflow = r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectEquality(t, borrow, false)
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectEquality(t, carry, true)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectEquality(t, carry, false)
	carry = r8.LSR()
	test.ExpectEquality(t, carry, true)

	r8.Load(0x81)
	carry = r8.ASR()
	test.ExpectEquality(t, r8.Value(), uint8(0xc0))
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectEquality(t, carry, false)
}

func TestRegister16(t *testing.T) {
	x := registers.NewRegister16(0xfffe, "X")
	x.Increment()
	test.ExpectEquality(t, x.Address(), uint16(0xffff))
	x.Increment()
	test.ExpectEquality(t, x.IsZero(), true)
	x.Decrement()
	test.ExpectEquality(t, x.IsNegative(), true)
	x.Add(0x0010)
	test.ExpectEquality(t, x.Address(), uint16(0x000f))

	x.Load(0x1234)
	n, z, v := x.Compare(0x1234)
	test.ExpectEquality(t, n, false)
	test.ExpectEquality(t, z, true)
	test.ExpectEquality(t, v, false)

	x.Load(0x8000)
	n, z, v = x.Compare(0x0001)
	test.ExpectEquality(t, n, false)
	test.ExpectEquality(t, z, false)
	test.ExpectEquality(t, v, true)
	test.ExpectEquality(t, x.Address(), uint16(0x8000))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), uint16(127))
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(129))

	pc.Load(0xffff)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(0x0001))
	test.ExpectEquality(t, pc.String(), "0001")
}

func TestConditionCodes(t *testing.T) {
	var cc registers.ConditionCodes
	test.ExpectEquality(t, cc.Value(), uint8(0xc0))
	test.ExpectEquality(t, cc.String(), "11hinzvc")

	cc.Reset()
	test.ExpectEquality(t, cc.Value(), uint8(0xd0))
	test.ExpectEquality(t, cc.String(), "11hInzvc")

	cc.Load(0x2f)
	test.ExpectEquality(t, cc.Value(), uint8(0xef))
	test.ExpectEquality(t, cc.String(), "11HiNZVC")
	test.ExpectEquality(t, cc.HalfCarry, true)
	test.ExpectEquality(t, cc.InterruptMask, false)
	test.ExpectEquality(t, cc.Carry, true)
}

func TestFile(t *testing.T) {
	f := registers.File{PC: 0xf800, A: 0x01, B: 0x02, X: 0x1234, SP: 0x007f, CC: 0xd0}
	test.ExpectEquality(t, f.String(), "PC=f800 A=01 B=02 X=1234 SP=007f CC=11hInzvc")
}
