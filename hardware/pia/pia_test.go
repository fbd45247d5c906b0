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

package pia_test

import (
	"testing"

	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/test"
)

func TestEcho(t *testing.T) {
	p := pia.NewPIA(pia.Echo)

	for o := uint16(0); o < pia.NumRegisters; o++ {
		test.ExpectEquality(t, p.Read(o), uint8(0))
	}

	p.Write(pia.PortA, 0xab)
	p.Write(pia.PortB, 0x12)
	test.ExpectEquality(t, p.Read(pia.PortA), uint8(0xab))
	test.ExpectEquality(t, p.Peek(pia.PortA), uint8(0xab))
	test.ExpectEquality(t, p.Read(pia.PortB), uint8(0x12))
	test.ExpectEquality(t, p.Read(pia.ControlA), uint8(0x00))

	// writes overwrite
	p.Write(pia.PortA, 0xcd)
	test.ExpectEquality(t, p.Read(pia.PortA), uint8(0xcd))

	p.Reset()
	test.ExpectEquality(t, p.Read(pia.PortA), uint8(0x00))
}

func TestFixedZero(t *testing.T) {
	p := pia.NewPIA(pia.FixedZero)
	p.Write(pia.PortA, 0xab)
	test.ExpectEquality(t, p.Read(pia.PortA), uint8(0x00))
	test.ExpectEquality(t, p.Peek(pia.PortA), uint8(0x00))
	test.ExpectEquality(t, p.Latched(pia.PortA), uint8(0xab))
}

func TestPeekPurity(t *testing.T) {
	for _, m := range []pia.Model{pia.Echo, pia.FixedZero} {
		p := pia.NewPIA(m)
		p.Write(pia.PortA, 0x55)
		p.Write(pia.ControlB, 0x3c)

		before := p.String()
		for i := 0; i < 16; i++ {
			for o := uint16(0); o < pia.NumRegisters; o++ {
				_ = p.Peek(o)
			}
		}
		test.ExpectEquality(t, p.String(), before, m)
	}
}

func TestOutOfRange(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	p := pia.NewPIA(pia.Echo)
	p.Write(pia.NumRegisters, 0x00)
}

func TestParseModel(t *testing.T) {
	m, err := pia.ParseModel("echo")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, pia.Echo)

	m, err = pia.ParseModel("FixedZero")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, pia.FixedZero)

	_, err = pia.ParseModel("loopback")
	test.ExpectFailure(t, err)
}
