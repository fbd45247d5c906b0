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

package memory_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/memory"
	"github.com/jetsetilly/wmsboard/hardware/memory/cpubus"
	"github.com/jetsetilly/wmsboard/hardware/memory/memorymap"
	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/test"
)

// a board with a ROM image where every byte is the low byte of its address
// XORed with 0xa5
func newTestBoard(t *testing.T, model pia.Model) *memory.Board {
	t.Helper()
	brd := memory.NewBoard(model)
	rom := make([]uint8, memorymap.SizeROM)
	for i := range rom {
		rom[i] = uint8(i) ^ 0xa5
	}
	test.DemandSuccess(t, brd.UploadROM(rom))
	return brd
}

func TestIllegalAddress(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	_, err := brd.Read(0x0200)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.ExpectEquality(t, err.Error(), "illegal address (0x0200)")

	v := curated.Values(err)
	test.DemandEquality(t, len(v), 1)
	test.ExpectEquality(t, v[0].(uint16), uint16(0x0200))

	test.ExpectSuccess(t, curated.Is(brd.Write(0x0200, 0x01), cpubus.AddressError))
	_, err = brd.Peek(0x0200)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
}

func TestRegionDisjointness(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	for a := 0; a <= 0xffff; a++ {
		address := uint16(a)

		isRAM := address <= 0x007f
		isPIA := address >= 0x0400 && address <= 0x0403
		isROM := address >= 0xf800

		_, err := brd.Peek(address)
		isIllegal := err != nil

		n := 0
		for _, b := range []bool{isRAM, isPIA, isROM, isIllegal} {
			if b {
				n++
			}
		}
		test.ExpectEquality(t, n, 1, address)

		_, area := memorymap.MapAddress(address)
		switch area {
		case memorymap.RAM:
			test.ExpectSuccess(t, isRAM, address)
		case memorymap.PIA:
			test.ExpectSuccess(t, isPIA, address)
		case memorymap.ROM:
			test.ExpectSuccess(t, isROM, address)
		default:
			test.ExpectSuccess(t, isIllegal, address)
		}
	}
}

func TestROMImmutability(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	for a := int(memorymap.OriginROM); a <= int(memorymap.MemtopROM); a++ {
		address := uint16(a)
		before, err := brd.Peek(address)
		test.DemandSuccess(t, err)

		test.ExpectSuccess(t, brd.Write(address, ^before))

		v, err := brd.Read(address)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, before, address)

		v, err = brd.Peek(address)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, before, address)
	}
}

func TestRAMRoundTrip(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	for a := int(memorymap.OriginRAM); a <= int(memorymap.MemtopRAM); a++ {
		address := uint16(a)
		for d := 0; d <= 0xff; d++ {
			test.ExpectSuccess(t, brd.Write(address, uint8(d)))
			v, err := brd.Read(address)
			test.ExpectSuccess(t, err)
			if !test.ExpectEquality(t, v, uint8(d), address) {
				return
			}
		}
	}
}

func TestPeekPurity(t *testing.T) {
	for _, model := range []pia.Model{pia.Echo, pia.FixedZero} {
		brd := newTestBoard(t, model)

		// put something in RAM and the PIA
		for a := uint16(0); a <= memorymap.MemtopRAM; a++ {
			test.DemandSuccess(t, brd.Write(a, uint8(a*3)))
		}
		test.DemandSuccess(t, brd.Write(0x0400, 0xab))
		test.DemandSuccess(t, brd.Write(0x0403, 0x34))

		before := brd.Image()
		beforeDAC := brd.DAC()

		for a := 0; a <= 0xffff; a++ {
			_, _ = brd.Peek(uint16(a))
			_, _ = brd.PeekWord(uint16(a))
		}

		test.ExpectSuccess(t, bytes.Equal(before, brd.Image()), model)
		test.ExpectEquality(t, brd.DAC(), beforeDAC, model)
	}
}

func TestWordByteOrder(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	test.ExpectSuccess(t, brd.WriteWord(0x0010, 0x1234))

	v, err := brd.Peek(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))
	v, err = brd.Peek(0x0011)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x34))

	w, err := brd.ReadWord(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x1234))

	w, err = brd.PeekWord(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x1234))

	// reading a word across the end of RAM fails on the second byte
	_, err = brd.ReadWord(memorymap.MemtopRAM)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.ExpectEquality(t, curated.Values(err)[0].(uint16), uint16(0x0080))

	// a word at the top of memory wraps to address zero
	test.DemandSuccess(t, brd.Write(0x0000, 0x77))
	w, err = brd.PeekWord(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x5a77))
}

func TestWordWriteNoRollback(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	// high byte is written to the last byte of RAM, low byte is illegal
	err := brd.WriteWord(memorymap.MemtopRAM, 0xbeef)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	v, _ := brd.Peek(memorymap.MemtopRAM)
	test.ExpectEquality(t, v, uint8(0xbe))

	// failure of the first byte aborts before the second byte is written. the
	// second byte would have been written to port A of the PIA
	err = brd.WriteWord(0x03ff, 0xbeef)
	test.ExpectSuccess(t, curated.Is(err, cpubus.AddressError))
	test.ExpectEquality(t, curated.Values(err)[0].(uint16), uint16(0x03ff))
	test.ExpectEquality(t, brd.DAC(), uint8(0x00))
}

func TestUploadROM(t *testing.T) {
	brd := memory.NewBoard(pia.Echo)

	err := brd.UploadROM(make([]uint8, int(memorymap.SizeROM)+1))
	test.ExpectSuccess(t, curated.Is(err, memory.RomOverflow))

	// a short image is copied from offset zero
	test.ExpectSuccess(t, brd.UploadROM([]uint8{0x01, 0x02}))
	v, _ := brd.Peek(memorymap.OriginROM)
	test.ExpectEquality(t, v, uint8(0x01))
	v, _ = brd.Peek(memorymap.OriginROM + 1)
	test.ExpectEquality(t, v, uint8(0x02))
	v, _ = brd.Peek(memorymap.OriginROM + 2)
	test.ExpectEquality(t, v, uint8(0x00))

	brd.Lock()
	test.ExpectSuccess(t, brd.Locked())
	err = brd.UploadROM([]uint8{0x03})
	test.ExpectSuccess(t, curated.Is(err, memory.RomLocked))
	v, _ = brd.Peek(memorymap.OriginROM)
	test.ExpectEquality(t, v, uint8(0x01))
}

func TestDACAndSFX(t *testing.T) {
	for _, model := range []pia.Model{pia.Echo, pia.FixedZero} {
		brd := memory.NewBoard(model)
		test.ExpectEquality(t, brd.DAC(), uint8(0x00), model)

		test.ExpectSuccess(t, brd.Write(0x0400, 0xab))
		test.ExpectEquality(t, brd.DAC(), uint8(0xab), model)

		brd.SetSFX(0x19)
		test.ExpectEquality(t, brd.PIA.Latched(pia.PortB), uint8(0xe6), model)
	}

	brd := memory.NewBoard(pia.Echo)
	brd.SetSFX(0x19)
	v, err := brd.Read(0x0402)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xe6))

	brd = memory.NewBoard(pia.FixedZero)
	brd.SetSFX(0x19)
	v, err = brd.Read(0x0402)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestPoke(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)

	// poke changes ROM even though a bus write does not
	test.ExpectSuccess(t, brd.Poke(0xf800, 0x42))
	v, _ := brd.Peek(0xf800)
	test.ExpectEquality(t, v, uint8(0x42))

	test.ExpectSuccess(t, brd.Poke(0x0001, 0x43))
	v, _ = brd.Peek(0x0001)
	test.ExpectEquality(t, v, uint8(0x43))

	test.ExpectFailure(t, brd.Poke(0x0200, 0x44))
}

func TestROMSize(t *testing.T) {
	brd := memory.NewBoard(pia.Echo)
	test.ExpectEquality(t, brd.ROM.Size(), 0)
	test.ExpectSuccess(t, strings.HasPrefix(brd.String(), "ROM: 0 bytes\n"))

	test.DemandSuccess(t, brd.UploadROM([]uint8{0x01, 0x02, 0x03}))
	test.ExpectEquality(t, brd.ROM.Size(), 3)
	test.ExpectSuccess(t, strings.HasPrefix(brd.String(), "ROM: 3 bytes\n"))

	// a rejected upload leaves the previous image in place
	test.ExpectFailure(t, brd.UploadROM(make([]uint8, int(memorymap.SizeROM)+1)))
	test.ExpectEquality(t, brd.ROM.Size(), 3)
}

func TestReset(t *testing.T) {
	brd := newTestBoard(t, pia.Echo)
	test.DemandSuccess(t, brd.Write(0x0000, 0x11))
	test.DemandSuccess(t, brd.Write(0x0400, 0x22))
	brd.Reset()

	v, _ := brd.Peek(0x0000)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectEquality(t, brd.DAC(), uint8(0x00))
	v, _ = brd.Peek(0xf800)
	test.ExpectEquality(t, v, uint8(0xa5))
}
