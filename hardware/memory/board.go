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

package memory

import (
	"fmt"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/memory/cpubus"
	"github.com/jetsetilly/wmsboard/hardware/memory/memorymap"
	"github.com/jetsetilly/wmsboard/hardware/pia"
)

// Board is the address decoded bus of the sound board. It implements the
// cpubus.Memory and cpubus.Debugger interfaces.
type Board struct {
	RAM *RAM
	ROM *ROM
	PIA *pia.PIA
}

// NewBoard is the preferred method of initialisation for the Board type. The
// model argument decides how reads of the PIA registers behave.
func NewBoard(model pia.Model) *Board {
	return &Board{
		RAM: &RAM{},
		ROM: &ROM{},
		PIA: pia.NewPIA(model),
	}
}

func (brd *Board) String() string {
	return fmt.Sprintf("ROM: %d bytes\n%s\nDAC: %02x", brd.ROM.Size(), brd.PIA, brd.DAC())
}

// Reset clears RAM and the PIA registers. The contents of ROM are not
// affected.
func (brd *Board) Reset() {
	brd.RAM.Reset()
	brd.PIA.Reset()
}

// UploadROM copies data into ROM starting at offset zero. An image larger
// than the ROM area is rejected with the RomOverflow error. Once Lock() has
// been called the upload is rejected with the RomLocked error.
func (brd *Board) UploadROM(data []uint8) error {
	return brd.ROM.upload(data)
}

// Lock prevents any further uploads to ROM. Called when execution starts.
func (brd *Board) Lock() {
	brd.ROM.locked = true
}

// Locked returns true if ROM can no longer be uploaded to.
func (brd *Board) Locked() bool {
	return brd.ROM.locked
}

// Read is an implementation of cpubus.Memory.
func (brd *Board) Read(address uint16) (uint8, error) {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return brd.RAM.Read(offset), nil
	case memorymap.PIA:
		return brd.PIA.Read(offset), nil
	case memorymap.ROM:
		return brd.ROM.Read(offset), nil
	}
	return 0, curated.Errorf(cpubus.AddressError, address)
}

// Write is an implementation of cpubus.Memory. Writes to ROM are discarded
// without error.
func (brd *Board) Write(address uint16, data uint8) error {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		brd.RAM.Write(offset, data)
		return nil
	case memorymap.PIA:
		brd.PIA.Write(offset, data)
		return nil
	case memorymap.ROM:
		return nil
	}
	return curated.Errorf(cpubus.AddressError, address)
}

// Peek is an implementation of cpubus.Debugger. It decodes the address in the
// same way as Read() but never changes the state of the board.
func (brd *Board) Peek(address uint16) (uint8, error) {
	offset, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return brd.RAM.Peek(offset), nil
	case memorymap.PIA:
		return brd.PIA.Peek(offset), nil
	case memorymap.ROM:
		return brd.ROM.Peek(offset), nil
	}
	return 0, curated.Errorf(cpubus.AddressError, address)
}

// Poke is an implementation of cpubus.Debugger. Unlike Write() a poke to a
// ROM address changes the contents of ROM.
func (brd *Board) Poke(address uint16, value uint8) error {
	offset, area := memorymap.MapAddress(address)
	if area == memorymap.ROM {
		brd.ROM.memory[offset] = value
		return nil
	}
	return brd.Write(address, value)
}

// ReadWord reads a big endian word from the address. The high byte is at the
// address and the low byte at the address plus one.
func (brd *Board) ReadWord(address uint16) (uint16, error) {
	hi, err := brd.Read(address)
	if err != nil {
		return 0, err
	}
	lo, err := brd.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteWord writes a big endian word to the address. An error writing the
// high byte means the low byte is not written. A successful first write is
// not undone if the second write fails.
func (brd *Board) WriteWord(address uint16, data uint16) error {
	if err := brd.Write(address, uint8(data>>8)); err != nil {
		return err
	}
	return brd.Write(address+1, uint8(data))
}

// PeekWord is the side effect free equivalent of ReadWord().
func (brd *Board) PeekWord(address uint16) (uint16, error) {
	hi, err := brd.Peek(address)
	if err != nil {
		return 0, err
	}
	lo, err := brd.Peek(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// DAC returns the current output of the DAC. The DAC is driven by the
// latched value of port A of the PIA.
func (brd *Board) DAC() uint8 {
	return brd.PIA.Latched(pia.PortA)
}

// SetSFX selects the sound effect the firmware will play when it next
// services an interrupt. The sound select lines are active low so the
// inverse of the code is latched into port B of the PIA.
func (brd *Board) SetSFX(code uint8) {
	brd.PIA.Write(pia.PortB, ^code)
}

// Image returns a copy of the addressable memory of the board, area by area
// in decode order. The PIA registers are included as they would be seen by
// Peek().
func (brd *Board) Image() []uint8 {
	img := make([]uint8, 0, int(memorymap.SizeRAM)+int(memorymap.SizePIA)+int(memorymap.SizeROM))
	img = append(img, brd.RAM.memory[:]...)
	for o := uint16(0); o < memorymap.SizePIA; o++ {
		img = append(img, brd.PIA.Peek(o))
	}
	img = append(img, brd.ROM.memory[:]...)
	return img
}
