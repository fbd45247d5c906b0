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
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/memory/memorymap"
)

// Sentinal errors for ROM uploading.
const (
	RomOverflow = "rom: image too large (%d bytes, maximum %d)"
	RomLocked   = "rom: cannot upload after execution has started"
)

// ROM represents the 2k of program memory on the sound board.
type ROM struct {
	memory [memorymap.SizeROM]uint8

	// the number of bytes uploaded
	size int

	// a locked ROM cannot be uploaded to
	locked bool
}

// upload data to the ROM, starting at offset zero. The remainder of the ROM
// is cleared.
func (rom *ROM) upload(data []uint8) error {
	if rom.locked {
		return curated.Errorf(RomLocked)
	}
	if len(data) > len(rom.memory) {
		return curated.Errorf(RomOverflow, len(data), len(rom.memory))
	}
	rom.memory = [memorymap.SizeROM]uint8{}
	rom.size = copy(rom.memory[:], data)
	return nil
}

// Size returns the number of bytes copied by the most recent upload.
func (rom *ROM) Size() int {
	return rom.size
}

// Read value at offset.
func (rom *ROM) Read(offset uint16) uint8 {
	return rom.memory[offset]
}

// Peek is the same as Read. Reading ROM has no side effects.
func (rom *ROM) Peek(offset uint16) uint8 {
	return rom.memory[offset]
}
