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
	"strings"

	"github.com/jetsetilly/wmsboard/hardware/memory/memorymap"
)

// RAM represents the 128 bytes of static RAM on the sound board.
type RAM struct {
	memory [memorymap.SizeRAM]uint8
}

func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(ram.memory)/16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Reset clears the contents of RAM.
func (ram *RAM) Reset() {
	ram.memory = [memorymap.SizeRAM]uint8{}
}

// Read value at offset.
func (ram *RAM) Read(offset uint16) uint8 {
	return ram.memory[offset]
}

// Write value to offset.
func (ram *RAM) Write(offset uint16, data uint8) {
	ram.memory[offset] = data
}

// Peek is the same as Read. Reading RAM has no side effects.
func (ram *RAM) Peek(offset uint16) uint8 {
	return ram.memory[offset]
}
