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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PIA:
		return "PIA"
	case ROM:
		return "ROM"
	}

	return "undefined"
}

// The different memory areas on the sound board.
const (
	Undefined Area = iota
	RAM
	PIA
	ROM
)

// The origin, size and memory top for each area of memory.
const (
	OriginRAM = uint16(0x0000)
	SizeRAM   = uint16(0x0080)
	MemtopRAM = OriginRAM + SizeRAM - 1

	OriginPIA = uint16(0x0400)
	SizePIA   = uint16(0x0004)
	MemtopPIA = OriginPIA + SizePIA - 1

	OriginROM = uint16(0xf800)
	SizeROM   = uint16(0x0800)
	// the ROM area reaches the top of the address space. the sum of origin and
	// size does not fit in 16 bits so the value is given directly
	MemtopROM = uint16(0xffff)
)

// Region describes one decoded area of the address space.
type Region struct {
	Area   Area
	Origin uint16
	Size   uint16
}

// Memtop returns the last address in the region. The calculation wraps.
func (r Region) Memtop() uint16 {
	return r.Origin + r.Size - 1
}

// Contains returns true if address is in the region.
func (r Region) Contains(address uint16) bool {
	return address-r.Origin < r.Size
}

// Regions lists the decoded regions in decode order.
var Regions = [...]Region{
	{Area: RAM, Origin: OriginRAM, Size: SizeRAM},
	{Area: PIA, Origin: OriginPIA, Size: SizePIA},
	{Area: ROM, Origin: OriginROM, Size: SizeROM},
}

// MapAddress returns the area the address belongs to and the offset of the
// address from the origin of that area. The first region in decode order to
// contain the address wins.
//
// Addresses that are not in any region return the Undefined area and the
// unmodified address.
func MapAddress(address uint16) (uint16, Area) {
	for _, r := range Regions {
		if r.Contains(address) {
			return address - r.Origin, r.Area
		}
	}
	return address, Undefined
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
