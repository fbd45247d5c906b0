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

// Package cpubus defines the memory bus as seen by the CPU. It also defines
// the addresses of the interrupt vectors and the sentinal error for an
// address that cannot be accessed.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. A bus read may have side effects in a peripheral.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Debugger defines the meta-operations for memory. The Peek() function is
// guaranteed to have no side effects and is used by disassembly and tracing.
// The Poke() function is used to alter memory from outside of the emulation
// and is not guaranteed to be side effect free.
type Debugger interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Addresses of the vectors in the 6800 address space. Each vector is a big
// endian address.
const (
	IRQ   = uint16(0xfff8)
	SWI   = uint16(0xfffa)
	NMI   = uint16(0xfffc)
	Reset = uint16(0xfffe)
)

// Sentinal error returned by memory functions. Note that the error expects a
// numeric address, which will be formatted as four digit hex.
const (
	AddressError = "illegal address (%#04x)"
)
