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

// Package memory implements the address decoded bus of the sound board. The
// Board type owns the RAM, the ROM and the PIA and dispatches CPU bus
// operations to them.
//
//	                          ---- RAM
//	                         |
//	  CPU ---- cpu bus ---- * ---- PIA ---- DAC
//	                         |
//	                          -<-- ROM
//
//	                         |
//	                    debugger bus
//	                         |
//	                  TRACE/DISASSEMBLY
//
// The asterisk indicates that addresses used by the CPU are first decoded by
// the memorymap package. The arrow pointing away from the ROM indicates that
// the CPU can only read from the ROM. Writes to ROM are accepted and
// discarded.
//
// The debugger bus is the Peek() and Poke() pair of functions. Peek() never
// changes the state of the board and is the only way the disassembler and the
// trace functions access memory.
//
// Addresses that are not in any area are illegal. An illegal access returns
// a curated error with the cpubus.AddressError pattern. The address can be
// recovered with curated.Values().
//
// The DAC is read by the capture driver directly and not through the CPU
// bus. It is the latched value of port A of the PIA.
package memory
