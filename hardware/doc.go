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

// Package hardware is the base package for the sound board emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Machine type pairs the Board (memory, ROM and the PIA) with the 6800
// CPU, a cycle counter and the two interrupt request lines. The request lines
// are latched by the Machine and cleared when the CPU acknowledges the
// interrupt.
//
//	m, err := hardware.NewMachine(pia.Echo)
//	err = m.LoadROM(data)
//	_, err = m.Reset()
//	for {
//		res, err := m.Step()
//		...
//	}
//
// The ROM can only be loaded before the first call to Step().
package hardware
