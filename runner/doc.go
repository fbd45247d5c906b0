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

// Package runner drives a machine from a list of simple commands. Commands
// are usually parsed from a script, one command per line:
//
//	-- comment lines start with two dashes
//	RESET
//	RUN 100
//	SFX 19
//	IRQ
//	TRACE ON
//	RUNTO f812
//	POKE 0400 7f
//	TRACE OFF
//
// Address and value arguments are hexadecimal, with or without a leading $
// or 0x. The argument to RUN is a decimal step count. RESET leaves RAM
// untouched while POWER clears RAM and the PIA before resetting.
//
// While tracing is on, a snapshot of the machine is added to the runner's
// trace after every step.
package runner
