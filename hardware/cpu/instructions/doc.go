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

// Package instructions defines the instruction set of the 6800. The
// definitions are described in the embedded instructions.csv file and are
// parsed by NewTable(). The table is immutable once created and can be shared
// freely.
//
//	tbl, err := instructions.NewTable()
//	if err != nil {
//		return err
//	}
//	defn := tbl.Lookup(0x86) // LDAA immediate
//
// A nil definition is returned for opcodes that are not part of the
// documented instruction set.
package instructions
