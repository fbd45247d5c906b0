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

package registers

import "fmt"

// File is a copy of the register file of the CPU at a moment in time.
type File struct {
	PC uint16
	A  uint8
	B  uint8
	X  uint16
	SP uint16
	CC uint8
}

func (f File) String() string {
	var cc ConditionCodes
	cc.Load(f.CC)
	return fmt.Sprintf("PC=%04x A=%02x B=%02x X=%04x SP=%04x CC=%s", f.PC, f.A, f.B, f.X, f.SP, cc)
}
