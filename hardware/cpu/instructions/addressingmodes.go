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

package instructions

import "fmt"

// AddressingMode describes the method by which data for the instruction is
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Inherent AddressingMode = iota
	Immediate
	Direct
	Indexed
	Extended
	Relative
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Indexed:
		return "Indexed"
	case Extended:
		return "Extended"
	case Relative:
		return "Relative"
	}
	return "unknown addressing mode"
}

// the names used for addressing modes in the CSV file
var addressingModes = map[string]AddressingMode{
	"INH": Inherent,
	"IMM": Immediate,
	"DIR": Direct,
	"IDX": Indexed,
	"EXT": Extended,
	"REL": Relative,
}

func parseAddressingMode(s string) (AddressingMode, error) {
	if m, ok := addressingModes[s]; ok {
		return m, nil
	}
	return Inherent, fmt.Errorf("unknown addressing mode (%s)", s)
}
