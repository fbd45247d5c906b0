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

import (
	"strings"
)

// ConditionCodes is the special purpose register that stores the flags of the
// 6800.
type ConditionCodes struct {
	HalfCarry     bool
	InterruptMask bool
	Negative      bool
	Zero          bool
	Overflow      bool
	Carry         bool
}

// Label returns the canonical name for the condition code register.
func (cc ConditionCodes) Label() string {
	return "CC"
}

// String returns the flags as a string. Set flags are upper case. The two
// unused bits are always shown as 1.
func (cc ConditionCodes) String() string {
	s := strings.Builder{}
	s.WriteString("11")

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(cc.HalfCarry, 'H')
	flag(cc.InterruptMask, 'I')
	flag(cc.Negative, 'N')
	flag(cc.Zero, 'Z')
	flag(cc.Overflow, 'V')
	flag(cc.Carry, 'C')

	return s.String()
}

// Value converts the flags into a value suitable for pushing onto the stack
// or transferring to the A register. The top two bits are always set.
func (cc ConditionCodes) Value() uint8 {
	v := uint8(0xc0)

	if cc.HalfCarry {
		v |= 0x20
	}
	if cc.InterruptMask {
		v |= 0x10
	}
	if cc.Negative {
		v |= 0x08
	}
	if cc.Zero {
		v |= 0x04
	}
	if cc.Overflow {
		v |= 0x02
	}
	if cc.Carry {
		v |= 0x01
	}

	return v
}

// Load converts an 8 bit value (taken from the stack, for example) into the
// condition code flags.
func (cc *ConditionCodes) Load(v uint8) {
	cc.HalfCarry = v&0x20 == 0x20
	cc.InterruptMask = v&0x10 == 0x10
	cc.Negative = v&0x08 == 0x08
	cc.Zero = v&0x04 == 0x04
	cc.Overflow = v&0x02 == 0x02
	cc.Carry = v&0x01 == 0x01
}

// Reset flags to the power on state. The interrupt mask is set and all other
// flags are cleared.
func (cc *ConditionCodes) Reset() {
	cc.Load(0x10)
}
