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

// Register16 is a 16 bit register. Used for the index register and the stack
// pointer.
type Register16 struct {
	value uint16
	label string
}

// NewRegister16 is the preferred method of initialisation for Register16.
func NewRegister16(val uint16, label string) Register16 {
	return Register16{
		value: val,
		label: label,
	}
}

// Label returns the canonical name of the register.
func (r Register16) Label() string {
	return r.label
}

func (r Register16) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Address returns the current value of the register.
func (r Register16) Address() uint16 {
	return r.value
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add value to the register. The addition wraps.
func (r *Register16) Add(val uint16) {
	r.value += val
}

// Increment register by one.
func (r *Register16) Increment() {
	r.value++
}

// Decrement register by one.
func (r *Register16) Decrement() {
	r.value--
}

// IsNegative checks the sign bit of the register.
func (r Register16) IsNegative() bool {
	return r.value&0x8000 == 0x8000
}

// IsZero checks if register is zero.
func (r Register16) IsZero() bool {
	return r.value == 0
}

// Compare value with the register without changing it. Returns the negative,
// zero and overflow states of the subtraction of value from the register.
func (r Register16) Compare(val uint16) (negative bool, zero bool, overflow bool) {
	res := r.value - val
	negative = res&0x8000 == 0x8000
	zero = res == 0
	overflow = ((r.value ^ val) & (r.value ^ res) & 0x8000) != 0
	return negative, zero, overflow
}
