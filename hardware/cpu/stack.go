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

package cpu

// the stack pointer points to the next free location. a push writes to the
// stack pointer and then decrements it

func (mc *CPU) push(v uint8) error {
	err := mc.write(mc.SP.Address(), v)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()
	return mc.read(mc.SP.Address())
}

// push16 pushes the low byte first so that the value is big endian in memory
func (mc *CPU) push16(v uint16) error {
	err := mc.push(uint8(v))
	if err != nil {
		return err
	}
	return mc.push(uint8(v >> 8))
}

func (mc *CPU) pull16() (uint16, error) {
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// pushRegisters saves the entire register set in the order used by the
// interrupt mechanism: PC, X, A, B, CC
func (mc *CPU) pushRegisters() error {
	if err := mc.push16(mc.PC.Address()); err != nil {
		return err
	}
	if err := mc.push16(mc.X.Address()); err != nil {
		return err
	}
	if err := mc.push(mc.A.Value()); err != nil {
		return err
	}
	if err := mc.push(mc.B.Value()); err != nil {
		return err
	}
	return mc.push(mc.CC.Value())
}

// pullRegisters is the reverse of pushRegisters()
func (mc *CPU) pullRegisters() error {
	cc, err := mc.pull()
	if err != nil {
		return err
	}
	mc.CC.Load(cc)

	b, err := mc.pull()
	if err != nil {
		return err
	}
	mc.B.Load(b)

	a, err := mc.pull()
	if err != nil {
		return err
	}
	mc.A.Load(a)

	x, err := mc.pull16()
	if err != nil {
		return err
	}
	mc.X.Load(x)

	pc, err := mc.pull16()
	if err != nil {
		return err
	}
	mc.PC.Load(pc)

	return nil
}
