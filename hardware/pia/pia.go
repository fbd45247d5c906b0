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

// Package pia is a minimal model of the peripheral interface adapter on the
// sound board. It is a register file of four bytes and does not emulate the
// handshake or control lines of the real chip.
//
// The board firmware writes the DAC value to the port A data register and
// reads the sound select lines from the port B data register. How a read of
// a register behaves is decided by the Model. The default model is Echo.
package pia

import (
	"fmt"
	"strings"
)

// Model describes how a read of a PIA register behaves.
type Model int

// List of valid Model values.
const (
	// Echo returns the last value written to the register.
	Echo Model = iota

	// FixedZero always returns zero. Models write-only registers.
	FixedZero
)

func (m Model) String() string {
	switch m {
	case Echo:
		return "Echo"
	case FixedZero:
		return "FixedZero"
	}
	return "unknown"
}

// ParseModel returns the Model named by s. The comparison is case
// insensitive.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ECHO":
		return Echo, nil
	case "FIXEDZERO":
		return FixedZero, nil
	}
	return Echo, fmt.Errorf("pia: unknown model (%s)", s)
}

// Register offsets.
const (
	PortA    = 0
	ControlA = 1
	PortB    = 2
	ControlB = 3

	// NumRegisters is the number of registers in the register file.
	NumRegisters = 4
)

// PIA is the register file. The zero value is a PIA using the Echo model
// with all registers cleared.
type PIA struct {
	model     Model
	registers [NumRegisters]uint8
}

// NewPIA is the preferred method of initialisation for the PIA type.
func NewPIA(model Model) *PIA {
	return &PIA{model: model}
}

func (pia *PIA) String() string {
	return fmt.Sprintf("PIA (%s) %02x %02x %02x %02x", pia.model,
		pia.registers[PortA], pia.registers[ControlA],
		pia.registers[PortB], pia.registers[ControlB])
}

// Model returns the read model of the PIA.
func (pia *PIA) Model() Model {
	return pia.model
}

// Reset clears all registers.
func (pia *PIA) Reset() {
	pia.registers = [NumRegisters]uint8{}
}

// Write value to register at offset. The offset must be less than
// NumRegisters.
func (pia *PIA) Write(offset uint16, value uint8) {
	pia.registers[offset] = value
}

// Read register at offset. The result depends on the PIA model. The offset
// must be less than NumRegisters.
func (pia *PIA) Read(offset uint16) uint8 {
	return pia.Peek(offset)
}

// Peek returns the same value as Read() but never changes the state of the
// PIA.
func (pia *PIA) Peek(offset uint16) uint8 {
	v := pia.registers[offset]
	if pia.model == FixedZero {
		return 0
	}
	return v
}

// Latched returns the last value written to the register at offset. It
// ignores the model and is used for the DAC, which sees the latched output of
// port A whatever the read model.
func (pia *PIA) Latched(offset uint16) uint8 {
	return pia.registers[offset]
}
