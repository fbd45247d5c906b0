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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/cpu"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/hardware/cpu/instructions"
	"github.com/jetsetilly/wmsboard/hardware/cpu/registers"
	"github.com/jetsetilly/wmsboard/hardware/memory"
	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/logger"
)

// Machine is the emulated sound board and its CPU.
type Machine struct {
	Board *memory.Board
	CPU   *cpu.CPU

	table *instructions.Table

	// number of cycles since the last Reset()
	Cycle uint64

	// interrupt request lines
	IRQ bool
	NMI bool

	// per-step logging
	Verbose logger.Verbosity
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The model argument is passed to the PIA.
func NewMachine(model pia.Model) (*Machine, error) {
	table, err := instructions.NewTable()
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m := &Machine{
		Board: memory.NewBoard(model),
		table: table,
	}
	m.CPU = cpu.NewCPU(m.Board, m.table)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("cycle=%d %s", m.Cycle, m.CPU)
}

// LoadROM uploads a ROM image to the board. Must be called before the first
// call to Step().
func (m *Machine) LoadROM(data []uint8) error {
	err := m.Board.UploadROM(data)
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}
	logger.Logf(logger.Allow, "board", "uploaded %d bytes to ROM", len(data))
	return nil
}

// Reset zeroes the cycle counter, clears the interrupt request lines and
// resets the CPU. The contents of RAM are not changed. Fails only if the reset
// vector cannot be read.
func (m *Machine) Reset() (execution.Result, error) {
	m.Cycle = 0
	m.IRQ = false
	m.NMI = false

	res, err := m.CPU.Reset()
	if err != nil {
		return res, curated.Errorf("machine: %v", err)
	}

	logger.Logf(m.Verbose, "cpu", "reset: PC=%04x", res.Address)

	return res, nil
}

// PowerCycle clears RAM and the PIA registers before resetting the machine.
// The contents of ROM are not changed.
func (m *Machine) PowerCycle() (execution.Result, error) {
	m.Board.Reset()
	logger.Log(m.Verbose, "board", "power cycle")
	return m.Reset()
}

// Step the machine by exactly one instruction or interrupt acknowledgement.
// The number of cycles consumed by the step is added to the cycle counter.
func (m *Machine) Step() (execution.Result, error) {
	if !m.Board.Locked() {
		m.Board.Lock()
	}

	res, err := m.CPU.ExecuteInstruction(m.IRQ, m.NMI)
	if err != nil {
		return res, curated.Errorf("machine: %v", err)
	}

	switch res.Kind {
	case execution.IRQ:
		m.IRQ = false
	case execution.NMI:
		m.NMI = false
	}

	m.Cycle += uint64(res.Cycles)

	logger.Log(m.Verbose, "cpu", res)

	return res, nil
}

// RaiseIRQ sets the IRQ request line. The line is cleared when the CPU
// acknowledges the interrupt. While the interrupt mask is set the request
// remains pending.
func (m *Machine) RaiseIRQ() {
	m.IRQ = true
}

// RaiseNMI sets the NMI request line. The line is cleared when the CPU
// acknowledges the interrupt.
func (m *Machine) RaiseNMI() {
	m.NMI = true
}

// Disassemble decodes the instruction at pc without affecting the state of
// the machine.
func (m *Machine) Disassemble(pc uint16) (execution.Result, error) {
	return cpu.Disassemble(m.Board, m.table, pc)
}

// Peek returns the value at address without side effects.
func (m *Machine) Peek(address uint16) (uint8, error) {
	return m.Board.Peek(address)
}

// Poke alters the value at address. ROM can be altered with Poke().
func (m *Machine) Poke(address uint16, value uint8) error {
	return m.Board.Poke(address, value)
}

// Registers returns a copy of the CPU registers.
func (m *Machine) Registers() registers.File {
	return m.CPU.Registers()
}

// Cycles returns the number of cycles since the last Reset().
func (m *Machine) Cycles() uint64 {
	return m.Cycle
}

// SetSFX programs the sound selector with the sound code.
func (m *Machine) SetSFX(code uint8) {
	m.Board.SetSFX(code)
}

// DAC returns the current output of the DAC.
func (m *Machine) DAC() uint8 {
	return m.Board.DAC()
}

// Image returns the memory image of the board. Used for digests.
func (m *Machine) Image() []uint8 {
	return m.Board.Image()
}
