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

// Package cpu emulates the Motorola 6800 microprocessor found on the
// Williams sound board. The CPU structure contains the registers of the
// processor and a reference to the memory bus. Register logic is implemented
// by the types in the registers sub-package.
//
// The ExecuteInstruction() function performs exactly one instruction or one
// interrupt acknowledgement and returns an execution.Result describing what
// happened.
//
//	res, err := mc.ExecuteInstruction(irq, nmi)
//
// The number of cycles consumed by the step is in the Cycles field of the
// result. The CPU does not keep a cycle count of its own. That is the job of
// the hardware.Machine type.
//
// Interrupt requests are not latched by the CPU. The caller passes the state
// of the IRQ and NMI lines to every call of ExecuteInstruction(). An NMI
// takes priority over an IRQ and an IRQ is ignored while the interrupt mask
// is set.
//
// Instruction definitions are not global. An instructions.Table is created
// by the caller and injected into the CPU with NewCPU().
//
// Memory accesses that fail with a cpubus.AddressError do not stop the CPU.
// The error is recorded in the Error field of the execution.Result and the
// read value is zero. Any other error from the memory bus is returned to the
// caller.
package cpu
