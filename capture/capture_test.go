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

package capture_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/wmsboard/capture"
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware"
	"github.com/jetsetilly/wmsboard/hardware/cpu"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/hardware/pia"
	"github.com/jetsetilly/wmsboard/test"
)

// fakeMachine consumes a fixed number of cycles every step and outputs a
// fixed DAC value once the IRQ has been raised
type fakeMachine struct {
	cycles int
	dac    uint8

	steps  int
	resets int
	sfx    uint8

	// the step count at the time the IRQ was raised. -1 if not raised
	irqAt int

	// return err on this step
	failAt int
	err    error
}

func newFakeMachine(cycles int, dac uint8) *fakeMachine {
	return &fakeMachine{
		cycles: cycles,
		dac:    dac,
		irqAt:  -1,
	}
}

func (m *fakeMachine) Reset() (execution.Result, error) {
	m.resets++
	m.steps = 0
	m.irqAt = -1
	return execution.Result{Kind: execution.Reset, Final: true}, nil
}

func (m *fakeMachine) Step() (execution.Result, error) {
	m.steps++
	if m.err != nil && m.steps == m.failAt {
		return execution.Result{}, m.err
	}
	return execution.Result{Kind: execution.Step, Cycles: m.cycles, Final: true}, nil
}

func (m *fakeMachine) RaiseIRQ() {
	m.irqAt = m.steps
}

func (m *fakeMachine) SetSFX(code uint8) {
	m.sfx = code
}

func (m *fakeMachine) DAC() uint8 {
	if m.irqAt < 0 {
		return 0x00
	}
	return m.dac
}

func TestCycleFanOut(t *testing.T) {
	m := newFakeMachine(4, 0xab)
	drv := capture.NewDriver(m, capture.Config{SampleCount: 4})

	buffer, err := drv.Capture()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buffer), 4)
	for i := range buffer {
		test.ExpectEquality(t, buffer[i], 0xab, i)
	}
	test.ExpectEquality(t, drv.Steps(), 1)
}

func TestCaptureLength(t *testing.T) {
	for _, n := range []int{64, 1024} {
		m := newFakeMachine(3, 0x55)
		drv := capture.NewDriver(m, capture.NewConfig(n))

		buffer, err := drv.Capture()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(buffer), n)
		test.ExpectEquality(t, drv.State(), capture.Done)
	}
}

func TestTruncateFinalStep(t *testing.T) {
	m := newFakeMachine(4, 0x10)
	drv := capture.NewDriver(m, capture.Config{SampleCount: 6})

	buffer, err := drv.Capture()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buffer), 6)
	test.ExpectEquality(t, drv.Steps(), 2)
}

func TestZeroSamples(t *testing.T) {
	m := newFakeMachine(4, 0x10)
	drv := capture.NewDriver(m, capture.NewConfig(0))

	buffer, err := drv.Capture()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buffer), 0)
	test.ExpectEquality(t, drv.Steps(), 0)
	test.ExpectEquality(t, m.irqAt, capture.DefaultWarmupSteps)
}

func TestSequence(t *testing.T) {
	m := newFakeMachine(2, 0x7f)
	drv := capture.NewDriver(m, capture.NewConfig(100))
	test.ExpectEquality(t, drv.State(), capture.Uninitialised)

	buffer, err := drv.Capture()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.resets, 1)
	test.ExpectEquality(t, m.sfx, capture.DefaultSoundCode)
	test.ExpectEquality(t, m.irqAt, capture.DefaultWarmupSteps)
	test.ExpectEquality(t, m.steps, capture.DefaultWarmupSteps+50)

	// the fake DAC changes when the IRQ is raised. no sample from the
	// warm-up period is in the buffer
	for i := range buffer {
		test.ExpectEquality(t, buffer[i], 0x7f, i)
	}
}

func TestBadConfig(t *testing.T) {
	m := newFakeMachine(2, 0x7f)

	_, err := capture.NewDriver(m, capture.Config{SampleCount: -1}).Capture()
	test.ExpectFailure(t, err)

	_, err = capture.NewDriver(m, capture.Config{WarmupSteps: -1}).Capture()
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, m.resets, 0)
}

func TestUnrecognisedInstruction(t *testing.T) {
	m := newFakeMachine(2, 0x7f)
	m.failAt = capture.DefaultWarmupSteps + 5
	m.err = curated.Errorf(cpu.UnrecognisedInstruction, uint16(0xf900), uint8(0x00))

	drv := capture.NewDriver(m, capture.NewConfig(1024))
	buffer, err := drv.Capture()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, cpu.UnrecognisedInstruction))
	test.ExpectFailure(t, curated.Is(err, capture.EngineStepFailure))
	test.ExpectSuccess(t, buffer == nil)
	test.ExpectEquality(t, drv.State(), capture.Capturing)
}

func TestEngineStepFailure(t *testing.T) {
	m := newFakeMachine(2, 0x7f)
	m.failAt = 10
	m.err = errors.New("bus fault")

	drv := capture.NewDriver(m, capture.NewConfig(1024))
	buffer, err := drv.Capture()
	test.ExpectSuccess(t, curated.Is(err, capture.EngineStepFailure))
	test.ExpectSuccess(t, buffer == nil)
	test.ExpectEquality(t, drv.State(), capture.WarmingUp)
}

func TestZeroCycleStep(t *testing.T) {
	m := newFakeMachine(0, 0x7f)
	drv := capture.NewDriver(m, capture.NewConfig(16))
	_, err := drv.Capture()
	test.ExpectSuccess(t, curated.Is(err, capture.EngineStepFailure))
}

const (
	initialDAC = 0x80
	soundByte  = 0x3c
)

// soundROM initialises the DAC and waits for an interrupt. the IRQ handler
// writes soundByte to the DAC and loops forever
func soundROM() []uint8 {
	rom := make([]uint8, 0x800)

	put := func(address uint16, bytes ...uint8) {
		copy(rom[address-0xf800:], bytes)
	}

	// LDS #$007f; LDAA #initialDAC; STAA $0400; CLI; BRA *
	put(0xf800, 0x8e, 0x00, 0x7f, 0x86, initialDAC, 0xb7, 0x04, 0x00, 0x0e, 0x20, 0xfe)

	// LDAA #soundByte; STAA $0400; BRA *
	put(0xf80b, 0x86, soundByte, 0xb7, 0x04, 0x00, 0x20, 0xfe)

	put(0xfff8, 0xf8, 0x0b)
	put(0xfffe, 0xf8, 0x00)

	return rom
}

func TestEndToEnd(t *testing.T) {
	m, err := hardware.NewMachine(pia.Echo)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadROM(soundROM()))

	drv := capture.NewDriver(m, capture.NewConfig(1024))
	buffer, err := drv.Capture()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buffer), 1024)

	// interrupt acknowledgement (12 cycles) and the LDAA (2 cycles) happen
	// before the DAC is written to
	const latency = 14

	for i := 0; i < latency; i++ {
		test.ExpectEquality(t, buffer[i], initialDAC, i)
	}
	for i := latency; i < len(buffer); i++ {
		if !test.ExpectEquality(t, buffer[i], soundByte, i) {
			break
		}
	}

	// the sound selector is active low
	test.ExpectEquality(t, m.Board.PIA.Latched(pia.PortB), ^uint8(capture.DefaultSoundCode))
}
