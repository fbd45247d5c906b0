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

package capture

import (
	"fmt"

	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/hardware/cpu"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/logger"
)

// EngineStepFailure is returned when the machine fails to reset or step for a
// reason other than an unrecognised instruction.
const EngineStepFailure = "capture: engine step failure: %v"

// Default values for the Config type.
const (
	DefaultWarmupSteps = 100
	DefaultSoundCode   = 0x19
	DefaultSampleCount = 44100
)

// Machine is the subset of hardware.Machine required by the Driver.
type Machine interface {
	Reset() (execution.Result, error)
	Step() (execution.Result, error)
	RaiseIRQ()
	SetSFX(code uint8)
	DAC() uint8
}

// Config specifies a single capture.
type Config struct {
	// number of steps to run after reset and before the sound is requested
	WarmupSteps int

	// the sound effect to request
	SoundCode uint8

	// length of the capture in samples. one sample per CPU cycle
	SampleCount int
}

// NewConfig returns a Config with the default warm-up and sound code.
func NewConfig(sampleCount int) Config {
	return Config{
		WarmupSteps: DefaultWarmupSteps,
		SoundCode:   DefaultSoundCode,
		SampleCount: sampleCount,
	}
}

func (cfg Config) String() string {
	return fmt.Sprintf("sound=%#02x warmup=%d samples=%d", cfg.SoundCode, cfg.WarmupSteps, cfg.SampleCount)
}

// Driver runs a capture on a Machine.
type Driver struct {
	machine Machine
	cfg     Config
	state   State

	// number of steps and cycles during the capturing state
	steps  int
	cycles int

	// called after every step in the capturing state. can be nil
	OnStep func(res execution.Result)

	// per-step logging
	Verbose logger.Verbosity
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(machine Machine, cfg Config) *Driver {
	return &Driver{
		machine: machine,
		cfg:     cfg,
	}
}

// State returns the current state of the driver.
func (drv *Driver) State() State {
	return drv.state
}

// Steps returns the number of steps taken during capture.
func (drv *Driver) Steps() int {
	return drv.steps
}

// step the machine. errors are normalised so that an unrecognised
// instruction can be distinguished from other failures
func (drv *Driver) step() (execution.Result, error) {
	res, err := drv.machine.Step()
	if err != nil {
		if curated.Has(err, cpu.UnrecognisedInstruction) {
			return res, curated.Errorf("capture: %s: %v", drv.state, err)
		}
		return res, curated.Errorf(EngineStepFailure, err)
	}
	return res, nil
}

// Capture runs the capture process from reset. The returned buffer is
// exactly Config.SampleCount bytes long. No buffer is returned if an error
// occurs.
func (drv *Driver) Capture() ([]uint8, error) {
	if drv.cfg.SampleCount < 0 {
		return nil, curated.Errorf("capture: sample count cannot be negative (%d)", drv.cfg.SampleCount)
	}
	if drv.cfg.WarmupSteps < 0 {
		return nil, curated.Errorf("capture: warm-up steps cannot be negative (%d)", drv.cfg.WarmupSteps)
	}

	drv.state = Uninitialised
	drv.steps = 0
	drv.cycles = 0

	logger.Logf(logger.Allow, "capture", "starting: %s", drv.cfg)

	_, err := drv.machine.Reset()
	if err != nil {
		return nil, curated.Errorf(EngineStepFailure, err)
	}

	drv.state = WarmingUp
	for i := 0; i < drv.cfg.WarmupSteps; i++ {
		if _, err := drv.step(); err != nil {
			return nil, err
		}
	}

	drv.state = AwaitingInterrupt
	drv.machine.SetSFX(drv.cfg.SoundCode)
	drv.machine.RaiseIRQ()

	drv.state = Capturing
	buffer := make([]uint8, 0, drv.cfg.SampleCount)

	for len(buffer) < drv.cfg.SampleCount {
		res, err := drv.step()
		if err != nil {
			return nil, err
		}

		if res.Cycles <= 0 {
			return nil, curated.Errorf(EngineStepFailure, fmt.Sprintf("step at %#04x consumed no cycles", res.Address))
		}

		drv.steps++
		drv.cycles += res.Cycles

		dac := drv.machine.DAC()

		n := min(res.Cycles, drv.cfg.SampleCount-len(buffer))
		for range n {
			buffer = append(buffer, dac)
		}

		logger.Logf(drv.Verbose, "capture", "%s -> dac=%02x", res, dac)

		if drv.OnStep != nil {
			drv.OnStep(res)
		}
	}

	drv.state = Done

	logger.Logf(logger.Allow, "capture", "finished: %d samples in %d steps (%d cycles)", len(buffer), drv.steps, drv.cycles)

	return buffer, nil
}
