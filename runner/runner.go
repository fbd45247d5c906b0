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

package runner

import (
	"github.com/jetsetilly/wmsboard/curated"
	"github.com/jetsetilly/wmsboard/digest"
	"github.com/jetsetilly/wmsboard/hardware/cpu/execution"
	"github.com/jetsetilly/wmsboard/logger"
)

// Machine is the subset of hardware.Machine required by the Runner.
type Machine interface {
	digest.Machine
	Reset() (execution.Result, error)
	PowerCycle() (execution.Result, error)
	Step() (execution.Result, error)
	RaiseIRQ()
	Poke(address uint16, value uint8) error
	SetSFX(code uint8)
}

// DefaultRunToLimit is the number of steps a RUNTO command will take before
// giving up.
const DefaultRunToLimit = 1000000

// Runner executes commands against a machine.
type Runner struct {
	m Machine

	// snapshots taken while tracing is on
	Trace digest.Trace

	tracing bool

	// total number of steps taken by the runner
	Steps int

	// the most recent result of a step
	LastResult execution.Result

	// maximum number of steps for RUNTO
	RunToLimit int

	// OnStep is called after every step. it can be nil
	OnStep func(execution.Result)

	// per-command logging
	Verbose logger.Verbosity
}

// NewRunner is the preferred method of initialisation for the Runner type.
func NewRunner(m Machine) *Runner {
	return &Runner{
		m:          m,
		RunToLimit: DefaultRunToLimit,
	}
}

// Tracing returns true if snapshots are being added to the trace.
func (r *Runner) Tracing() bool {
	return r.tracing
}

func (r *Runner) step() error {
	res, err := r.m.Step()
	if err != nil {
		return err
	}

	r.Steps++
	r.LastResult = res

	if r.tracing {
		r.Trace.Add(r.m)
	}
	if r.OnStep != nil {
		r.OnStep(res)
	}

	return nil
}

// Exec executes a single command.
func (r *Runner) Exec(c Command) error {
	logger.Log(r.Verbose, "runner", c)

	switch c.Kind {
	case Idle:
	case Reset:
		if _, err := r.m.Reset(); err != nil {
			return curated.Errorf("runner: %v", err)
		}
	case Power:
		if _, err := r.m.PowerCycle(); err != nil {
			return curated.Errorf("runner: %v", err)
		}
	case Run:
		for i := 0; i < c.Count; i++ {
			if err := r.step(); err != nil {
				return curated.Errorf("runner: %s: %v", c, err)
			}
		}
	case RunTo:
		for i := 0; r.m.Registers().PC != c.Address; i++ {
			if i >= r.RunToLimit {
				return curated.Errorf("runner: %s: address not reached after %d steps", c, r.RunToLimit)
			}
			if err := r.step(); err != nil {
				return curated.Errorf("runner: %s: %v", c, err)
			}
		}
	case Poke:
		if err := r.m.Poke(c.Address, c.Value); err != nil {
			return curated.Errorf("runner: %s: %v", c, err)
		}
	case IRQ:
		r.m.RaiseIRQ()
	case Trace:
		r.tracing = c.On
	case SFX:
		r.m.SetSFX(c.Value)
	default:
		return curated.Errorf("runner: unrecognised command: %s", c)
	}

	return nil
}

// Run executes commands in order. Execution stops at the first error.
func (r *Runner) Run(commands []Command) error {
	for _, c := range commands {
		if err := r.Exec(c); err != nil {
			return err
		}
	}
	return nil
}
