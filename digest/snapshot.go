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

package digest

import (
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/jetsetilly/wmsboard/hardware/cpu/registers"
)

// Machine is the subset of hardware.Machine required to take a Snapshot.
type Machine interface {
	Cycles() uint64
	Registers() registers.File
	Image() []uint8
}

// Snapshot is the state of a machine at a moment in time.
type Snapshot struct {
	Cycle     uint64
	Registers registers.File
	Memory    [sha1.Size]byte
}

// NewSnapshot creates a snapshot of the machine. The machine is not changed.
func NewSnapshot(m Machine) Snapshot {
	return Snapshot{
		Cycle:     m.Cycles(),
		Registers: m.Registers(),
		Memory:    sha1.Sum(m.Image()),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%d %s %x", s.Cycle, s.Registers, s.Memory)
}

// Hash returns a digest of the snapshot.
func (s Snapshot) Hash() string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(s.String())))
}

// Trace is a sequence of snapshots.
type Trace struct {
	Snapshots []Snapshot
}

// Add a snapshot of the machine to the trace.
func (tr *Trace) Add(m Machine) {
	tr.Snapshots = append(tr.Snapshots, NewSnapshot(m))
}

// Len returns the number of snapshots in the trace.
func (tr *Trace) Len() int {
	return len(tr.Snapshots)
}

// Hash returns a digest of the entire trace.
func (tr *Trace) Hash() string {
	h := sha1.New()
	for _, s := range tr.Snapshots {
		_, _ = io.WriteString(h, s.String())
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ResetDigest removes all snapshots from the trace.
func (tr *Trace) ResetDigest() {
	tr.Snapshots = tr.Snapshots[:0]
}

// Write the trace, one snapshot per line.
func (tr *Trace) Write(w io.Writer) error {
	for _, s := range tr.Snapshots {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
